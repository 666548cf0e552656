package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/Aruzhan018/Wish_Board/internal/errs"
	"github.com/Aruzhan018/Wish_Board/internal/models"
	"github.com/Aruzhan018/Wish_Board/internal/services"
	"github.com/Aruzhan018/Wish_Board/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEnv() (*memory.Store, *services.WishService, *services.InteractionService) {
	store := memory.New()
	return store, services.NewWishService(store), services.NewInteractionService(store, store, store)
}

func createTestWish(t *testing.T, svc *services.WishService, identity *models.Identity, title string, category models.Category) *models.Wish {
	t.Helper()
	wish, err := svc.CreateWish(context.Background(), identity, title, "a description", category)
	require.NoError(t, err)
	return wish
}

var (
	alice = &models.Identity{UID: "user-alice", Name: "Alice A"}
	bob   = &models.Identity{UID: "user-bob", Name: "Bob B"}
)

func TestToggleLikeSequence(t *testing.T) {
	store, wishSvc, interactions := newTestEnv()
	ctx := context.Background()

	wish := createTestWish(t, wishSvc, alice, "Laptop for school", models.CategoryEducation)
	wishID := wish.ID.Hex()

	liked, err := interactions.ToggleLike(ctx, bob, wishID)
	require.NoError(t, err)
	assert.True(t, liked)

	got, err := wishSvc.GetWish(ctx, wishID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.LikesCount)

	liked, err = interactions.ToggleLike(ctx, bob, wishID)
	require.NoError(t, err)
	assert.False(t, liked)

	got, err = wishSvc.GetWish(ctx, wishID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.LikesCount)

	// The ledger record survives retraction with active=false.
	like, err := store.GetLike(ctx, bob.UID, wishID)
	require.NoError(t, err)
	assert.False(t, like.Active)
}

func TestToggleLikeUnauthenticated(t *testing.T) {
	_, wishSvc, interactions := newTestEnv()
	ctx := context.Background()

	wish := createTestWish(t, wishSvc, alice, "Garden tools", models.CategoryHome)

	_, err := interactions.ToggleLike(ctx, nil, wish.ID.Hex())
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)

	got, err := wishSvc.GetWish(ctx, wish.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.LikesCount)
}

func TestToggleLikeValidation(t *testing.T) {
	_, _, interactions := newTestEnv()
	ctx := context.Background()

	_, err := interactions.ToggleLike(ctx, bob, "")
	assert.ErrorIs(t, err, errs.ErrInvalid)

	_, err = interactions.ToggleLike(ctx, bob, "64f000000000000000000000")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestLikeCountMatchesLedger(t *testing.T) {
	store, wishSvc, interactions := newTestEnv()
	ctx := context.Background()

	wish := createTestWish(t, wishSvc, alice, "Train ticket", models.CategoryTravel)
	wishID := wish.ID.Hex()

	users := []*models.Identity{
		{UID: "u1", Name: "One"},
		{UID: "u2", Name: "Two"},
		{UID: "u3", Name: "Three"},
	}

	// Everyone likes, one retracts, one likes again after retracting.
	for _, u := range users {
		_, err := interactions.ToggleLike(ctx, u, wishID)
		require.NoError(t, err)
	}
	_, err := interactions.ToggleLike(ctx, users[0], wishID)
	require.NoError(t, err)
	_, err = interactions.ToggleLike(ctx, users[1], wishID)
	require.NoError(t, err)
	_, err = interactions.ToggleLike(ctx, users[1], wishID)
	require.NoError(t, err)

	got, err := wishSvc.GetWish(ctx, wishID)
	require.NoError(t, err)
	active, err := store.CountActiveLikes(ctx, wishID)
	require.NoError(t, err)
	assert.Equal(t, active, got.LikesCount)
	assert.Equal(t, int64(2), got.LikesCount)
}

func TestConcurrentDuplicateToggles(t *testing.T) {
	store, wishSvc, interactions := newTestEnv()
	ctx := context.Background()

	wish := createTestWish(t, wishSvc, alice, "Concert tickets", models.CategoryPersonal)
	wishID := wish.ID.Hex()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := interactions.ToggleLike(ctx, bob, wishID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Regardless of interleaving, the counter equals the ledger.
	got, err := wishSvc.GetWish(ctx, wishID)
	require.NoError(t, err)
	active, err := store.CountActiveLikes(ctx, wishID)
	require.NoError(t, err)
	assert.Equal(t, active, got.LikesCount)
	assert.Equal(t, int64(0), got.LikesCount) // even number of toggles
}

func TestToggleFulfillmentPolicy(t *testing.T) {
	_, wishSvc, interactions := newTestEnv()
	ctx := context.Background()

	wish := createTestWish(t, wishSvc, alice, "Fix the roof", models.CategoryHome)
	wishID := wish.ID.Hex()

	// Any signed-in user may grant an open wish.
	fulfilled, err := interactions.ToggleFulfillment(ctx, bob, wishID)
	require.NoError(t, err)
	assert.True(t, fulfilled)

	// Only the author may reopen it.
	_, err = interactions.ToggleFulfillment(ctx, bob, wishID)
	assert.ErrorIs(t, err, errs.ErrForbidden)

	fulfilled, err = interactions.ToggleFulfillment(ctx, alice, wishID)
	require.NoError(t, err)
	assert.False(t, fulfilled)

	_, err = interactions.ToggleFulfillment(ctx, nil, wishID)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestSetFulfilledRoundTrip(t *testing.T) {
	_, wishSvc, interactions := newTestEnv()
	ctx := context.Background()

	wish := createTestWish(t, wishSvc, alice, "New bicycle", models.CategoryPersonal)
	wishID := wish.ID.Hex()

	_, err := interactions.SetFulfilled(ctx, alice, wishID, true)
	require.NoError(t, err)
	_, err = interactions.SetFulfilled(ctx, alice, wishID, false)
	require.NoError(t, err)

	got, err := wishSvc.GetWish(ctx, wishID)
	require.NoError(t, err)
	assert.False(t, got.IsFulfilled)
	assert.Equal(t, wish.Title, got.Title)
	assert.Equal(t, wish.Description, got.Description)
	assert.Equal(t, wish.Category, got.Category)
	assert.Equal(t, wish.CreatedBy, got.CreatedBy)
	assert.Equal(t, wish.LikesCount, got.LikesCount)
	assert.WithinDuration(t, wish.CreatedAt, got.CreatedAt, 0)
}

func TestSetFulfilledIdempotent(t *testing.T) {
	_, wishSvc, interactions := newTestEnv()
	ctx := context.Background()

	wish := createTestWish(t, wishSvc, alice, "Books", models.CategoryEducation)
	wishID := wish.ID.Hex()

	for i := 0; i < 3; i++ {
		fulfilled, err := interactions.SetFulfilled(ctx, bob, wishID, true)
		require.NoError(t, err)
		assert.True(t, fulfilled)
	}

	got, err := wishSvc.GetWish(ctx, wishID)
	require.NoError(t, err)
	assert.True(t, got.IsFulfilled)
}
