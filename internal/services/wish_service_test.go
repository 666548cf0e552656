package services_test

import (
	"context"
	"testing"

	"github.com/Aruzhan018/Wish_Board/internal/errs"
	"github.com/Aruzhan018/Wish_Board/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWishDefaults(t *testing.T) {
	_, wishSvc, _ := newTestEnv()
	ctx := context.Background()

	wish, err := wishSvc.CreateWish(ctx, alice, "Laptop for school", "Need a laptop for classes", models.CategoryEducation)
	require.NoError(t, err)

	assert.False(t, wish.ID.IsZero())
	assert.False(t, wish.IsFulfilled)
	assert.Equal(t, int64(0), wish.LikesCount)
	assert.Equal(t, alice.UID, wish.CreatedBy.UID)
	assert.Equal(t, "Alice A", wish.CreatedBy.Name)
	assert.False(t, wish.CreatedAt.IsZero())
}

func TestCreateWishAnonymousAuthor(t *testing.T) {
	_, wishSvc, _ := newTestEnv()

	nameless := &models.Identity{UID: "user-nameless"}
	wish, err := wishSvc.CreateWish(context.Background(), nameless, "A quiet wish", "no name given", models.CategoryOther)
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", wish.CreatedBy.Name)
}

func TestCreateWishValidation(t *testing.T) {
	_, wishSvc, _ := newTestEnv()
	ctx := context.Background()

	_, err := wishSvc.CreateWish(ctx, nil, "title", "desc", models.CategoryHealth)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)

	_, err = wishSvc.CreateWish(ctx, alice, "", "desc", models.CategoryHealth)
	assert.ErrorIs(t, err, errs.ErrInvalid)

	_, err = wishSvc.CreateWish(ctx, alice, "   ", "desc", models.CategoryHealth)
	assert.ErrorIs(t, err, errs.ErrInvalid)

	_, err = wishSvc.CreateWish(ctx, alice, "title", "", models.CategoryHealth)
	assert.ErrorIs(t, err, errs.ErrInvalid)

	_, err = wishSvc.CreateWish(ctx, alice, "title", "desc", models.Category("Gadgets"))
	assert.ErrorIs(t, err, errs.ErrInvalid)

	// Nothing was persisted by the failed attempts.
	wishes, err := wishSvc.ListWishes(ctx, models.WishFilter{})
	require.NoError(t, err)
	assert.Empty(t, wishes)
}

func TestListWishesStatusFilter(t *testing.T) {
	_, wishSvc, interactions := newTestEnv()
	ctx := context.Background()

	first := createTestWish(t, wishSvc, alice, "First wish", models.CategoryFamily)
	second := createTestWish(t, wishSvc, alice, "Second wish", models.CategoryCareer)
	third := createTestWish(t, wishSvc, bob, "Third wish", models.CategoryTravel)

	_, err := interactions.SetFulfilled(ctx, bob, second.ID.Hex(), true)
	require.NoError(t, err)

	open, err := wishSvc.ListWishes(ctx, models.WishFilter{Status: models.StatusOpen})
	require.NoError(t, err)
	require.Len(t, open, 2)
	// Newest first.
	assert.Equal(t, third.ID, open[0].ID)
	assert.Equal(t, first.ID, open[1].ID)
	for _, w := range open {
		assert.False(t, w.IsFulfilled)
	}

	fulfilled, err := wishSvc.ListWishes(ctx, models.WishFilter{Status: models.StatusFulfilled})
	require.NoError(t, err)
	require.Len(t, fulfilled, 1)
	assert.Equal(t, second.ID, fulfilled[0].ID)

	all, err := wishSvc.ListWishes(ctx, models.WishFilter{Status: models.StatusAll})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListWishesCategoryAndSearch(t *testing.T) {
	_, wishSvc, _ := newTestEnv()
	ctx := context.Background()

	createTestWish(t, wishSvc, alice, "Help with surgery costs", models.CategoryHealth)
	createTestWish(t, wishSvc, alice, "Wheelchair ramp", models.CategoryHealth)
	createTestWish(t, wishSvc, bob, "Surgery textbook", models.CategoryEducation)

	got, err := wishSvc.ListWishes(ctx, models.WishFilter{Category: "Health", SearchQuery: "SURGERY"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Help with surgery costs", got[0].Title)
	assert.Equal(t, models.CategoryHealth, got[0].Category)
}

func TestListWishesCategoryAllSentinel(t *testing.T) {
	_, wishSvc, _ := newTestEnv()
	ctx := context.Background()

	createTestWish(t, wishSvc, alice, "One", models.CategoryHealth)
	createTestWish(t, wishSvc, alice, "Two", models.CategoryTravel)

	got, err := wishSvc.ListWishes(ctx, models.WishFilter{Category: models.CategoryAll})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListWishesInvalidFilter(t *testing.T) {
	_, wishSvc, _ := newTestEnv()
	ctx := context.Background()

	_, err := wishSvc.ListWishes(ctx, models.WishFilter{Status: "liked"})
	assert.ErrorIs(t, err, errs.ErrInvalid)

	_, err = wishSvc.ListWishes(ctx, models.WishFilter{Category: "Gadgets"})
	assert.ErrorIs(t, err, errs.ErrInvalid)
}

func TestGetWishValidation(t *testing.T) {
	_, wishSvc, _ := newTestEnv()
	ctx := context.Background()

	_, err := wishSvc.GetWish(ctx, "")
	assert.ErrorIs(t, err, errs.ErrInvalid)

	_, err = wishSvc.GetWish(ctx, "64f000000000000000000000")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
