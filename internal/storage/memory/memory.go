package memory

// Package memory provides an in-memory implementation of the stores used by
// the services, for development and tests. Toggle transactions are
// serialized under a dedicated mutex so the ledger/counter invariant holds
// under concurrent duplicate toggles, matching the guarantee the MongoDB
// transaction gives in production.

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Aruzhan018/Wish_Board/internal/errs"
	"github.com/Aruzhan018/Wish_Board/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is an in-memory implementation of the wish, like, and user stores.
// It is guarded by an RWMutex for concurrent reads/writes.
type Store struct {
	mu    sync.RWMutex
	txMu  sync.Mutex
	order []string // wish ids in insertion order; newest-first scans walk it backwards

	wishes       map[string]*models.Wish
	likes        map[string]*models.Like
	users        map[string]*models.User
	usersByEmail map[string]string
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{
		wishes:       make(map[string]*models.Wish),
		likes:        make(map[string]*models.Like),
		users:        make(map[string]*models.User),
		usersByEmail: make(map[string]string),
	}
}

// WithTransaction serializes fn against all other transactions.
func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(ctx)
}

// CreateWish implements services.WishStore.
func (s *Store) CreateWish(_ context.Context, wish *models.Wish) (*models.Wish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wish.ID = primitive.NewObjectID()
	wish.CreatedAt = time.Now()

	stored := *wish
	id := wish.ID.Hex()
	s.wishes[id] = &stored
	s.order = append(s.order, id)
	return wish, nil
}

// GetWishByID implements services.WishStore.
func (s *Store) GetWishByID(_ context.Context, id string) (*models.Wish, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wish, ok := s.wishes[id]
	if !ok {
		return nil, fmt.Errorf("%w: wish %s", errs.ErrNotFound, id)
	}
	out := *wish
	return &out, nil
}

// ListWishes implements services.WishStore. Wishes are returned newest
// first, with status and category applied as store-side predicates.
func (s *Store) ListWishes(_ context.Context, filter models.WishFilter) ([]models.Wish, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var wishes []models.Wish
	for i := len(s.order) - 1; i >= 0; i-- {
		wish := s.wishes[s.order[i]]
		switch filter.Status {
		case models.StatusOpen:
			if wish.IsFulfilled {
				continue
			}
		case models.StatusFulfilled:
			if !wish.IsFulfilled {
				continue
			}
		}
		if filter.Category != "" && filter.Category != models.CategoryAll && string(wish.Category) != filter.Category {
			continue
		}
		wishes = append(wishes, *wish)
	}
	return wishes, nil
}

// SetFulfilled implements services.WishStore.
func (s *Store) SetFulfilled(_ context.Context, id string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	wish, ok := s.wishes[id]
	if !ok {
		return fmt.Errorf("%w: wish %s", errs.ErrNotFound, id)
	}
	wish.IsFulfilled = value
	return nil
}

// AdjustLikeCount implements services.WishStore.
func (s *Store) AdjustLikeCount(_ context.Context, id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	wish, ok := s.wishes[id]
	if !ok {
		return fmt.Errorf("%w: wish %s", errs.ErrNotFound, id)
	}
	wish.LikesCount += int64(delta)
	return nil
}

// GetLike implements services.LikeStore.
func (s *Store) GetLike(_ context.Context, userID, wishID string) (*models.Like, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	like, ok := s.likes[models.LikeKey(userID, wishID)]
	if !ok {
		return nil, fmt.Errorf("%w: like %s", errs.ErrNotFound, models.LikeKey(userID, wishID))
	}
	out := *like
	return &out, nil
}

// Activate implements services.LikeStore.
func (s *Store) Activate(_ context.Context, userID, wishID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := models.LikeKey(userID, wishID)
	now := time.Now()
	if like, ok := s.likes[key]; ok {
		if like.Active {
			return false, nil
		}
		like.Active = true
		like.UpdatedAt = now
		return true, nil
	}
	s.likes[key] = &models.Like{
		ID:        key,
		UserID:    userID,
		WishID:    wishID,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return true, nil
}

// Deactivate implements services.LikeStore. The record is kept; only the
// active flag flips.
func (s *Store) Deactivate(_ context.Context, userID, wishID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	like, ok := s.likes[models.LikeKey(userID, wishID)]
	if !ok || !like.Active {
		return false, nil
	}
	like.Active = false
	like.UpdatedAt = time.Now()
	return true, nil
}

// CountActiveLikes counts the active like records for a wish.
func (s *Store) CountActiveLikes(_ context.Context, wishID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, like := range s.likes {
		if like.WishID == wishID && like.Active {
			count++
		}
	}
	return count, nil
}

// CreateUser implements services.UserStore.
func (s *Store) CreateUser(_ context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	stored := *user
	s.users[user.ID.Hex()] = &stored
	s.usersByEmail[user.Email] = user.ID.Hex()
	return user, nil
}

// GetUserByID implements services.UserStore.
func (s *Store) GetUserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", errs.ErrNotFound, id)
	}
	out := *user
	return &out, nil
}

// GetUserByEmail implements services.UserStore.
func (s *Store) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usersByEmail[email]
	if !ok {
		return nil, fmt.Errorf("%w: user with email %s", errs.ErrNotFound, email)
	}
	out := *s.users[id]
	return &out, nil
}
