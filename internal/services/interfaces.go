package services

import (
	"context"

	"github.com/Aruzhan018/Wish_Board/internal/models"
)

// WishStore is the persistence boundary for wishes. Implemented by the
// MongoDB repository and by the in-memory store used in tests.
type WishStore interface {
	CreateWish(ctx context.Context, wish *models.Wish) (*models.Wish, error)
	GetWishByID(ctx context.Context, id string) (*models.Wish, error)
	ListWishes(ctx context.Context, filter models.WishFilter) ([]models.Wish, error)
	SetFulfilled(ctx context.Context, id string, value bool) error
	AdjustLikeCount(ctx context.Context, id string, delta int) error
}

// LikeStore is the persistence boundary for the like ledger. Activate and
// Deactivate are conditional writes keyed on the record's prior state and
// report whether they changed anything.
type LikeStore interface {
	GetLike(ctx context.Context, userID, wishID string) (*models.Like, error)
	Activate(ctx context.Context, userID, wishID string) (bool, error)
	Deactivate(ctx context.Context, userID, wishID string) (bool, error)
}

// UserStore is the persistence boundary for user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// TxRunner executes fn atomically with respect to other transactions, so a
// ledger flip and its counter adjustment commit or abort together.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
