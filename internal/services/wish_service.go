package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Aruzhan018/Wish_Board/internal/errs"
	"github.com/Aruzhan018/Wish_Board/internal/models"
	"github.com/sirupsen/logrus"
)

// WishService encapsulates the business logic for creating and browsing
// wishes.
type WishService struct {
	repo WishStore
}

// NewWishService creates a new instance of WishService.
func NewWishService(repo WishStore) *WishService {
	return &WishService{repo: repo}
}

// CreateWish validates and persists a new wish authored by the caller. The
// author's identity is snapshotted onto the wish at creation time.
func (s *WishService) CreateWish(ctx context.Context, identity *models.Identity, title, description string, category models.Category) (*models.Wish, error) {
	if identity == nil {
		return nil, fmt.Errorf("%w: wish creation requires a signed-in user", errs.ErrUnauthenticated)
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: wish must have a title", errs.ErrInvalid)
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: wish must have a description", errs.ErrInvalid)
	}
	if !models.IsValidCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", errs.ErrInvalid, category)
	}

	wish := &models.Wish{
		Title:       title,
		Description: description,
		Category:    category,
		CreatedBy: models.Author{
			UID:  identity.UID,
			Name: identity.AuthorName(),
		},
		IsFulfilled: false,
		LikesCount:  0,
	}

	created, err := s.repo.CreateWish(ctx, wish)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"wishID":   created.ID.Hex(),
		"category": created.Category,
		"author":   identity.UID,
	}).Info("Wish created")
	return created, nil
}

// GetWish fetches a single wish by ID.
func (s *WishService) GetWish(ctx context.Context, id string) (*models.Wish, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: missing wish ID", errs.ErrInvalid)
	}
	return s.repo.GetWishByID(ctx, id)
}

// ListWishes runs a catalog query. Status and category are pushed down to
// the store together with the created-at descending sort; the search query
// is then applied here as a case-insensitive substring match on the title.
// The store has no text search, so matching stays title-only and substring
// only.
func (s *WishService) ListWishes(ctx context.Context, filter models.WishFilter) ([]models.Wish, error) {
	switch filter.Status {
	case "", models.StatusAll, models.StatusOpen, models.StatusFulfilled:
	default:
		return nil, fmt.Errorf("%w: unknown status filter %q", errs.ErrInvalid, filter.Status)
	}
	if filter.Category != "" && filter.Category != models.CategoryAll && !models.IsValidCategory(models.Category(filter.Category)) {
		return nil, fmt.Errorf("%w: unknown category %q", errs.ErrInvalid, filter.Category)
	}

	wishes, err := s.repo.ListWishes(ctx, filter)
	if err != nil {
		return nil, err
	}

	if query := strings.TrimSpace(filter.SearchQuery); query != "" {
		needle := strings.ToLower(query)
		matched := wishes[:0]
		for _, wish := range wishes {
			if strings.Contains(strings.ToLower(wish.Title), needle) {
				matched = append(matched, wish)
			}
		}
		wishes = matched
	}

	return wishes, nil
}
