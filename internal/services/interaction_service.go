package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Aruzhan018/Wish_Board/internal/errs"
	"github.com/Aruzhan018/Wish_Board/internal/models"
	"github.com/sirupsen/logrus"
)

// InteractionService coordinates like toggles and fulfillment toggles,
// keeping the wish counters consistent with the like ledger.
type InteractionService struct {
	wishes WishStore
	likes  LikeStore
	tx     TxRunner
}

// NewInteractionService creates a new instance of InteractionService.
func NewInteractionService(wishes WishStore, likes LikeStore, tx TxRunner) *InteractionService {
	return &InteractionService{
		wishes: wishes,
		likes:  likes,
		tx:     tx,
	}
}

// ToggleLike flips the caller's like on a wish and returns the new state:
// true when the wish is now liked, false when the like was retracted.
//
// The ledger lookup, the ledger flip, and the counter adjustment run inside
// one transaction; the flip itself is additionally conditional on the
// record's prior state, so two duplicate toggles racing each other cannot
// move the counter twice.
func (s *InteractionService) ToggleLike(ctx context.Context, identity *models.Identity, wishID string) (bool, error) {
	if identity == nil {
		return false, fmt.Errorf("%w: liking requires a signed-in user", errs.ErrUnauthenticated)
	}
	if wishID == "" {
		return false, fmt.Errorf("%w: missing wish ID", errs.ErrInvalid)
	}

	var liked bool
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.wishes.GetWishByID(ctx, wishID); err != nil {
			return err
		}

		like, err := s.likes.GetLike(ctx, identity.UID, wishID)
		if err != nil && !errors.Is(err, errs.ErrNotFound) {
			return err
		}

		if like == nil || !like.Active {
			changed, err := s.likes.Activate(ctx, identity.UID, wishID)
			if err != nil {
				return err
			}
			if changed {
				if err := s.wishes.AdjustLikeCount(ctx, wishID, 1); err != nil {
					return err
				}
			}
			liked = true
			return nil
		}

		changed, err := s.likes.Deactivate(ctx, identity.UID, wishID)
		if err != nil {
			return err
		}
		if changed {
			if err := s.wishes.AdjustLikeCount(ctx, wishID, -1); err != nil {
				return err
			}
		}
		liked = false
		return nil
	})
	if err != nil {
		return false, err
	}

	logrus.WithFields(logrus.Fields{
		"wishID": wishID,
		"userID": identity.UID,
		"liked":  liked,
	}).Info("Like toggled")
	return liked, nil
}

// ToggleFulfillment flips a wish's fulfillment flag and returns the new
// value. Any signed-in user may mark an open wish fulfilled (granting it);
// only the author may revert a fulfilled wish back to open.
func (s *InteractionService) ToggleFulfillment(ctx context.Context, identity *models.Identity, wishID string) (bool, error) {
	if identity == nil {
		return false, fmt.Errorf("%w: fulfilling requires a signed-in user", errs.ErrUnauthenticated)
	}
	if wishID == "" {
		return false, fmt.Errorf("%w: missing wish ID", errs.ErrInvalid)
	}

	wish, err := s.wishes.GetWishByID(ctx, wishID)
	if err != nil {
		return false, err
	}

	if wish.IsFulfilled && wish.CreatedBy.UID != identity.UID {
		return false, fmt.Errorf("%w: only the author can reopen a fulfilled wish", errs.ErrForbidden)
	}

	newState := !wish.IsFulfilled
	if err := s.wishes.SetFulfilled(ctx, wishID, newState); err != nil {
		return false, err
	}

	logrus.WithFields(logrus.Fields{
		"wishID":    wishID,
		"userID":    identity.UID,
		"fulfilled": newState,
	}).Info("Fulfillment toggled")
	return newState, nil
}

// SetFulfilled writes an explicit fulfillment value under the same policy
// as ToggleFulfillment. The write is idempotent.
func (s *InteractionService) SetFulfilled(ctx context.Context, identity *models.Identity, wishID string, value bool) (bool, error) {
	if identity == nil {
		return false, fmt.Errorf("%w: fulfilling requires a signed-in user", errs.ErrUnauthenticated)
	}
	if wishID == "" {
		return false, fmt.Errorf("%w: missing wish ID", errs.ErrInvalid)
	}

	wish, err := s.wishes.GetWishByID(ctx, wishID)
	if err != nil {
		return false, err
	}

	// Clearing the flag reopens the wish, which only the author may do.
	if !value && wish.IsFulfilled && wish.CreatedBy.UID != identity.UID {
		return false, fmt.Errorf("%w: only the author can reopen a fulfilled wish", errs.ErrForbidden)
	}

	if err := s.wishes.SetFulfilled(ctx, wishID, value); err != nil {
		return false, err
	}
	return value, nil
}
