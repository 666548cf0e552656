package handlers

import (
	"errors"
	"net/http"

	"github.com/Aruzhan018/Wish_Board/internal/errs"
	"github.com/Aruzhan018/Wish_Board/internal/models"
	"github.com/Aruzhan018/Wish_Board/pkg/middleware"
	log "github.com/sirupsen/logrus"
)

// writeError maps the service error taxonomy onto HTTP status codes. The
// error message is passed through; services keep them one-line and
// human-readable.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, errs.ErrInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrUnavailable):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError || status == http.StatusServiceUnavailable {
		log.WithError(err).Error("Request failed")
	}
	http.Error(w, err.Error(), status)
}

// identityFromRequest resolves the caller's identity from the auth claims,
// or nil for unauthenticated requests. Services receive it explicitly.
func identityFromRequest(r *http.Request) *models.Identity {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		return nil
	}
	return &models.Identity{
		UID:  claims.UserID,
		Name: claims.Name,
	}
}
