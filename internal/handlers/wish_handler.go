package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Aruzhan018/Wish_Board/internal/models"
	"github.com/Aruzhan018/Wish_Board/internal/services"
	"github.com/gorilla/mux"
)

type WishHandler struct {
	Service      *services.WishService
	Interactions *services.InteractionService
}

func NewWishHandler(service *services.WishService, interactions *services.InteractionService) *WishHandler {
	return &WishHandler{
		Service:      service,
		Interactions: interactions,
	}
}

// CreateWishHandler handles creation of a new wish.
func (h *WishHandler) CreateWishHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Title       string          `json:"title"`
		Description string          `json:"description"`
		Category    models.Category `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	wish, err := h.Service.CreateWish(r.Context(), identityFromRequest(r), payload.Title, payload.Description, payload.Category)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(wish)
}

// ListWishesHandler returns the catalog, filtered by status, category and
// free-text search over titles.
func (h *WishHandler) ListWishesHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.WishFilter{
		Status:      models.WishStatus(query.Get("status")),
		Category:    query.Get("category"),
		SearchQuery: query.Get("search"),
	}

	wishes, err := h.Service.ListWishes(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if wishes == nil {
		wishes = []models.Wish{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(wishes)
}

// GetWishHandler retrieves a specific wish by ID.
func (h *WishHandler) GetWishHandler(w http.ResponseWriter, r *http.Request) {
	wish, err := h.Service.GetWish(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(wish)
}

// ToggleLikeHandler flips the caller's like on a wish.
func (h *WishHandler) ToggleLikeHandler(w http.ResponseWriter, r *http.Request) {
	wishID := mux.Vars(r)["id"]

	liked, err := h.Interactions.ToggleLike(r.Context(), identityFromRequest(r), wishID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"wish_id": wishID,
		"liked":   liked,
	})
}

// FulfillmentHandler updates a wish's fulfillment state. Without a body the
// flag is toggled; with {"is_fulfilled": <bool>} it is set explicitly (and
// idempotently).
func (h *WishHandler) FulfillmentHandler(w http.ResponseWriter, r *http.Request) {
	wishID := mux.Vars(r)["id"]
	identity := identityFromRequest(r)

	var payload struct {
		IsFulfilled *bool `json:"is_fulfilled"`
	}
	if r.Body != nil {
		// An empty body means toggle; a malformed one is still an error.
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()
	}

	var fulfilled bool
	var err error
	if payload.IsFulfilled != nil {
		fulfilled, err = h.Interactions.SetFulfilled(r.Context(), identity, wishID, *payload.IsFulfilled)
	} else {
		fulfilled, err = h.Interactions.ToggleFulfillment(r.Context(), identity, wishID)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"wish_id":      wishID,
		"is_fulfilled": fulfilled,
	})
}
