package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/svcbase/item-service/internal/commons"
	"github.com/svcbase/item-service/internal/model"
	"github.com/svcbase/item-service/internal/service"
)

type ItemHandler struct {
	itemService service.ItemServiceInterface
}

func NewItemHandler(itemService service.ItemServiceInterface) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
	}
}

func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var payload model.ItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		commons.RespondWithError(w, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}

	item, err := h.itemService.Create(r.Context(), payload)
	if err != nil {
		respondItemError(w, err)
		return
	}

	commons.RespondWithJSON(w, http.StatusCreated, item)
}

func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	item, err := h.itemService.Get(r.Context(), id)
	if err != nil {
		respondItemError(w, err)
		return
	}

	commons.RespondWithJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemService.List(r.Context())
	if err != nil {
		commons.RespondWithError(w, http.StatusInternalServerError, "failed to list items")
		return
	}

	commons.RespondWithJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	var payload model.ItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		commons.RespondWithError(w, http.StatusUnprocessableEntity, "invalid request payload")
		return
	}

	item, err := h.itemService.Update(r.Context(), id, payload)
	if err != nil {
		respondItemError(w, err)
		return
	}

	commons.RespondWithJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	if err := h.itemService.Delete(r.Context(), id); err != nil {
		respondItemError(w, err)
		return
	}

	commons.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Item deleted successfully"})
}

func parseItemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		commons.RespondWithError(w, http.StatusUnprocessableEntity, "item id must be an integer")
		return 0, false
	}
	return id, true
}

func respondItemError(w http.ResponseWriter, err error) {
	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		commons.RespondWithError(w, http.StatusUnprocessableEntity, validationErr.Error())
	case errors.Is(err, model.ErrItemNotFound):
		commons.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		commons.RespondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
