package handler

import (
	"net/http"

	"github.com/osse101/ShopKeeper_Go/internal/logger"
	"github.com/osse101/ShopKeeper_Go/internal/shop"
	"github.com/osse101/ShopKeeper_Go/internal/validation"
)

// HandleListItems returns the catalog in insertion order with display labels
func HandleListItems(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, newItemsResponse(svc.ListItems(r.Context())))
	}
}

// HandleGetItem returns one item by ID
func HandleGetItem(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, PathParamItemID)
		if !ok {
			return
		}

		view, err := svc.GetItem(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "get item", err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

// HandleGetItemForm returns the item's current values as an edit form, ready
// to be changed and sent back with PUT
func HandleGetItemForm(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, PathParamItemID)
		if !ok {
			return
		}

		view, err := svc.GetItem(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "get item form", err)
			return
		}
		respondJSON(w, http.StatusOK, validation.FormFromItem(view.Item))
	}
}

// HandleCreateItem adds an item from a form body. A missing buy_multiplier
// defaults to 1.0.
func HandleCreateItem(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form validation.ItemForm
		if err := decodeJSON(r, w, &form, "create item"); err != nil {
			return
		}

		view, err := svc.AddItem(r.Context(), form)
		if err != nil {
			respondServiceError(w, r, "create item", err)
			return
		}

		logger.FromContext(r.Context()).Debug("Item created", "item_id", view.ID)
		respondJSON(w, http.StatusCreated, view)
	}
}

// HandleUpdateItem replaces every field of an item, keeping its ID and position
func HandleUpdateItem(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, PathParamItemID)
		if !ok {
			return
		}

		var form validation.ItemForm
		if err := decodeJSON(r, w, &form, "update item"); err != nil {
			return
		}

		view, err := svc.EditItem(r.Context(), id, form)
		if err != nil {
			respondServiceError(w, r, "update item", err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

// HandleDeleteItem removes an item
func HandleDeleteItem(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, PathParamItemID)
		if !ok {
			return
		}

		if err := svc.DeleteItem(r.Context(), id); err != nil {
			respondServiceError(w, r, "delete item", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemDeleted})
	}
}

// HandleBuyItem performs one buy action on an item. Out-of-stock is a
// normal outcome reported in the receipt, not an error.
func HandleBuyItem(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, PathParamItemID)
		if !ok {
			return
		}

		receipt, err := svc.BuyItem(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "buy item", err)
			return
		}
		respondJSON(w, http.StatusOK, receipt)
	}
}
