package handler

import (
	"net/http"

	"github.com/osse101/ShopKeeper_Go/internal/shop"
)

// SelectRequest picks the item the shop view acts on
type SelectRequest struct {
	ItemID string `json:"item_id" validate:"required,max=64"`
}

// HandleGetSelection returns the selected item and its details block
func HandleGetSelection(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Selection(r.Context()))
	}
}

// HandleSelect changes the selection
func HandleSelect(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectRequest
		if err := DecodeAndValidateRequest(r, w, &req, "select item"); err != nil {
			return
		}

		view, err := svc.Select(r.Context(), req.ItemID)
		if err != nil {
			respondServiceError(w, r, "select item", err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

// HandleClearSelection deselects
func HandleClearSelection(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.ClearSelection(r.Context()))
	}
}

// HandleBuySelected buys the selected item; 409 when nothing is selected
func HandleBuySelected(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		receipt, err := svc.BuySelected(r.Context())
		if err != nil {
			respondServiceError(w, r, "buy selected", err)
			return
		}
		respondJSON(w, http.StatusOK, receipt)
	}
}
