package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/osse101/ShopKeeper_Go/internal/logger"
	"github.com/osse101/ShopKeeper_Go/internal/shop"
)

// FileRequest names a catalog file, relative to the catalog directory
type FileRequest struct {
	Path string `json:"path" validate:"required,max=4096"`
}

// HandleImport replaces the catalog with the JSON item array in the body.
// The catalog is untouched unless the whole body is accepted.
func HandleImport(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgReadBodyFailed, "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		items, err := svc.Import(r.Context(), data)
		if err != nil {
			respondServiceError(w, r, "import catalog", err)
			return
		}
		respondJSON(w, http.StatusOK, newItemsResponse(items))
	}
}

// HandleImportFile replaces the catalog with the contents of a server-side file
func HandleImportFile(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "import file"); err != nil {
			return
		}

		items, err := svc.ImportFile(r.Context(), req.Path)
		if err != nil {
			respondServiceError(w, r, "import file", err)
			return
		}
		respondJSON(w, http.StatusOK, newItemsResponse(items))
	}
}

// HandleExport downloads the catalog in the item file format
func HandleExport(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := svc.Export(r.Context())
		if err != nil {
			respondServiceError(w, r, "export catalog", err)
			return
		}

		w.Header().Set(HeaderContentType, ContentTypeJSON)
		w.Header().Set(HeaderContentDisp, fmt.Sprintf(ContentDispositionFmt, ExportFileName))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			logger.FromContext(r.Context()).Warn("Failed to write export", "error", err)
		}
	}
}

// HandleExportFile writes the catalog to a server-side file
func HandleExportFile(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "export file"); err != nil {
			return
		}

		if err := svc.ExportFile(r.Context(), req.Path); err != nil {
			respondServiceError(w, r, "export file", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCatalogExported})
	}
}
