package handler

// Generic HTTP error messages for client responses.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// Request errors
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPathParam      = "Missing %s path parameter"

	// Service errors
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgItemNotFound       = "Item not found"
	ErrMsgNoSelection        = "Please select an item to buy."
	ErrMsgInvalidForm        = "Invalid item"
	ErrMsgInvalidJSON        = "Invalid JSON file format."
	ErrMsgDataFormat         = "Data format error"
	ErrMsgFileFailed         = "File operation failed"
)

// Success messages
const (
	MsgItemDeleted      = "Item deleted"
	MsgSelectionCleared = "Selection cleared"
	MsgCatalogExported  = "Catalog exported"
)

// Log messages
const (
	LogMsgDecodeFailed   = "Failed to decode request"
	LogMsgRequestFailed  = "Request failed"
	LogMsgReadBodyFailed = "Failed to read request body"
)

// Export download settings
const (
	ExportFileName        = "shop_items.json"
	HeaderContentType     = "Content-Type"
	HeaderContentDisp     = "Content-Disposition"
	ContentTypeJSON       = "application/json"
	ContentDispositionFmt = "attachment; filename=%q"
	PathParamItemID       = "id"
)
