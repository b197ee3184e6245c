package shop

// ==================== Display Text ====================

// Item labels
const (
	ManagementLabelFmt = "%s - $%s (x%d)"
	ShopLabelSuffixFmt = " - Buy x%.1f"
	DetailsFmt         = "Name: %s\nDescription: %s\nPrice: $%s\nQuantity: %d\nBuy Multiplier: %.1f"
	NoSelectionHint    = "Select an item to see its details."
)

// Purchase receipt titles
const (
	TitlePurchaseSuccessful = "Purchase Successful"
	TitlePartialPurchase    = "Partial Purchase"
	TitleOutOfStock         = "Out of Stock"
)

// Purchase receipt messages
const (
	MsgBoughtFmt     = "Bought %.1f units of '%s'. Remaining: %d"
	MsgPartialFmt    = "Not enough '%s' to buy %.1f. Buying remaining %.1f units."
	MsgOutOfStockFmt = "'%s' is out of stock."
)

// PriceFormat renders prices with two decimals and grouped thousands
const PriceFormat = "%.2f"

// ==================== Log Messages ====================

const (
	LogMsgItemAdded        = "Item added"
	LogMsgItemEdited       = "Item edited"
	LogMsgItemDeleted      = "Item deleted"
	LogMsgItemPurchased    = "Item purchased"
	LogMsgPurchaseRejected = "Purchase rejected: out of stock"
	LogMsgSelectionChanged = "Selection changed"
	LogMsgSelectionCleared = "Selection cleared"
	LogMsgCatalogImported  = "Catalog imported"
	LogMsgCatalogExported  = "Catalog exported"
	LogMsgImportFailed     = "Catalog import failed"
	LogMsgExportFailed     = "Catalog export failed"
	LogMsgPublishFailed    = "Failed to notify observers"
	LogMsgFormRejected     = "Item form rejected"
)
