package domain

// Event type constants used for bus subscriptions and the SSE stream.
//
// Event types follow the pattern: <entity>.<action>
const (
	// EventTypeListChanged is published after any catalog mutation
	EventTypeListChanged = "catalog.list_changed"

	// EventTypeSelectionChanged is published when the selected item changes or disappears
	EventTypeSelectionChanged = "catalog.selection_changed"

	// EventTypeItemPurchased is published after every buy action, including
	// partial and out-of-stock outcomes
	EventTypeItemPurchased = "shop.item_purchased"
)

// List change reasons
const (
	ChangeReasonAdded     = "added"
	ChangeReasonEdited    = "edited"
	ChangeReasonDeleted   = "deleted"
	ChangeReasonPurchased = "purchased"
	ChangeReasonImported  = "imported"
)

// ListChangedPayload is the payload for EventTypeListChanged
type ListChangedPayload struct {
	Reason string `json:"reason"`
	ItemID string `json:"item_id,omitempty"`
	Count  int    `json:"count"`
}

// SelectionChangedPayload is the payload for EventTypeSelectionChanged.
// ItemID is empty when the selection was cleared.
type SelectionChangedPayload struct {
	ItemID string `json:"item_id,omitempty"`
	CanBuy bool   `json:"can_buy"`
}

// ItemPurchasedPayload is the payload for EventTypeItemPurchased
type ItemPurchasedPayload struct {
	ItemID   string         `json:"item_id"`
	ItemName string         `json:"item_name"`
	Result   PurchaseResult `json:"result"`
}
