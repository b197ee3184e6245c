package shop

import "github.com/osse101/ShopKeeper_Go/internal/domain"

// ItemView is an item snapshot together with its display text
type ItemView struct {
	domain.Item
	Label     string `json:"label"`
	ShopLabel string `json:"shop_label"`
	CanBuy    bool   `json:"can_buy"`
}

// Receipt reports the outcome of one buy action
type Receipt struct {
	Item    ItemView              `json:"item"`
	Result  domain.PurchaseResult `json:"result"`
	Title   string                `json:"title"`
	Message string                `json:"message"`
}

// SelectionView describes the shop view's current selection.
// Item is nil and Index is -1 when nothing is selected.
type SelectionView struct {
	Item    *ItemView `json:"item"`
	Index   int       `json:"index"`
	Details string    `json:"details"`
	CanBuy  bool      `json:"can_buy"`
}
