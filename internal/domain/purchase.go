package domain

// PurchaseStatus is the outcome of a single buy action
type PurchaseStatus string

const (
	PurchaseSuccess    PurchaseStatus = "success"
	PurchasePartial    PurchaseStatus = "partial"
	PurchaseOutOfStock PurchaseStatus = "out_of_stock"
)

// PurchaseResult describes what a buy action did to an item.
//
//   - success: Bought is the multiplier consumed, Remaining the new quantity
//   - partial: Available is the stock that was left before the purchase;
//     the item is now empty
//   - out_of_stock: nothing changed
type PurchaseResult struct {
	Status    PurchaseStatus `json:"status"`
	Bought    float64        `json:"bought,omitempty"`
	Available int            `json:"available,omitempty"`
	Remaining int            `json:"remaining"`
}

// Succeeded is true when the full multiplier was bought
func (r PurchaseResult) Succeeded() bool {
	return r.Status == PurchaseSuccess
}
