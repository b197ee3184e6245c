package domain

// Item is a single shop entry. ID is assigned by the catalog and is never
// written to the exported file.
type Item struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	BuyMultiplier float64 `json:"buy_multiplier"`
}

// Defaults applied to fields missing from an imported record
const (
	DefaultItemName      = "Unknown Item"
	DefaultDescription   = ""
	DefaultPrice         = 0.0
	DefaultQuantity      = 0
	DefaultBuyMultiplier = 1.0
)

// NewItem builds an item with the import defaults applied to every field
// except the name.
func NewItem(name string) Item {
	return Item{
		Name:          name,
		Description:   DefaultDescription,
		Price:         DefaultPrice,
		Quantity:      DefaultQuantity,
		BuyMultiplier: DefaultBuyMultiplier,
	}
}

// InStock reports whether at least one unit is available
func (i Item) InStock() bool {
	return i.Quantity > 0
}

// SameFields compares everything except the ID
func (i Item) SameFields(other Item) bool {
	return i.Name == other.Name &&
		i.Description == other.Description &&
		i.Price == other.Price &&
		i.Quantity == other.Quantity &&
		i.BuyMultiplier == other.BuyMultiplier
}
