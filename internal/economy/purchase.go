package economy

import (
	"math"

	"github.com/osse101/ShopKeeper_Go/internal/domain"
)

// Purchase buys one lot of item.BuyMultiplier units and updates item.Quantity
// in place. No other field is touched.
//
// The multiplier is subtracted as a real number and the result is floored
// back to an integer quantity. When less than a full lot is in stock the
// remaining units are bought and the quantity is clamped to zero.
func Purchase(item *domain.Item) domain.PurchaseResult {
	if !CanPurchase(*item) {
		return domain.PurchaseResult{
			Status:    domain.PurchaseOutOfStock,
			Remaining: item.Quantity,
		}
	}

	available := item.Quantity
	remaining := float64(available) - item.BuyMultiplier

	if remaining < 0 {
		item.Quantity = 0
		return domain.PurchaseResult{
			Status:    domain.PurchasePartial,
			Available: available,
			Remaining: 0,
		}
	}

	item.Quantity = int(math.Floor(remaining))
	return domain.PurchaseResult{
		Status:    domain.PurchaseSuccess,
		Bought:    item.BuyMultiplier,
		Remaining: item.Quantity,
	}
}

// CanPurchase reports whether a buy action would change anything
func CanPurchase(item domain.Item) bool {
	return item.Quantity > 0
}
