package shop

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/ShopKeeper_Go/internal/domain"
	"github.com/osse101/ShopKeeper_Go/internal/economy"
)

var printer = message.NewPrinter(language.English)

// FormatPrice renders a price as shown in lists and details, e.g. 1,234.50
func FormatPrice(price float64) string {
	return printer.Sprintf(PriceFormat, price)
}

// ManagementLabel is the one-line entry used by the management list
func ManagementLabel(item domain.Item) string {
	return fmt.Sprintf(ManagementLabelFmt, item.Name, FormatPrice(item.Price), item.Quantity)
}

// ShopLabel is the management label plus the units one buy action takes
func ShopLabel(item domain.Item) string {
	return ManagementLabel(item) + fmt.Sprintf(ShopLabelSuffixFmt, item.BuyMultiplier)
}

// Details is the multi-line block shown for the selected item
func Details(item domain.Item) string {
	return fmt.Sprintf(DetailsFmt,
		item.Name,
		item.Description,
		FormatPrice(item.Price),
		item.Quantity,
		item.BuyMultiplier,
	)
}

// PurchaseNotice returns the title and message for a purchase outcome.
// before is the item as it was when the buy was requested.
func PurchaseNotice(before domain.Item, result domain.PurchaseResult) (string, string) {
	switch result.Status {
	case domain.PurchaseSuccess:
		return TitlePurchaseSuccessful, fmt.Sprintf(MsgBoughtFmt, result.Bought, before.Name, result.Remaining)
	case domain.PurchasePartial:
		return TitlePartialPurchase, fmt.Sprintf(MsgPartialFmt, before.Name, before.BuyMultiplier, float64(result.Available))
	default:
		return TitleOutOfStock, fmt.Sprintf(MsgOutOfStockFmt, before.Name)
	}
}

func newItemView(item domain.Item) ItemView {
	return ItemView{
		Item:      item,
		Label:     ManagementLabel(item),
		ShopLabel: ShopLabel(item),
		CanBuy:    economy.CanPurchase(item),
	}
}

func newItemViews(items []domain.Item) []ItemView {
	views := make([]ItemView, 0, len(items))
	for _, it := range items {
		views = append(views, newItemView(it))
	}
	return views
}
