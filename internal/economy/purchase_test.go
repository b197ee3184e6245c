package economy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/ShopKeeper_Go/internal/domain"
)

func TestPurchase_Scenarios(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		multiplier   float64
		wantQuantity int
		wantResult   domain.PurchaseResult
	}{
		{
			name:         "full lot",
			quantity:     5,
			multiplier:   2.0,
			wantQuantity: 3,
			wantResult:   domain.PurchaseResult{Status: domain.PurchaseSuccess, Bought: 2.0, Remaining: 3},
		},
		{
			name:         "partial purchase clamps to zero",
			quantity:     1,
			multiplier:   2.0,
			wantQuantity: 0,
			wantResult:   domain.PurchaseResult{Status: domain.PurchasePartial, Available: 1, Remaining: 0},
		},
		{
			name:         "out of stock is a no-op",
			quantity:     0,
			multiplier:   1.0,
			wantQuantity: 0,
			wantResult:   domain.PurchaseResult{Status: domain.PurchaseOutOfStock, Remaining: 0},
		},
		{
			name:         "fractional multiplier is floored, not rounded",
			quantity:     3,
			multiplier:   0.3,
			wantQuantity: 2,
			wantResult:   domain.PurchaseResult{Status: domain.PurchaseSuccess, Bought: 0.3, Remaining: 2},
		},
		{
			name:         "exact lot empties the stock as a success",
			quantity:     2,
			multiplier:   2.0,
			wantQuantity: 0,
			wantResult:   domain.PurchaseResult{Status: domain.PurchaseSuccess, Bought: 2.0, Remaining: 0},
		},
		{
			name:         "sub-unit multiplier on last unit",
			quantity:     1,
			multiplier:   0.5,
			wantQuantity: 0,
			wantResult:   domain.PurchaseResult{Status: domain.PurchaseSuccess, Bought: 0.5, Remaining: 0},
		},
		{
			name:         "fractional multiplier larger than stock",
			quantity:     2,
			multiplier:   2.5,
			wantQuantity: 0,
			wantResult:   domain.PurchaseResult{Status: domain.PurchasePartial, Available: 2, Remaining: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := domain.Item{
				ID:            "id-1",
				Name:          "Potion",
				Description:   "Heals",
				Price:         10.0,
				Quantity:      tt.quantity,
				BuyMultiplier: tt.multiplier,
			}

			result := Purchase(&item)

			assert.Equal(t, tt.wantResult, result)
			assert.Equal(t, tt.wantQuantity, item.Quantity)
		})
	}
}

func TestPurchase_OnlyTouchesQuantity(t *testing.T) {
	item := domain.Item{ID: "id-1", Name: "Potion", Description: "Heals", Price: 10.0, Quantity: 5, BuyMultiplier: 2.0}
	before := item

	Purchase(&item)

	assert.Equal(t, before.ID, item.ID)
	assert.Equal(t, before.Name, item.Name)
	assert.Equal(t, before.Description, item.Description)
	assert.Equal(t, before.Price, item.Price)
	assert.Equal(t, before.BuyMultiplier, item.BuyMultiplier)
}

func TestPurchase_Properties(t *testing.T) {
	multipliers := []float64{0.1, 0.5, 1.0, 1.5, 2.0, 3.7, 10.0, 999.0}

	for q := 0; q <= 50; q++ {
		for _, m := range multipliers {
			item := domain.Item{Name: "x", Quantity: q, BuyMultiplier: m}
			result := Purchase(&item)

			switch {
			case q == 0:
				assert.Equal(t, domain.PurchaseOutOfStock, result.Status, "q=%d m=%v", q, m)
				assert.Equal(t, 0, item.Quantity)
			case float64(q)-m < 0:
				assert.Equal(t, domain.PurchasePartial, result.Status, "q=%d m=%v", q, m)
				assert.Equal(t, q, result.Available)
				assert.Equal(t, 0, item.Quantity)
			default:
				assert.Equal(t, domain.PurchaseSuccess, result.Status, "q=%d m=%v", q, m)
				assert.Equal(t, int(math.Floor(float64(q)-m)), item.Quantity)
				assert.Equal(t, item.Quantity, result.Remaining)
				assert.Equal(t, m, result.Bought)
			}
			assert.GreaterOrEqual(t, item.Quantity, 0)
		}
	}
}

func TestCanPurchase(t *testing.T) {
	assert.True(t, CanPurchase(domain.Item{Quantity: 1}))
	assert.False(t, CanPurchase(domain.Item{Quantity: 0}))
	assert.False(t, CanPurchase(domain.Item{Quantity: -1}))
}
