package validation

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ShopKeeper_Go/internal/domain"
)

func ptr(f float64) *float64 { return &f }

func TestToItem_Valid(t *testing.T) {
	form := ItemForm{
		Name:          "  Potion ",
		Description:   " Heals ",
		Price:         10.004,
		Quantity:      5,
		BuyMultiplier: ptr(2.04),
	}

	item, err := form.ToItem()
	require.NoError(t, err)

	assert.Equal(t, domain.Item{
		Name:          "Potion",
		Description:   "Heals",
		Price:         10.0,
		Quantity:      5,
		BuyMultiplier: 2.0,
	}, item)
}

func TestToItem_DefaultMultiplier(t *testing.T) {
	item, err := ItemForm{Name: "Sword"}.ToItem()
	require.NoError(t, err)
	assert.Equal(t, 1.0, item.BuyMultiplier)
	assert.Empty(t, item.ID)
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		form      ItemForm
		wantField string
	}{
		{"empty name", ItemForm{Name: ""}, "name"},
		{"whitespace name", ItemForm{Name: "   "}, "name"},
		{"negative price", ItemForm{Name: "A", Price: -0.01}, "price"},
		{"price too large", ItemForm{Name: "A", Price: 1000000}, "price"},
		{"negative quantity", ItemForm{Name: "A", Quantity: -1}, "quantity"},
		{"quantity too large", ItemForm{Name: "A", Quantity: 100000}, "quantity"},
		{"zero multiplier", ItemForm{Name: "A", BuyMultiplier: ptr(0)}, "buy_multiplier"},
		{"negative multiplier", ItemForm{Name: "A", BuyMultiplier: ptr(-1)}, "buy_multiplier"},
		{"multiplier rounds to zero", ItemForm{Name: "A", BuyMultiplier: ptr(0.04)}, "buy_multiplier"},
		{"multiplier too large", ItemForm{Name: "A", BuyMultiplier: ptr(1000)}, "buy_multiplier"},
		{"NaN price", ItemForm{Name: "A", Price: math.NaN()}, "price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.form.ToItem()
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))

			fields := FieldErrors(err)
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestFieldErrors_Messages(t *testing.T) {
	_, err := ItemForm{Name: "", BuyMultiplier: ptr(0)}.Validate()
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, MsgNameRequired, fields["name"])
	assert.Equal(t, "Must be greater than 0", fields["buy_multiplier"])
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(nil))
	assert.Equal(t, map[string]string{"error": MsgInvalidForm}, FieldErrors(errors.New("boom")))
}

func TestStruct_UsesJSONNamesAndFormMessages(t *testing.T) {
	type request struct {
		ItemID string `json:"item_id" validate:"required,max=4"`
		Note   string `validate:"max=2"`
	}

	fields := FieldErrors(Struct(request{Note: "long"}))
	assert.Equal(t, map[string]string{
		"item_id": MsgRequired,
		"Note":    "Must be at most 2 characters",
	}, fields)

	assert.NoError(t, Struct(request{ItemID: "abc"}))
}

func TestFormFromItem_RoundTrip(t *testing.T) {
	original := domain.Item{ID: "id-1", Name: "Potion", Description: "Heals", Price: 10, Quantity: 5, BuyMultiplier: 2}

	item, err := FormFromItem(original).ToItem()
	require.NoError(t, err)
	assert.True(t, original.SameFields(item))
}

func TestBoundaryValuesAccepted(t *testing.T) {
	item, err := ItemForm{Name: "Max", Price: 999999.99, Quantity: 99999, BuyMultiplier: ptr(999)}.ToItem()
	require.NoError(t, err)
	assert.Equal(t, 999999.99, item.Price)

	item, err = ItemForm{Name: "Min", Price: 0, Quantity: 0, BuyMultiplier: ptr(0.1)}.ToItem()
	require.NoError(t, err)
	assert.Equal(t, 0.1, item.BuyMultiplier)
}
