// Package validation checks add/edit form input before it reaches the catalog.
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/osse101/ShopKeeper_Go/internal/domain"
)

// ItemForm is the candidate item collected by an add/edit surface.
// A nil BuyMultiplier means the field was left at its default.
type ItemForm struct {
	Name          string   `json:"name" validate:"required,max=200"`
	Description   string   `json:"description" validate:"max=2000"`
	Price         float64  `json:"price" validate:"gte=0,lte=999999.99"`
	Quantity      int      `json:"quantity" validate:"gte=0,lte=99999"`
	BuyMultiplier *float64 `json:"buy_multiplier,omitempty" validate:"omitnil,gt=0,lte=999"`
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		validate = v
	})
	return validate
}

// Normalize trims text fields and rounds numbers to the precision the
// form offers: cents for the price and tenths for the multiplier.
func (f ItemForm) Normalize() ItemForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.Price = round(f.Price, PriceDecimals)
	if f.BuyMultiplier != nil {
		m := round(*f.BuyMultiplier, MultiplierDecimals)
		f.BuyMultiplier = &m
	}
	return f
}

// Validate normalizes the form and checks it. The returned error wraps
// domain.ErrValidation; FieldErrors turns it into per-field messages.
func (f ItemForm) Validate() (ItemForm, error) {
	n := f.Normalize()
	if err := instance().Struct(n); err != nil {
		return n, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	return n, nil
}

// ToItem validates the form and builds the item it describes
func (f ItemForm) ToItem() (domain.Item, error) {
	n, err := f.Validate()
	if err != nil {
		return domain.Item{}, err
	}

	multiplier := domain.DefaultBuyMultiplier
	if n.BuyMultiplier != nil {
		multiplier = *n.BuyMultiplier
	}

	return domain.Item{
		Name:          n.Name,
		Description:   n.Description,
		Price:         n.Price,
		Quantity:      n.Quantity,
		BuyMultiplier: multiplier,
	}, nil
}

// FormFromItem pre-fills a form with an existing item, as an edit dialog does
func FormFromItem(item domain.Item) ItemForm {
	m := item.BuyMultiplier
	return ItemForm{
		Name:          item.Name,
		Description:   item.Description,
		Price:         item.Price,
		Quantity:      item.Quantity,
		BuyMultiplier: &m,
	}
}

// Struct checks any struct against its validate tags with the same rules
// and JSON field naming the item form uses. Errors pass through FieldErrors.
func Struct(s interface{}) error {
	return instance().Struct(s)
}

// FieldErrors formats validation errors into a user-friendly map keyed by
// JSON field name. This prevents leaking internal struct names.
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = MsgInvalidForm
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = fieldMessage(field, MsgRequired)
		case "gt":
			errs[field] = fmt.Sprintf(MsgGreaterThanFmt, e.Param())
		case "gte":
			errs[field] = fmt.Sprintf(MsgAtLeastFmt, e.Param())
		case "lte":
			errs[field] = fmt.Sprintf(MsgAtMostFmt, e.Param())
		case "max":
			errs[field] = fmt.Sprintf(MsgMaxLengthFmt, e.Param())
		default:
			errs[field] = MsgInvalidValue
		}
	}

	return errs
}

func fieldMessage(field, fallback string) string {
	if field == "name" {
		return MsgNameRequired
	}
	return fallback
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

func round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}
