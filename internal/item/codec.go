package item

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/osse101/ShopKeeper_Go/internal/domain"
)

// fileRecord is the on-disk shape of one item. Field order here is the key
// order in the written file.
type fileRecord struct {
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Price         json.Number `json:"price"`
	Quantity      int         `json:"quantity"`
	BuyMultiplier float64     `json:"buy_multiplier"`
}

// importRecord accepts partial records; a nil field takes the default.
type importRecord struct {
	Name          *string    `json:"name"`
	Description   *string    `json:"description"`
	Price         *flexFloat `json:"price"`
	Quantity      *flexInt   `json:"quantity"`
	BuyMultiplier *flexFloat `json:"buy_multiplier"`
}

// Encode writes items as an indented JSON array
func Encode(w io.Writer, items []domain.Item) error {
	records := make([]fileRecord, 0, len(items))
	for _, it := range items {
		records = append(records, fileRecord{
			Name:          it.Name,
			Description:   it.Description,
			Price:         formatPrice(it.Price),
			Quantity:      it.Quantity,
			BuyMultiplier: it.BuyMultiplier,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", IndentString)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf(ErrFmtEncode, err)
	}
	return nil
}

// Export returns the encoded form of items
func Export(items []domain.Item) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, items); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a full JSON array from r
func Decode(r io.Reader) ([]domain.Item, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	return Import(data)
}

// Import parses a JSON array of item records. Missing or null fields are
// defaulted. Returned items have no ID.
//
// Errors wrap domain.ErrParse when data is not JSON at all and
// domain.ErrFormat when it is JSON but not a list of item records.
func Import(data []byte) ([]domain.Item, error) {
	if !json.Valid(data) {
		return nil, domain.ErrParse
	}

	var raw []json.RawMessage
	if trimmed := bytes.TrimSpace(data); trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: %s", domain.ErrFormat, ErrMsgNotArray)
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrFormat, ErrMsgNotArray)
	}

	items := make([]domain.Item, 0, len(raw))
	for i, elem := range raw {
		it, err := decodeRecord(i, elem)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func decodeRecord(index int, elem json.RawMessage) (domain.Item, error) {
	trimmed := bytes.TrimSpace(elem)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return domain.Item{}, fmt.Errorf(ErrFmtNotObject, index, domain.ErrFormat)
	}

	var rec importRecord
	if err := json.Unmarshal(trimmed, &rec); err != nil {
		return domain.Item{}, fmt.Errorf(ErrFmtBadRecord, index, err, domain.ErrFormat)
	}

	it := domain.NewItem(domain.DefaultItemName)
	if rec.Name != nil {
		it.Name = *rec.Name
	}
	if rec.Description != nil {
		it.Description = *rec.Description
	}
	if rec.Price != nil {
		it.Price = float64(*rec.Price)
	}
	if rec.Quantity != nil {
		it.Quantity = int(*rec.Quantity)
	}
	if rec.BuyMultiplier != nil {
		it.BuyMultiplier = float64(*rec.BuyMultiplier)
	}

	if err := checkInvariants(index, it); err != nil {
		return domain.Item{}, err
	}
	return it, nil
}

func checkInvariants(index int, it domain.Item) error {
	switch {
	case it.Price < 0:
		return fmt.Errorf("%w: item %d: %s", domain.ErrFormat, index, ErrMsgNegativePrice)
	case it.Quantity < 0:
		return fmt.Errorf("%w: item %d: %s", domain.ErrFormat, index, ErrMsgNegativeQty)
	case it.BuyMultiplier <= 0:
		return fmt.Errorf("%w: item %d: %s", domain.ErrFormat, index, ErrMsgNonPositiveMult)
	}
	return nil
}

func formatPrice(price float64) json.Number {
	return json.Number(decimal.NewFromFloat(price).StringFixed(PriceDecimals))
}
