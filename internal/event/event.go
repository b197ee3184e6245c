package event

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/ShopKeeper_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a notification published after a committed command
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Catalog event types
const (
	ListChanged      Type = domain.EventTypeListChanged
	SelectionChanged Type = domain.EventTypeSelectionChanged
	ItemPurchased    Type = domain.EventTypeItemPurchased
)

// AllTypes lists every event type the shop publishes
var AllTypes = []Type{ListChanged, SelectionChanged, ItemPurchased}

// Type-safe event constructors

// NewListChangedEvent creates a list changed event
func NewListChangedEvent(reason, itemID string, count int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ListChanged,
		Payload: domain.ListChangedPayload{
			Reason: reason,
			ItemID: itemID,
			Count:  count,
		},
	}
}

// NewSelectionChangedEvent creates a selection changed event.
// An empty itemID means the selection was cleared.
func NewSelectionChangedEvent(itemID string, canBuy bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SelectionChanged,
		Payload: domain.SelectionChangedPayload{
			ItemID: itemID,
			CanBuy: canBuy,
		},
	}
}

// NewItemPurchasedEvent creates an item purchased event
func NewItemPurchasedEvent(item domain.Item, result domain.PurchaseResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemPurchased,
		Payload: domain.ItemPurchasedPayload{
			ItemID:   item.ID,
			ItemName: item.Name,
			Result:   result,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish delivers an event to all subscribers synchronously, in
// subscription order. Every handler runs even if an earlier one fails.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(ErrMsgObserversFailedFmt, len(errs), event.Type, errors.Join(errs...))
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
