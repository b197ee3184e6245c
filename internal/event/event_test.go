package event

import (
	"context"
	"errors"
	"testing"

	"github.com/osse101/ShopKeeper_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		if event.Type != eventType {
			t.Errorf("Expected event type %s, got %s", eventType, event.Type)
		}
		if event.Payload.(string) != "payload" {
			t.Errorf("Expected payload 'payload', got %v", event.Payload)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
}

func TestMemoryBus_AllHandlersRunInOrderDespiteErrors(t *testing.T) {
	bus := NewMemoryBus()
	var order []int

	bus.Subscribe(ListChanged, func(ctx context.Context, event Event) error {
		order = append(order, 1)
		return errors.New("first fails")
	})
	bus.Subscribe(ListChanged, func(ctx context.Context, event Event) error {
		order = append(order, 2)
		return nil
	})

	err := bus.Publish(context.Background(), NewListChangedEvent(domain.ChangeReasonAdded, "id", 1))
	if err == nil {
		t.Error("Expected aggregated error, got nil")
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("Expected handlers to run in order [1 2], got %v", order)
	}
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	if err := bus.Publish(context.Background(), NewSelectionChangedEvent("", false)); err != nil {
		t.Errorf("Publish with no subscribers returned error: %v", err)
	}
}

func TestNewItemPurchasedEvent(t *testing.T) {
	item := domain.Item{ID: "abc", Name: "Sword", Quantity: 3}
	result := domain.PurchaseResult{Status: domain.PurchaseSuccess, Bought: 2, Remaining: 3}

	evt := NewItemPurchasedEvent(item, result)
	if evt.Type != ItemPurchased || evt.Version != EventSchemaVersion {
		t.Fatalf("unexpected envelope: %+v", evt)
	}

	payload, err := DecodePayload[domain.ItemPurchasedPayload](evt.Payload)
	if err != nil {
		t.Fatalf("DecodePayload returned error: %v", err)
	}
	if payload.ItemID != "abc" || payload.ItemName != "Sword" || payload.Result != result {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{"reason": "imported", "count": 4}

	payload, err := DecodePayload[domain.ListChangedPayload](raw)
	if err != nil {
		t.Fatalf("DecodePayload returned error: %v", err)
	}
	if payload.Reason != domain.ChangeReasonImported || payload.Count != 4 {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestDecodePayload_Pointer(t *testing.T) {
	in := &domain.SelectionChangedPayload{ItemID: "abc", CanBuy: true}
	payload, err := DecodePayload[domain.SelectionChangedPayload](in)
	if err != nil {
		t.Fatalf("DecodePayload returned error: %v", err)
	}
	if payload != *in {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestMemoryBus_PublishErrorWrapsObserverErrors(t *testing.T) {
	bus := NewMemoryBus()
	boom := errors.New("boom")
	bus.Subscribe(ListChanged, func(ctx context.Context, event Event) error { return boom })

	err := bus.Publish(context.Background(), NewListChangedEvent(domain.ChangeReasonAdded, "x", 1))
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped observer error, got %v", err)
	}
}
