package metrics

import (
	"context"

	"github.com/osse101/ShopKeeper_Go/internal/domain"
	"github.com/osse101/ShopKeeper_Go/internal/event"
	"github.com/osse101/ShopKeeper_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all shop events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.ListChanged:
		payload, err := event.DecodePayload[domain.ListChangedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		CatalogChanges.WithLabelValues(payload.Reason).Inc()
		CatalogSize.Set(float64(payload.Count))

	case event.ItemPurchased:
		payload, err := event.DecodePayload[domain.ItemPurchasedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		PurchasesTotal.WithLabelValues(string(payload.Result.Status)).Inc()
		if payload.Result.Status == domain.PurchaseSuccess {
			UnitsBought.Add(payload.Result.Bought)
		}
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
