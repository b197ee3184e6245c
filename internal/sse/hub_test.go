package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ShopKeeper_Go/internal/domain"
	"github.com/osse101/ShopKeeper_Go/internal/event"
)

const waitFor = 2 * time.Second

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(time.Hour)
	hub.Start()
	t.Cleanup(hub.Stop)
	return hub
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case evt := <-c.EventChannel:
		return evt
	case <-time.After(waitFor):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_BroadcastRespectsFilters(t *testing.T) {
	hub := startHub(t)

	all := hub.Register(nil)
	purchases := hub.Register([]string{domain.EventTypeItemPurchased})
	require.Equal(t, 2, hub.ClientCount())

	hub.Broadcast(domain.EventTypeListChanged, "list")
	hub.Broadcast(domain.EventTypeItemPurchased, "buy")

	assert.Equal(t, domain.EventTypeListChanged, receive(t, all).Type)
	assert.Equal(t, domain.EventTypeItemPurchased, receive(t, all).Type)

	got := receive(t, purchases)
	assert.Equal(t, domain.EventTypeItemPurchased, got.Type)
	assert.Equal(t, "buy", got.Payload)
	assert.NotEmpty(t, got.ID)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := startHub(t)

	c := hub.Register(nil)
	require.Equal(t, 1, hub.ClientCount(), "registration is visible as soon as Register returns")

	hub.Unregister(c.ID)
	assert.Equal(t, 0, hub.ClientCount())

	_, ok := <-c.EventChannel
	assert.False(t, ok)

	hub.Unregister(c.ID)
}

func TestHub_StopClosesClients(t *testing.T) {
	hub := NewHub(time.Hour)
	hub.Start()

	before := hub.Register(nil)
	hub.Stop()

	_, ok := <-before.EventChannel
	assert.False(t, ok)

	select {
	case <-hub.Done():
	default:
		t.Fatal("Done should be closed after Stop")
	}

	after := hub.Register(nil)
	_, ok = <-after.EventChannel
	assert.False(t, ok, "a client registering after Stop gets a closed stream")
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_StopIsIdempotent(t *testing.T) {
	hub := NewHub(0)
	hub.Start()
	hub.Stop()
	hub.Stop()
	assert.Equal(t, DefaultKeepaliveInterval, hub.KeepaliveInterval())
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "1", Type: "catalog.list_changed", Timestamp: 5, Payload: map[string]int{"count": 2}})
	require.NoError(t, err)

	assert.Equal(t,
		"id: 1\nevent: catalog.list_changed\ndata: {\"id\":\"1\",\"type\":\"catalog.list_changed\",\"timestamp\":5,\"payload\":{\"count\":2}}\n\n",
		string(msg))
}

func TestParseTypes(t *testing.T) {
	assert.Nil(t, parseTypes(""))
	assert.Equal(t, []string{"a", "b"}, parseTypes(" a, ,b "))
}

func TestSubscriber_ForwardsBusEvents(t *testing.T) {
	hub := startHub(t)
	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	c := hub.Register(nil)

	require.NoError(t, bus.Publish(context.Background(), event.NewListChangedEvent(domain.ChangeReasonAdded, "x", 1)))

	got := receive(t, c)
	assert.Equal(t, domain.EventTypeListChanged, got.Type)
	assert.Equal(t, domain.ListChangedPayload{Reason: domain.ChangeReasonAdded, ItemID: "x", Count: 1}, got.Payload)
}

func TestHandler_StreamsEvents(t *testing.T) {
	hub := startHub(t)
	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types="+domain.EventTypeItemPurchased, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, ContentTypeEventStream, resp.Header.Get(HeaderContentType))

	lines := bufio.NewScanner(resp.Body)
	readEventType := func() string {
		for lines.Scan() {
			if line := lines.Text(); strings.HasPrefix(line, "event: ") {
				return strings.TrimPrefix(line, "event: ")
			}
		}
		return ""
	}

	assert.Equal(t, EventTypeConnected, readEventType())
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, waitFor, 10*time.Millisecond)

	hub.Broadcast(domain.EventTypeListChanged, nil)
	hub.Broadcast(domain.EventTypeItemPurchased, nil)

	assert.Equal(t, domain.EventTypeItemPurchased, readEventType(), "filtered types are skipped")
}

func TestHandler_EndsStreamWhenHubStops(t *testing.T) {
	hub := NewHub(time.Hour)
	hub.Start()
	t.Cleanup(hub.Stop)

	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	lines := bufio.NewScanner(resp.Body)
	require.True(t, lines.Scan())
	require.Equal(t, 1, hub.ClientCount())

	hub.Stop()

	done := make(chan struct{})
	go func() {
		for lines.Scan() {
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(waitFor):
		t.Fatal("stream stayed open after the hub stopped")
	}
}
