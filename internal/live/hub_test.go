package live

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()

	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func waitForCount(t *testing.T, hub *Hub, want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return hub.ClientCount() == want
	}, time.Second, 5*time.Millisecond)
}

func TestHubDeliversToAllClients(t *testing.T) {
	hub := startHub(t)

	a := NewClient("a", nil, hub)
	b := NewClient("b", nil, hub)
	hub.Register(a)
	hub.Register(b)
	waitForCount(t, hub, 2)

	hub.Publish(EventScoreUpdated, map[string]int{"home_goal": 1})

	for _, c := range []*Client{a, b} {
		select {
		case event := <-c.Send:
			assert.Equal(t, EventScoreUpdated, event.Event)
			assert.False(t, event.Timestamp.IsZero())
		case <-time.After(time.Second):
			t.Fatalf("client %s never received the event", c.ID)
		}
	}
}

func TestHubPublishNeverBlocks(t *testing.T) {
	hub := NewHub() // not running, broadcast buffer fills up

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < cap(hub.broadcast)+10; i++ {
			hub.Publish(EventActivityAdded, i)
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full broadcast buffer")
	}
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := startHub(t)

	fast := NewClient("fast", nil, hub)
	slow := NewClient("slow", nil, hub)
	hub.Register(fast)
	hub.Register(slow)
	waitForCount(t, hub, 2)

	// Fill the slow client's buffer so the next fan-out cannot deliver.
	for i := 0; i < sendBufferSize; i++ {
		require.True(t, slow.TrySend(Event{Event: EventScoreUpdated}))
	}

	hub.Publish(EventScoreUpdated, nil)
	waitForCount(t, hub, 1)

	// The fast client is still served.
	select {
	case event := <-fast.Send:
		assert.Equal(t, EventScoreUpdated, event.Event)
	case <-time.After(time.Second):
		t.Fatal("fast client never received the event")
	}
}

func TestHubUnregisterClosesSendChannel(t *testing.T) {
	hub := startHub(t)

	c := NewClient("c", nil, hub)
	hub.Register(c)
	waitForCount(t, hub, 1)

	hub.Unregister(c)
	waitForCount(t, hub, 0)

	select {
	case _, ok := <-c.Send:
		assert.False(t, ok, "send channel should be closed")
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}
}
