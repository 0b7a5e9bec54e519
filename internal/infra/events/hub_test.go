//go:build unit

package events_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"clinic-scheduler/internal/infra/events"
	"clinic-scheduler/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func startHub(t *testing.T) (*events.Hub, context.CancelFunc) {
	t.Helper()
	hub := events.NewHub(discardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub, cancel
}

func receive(t *testing.T, c *events.Client) []byte {
	t.Helper()
	select {
	case msg, ok := <-c.Send():
		require.True(t, ok, "client channel closed")
		return msg
	case <-time.After(time.Second):
		t.Fatal("no message received")
		return nil
	}
}

func TestHub_BroadcastReachesEveryClient(t *testing.T) {
	hub, _ := startHub(t)
	a, b := events.NewClient(), events.NewClient()
	hub.Register(a)
	hub.Register(b)
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	hub.Broadcast([]byte("hello"))

	assert.Equal(t, []byte("hello"), receive(t, a))
	assert.Equal(t, []byte("hello"), receive(t, b))
}

func TestHub_UnregisterClosesClient(t *testing.T) {
	hub, _ := startHub(t)
	c := events.NewClient()
	hub.Register(c)

	hub.Unregister(c)

	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 10*time.Millisecond)
	_, ok := <-c.Send()
	assert.False(t, ok)
}

func TestHub_ShutdownDisconnectsClients(t *testing.T) {
	hub, cancel := startHub(t)
	c := events.NewClient()
	hub.Register(c)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	cancel()

	select {
	case _, ok := <-c.Send():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("client not closed on shutdown")
	}

	late := events.NewClient()
	hub.Register(late)
	_, ok := <-late.Send()
	assert.False(t, ok, "clients registered after shutdown are closed at once")
	hub.Unregister(late)
}

func TestPublisher_EncodesEvent(t *testing.T) {
	hub, _ := startHub(t)
	c := events.NewClient()
	hub.Register(c)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	pub := events.NewPublisher(hub, discardLogger())
	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	pub.Publish(context.Background(), shared.Event{
		Type:      shared.EventSlotBooked,
		Timestamp: at,
		Payload: shared.SlotBookedPayload{
			SlotID:        7,
			ProviderID:    3,
			AppointmentID: 11,
			Month:         "2024-03",
		},
	})

	var got struct {
		Type      string    `json:"type"`
		Timestamp time.Time `json:"timestamp"`
		Payload   struct {
			SlotID        int64  `json:"slot_id"`
			ProviderID    int64  `json:"provider_id"`
			AppointmentID int64  `json:"appointment_id"`
			Month         string `json:"month"`
		} `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(receive(t, c), &got))
	assert.Equal(t, shared.EventSlotBooked, got.Type)
	assert.True(t, at.Equal(got.Timestamp))
	assert.Equal(t, int64(7), got.Payload.SlotID)
	assert.Equal(t, int64(11), got.Payload.AppointmentID)
	assert.Equal(t, "2024-03", got.Payload.Month)
}

func TestPublisher_DropsUnencodablePayload(t *testing.T) {
	hub, _ := startHub(t)
	c := events.NewClient()
	hub.Register(c)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	pub := events.NewPublisher(hub, discardLogger())
	pub.Publish(context.Background(), shared.Event{Type: "bad", Payload: make(chan int)})

	select {
	case msg := <-c.Send():
		t.Fatalf("unexpected message %q", msg)
	case <-time.After(100 * time.Millisecond):
	}
}
