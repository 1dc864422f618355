package live

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send:  make(chan []byte, 10),
		Topic: "bookings:u123",
	}

	hub.register <- client

	ev := Event{Collection: "bookings", Action: "updated", Data: map[string]string{"status": "confirmed"}}
	hub.Broadcast("bookings:u123", ev)

	want, _ := json.Marshal(ev)
	select {
	case got := <-client.Send:
		if string(got) != string(want) {
			t.Fatalf("expected %s, got %s", want, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	hub.unregister <- client
}

func TestHubTopicIsolation(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	a := &Client{Send: make(chan []byte, 10), Topic: "tasks:v1"}
	b := &Client{Send: make(chan []byte, 10), Topic: "tasks:v2"}
	hub.register <- a
	hub.register <- b

	hub.Broadcast("tasks:v1", Event{Collection: "tasks", Action: "created"})

	select {
	case <-a.Send:
	case <-time.After(1 * time.Second):
		t.Fatal("subscriber on tasks:v1 got nothing")
	}

	select {
	case msg := <-b.Send:
		t.Fatalf("subscriber on tasks:v2 should not receive: %s", msg)
	case <-time.After(100 * time.Millisecond):
	}

	hub.unregister <- a
	hub.unregister <- b
}

func TestHubBroadcastAfterStopDoesNotBlock(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	hub.Stop()

	done := make(chan struct{})
	go func() {
		// More events than the channel buffer holds; without the stop
		// guard this would hang once the buffer fills.
		for i := 0; i < 200; i++ {
			hub.Broadcast("admin:bookings", Event{Collection: "bookings", Action: "updated"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Broadcast blocked after Stop")
	}
}
