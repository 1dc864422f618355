package mq

import (
	"context"
	"encoding/json"
	"log"

	"eventease/models"
	"eventease/rdx"
)

const eventsChannel = "eventease_events"

// Emit publishes an indexing event to Redis for any interested consumer.
func Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(map[string]any{
		"event":   eventName,
		"content": content,
	})
	if err != nil {
		log.Printf("[Emit] marshal failed for %s: %v", eventName, err)
		return
	}
	rdx.Publish(eventsChannel, data)
}
