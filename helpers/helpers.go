package helpers

import (
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

// PublishEvent marshals a payload and publishes it to the event bus with the
// correlation ID set both as the message UUID and in the metadata.
func PublishEvent(eventBus message.Publisher, topic string, correlationID string, payload interface{}) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	msg := message.NewMessage(correlationID, payloadBytes)
	msg.Metadata.Set(middleware.CorrelationIDMetadataKey, correlationID)

	return eventBus.Publish(topic, msg)
}
