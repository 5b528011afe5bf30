// Package eventbus builds the watermill publisher/subscriber pair the gateway
// and worker communicate over.
package eventbus

import (
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmnats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	nc "github.com/nats-io/nats.go"
)

const queueGroupPrefix = "discord-interactions"

// Bus bundles the two legs of the command bus.
type Bus struct {
	Publisher  message.Publisher
	Subscriber message.Subscriber
}

// New builds the command bus. With a NATS URL the gateway and worker can run
// as separate processes; with an empty URL an in-process channel bus is used
// and both halves must share the process.
func New(natsURL string, logger watermill.LoggerAdapter) (*Bus, error) {
	if natsURL == "" {
		pubSub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, logger)
		return &Bus{Publisher: pubSub, Subscriber: pubSub}, nil
	}

	marshaler := &wmnats.NATSMarshaler{}
	options := []nc.Option{
		nc.RetryOnFailedConnect(true),
		nc.Timeout(10 * time.Second),
	}
	jetStream := wmnats.JetStreamConfig{Disabled: true}

	publisher, err := wmnats.NewPublisher(wmnats.PublisherConfig{
		URL:         natsURL,
		NatsOptions: options,
		Marshaler:   marshaler,
		JetStream:   jetStream,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	subscriber, err := wmnats.NewSubscriber(wmnats.SubscriberConfig{
		URL:              natsURL,
		QueueGroupPrefix: queueGroupPrefix,
		NatsOptions:      options,
		Unmarshaler:      marshaler,
		JetStream:        jetStream,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS subscriber: %w", err)
	}

	return &Bus{Publisher: publisher, Subscriber: subscriber}, nil
}

// Close closes both legs. With the in-process bus publisher and subscriber
// are the same object and Close is idempotent.
func (b *Bus) Close() error {
	if err := b.Publisher.Close(); err != nil {
		return err
	}
	return b.Subscriber.Close()
}
