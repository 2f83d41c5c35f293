package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/viaurbana/ooh-campaign-service/internal/domain"
)

// KafkaPublisher hands domain events to the external dispatcher over one
// topic. Every message wraps the payload in an envelope carrying the event
// name, keyed by proposal so per-proposal ordering holds.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

type eventEnvelope struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

func (k *KafkaPublisher) publish(eventType, key string, payload interface{}) error {
	msg, err := json.Marshal(eventEnvelope{Type: eventType, Payload: payload})
	if err != nil {
		return err
	}

	return k.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(key),
		Value: msg,
		Time:  time.Now(),
	})
}

func (k *KafkaPublisher) PublishAuthorizationRequired(event domain.AuthorizationRequiredEvent) error {
	return k.publish("authorization.required", event.ProposalID, event)
}

func (k *KafkaPublisher) PublishAuthorizationApproved(event domain.AuthorizationApprovedEvent) error {
	return k.publish("authorization.approved", event.ProposalID, event)
}

func (k *KafkaPublisher) PublishAuthorizationRejected(event domain.AuthorizationRejectedEvent) error {
	return k.publish("authorization.rejected", event.ProposalID, event)
}

func (k *KafkaPublisher) PublishReservationCreated(event domain.ReservationCreatedEvent) error {
	return k.publish("reservation.created", event.ProposalID, event)
}

func (k *KafkaPublisher) PublishReservationDeleted(event domain.ReservationDeletedEvent) error {
	return k.publish("reservation.deleted", event.ProposalID, event)
}

func (k *KafkaPublisher) PublishAllocationProgress(event domain.AllocationProgressEvent) error {
	return k.publish("allocation.progress", event.ProposalID, event)
}
