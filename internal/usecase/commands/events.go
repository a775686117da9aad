package commands

import (
	"context"
	"encoding/json"
	"time"

	"pet-adoption/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	TopicRequestCreated = "adoption.request_created"
	TopicRequestDecided = "adoption.request_decided"
	TopicCompleted      = "adoption.completed"

	jobKindEvent = "event"
)

// AdoptionEvent is the outbox payload relayed to the message broker
type AdoptionEvent struct {
	Type       string     `json:"type"`
	RequestID  uuid.UUID  `json:"request_id"`
	PetID      uuid.UUID  `json:"pet_id"`
	AdopterID  uuid.UUID  `json:"adopter_id"`
	OwnerID    uuid.UUID  `json:"owner_id"`
	Status     string     `json:"status,omitempty"`
	PaymentID  *uuid.UUID `json:"payment_id,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

func enqueueEvent(ctx context.Context, tx shared.Tx, event AdoptionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, jobKindEvent, event.Type, payload, event.OccurredAt)
}
