// Package events publishes booking lifecycle events to Kafka in a
// CloudEvents-shaped envelope.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Topic and event types for the movers booking stream.
const (
	TopicBookingEvents = "movers.booking.events"

	BookingCreated          = "booking.created"
	BookingPaymentConfirmed = "booking.payment_confirmed"
	BookingPaymentFailed    = "booking.payment_failed"
	BookingStatusChanged    = "booking.status_changed"
	BookingEmployeeAssigned = "booking.employee_assigned"
)

// CloudEvent is the envelope written to Kafka.
type CloudEvent struct {
	ID     string          `json:"id"`
	Source string          `json:"source"`
	Type   string          `json:"type"`
	Time   time.Time       `json:"time"`
	Data   json.RawMessage `json:"data"`
}

// NewCloudEvent wraps data in a CloudEvent envelope.
func NewCloudEvent(source, eventType string, data interface{}) (CloudEvent, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return CloudEvent{}, fmt.Errorf("failed to marshal event data: %w", err)
	}
	return CloudEvent{
		ID:     uuid.NewString(),
		Source: source,
		Type:   eventType,
		Time:   time.Now().UTC(),
		Data:   payload,
	}, nil
}

// ParseData unmarshals the event payload into out.
func (e CloudEvent) ParseData(out interface{}) error {
	return json.Unmarshal(e.Data, out)
}

// BookingEvent is the payload for all booking lifecycle events.
type BookingEvent struct {
	BookingID     uuid.UUID `json:"booking_id"`
	BookingNumber string    `json:"booking_number"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status,omitempty"`
	TotalAmount   float64   `json:"total_amount,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
