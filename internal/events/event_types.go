package events

import (
	"time"

	"github.com/spec-kit/hall-complaints/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventComplaintCreated       EventType = "complaint_created"
	EventComplaintStatusChanged EventType = "complaint_status_changed"
	EventComplaintDeleted       EventType = "complaint_deleted"
)

// Actor identifies who caused the event: a resident submitting, or the
// authenticated operator.
type Actor struct {
	Resident bool    `json:"resident"`
	Operator *string `json:"operator,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	ComplaintID string      `json:"complaint_id"`
	Actor       Actor       `json:"actor"`
	Timestamp   time.Time   `json:"timestamp"`
	Payload     interface{} `json:"payload"`
}

// ComplaintCreatedPayload payload.
type ComplaintCreatedPayload struct {
	RoomNumber string                   `json:"room_number"`
	Category   domain.ComplaintCategory `json:"category"`
}

// ComplaintStatusChangedPayload payload.
type ComplaintStatusChangedPayload struct {
	OldStatus domain.ComplaintStatus `json:"old_status"`
	NewStatus domain.ComplaintStatus `json:"new_status"`
}

// ComplaintDeletedPayload payload.
type ComplaintDeletedPayload struct {
	RoomNumber string                 `json:"room_number"`
	Status     domain.ComplaintStatus `json:"status"`
}
