package dto

import (
	"time"

	"github.com/spec-kit/hall-complaints/internal/domain"
)

// SubmitComplaintRequest payload.
type SubmitComplaintRequest struct {
	RoomNumber  string `json:"room_number"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// SubmitComplaintResponse returns the tracking id shown to the resident.
type SubmitComplaintResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// ComplaintResponse is the full complaint view.
type ComplaintResponse struct {
	ID          string                   `json:"id"`
	RoomNumber  string                   `json:"room_number"`
	Category    domain.ComplaintCategory `json:"category"`
	Description string                   `json:"description"`
	Status      domain.ComplaintStatus   `json:"status"`
	CreatedAt   time.Time                `json:"created_at"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
