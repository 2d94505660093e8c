package validation

import (
	"net/mail"
	"strconv"
	"strings"

	"github.com/spec-kit/hall-complaints/internal/domain"
)

// Building layout: 5 floors with 50 rooms each. Room codes concatenate the
// floor digit and the room-in-floor digits (101-150, 201-250, ..., 501-550).
const (
	minFloor = 1
	maxFloor = 5
	minRoom  = 1
	maxRoom  = 50
)

const minDescriptionLen = 10

// ComplaintInput is the raw submission before validation.
type ComplaintInput struct {
	RoomNumber  string
	Category    string
	Description string
}

// FieldError reports the first rule a submission violated. Its message is
// surfaced verbatim to the resident.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// ValidateComplaint checks a submission field by field, room number first,
// and reports only the first violation.
func ValidateComplaint(input ComplaintInput) *FieldError {
	if err := ValidateRoomNumber(input.RoomNumber); err != nil {
		return err
	}
	if !domain.ComplaintCategory(input.Category).Valid() {
		return &FieldError{Field: "category", Message: "Please select a valid category."}
	}
	if len(strings.TrimSpace(input.Description)) < minDescriptionLen {
		return &FieldError{Field: "description", Message: "Description must be at least 10 characters."}
	}
	return nil
}

// ValidateRoomNumber accepts numeric room codes within the building layout.
func ValidateRoomNumber(roomNumber string) *FieldError {
	if strings.TrimSpace(roomNumber) == "" {
		return &FieldError{Field: "roomNumber", Message: "Room number is required."}
	}
	num, err := strconv.Atoi(strings.TrimSpace(roomNumber))
	if err != nil {
		return invalidRoom()
	}
	floor := num / 100
	room := num % 100
	if floor < minFloor || floor > maxFloor || room < minRoom || room > maxRoom {
		return invalidRoom()
	}
	return nil
}

func invalidRoom() *FieldError {
	return &FieldError{
		Field:   "roomNumber",
		Message: "Invalid room number. Use 101-150, 201-250, 301-350, 401-450, or 501-550.",
	}
}

// ValidateCredentials checks login input shape only; whether the pair matches
// the operator account is the auth service's concern.
func ValidateCredentials(email, password string) *FieldError {
	if _, err := mail.ParseAddress(email); err != nil {
		return &FieldError{Field: "email", Message: "Invalid email or password."}
	}
	if password == "" {
		return &FieldError{Field: "password", Message: "Invalid email or password."}
	}
	return nil
}
