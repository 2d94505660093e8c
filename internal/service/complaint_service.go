package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/hall-complaints/internal/domain"
	"github.com/spec-kit/hall-complaints/internal/events"
	"github.com/spec-kit/hall-complaints/internal/query"
	"github.com/spec-kit/hall-complaints/internal/store"
	"github.com/spec-kit/hall-complaints/internal/validation"
	apperrors "github.com/spec-kit/hall-complaints/pkg/util"
)

// ComplaintService coordinates the complaint lifecycle: submission, tracking,
// admin listing, status changes and deletion.
type ComplaintService struct {
	store      store.ComplaintStore
	dispatcher events.Dispatcher
}

// ComplaintDependencies bundles collaborators for the complaint service.
type ComplaintDependencies struct {
	Store      store.ComplaintStore
	Dispatcher events.Dispatcher
}

// SubmitInput describes a resident submission payload.
type SubmitInput struct {
	RoomNumber  string
	Category    string
	Description string
}

// NewComplaintService constructs the service.
func NewComplaintService(deps ComplaintDependencies) *ComplaintService {
	return &ComplaintService{store: deps.Store, dispatcher: deps.Dispatcher}
}

// Submit validates a resident submission and stores it. The returned
// complaint carries the tracking id shown to the resident.
func (s *ComplaintService) Submit(ctx context.Context, input SubmitInput) (*domain.Complaint, error) {
	if fieldErr := validation.ValidateComplaint(validation.ComplaintInput{
		RoomNumber:  input.RoomNumber,
		Category:    input.Category,
		Description: input.Description,
	}); fieldErr != nil {
		return nil, apperrors.NewValidationError(fieldErr.Message, map[string]any{"field": fieldErr.Field})
	}

	complaint, err := s.store.Create(ctx, store.CreateInput{
		RoomNumber:  strings.TrimSpace(input.RoomNumber),
		Category:    domain.ComplaintCategory(input.Category),
		Description: strings.TrimSpace(input.Description),
	})
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintCreated,
		ComplaintID: complaint.ID,
		Actor:       events.Actor{Resident: true},
		Payload: events.ComplaintCreatedPayload{
			RoomNumber: complaint.RoomNumber,
			Category:   complaint.Category,
		},
	})
	return complaint, nil
}

// List returns every complaint, newest first.
func (s *ComplaintService) List(ctx context.Context, filter query.Filter) ([]domain.Complaint, error) {
	complaints, err := s.store.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return query.Apply(complaints, filter), nil
}

// Track looks up a complaint by its tracking id.
func (s *ComplaintService) Track(ctx context.Context, id string) (*domain.Complaint, error) {
	complaint, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NewNotFound("complaint", map[string]any{"id": id})
		}
		return nil, apperrors.NewInternalError(err)
	}
	return complaint, nil
}

// UpdateStatus sets a complaint to the given status. Transitions are
// unrestricted; the operator may move a complaint to any status, including
// back from Resolved.
func (s *ComplaintService) UpdateStatus(ctx context.Context, operator, id string, newStatus domain.ComplaintStatus) (*domain.Complaint, error) {
	if id == "" {
		return nil, apperrors.NewValidationError("Invalid ID provided", nil)
	}
	if !newStatus.Valid() {
		return nil, apperrors.NewValidationError("Invalid status value", map[string]any{"status": newStatus})
	}

	current, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NewNotFound("complaint", map[string]any{"id": id})
		}
		return nil, apperrors.NewInternalError(err)
	}
	oldStatus := current.Status

	complaint, err := s.store.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NewNotFound("complaint", map[string]any{"id": id})
		}
		return nil, apperrors.NewInternalError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintStatusChanged,
		ComplaintID: complaint.ID,
		Actor:       operatorActor(operator),
		Payload: events.ComplaintStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: complaint.Status,
		},
	})
	return complaint, nil
}

// Delete removes a complaint permanently. There is no soft delete.
func (s *ComplaintService) Delete(ctx context.Context, operator, id string) error {
	if id == "" {
		return apperrors.NewValidationError("Invalid ID provided", nil)
	}

	complaint, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NewNotFound("complaint", map[string]any{"id": id})
		}
		return apperrors.NewInternalError(err)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NewNotFound("complaint", map[string]any{"id": id})
		}
		return apperrors.NewInternalError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintDeleted,
		ComplaintID: id,
		Actor:       operatorActor(operator),
		Payload: events.ComplaintDeletedPayload{
			RoomNumber: complaint.RoomNumber,
			Status:     complaint.Status,
		},
	})
	return nil
}

func (s *ComplaintService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func operatorActor(email string) events.Actor {
	return events.Actor{Operator: &email}
}
