package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hall-complaints/internal/config"
	"github.com/spec-kit/hall-complaints/internal/domain"
	"github.com/spec-kit/hall-complaints/internal/events"
	"github.com/spec-kit/hall-complaints/internal/query"
	"github.com/spec-kit/hall-complaints/internal/store"
	apperrors "github.com/spec-kit/hall-complaints/pkg/util"
)

type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func newTestService(t *testing.T) (*ComplaintService, *recordingDispatcher) {
	t.Helper()
	dispatcher := &recordingDispatcher{}
	svc := NewComplaintService(ComplaintDependencies{
		Store:      store.NewMemoryStore(config.StoreConfig{CounterStart: 10000}),
		Dispatcher: dispatcher,
	})
	return svc, dispatcher
}

func validSubmission() SubmitInput {
	return SubmitInput{
		RoomNumber:  "101",
		Category:    "Plumbing",
		Description: "Leaking tap in the bathroom",
	}
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	var de *apperrors.DomainError
	require.True(t, errors.As(err, &de), "expected DomainError, got %v", err)
	return de.Code
}

func TestSubmitReturnsTrackingID(t *testing.T) {
	svc, dispatcher := newTestService(t)

	complaint, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	require.Equal(t, "TICKET-10001", complaint.ID)
	require.Equal(t, domain.StatusReported, complaint.Status)

	require.Len(t, dispatcher.published, 1)
	require.Equal(t, events.EventComplaintCreated, dispatcher.published[0].Type)
	require.NotEmpty(t, dispatcher.published[0].ID)
}

func TestSubmitReportsFirstFieldError(t *testing.T) {
	svc, dispatcher := newTestService(t)

	input := validSubmission()
	input.RoomNumber = "551"
	input.Description = "short"

	_, err := svc.Submit(context.Background(), input)
	require.Error(t, err)
	require.Equal(t, "VALIDATION_FAILED", domainCode(t, err))

	var de *apperrors.DomainError
	require.True(t, errors.As(err, &de))
	require.Equal(t, "roomNumber", de.Details["field"])
	require.Empty(t, dispatcher.published, "rejected submissions must not reach the store")
}

func TestTrackNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Track(context.Background(), "TICKET-404")
	require.Error(t, err)
	require.Equal(t, "NOT_FOUND", domainCode(t, err))
}

func TestUpdateStatus(t *testing.T) {
	svc, dispatcher := newTestService(t)
	ctx := context.Background()

	complaint, err := svc.Submit(ctx, validSubmission())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, "admin@hallcomplaint.com", complaint.ID, domain.StatusAssigned)
	require.NoError(t, err)
	require.Equal(t, domain.StatusAssigned, updated.Status)

	// Back-transition is allowed.
	updated, err = svc.UpdateStatus(ctx, "admin@hallcomplaint.com", complaint.ID, domain.StatusReported)
	require.NoError(t, err)
	require.Equal(t, domain.StatusReported, updated.Status)

	last := dispatcher.published[len(dispatcher.published)-1]
	require.Equal(t, events.EventComplaintStatusChanged, last.Type)
	payload, ok := last.Payload.(events.ComplaintStatusChangedPayload)
	require.True(t, ok)
	require.Equal(t, domain.StatusAssigned, payload.OldStatus)
	require.Equal(t, domain.StatusReported, payload.NewStatus)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	complaint, err := svc.Submit(ctx, validSubmission())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, "admin@hallcomplaint.com", complaint.ID, domain.ComplaintStatus("Closed"))
	require.Error(t, err)
	require.Equal(t, "VALIDATION_FAILED", domainCode(t, err))
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateStatus(context.Background(), "admin@hallcomplaint.com", "TICKET-404", domain.StatusResolved)
	require.Error(t, err)
	require.Equal(t, "NOT_FOUND", domainCode(t, err))
}

func TestDelete(t *testing.T) {
	svc, dispatcher := newTestService(t)
	ctx := context.Background()

	complaint, err := svc.Submit(ctx, validSubmission())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "admin@hallcomplaint.com", complaint.ID))

	_, err = svc.Track(ctx, complaint.ID)
	require.Equal(t, "NOT_FOUND", domainCode(t, err))

	require.Equal(t, "NOT_FOUND", domainCode(t, svc.Delete(ctx, "admin@hallcomplaint.com", complaint.ID)))

	last := dispatcher.published[len(dispatcher.published)-1]
	require.Equal(t, events.EventComplaintDeleted, last.Type)
}

func TestListFiltered(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, validSubmission())
	require.NoError(t, err)

	second := validSubmission()
	second.RoomNumber = "230"
	second.Category = "Electrical"
	second.Description = "Socket sparks when used"
	_, err = svc.Submit(ctx, second)
	require.NoError(t, err)

	all, err := svc.List(ctx, query.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	electrical, err := svc.List(ctx, query.Filter{Category: "Electrical"})
	require.NoError(t, err)
	require.Len(t, electrical, 1)
	require.Equal(t, "230", electrical[0].RoomNumber)
}
