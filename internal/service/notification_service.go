package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/hall-complaints/internal/events"
)

// NotificationService reacts to complaint events. The current sink is the
// structured log; a mail or webhook sender would slot in here.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to the complaint event stream.
func (s *NotificationService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Subscribe(events.EventComplaintCreated, s.onEvent)
	s.dispatcher.Subscribe(events.EventComplaintStatusChanged, s.onEvent)
	s.dispatcher.Subscribe(events.EventComplaintDeleted, s.onEvent)
}

func (s *NotificationService) onEvent(_ context.Context, event events.Event) error {
	s.logger.Info("complaint event",
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.String("complaint_id", event.ComplaintID),
		zap.Any("payload", event.Payload),
	)
	return nil
}
