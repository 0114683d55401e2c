package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/leadsfynder/leadsfynder-api/internal/domain"
	"github.com/leadsfynder/leadsfynder-api/internal/events"
	"github.com/leadsfynder/leadsfynder-api/internal/repository"
)

// ActivityRecorder turns domain events into activity feed rows.
type ActivityRecorder struct {
	dispatcher events.Dispatcher
	activities repository.ActivityRepository
	logger     *zap.Logger
}

// NewActivityRecorder creates the recorder.
func NewActivityRecorder(dispatcher events.Dispatcher, activities repository.ActivityRepository, logger *zap.Logger) *ActivityRecorder {
	return &ActivityRecorder{
		dispatcher: dispatcher,
		activities: activities,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to the events the feed cares about.
func (r *ActivityRecorder) RegisterHandlers() {
	if r.dispatcher == nil {
		return
	}
	r.dispatcher.Subscribe(events.EventLeadCreated, r.handleLeadEvent)
	r.dispatcher.Subscribe(events.EventLeadUpdated, r.handleLeadEvent)
	r.dispatcher.Subscribe(events.EventLeadDeleted, r.handleLeadEvent)
	r.dispatcher.Subscribe(events.EventEmailCampaignCreated, r.handleCampaignEvent)
	r.dispatcher.Subscribe(events.EventWhatsAppCampaignCreated, r.handleCampaignEvent)
}

func (r *ActivityRecorder) handleLeadEvent(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.LeadPayload)
	if !ok {
		return nil
	}

	var activityType domain.ActivityType
	var message string
	switch event.Type {
	case events.EventLeadCreated:
		activityType = domain.ActivityLeadAdded
		message = fmt.Sprintf("Added lead %s (%s)", payload.Name, payload.Source)
	case events.EventLeadUpdated:
		activityType = domain.ActivityLeadUpdated
		message = fmt.Sprintf("Updated lead %s, status %s", payload.Name, payload.Status)
	case events.EventLeadDeleted:
		activityType = domain.ActivityLeadDeleted
		message = fmt.Sprintf("Deleted lead %s", payload.Name)
	default:
		return nil
	}

	return r.record(ctx, activityType, message)
}

func (r *ActivityRecorder) handleCampaignEvent(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.CampaignPayload)
	if !ok {
		return nil
	}
	message := fmt.Sprintf("Created %s campaign %q", payload.Channel, payload.Name)
	return r.record(ctx, domain.ActivityCampaignCreated, message)
}

func (r *ActivityRecorder) record(ctx context.Context, activityType domain.ActivityType, message string) error {
	activity := &domain.Activity{
		Type:    activityType,
		Message: message,
		Status:  domain.ActivityStatusSuccess,
	}
	if err := r.activities.Create(ctx, activity); err != nil {
		r.logger.Warn("failed to record activity",
			zap.String("type", string(activityType)), zap.Error(err))
		return err
	}
	return nil
}
