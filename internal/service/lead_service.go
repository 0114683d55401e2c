package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/leadsfynder/leadsfynder-api/internal/domain"
	"github.com/leadsfynder/leadsfynder-api/internal/events"
	"github.com/leadsfynder/leadsfynder-api/internal/observability"
	"github.com/leadsfynder/leadsfynder-api/internal/repository"
	apperrors "github.com/leadsfynder/leadsfynder-api/pkg/util"
)

// LeadService coordinates lead CRUD and list filtering.
type LeadService struct {
	leads      repository.LeadRepository
	dispatcher events.Dispatcher
}

// NewLeadService constructs the service.
func NewLeadService(leads repository.LeadRepository, dispatcher events.Dispatcher) *LeadService {
	return &LeadService{leads: leads, dispatcher: dispatcher}
}

// LeadListQuery captures list endpoint parameters.
type LeadListQuery struct {
	Search string
	Status string
	Source string
	Page   int
	Limit  int
}

// Pagination describes the list response envelope.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// List returns leads matching the query plus pagination metadata. Results
// keep insertion order; "all" disables a filter like its absence does.
func (s *LeadService) List(ctx context.Context, q LeadListQuery) ([]domain.Lead, Pagination, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 50
	}

	filter := repository.LeadFilter{
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
	if q.Search != "" {
		filter.Search = &q.Search
	}
	if q.Status != "" && q.Status != "all" {
		status := domain.LeadStatus(q.Status)
		filter.Status = &status
	}
	if q.Source != "" && q.Source != "all" {
		filter.Source = &q.Source
	}

	total, err := s.leads.Count(ctx, filter)
	if err != nil {
		return nil, Pagination{}, err
	}
	leads, err := s.leads.List(ctx, filter)
	if err != nil {
		return nil, Pagination{}, err
	}

	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return leads, Pagination{Page: page, Limit: limit, Total: total, Pages: pages}, nil
}

// Get fetches one lead.
func (s *LeadService) Get(ctx context.Context, id string) (*domain.Lead, error) {
	lead, err := s.leads.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Lead")
		}
		return nil, err
	}
	return lead, nil
}

// Create validates and persists a lead, then publishes a lead_created event.
func (s *LeadService) Create(ctx context.Context, lead *domain.Lead) error {
	if lead.Status == "" {
		lead.Status = domain.LeadStatusNew
	}
	if err := validateLead(lead); err != nil {
		return err
	}
	if err := s.leads.Create(ctx, lead); err != nil {
		return err
	}
	observability.RecordLeadCreated()
	s.publish(ctx, events.EventLeadCreated, lead)
	return nil
}

// Update applies changes to an existing lead.
func (s *LeadService) Update(ctx context.Context, lead *domain.Lead) error {
	if err := validateLead(lead); err != nil {
		return err
	}
	if err := s.leads.Update(ctx, lead); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("Lead")
		}
		return err
	}
	s.publish(ctx, events.EventLeadUpdated, lead)
	return nil
}

// Delete removes a lead.
func (s *LeadService) Delete(ctx context.Context, id string) error {
	lead, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.leads.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("Lead")
		}
		return err
	}
	s.publish(ctx, events.EventLeadDeleted, lead)
	return nil
}

func validateLead(lead *domain.Lead) error {
	if lead.Name == "" {
		return apperrors.NewValidationError("Lead name is required", nil)
	}
	if !domain.ValidLeadStatus(lead.Status) {
		return apperrors.NewValidationError(
			fmt.Sprintf("Invalid lead status %q", lead.Status), nil)
	}
	if lead.Score < 0 || lead.Score > 100 {
		return apperrors.NewValidationError("Lead score must be between 0 and 100", nil)
	}
	return nil
}

func (s *LeadService) publish(ctx context.Context, eventType events.EventType, lead *domain.Lead) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload: events.LeadPayload{
			LeadID:  lead.ID,
			Name:    lead.Name,
			Company: lead.Company,
			Status:  lead.Status,
			Source:  lead.Source,
		},
	})
}
