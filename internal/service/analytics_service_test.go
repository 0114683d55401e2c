package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/leadsfynder/leadsfynder-api/internal/domain"
	"github.com/leadsfynder/leadsfynder-api/internal/repository"
)

// MockActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) ListRecent(ctx context.Context, limit int) ([]domain.Activity, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Activity), args.Error(1)
}

func TestDashboardAggregates(t *testing.T) {
	leads := new(MockLeadRepository)
	campaigns := new(MockEmailCampaignRepository)
	svc := NewAnalyticsService(AnalyticsDependencies{
		LeadRepo:     leads,
		CampaignRepo: campaigns,
		ActivityRepo: new(MockActivityRepository),
		Logger:       zap.NewNop(),
	})

	leads.On("CountAll", mock.Anything).Return(250, nil)
	leads.On("CountVerified", mock.Anything).Return(80, nil)
	leads.On("CountFollowUpsToday", mock.Anything).Return(5, nil)
	campaigns.On("Totals", mock.Anything).Return(repository.EmailCampaignTotals{Sent: 200, Opened: 120, Replied: 30}, nil)

	stats, err := svc.Dashboard(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 250, stats.TotalLeads)
	assert.Equal(t, 80, stats.VerifiedLeads)
	assert.Equal(t, 200, stats.EmailsSent)
	assert.Equal(t, 120, stats.EmailsOpened)
	assert.Equal(t, 30, stats.RepliesReceived)
	assert.Equal(t, 5, stats.TodayFollowUps)
	assert.InDelta(t, 15.0, stats.ConversionRate, 0.001)
}

func TestDashboardZeroSentHasZeroConversion(t *testing.T) {
	leads := new(MockLeadRepository)
	campaigns := new(MockEmailCampaignRepository)
	svc := NewAnalyticsService(AnalyticsDependencies{
		LeadRepo:     leads,
		CampaignRepo: campaigns,
		ActivityRepo: new(MockActivityRepository),
		Logger:       zap.NewNop(),
	})

	leads.On("CountAll", mock.Anything).Return(0, nil)
	leads.On("CountVerified", mock.Anything).Return(0, nil)
	leads.On("CountFollowUpsToday", mock.Anything).Return(0, nil)
	campaigns.On("Totals", mock.Anything).Return(repository.EmailCampaignTotals{}, nil)

	stats, err := svc.Dashboard(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, stats.ConversionRate)
}

func TestRecentActivityUsesFeedLimit(t *testing.T) {
	activities := new(MockActivityRepository)
	svc := NewAnalyticsService(AnalyticsDependencies{
		LeadRepo:     new(MockLeadRepository),
		CampaignRepo: new(MockEmailCampaignRepository),
		ActivityRepo: activities,
		Logger:       zap.NewNop(),
	})

	feed := []domain.Activity{{ID: "act-1", Type: domain.ActivityLeadAdded, Message: "New lead added"}}
	activities.On("ListRecent", mock.Anything, 20).Return(feed, nil)

	got, err := svc.RecentActivity(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	activities.AssertCalled(t, "ListRecent", mock.Anything, 20)
}
