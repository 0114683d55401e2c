package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/leadsfynder/leadsfynder-api/internal/domain"
	"github.com/leadsfynder/leadsfynder-api/internal/persistence"
	"github.com/leadsfynder/leadsfynder-api/internal/repository"
)

const (
	dashboardCacheKey = "analytics:dashboard"
	dashboardCacheTTL = 60 * time.Second
	activityFeedLimit = 20
)

// DashboardStats aggregates the numbers shown on the dashboard.
type DashboardStats struct {
	TotalLeads      int     `json:"totalLeads"`
	VerifiedLeads   int     `json:"verifiedLeads"`
	EmailsSent      int     `json:"emailsSent"`
	EmailsOpened    int     `json:"emailsOpened"`
	RepliesReceived int     `json:"repliesReceived"`
	TodayFollowUps  int     `json:"todayFollowUps"`
	ConversionRate  float64 `json:"conversionRate"`
}

// AnalyticsService computes dashboard aggregates and serves the activity
// feed. Dashboard stats are cached in Redis briefly; a broken cache only
// costs the queries, never the response.
type AnalyticsService struct {
	leads      repository.LeadRepository
	campaigns  repository.EmailCampaignRepository
	activities repository.ActivityRepository
	cache      *persistence.Redis
	logger     *zap.Logger
}

// AnalyticsDependencies bundles requirements for the analytics service.
type AnalyticsDependencies struct {
	LeadRepo     repository.LeadRepository
	CampaignRepo repository.EmailCampaignRepository
	ActivityRepo repository.ActivityRepository
	Cache        *persistence.Redis
	Logger       *zap.Logger
}

// NewAnalyticsService constructs the service.
func NewAnalyticsService(deps AnalyticsDependencies) *AnalyticsService {
	return &AnalyticsService{
		leads:      deps.LeadRepo,
		campaigns:  deps.CampaignRepo,
		activities: deps.ActivityRepo,
		cache:      deps.Cache,
		logger:     deps.Logger,
	}
}

// Dashboard returns dashboard statistics, from cache when fresh.
func (s *AnalyticsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	if s.cache != nil {
		if cached, ok, err := s.cache.GetString(ctx, dashboardCacheKey); err == nil && ok {
			var stats DashboardStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	stats, err := s.computeDashboard(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.cache.SetString(ctx, dashboardCacheKey, string(payload), dashboardCacheTTL); err != nil {
				s.logger.Debug("dashboard cache write failed", zap.Error(err))
			}
		}
	}
	return stats, nil
}

func (s *AnalyticsService) computeDashboard(ctx context.Context) (*DashboardStats, error) {
	totalLeads, err := s.leads.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	verified, err := s.leads.CountVerified(ctx)
	if err != nil {
		return nil, err
	}
	followUps, err := s.leads.CountFollowUpsToday(ctx)
	if err != nil {
		return nil, err
	}
	totals, err := s.campaigns.Totals(ctx)
	if err != nil {
		return nil, err
	}

	conversionRate := 0.0
	if totals.Sent > 0 {
		conversionRate = float64(totals.Replied) / float64(totals.Sent) * 100
	}

	return &DashboardStats{
		TotalLeads:      totalLeads,
		VerifiedLeads:   verified,
		EmailsSent:      totals.Sent,
		EmailsOpened:    totals.Opened,
		RepliesReceived: totals.Replied,
		TodayFollowUps:  followUps,
		ConversionRate:  conversionRate,
	}, nil
}

// RecentActivity returns the latest feed entries.
func (s *AnalyticsService) RecentActivity(ctx context.Context) ([]domain.Activity, error) {
	return s.activities.ListRecent(ctx, activityFeedLimit)
}
