package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kazzanonim/anonlink/internal/logger"
	"github.com/kazzanonim/anonlink/internal/models"
)

// recentMessagesLimit bounds the dashboard preview.
const recentMessagesLimit = 10

// DashboardLinkLister lists an owner's links.
type DashboardLinkLister interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.LinkDB, error)
}

// DashboardService aggregates per-owner stats for the dashboard page.
type DashboardService struct {
	links    DashboardLinkLister
	messages MessageReader
	now      func() time.Time
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(links DashboardLinkLister, messages MessageReader) *DashboardService {
	return NewDashboardServiceWithClock(links, messages, time.Now)
}

// NewDashboardServiceWithClock creates a DashboardService with an injected clock.
func NewDashboardServiceWithClock(links DashboardLinkLister, messages MessageReader, now func() time.Time) *DashboardService {
	return &DashboardService{links: links, messages: messages, now: now}
}

// Stats returns link and active-message counters plus a recent-message
// preview. An owner without links never triggers a message query.
func (svc *DashboardService) Stats(ctx context.Context, userID uuid.UUID) (*models.DashboardStats, error) {
	links, err := svc.links.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list links for dashboard", "user_id", userID, "err", err)
		return nil, err
	}

	stats := &models.DashboardStats{
		TotalLinks: len(links),
		Recent:     []models.MessageDB{},
	}
	if len(links) == 0 {
		return stats, nil
	}

	linkIDs := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		linkIDs = append(linkIDs, link.ID)
	}

	now := svc.now()

	count, err := svc.messages.CountActiveByLinkIDs(ctx, linkIDs, now)
	if err != nil {
		logger.Log.Errorw("failed to count messages for dashboard", "user_id", userID, "err", err)
		return nil, err
	}
	stats.ActiveMessages = count

	recent, err := svc.messages.ListActiveByLinkIDs(ctx, linkIDs, now, recentMessagesLimit)
	if err != nil {
		logger.Log.Errorw("failed to load recent messages", "user_id", userID, "err", err)
		return nil, err
	}
	stats.Recent = recent

	return stats, nil
}
