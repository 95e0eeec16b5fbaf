package service

import (
	"fmt"

	"portfolio/metrics"
	"portfolio/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// defaultAnalyticsListLimit caps listings when the caller passes no limit.
const defaultAnalyticsListLimit = 1000

// AnalyticsService records and lists site analytics events.
type AnalyticsService struct {
	db        *gorm.DB
	maxEvents int
}

// NewAnalyticsService constructs an analytics service. maxEvents bounds the
// retained rows; 0 or negative disables pruning.
func NewAnalyticsService(db *gorm.DB, maxEvents int) *AnalyticsService {
	return &AnalyticsService{db: db, maxEvents: maxEvents}
}

// Record stores one event with a server-assigned UUID, capturing the client
// address and user agent, then prunes the oldest rows beyond the retention cap.
func (s *AnalyticsService) Record(req models.AnalyticsEventCreate, ip, userAgent string) (*models.AnalyticsEvent, error) {
	event := models.AnalyticsEvent{
		ID:        uuid.NewString(),
		EventType: *req.EventType,
		Page:      req.Page,
		SessionID: req.SessionID,
		Referrer:  req.Referrer,
		IP:        ip,
		UserAgent: userAgent,
	}

	if err := s.db.Create(&event).Error; err != nil {
		return nil, fmt.Errorf("failed to store analytics event: %w", err)
	}
	metrics.AnalyticsEventsTotal.Inc()

	if err := s.prune(); err != nil {
		// Retention is housekeeping; the event itself is already stored.
		return &event, fmt.Errorf("failed to prune analytics events: %w", err)
	}

	return &event, nil
}

// List returns up to limit events, most recent first, optionally filtered
// by event type.
func (s *AnalyticsService) List(eventType string, limit int) ([]models.AnalyticsEvent, error) {
	if limit <= 0 {
		limit = defaultAnalyticsListLimit
	}

	q := s.db.Order("created_at DESC").Limit(limit)
	if eventType != "" {
		q = q.Where("event_type = ?", eventType)
	}

	events := make([]models.AnalyticsEvent, 0)
	if err := q.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list analytics events: %w", err)
	}
	return events, nil
}

func (s *AnalyticsService) prune() error {
	if s.maxEvents <= 0 {
		return nil
	}

	var count int64
	if err := s.db.Model(&models.AnalyticsEvent{}).Count(&count).Error; err != nil {
		return err
	}
	excess := count - int64(s.maxEvents)
	if excess <= 0 {
		return nil
	}

	var victims []models.AnalyticsEvent
	if err := s.db.Order("created_at ASC").Limit(int(excess)).Find(&victims).Error; err != nil {
		return err
	}

	ids := make([]string, 0, len(victims))
	for _, v := range victims {
		ids = append(ids, v.ID)
	}

	return s.db.Where("id IN ?", ids).Delete(&models.AnalyticsEvent{}).Error
}
