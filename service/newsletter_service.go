package service

import (
	"errors"
	"fmt"
	"strings"

	"portfolio/metrics"
	"portfolio/models"

	"gorm.io/gorm"
)

// ErrAlreadySubscribed is returned when the email already has a subscriber row.
var ErrAlreadySubscribed = errors.New("email already subscribed")

// NewsletterService handles newsletter subscription logic.
type NewsletterService struct {
	db *gorm.DB
}

// NewNewsletterService constructs a newsletter service
func NewNewsletterService(db *gorm.DB) *NewsletterService {
	return &NewsletterService{db: db}
}

// Subscribe stores a subscriber row for email, or returns ErrAlreadySubscribed.
//
// The existence check and the insert are two separate statements; two
// concurrent requests for the same email can both pass the check. The unique
// index on the email column is the actual guarantee, so a duplicate-key
// failure at insert time maps to ErrAlreadySubscribed as well.
func (s *NewsletterService) Subscribe(email string) (*models.NewsletterSubscriber, error) {
	var existing models.NewsletterSubscriber
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		metrics.NewsletterConflictsTotal.Inc()
		return nil, ErrAlreadySubscribed
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check subscriber: %w", err)
	}

	sub := models.NewsletterSubscriber{Email: email}
	if err := s.db.Create(&sub).Error; err != nil {
		if isDuplicateKey(err) {
			metrics.NewsletterConflictsTotal.Inc()
			return nil, ErrAlreadySubscribed
		}
		return nil, fmt.Errorf("failed to store subscriber: %w", err)
	}

	metrics.NewsletterSubscriptionsTotal.Inc()
	return &sub, nil
}

// List returns all subscribers, most recent first.
func (s *NewsletterService) List() ([]models.NewsletterSubscriber, error) {
	subscribers := make([]models.NewsletterSubscriber, 0)
	if err := s.db.Order("subscribed_at DESC").Find(&subscribers).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	return subscribers, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Fallback for driver errors the gorm translator does not cover.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
