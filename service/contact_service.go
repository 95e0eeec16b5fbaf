package service

import (
	"fmt"
	"log"

	"portfolio/mail"
	"portfolio/metrics"
	"portfolio/models"

	"gorm.io/gorm"
)

// ContactService handles contact message storage and listing.
type ContactService struct {
	db     *gorm.DB
	mailer *mail.Mailer
}

// NewContactService constructs a contact service
func NewContactService(db *gorm.DB, mailer *mail.Mailer) *ContactService {
	return &ContactService{db: db, mailer: mailer}
}

// Submit stores one contact message. Values are persisted exactly as
// submitted; duplicates are allowed. When a mailer is configured, the owner
// notification is best-effort: a send failure is logged, never surfaced.
func (s *ContactService) Submit(req models.ContactCreate) (*models.ContactMessage, error) {
	msg := models.ContactMessage{
		Name:    *req.Name,
		Email:   *req.Email,
		Message: *req.Message,
	}

	if err := s.db.Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}
	metrics.ContactMessagesTotal.Inc()

	if s.mailer != nil {
		if err := s.mailer.SendContactNotification(&msg); err != nil {
			log.Printf("Warning: contact notification failed: %v", err)
		}
	}

	return &msg, nil
}

// List returns all contact messages, most recent first.
// The slice is non-nil even when no rows exist.
func (s *ContactService) List() ([]models.ContactMessage, error) {
	messages := make([]models.ContactMessage, 0)
	if err := s.db.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}
