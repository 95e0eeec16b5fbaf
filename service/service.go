package service

import (
	"portfolio/config"
	"portfolio/mail"

	"gorm.io/gorm"
)

// Services is the service container handed to the HTTP layer.
type Services struct {
	Contact    *ContactService
	Newsletter *NewsletterService
	Analytics  *AnalyticsService
}

// NewServices constructs all services over the shared store handle.
// mailer may be nil, which disables contact notifications.
func NewServices(db *gorm.DB, cfg *config.Config, mailer *mail.Mailer) *Services {
	return &Services{
		Contact:    NewContactService(db, mailer),
		Newsletter: NewNewsletterService(db),
		Analytics:  NewAnalyticsService(db, cfg.AnalyticsMaxEvents),
	}
}
