package models

import (
	"time"
)

// ContactMessage is a stored contact form submission.
// Rows are append-only: nothing updates or deletes them.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the historical table name
func (ContactMessage) TableName() string {
	return "contact_messages"
}

// NewsletterSubscriber is a stored newsletter subscription.
// The unique index on email is the actual duplicate guarantee; the
// service-level existence check alone is not safe under concurrency.
type NewsletterSubscriber struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	SubscribedAt time.Time `gorm:"autoCreateTime" json:"subscribed_at"`
}

// TableName keeps the historical table name
func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}

// AnalyticsEvent is a site analytics event. The ID is a server-assigned UUID;
// ip and user_agent are captured from the request, never from the body.
type AnalyticsEvent struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	EventType string    `gorm:"not null;index" json:"event_type"`
	Page      string    `json:"page,omitempty"`
	SessionID string    `gorm:"index" json:"session_id,omitempty"`
	Referrer  string    `json:"referrer,omitempty"`
	IP        string    `json:"ip,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for AnalyticsEvent
func (AnalyticsEvent) TableName() string {
	return "analytics_events"
}

// ContactCreate request payload for a contact form submission.
// Pointer fields make `required` a pure presence check: a key set to an
// empty string still passes, matching the historical behavior.
type ContactCreate struct {
	Name    *string `json:"name" binding:"required"`
	Email   *string `json:"email" binding:"required"`
	Message *string `json:"message" binding:"required"`
}

// NewsletterSubscribe request payload for a newsletter subscription
type NewsletterSubscribe struct {
	Email *string `json:"email" binding:"required"`
}

// AnalyticsEventCreate request payload for an analytics event
type AnalyticsEventCreate struct {
	EventType *string `json:"event_type" binding:"required"`
	Page      string  `json:"page"`
	SessionID string  `json:"session_id"`
	Referrer  string  `json:"referrer"`
}
