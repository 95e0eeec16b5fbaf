package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"portfolio/database"
	"portfolio/models"
	"portfolio/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler maps HTTP routes onto store operations. It is stateless across
// requests; everything it needs is fixed at construction time.
type Handler struct {
	services *service.Services
	db       *gorm.DB
	siteRoot string
}

// New constructs the handler layer
func New(services *service.Services, db *gorm.DB, siteRoot string) *Handler {
	return &Handler{services: services, db: db, siteRoot: siteRoot}
}

// Register wires all routes onto the router. Static site assets are served
// from the NoRoute fallback so they never shadow the API group.
func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/contact", h.SubmitContact)
		api.POST("/newsletter", h.SubscribeNewsletter)
		api.POST("/analytics", h.RecordAnalyticsEvent)

		api.GET("/admin/messages", h.ListMessages)
		api.GET("/admin/subscribers", h.ListSubscribers)
		api.GET("/admin/analytics", h.ListAnalyticsEvents)

		api.GET("/health", h.HealthCheck)
	}

	r.NoRoute(h.ServeSite)
}

// SubmitContact handles contact form submissions
func (h *Handler) SubmitContact(c *gin.Context) {
	var req models.ContactCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	if _, err := h.services.Contact.Submit(req); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Your message has been sent successfully!",
	})
}

// SubscribeNewsletter handles newsletter subscriptions
func (h *Handler) SubscribeNewsletter(c *gin.Context) {
	var req models.NewsletterSubscribe
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Email is required")
		return
	}

	if _, err := h.services.Newsletter.Subscribe(*req.Email); err != nil {
		if errors.Is(err, service.ErrAlreadySubscribed) {
			respondError(c, http.StatusConflict, "Email already subscribed")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thank you for subscribing to our newsletter!",
	})
}

// ListMessages returns all stored contact messages, most recent first
func (h *Handler) ListMessages(c *gin.Context) {
	messages, err := h.services.Contact.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "messages": messages})
}

// ListSubscribers returns all newsletter subscribers, most recent first
func (h *Handler) ListSubscribers(c *gin.Context) {
	subscribers, err := h.services.Newsletter.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "subscribers": subscribers})
}

// RecordAnalyticsEvent stores one analytics event
func (h *Handler) RecordAnalyticsEvent(c *gin.Context) {
	var req models.AnalyticsEventCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Event type is required")
		return
	}

	event, err := h.services.Analytics.Record(req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if event != nil {
			// Stored but pruning failed; the submission itself succeeded.
			c.JSON(http.StatusOK, gin.H{"success": true, "event_id": event.ID})
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "event_id": event.ID})
}

// ListAnalyticsEvents returns recent analytics events, optionally filtered
// by `type`, capped by `limit`.
func (h *Handler) ListAnalyticsEvents(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n <= 0 {
			respondError(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	events, err := h.services.Analytics.List(c.Query("type"), limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "events": events})
}

// HealthCheck reports process and store health
func (h *Handler) HealthCheck(c *gin.Context) {
	dbHealthy := database.Healthy(c.Request.Context(), h.db)

	health := gin.H{
		"status":     "healthy",
		"timestamp":  time.Now().Unix(),
		"db_healthy": dbHealthy,
	}

	if !dbHealthy {
		health["status"] = "degraded"
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}

	c.JSON(http.StatusOK, health)
}

// ServeSite delivers static site assets from the site root. The root path
// resolves to the index document; missing files get the file server's 404.
func (h *Handler) ServeSite(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.Status(http.StatusNotFound)
		return
	}

	c.FileFromFS(c.Request.URL.Path, http.Dir(h.siteRoot))
}
