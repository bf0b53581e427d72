package router

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/drabdulwahidyusuf-sudo/uk-esim-mvp/internal/db"
	"github.com/drabdulwahidyusuf-sudo/uk-esim-mvp/internal/inbox"
	"github.com/drabdulwahidyusuf-sudo/uk-esim-mvp/internal/render"
	"github.com/drabdulwahidyusuf-sudo/uk-esim-mvp/pkg/logger"
	"github.com/drabdulwahidyusuf-sudo/uk-esim-mvp/pkg/middleware"
)

// Inbox defines the interface that the router needs for inbox operations
type Inbox interface {
	Ingest(msg inbox.Message, providerRaw string) (int64, error)
	Recent() ([]*db.SMSRecord, error)
}

type Router struct {
	engine *gin.Engine
	inbox  Inbox
}

// Options tunes per-route middleware. The zero value disables the webhook
// body cap.
type Options struct {
	MaxBodyBytes int64
}

func NewRouter(inboxService Inbox, opts Options) *Router {
	if inboxService == nil {
		panic("inbox service cannot be nil")
	}

	r := &Router{
		engine: gin.Default(),
		inbox:  inboxService,
	}

	r.engine.Use(
		middleware.RequestIDMiddleware(),
		middleware.SecurityHeadersMiddleware(),
		middleware.AuditLogMiddleware(),
	)

	// Configure routes
	r.engine.GET("/health", r.handleHealth)
	r.engine.GET("/", r.handleDashboard)
	r.engine.NoRoute(r.handleNotFound)

	webhook := r.engine.Group("/webhook")
	if opts.MaxBodyBytes > 0 {
		webhook.Use(middleware.RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	}
	webhook.POST("/sms", r.handleInboundSMS)

	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.engine.ServeHTTP(w, req)
}

func (r *Router) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (r *Router) handleNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}

// handleInboundSMS accepts a provider delivery notification. The payload
// shape is never validated: normalization degrades missing fields to
// fallback values, so the only failure path is persistence.
func (r *Router) handleInboundSMS(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		logger.Error("Failed to read webhook body", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	msg := inbox.Normalize(raw)

	id, err := r.inbox.Ingest(msg, string(raw))
	if err != nil {
		logger.Error("Failed to persist inbound SMS",
			zap.String("from", msg.From),
			zap.String("to", msg.To),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	logger.Info("SMS received",
		zap.Int64("id", id),
		zap.String("from", msg.From),
		zap.String("to", msg.To),
	)
	c.JSON(http.StatusOK, gin.H{"received": true})
}

func (r *Router) handleDashboard(c *gin.Context) {
	records, err := r.inbox.Recent()
	if err != nil {
		logger.Error("Failed to load recent records", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	var buf bytes.Buffer
	if err := render.Inbox(&buf, records); err != nil {
		logger.Error("Failed to render inbox", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
