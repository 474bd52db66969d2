package logger

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// AuditAction describes one admin action recorded in the audit log.
type AuditAction struct {
	Action       string                 `json:"action"`        // e.g. "product_create", "order_status_update"
	UserID       string                 `json:"user_id"`       // acting user
	ResourceID   string                 `json:"resource_id"`   // affected entity id
	ResourceType string                 `json:"resource_type"` // e.g. "product", "order", "settings"
	IP           string                 `json:"ip"`
	UserAgent    string                 `json:"user_agent"`
	Details      map[string]interface{} `json:"details"`
	Timestamp    time.Time              `json:"timestamp"`
}

// LogAction writes an audit entry for an admin mutation performed through
// the given request context.
func LogAction(action string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = map[string]interface{}{}
	}

	audit := AuditAction{
		Action:    action,
		IP:        c.IP(),
		UserAgent: c.Get("User-Agent"),
		Details:   details,
		Timestamp: time.Now(),
	}

	if userID, ok := c.Locals("user_id").(string); ok {
		audit.UserID = userID
	}
	if requestID := c.Get("X-Request-ID"); requestID != "" {
		audit.Details["request_id"] = requestID
	}

	GetAuditLogger().WithFields(logrus.Fields{
		"action":        audit.Action,
		"user_id":       audit.UserID,
		"resource_id":   audit.ResourceID,
		"resource_type": audit.ResourceType,
		"ip":            audit.IP,
		"user_agent":    audit.UserAgent,
		"details":       audit.Details,
	}).Info("audit")
}
