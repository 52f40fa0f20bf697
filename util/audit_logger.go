package util

import (
	"encoding/json"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/datacare-saude/datacare-backend/model"
)

// AuditEventType represents different types of service events
type AuditEventType string

const (
	EventEndpointCall  AuditEventType = "ENDPOINT_CALL"
	EventLoginSuccess  AuditEventType = "LOGIN_SUCCESS"
	EventLoginFailure  AuditEventType = "LOGIN_FAILURE"
	EventPredictFailed AuditEventType = "PREDICT_FAILED"
	EventRateLimited   AuditEventType = "RATE_LIMIT_EXCEEDED"
)

// AuditEvent represents a service event to be logged
type AuditEvent struct {
	EventType AuditEventType
	IP        string
	UserAgent string
	Message   string
	Details   map[string]interface{}
}

var auditDB *gorm.DB

// SetAuditLoggerDB sets the gorm DB instance used to persist audit events.
// Call this during application startup after DB initialization.
func SetAuditLoggerDB(db *gorm.DB) {
	auditDB = db
}

// sanitizeLogValue removes newlines and other characters that could break
// log parsing, and truncates very long values to prevent log flooding.
func sanitizeLogValue(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\t", " ")
	if len(value) > 200 {
		value = value[:200] + "..."
	}
	return value
}

// LogAuditEvent writes the event to the structured log and, when a DB has
// been configured, persists it best-effort to the audit_logs table. It
// never returns an error: auditing must not fail the operation it records.
func LogAuditEvent(event AuditEvent) {
	logrus.WithFields(logrus.Fields{
		"event":      sanitizeLogValue(string(event.EventType)),
		"ip":         sanitizeLogValue(event.IP),
		"user_agent": sanitizeLogValue(event.UserAgent),
	}).Info(sanitizeLogValue(event.Message))

	if auditDB == nil {
		return
	}

	var details datatypes.JSON
	if event.Details != nil {
		if b, err := json.Marshal(event.Details); err == nil {
			details = datatypes.JSON(b)
		}
	}

	entry := model.AuditLog{
		EventType: string(event.EventType),
		IP:        event.IP,
		UserAgent: event.UserAgent,
		Message:   event.Message,
		Details:   details,
	}
	if err := auditDB.Create(&entry).Error; err != nil {
		logrus.WithError(err).Warn("failed to persist audit event")
	}
}

// LogRateLimitExceeded records a rate-limited request.
func LogRateLimitExceeded(ip, endpoint string) {
	LogAuditEvent(AuditEvent{
		EventType: EventRateLimited,
		IP:        ip,
		Message:   "rate limit exceeded on " + endpoint,
		Details:   map[string]interface{}{"endpoint": endpoint},
	})
}
