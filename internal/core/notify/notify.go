// Package notify defines the transient notifications shown as toasts.
package notify

import "time"

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification represents a single notification event.
type Notification struct {
	Level     Level
	Message   string
	CreatedAt time.Time
}

// Info builds an info-level notification stamped with the current time.
func Info(msg string) Notification {
	return Notification{Level: LevelInfo, Message: msg, CreatedAt: time.Now()}
}

// Warning builds a warning-level notification stamped with the current time.
func Warning(msg string) Notification {
	return Notification{Level: LevelWarning, Message: msg, CreatedAt: time.Now()}
}

// Error builds an error-level notification stamped with the current time.
func Error(msg string) Notification {
	return Notification{Level: LevelError, Message: msg, CreatedAt: time.Now()}
}
