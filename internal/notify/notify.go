// Package notify wraps the host's notification service: capability
// detection, the tri-state permission, and raising reminders.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupported = errors.New("notifications are not supported")
	ErrNotGranted  = errors.New("notification permission not granted")
)

// Permission is the host-owned notification permission.
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// ParsePermission accepts "default", "granted" or "denied" (case-insensitive).
// An empty string means default.
func ParsePermission(s string) (Permission, error) {
	switch Permission(strings.ToLower(strings.TrimSpace(s))) {
	case "", PermissionDefault:
		return PermissionDefault, nil
	case PermissionGranted:
		return PermissionGranted, nil
	case PermissionDenied:
		return PermissionDenied, nil
	}
	return "", fmt.Errorf("unknown permission %q", s)
}

// Notification is a titled message shown by the host.
type Notification struct {
	Title string
	Body  string
}

const (
	ReminderTitle = "Reminder"
	fallbackText  = "Task"
)

// Reminder builds the notification raised for a task.
func Reminder(text string) Notification {
	return Notification{Title: ReminderTitle, Body: text}
}

// ReminderText returns the task text, or "Task" when it could not be found.
func ReminderText(text string, found bool) string {
	if !found || text == "" {
		return fallbackText
	}
	return text
}

// Host is the platform notification service.
type Host interface {
	Supported() bool
	Permission() Permission
	// RequestPermission asks the user and blocks until they answer or ctx ends.
	RequestPermission(ctx context.Context) (Permission, error)
	Show(n Notification) error
}

// Decision is what a reminder should do given the host's current state.
type Decision int

const (
	DecisionUnsupported Decision = iota
	DecisionSend
	DecisionRequest
	DecisionBlocked
)

func (d Decision) String() string {
	switch d {
	case DecisionUnsupported:
		return "unsupported"
	case DecisionSend:
		return "send"
	case DecisionRequest:
		return "request"
	case DecisionBlocked:
		return "blocked"
	}
	return "unknown"
}

// Decide picks the reminder branch for h.
func Decide(h Host) Decision {
	if h == nil || !h.Supported() {
		return DecisionUnsupported
	}
	switch h.Permission() {
	case PermissionGranted:
		return DecisionSend
	case PermissionDefault:
		return DecisionRequest
	}
	return DecisionBlocked
}

// ShouldPrime reports whether a permission request should be issued at startup.
func ShouldPrime(h Host) bool {
	return h != nil && h.Supported() && h.Permission() == PermissionDefault
}
