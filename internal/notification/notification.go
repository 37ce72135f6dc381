// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"sync"

	"github.com/gen2brain/beeep"

	"github.com/zhubert/dock/internal/logger"
)

// AppName is the notification title prefix.
const AppName = "dock"

// NotifyFunc sends one notification. beeep.Notify satisfies it.
type NotifyFunc func(title, message string, icon any) error

var (
	mu     sync.Mutex
	notify NotifyFunc = beeep.Notify
)

// SetNotifier replaces the notification function. Used by tests.
func SetNotifier(fn NotifyFunc) {
	mu.Lock()
	defer mu.Unlock()
	notify = fn
}

// ResetNotifier restores beeep as the notification function.
func ResetNotifier() {
	SetNotifier(beeep.Notify)
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	mu.Lock()
	fn := notify
	mu.Unlock()

	log := logger.ComponentLogger("notification")
	log.Debug("sending notification", "title", title, "message", message)
	// Empty icon lets beeep pick the platform default.
	err := fn(title, message, "")
	if err != nil {
		log.Warn("failed to send notification", "error", err)
	}
	return err
}

// CommandFailed reports a failed panel command for a project.
func CommandFailed(command, project string, err error) error {
	msg := command + " failed: " + err.Error()
	if project != "" {
		msg = project + ": " + msg
	}
	return Send(AppName, msg)
}
