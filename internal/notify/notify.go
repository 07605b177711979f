// Package notify emits best-effort desktop notifications.
package notify

import (
	"github.com/gen2brain/beeep"

	"github.com/ymatsumoto/startpage/internal/logger"
)

// Notifier delivers a one-shot notification to the user. Implementations
// are best effort: delivery failure is never an error the caller handles.
type Notifier interface {
	Notify(title, body string)
}

// Desktop sends notifications through the platform notification daemon.
type Desktop struct {
	icon   string
	logger logger.Logger
}

// NewDesktop creates a desktop notifier. icon is a path to a fixed
// placeholder asset and may be empty.
func NewDesktop(icon string, log logger.Logger) *Desktop {
	return &Desktop{icon: icon, logger: log}
}

// Notify shows the notification. On platforms without a notification
// daemon (or when the user denied them) this fails quietly: the error is
// logged at debug level and swallowed.
func (d *Desktop) Notify(title, body string) {
	if err := beeep.Notify(title, body, d.icon); err != nil {
		d.logger.Debug("desktop notification failed",
			logger.String("title", title), logger.Error(err))
	}
}

// Discard drops every notification. Used when notifications are disabled.
type Discard struct{}

func (Discard) Notify(string, string) {}
