// Package notifier provides build completion notifications
package notifier

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/gomeson/gomeson/pkg/logger"
)

// Config represents notification configuration
type Config struct {
	Enabled bool
}

// BuildNotifier reports dispatch results as desktop notifications
type BuildNotifier struct {
	enabled bool
	logger  logger.Logger
}

// New creates a new build notifier
func New(config Config, log logger.Logger) *BuildNotifier {
	return &BuildNotifier{
		enabled: config.Enabled,
		logger:  log,
	}
}

// NotifyBuildSuccess notifies that the dispatched build succeeded
func (n *BuildNotifier) NotifyBuildSuccess(backend string) {
	if !n.enabled {
		return
	}

	n.send("Build Succeeded", fmt.Sprintf("%s build completed", backend))
}

// NotifyBuildFailure notifies that the dispatched build failed
func (n *BuildNotifier) NotifyBuildFailure(backend string, status int) {
	if !n.enabled {
		return
	}

	n.send("Build Failed", fmt.Sprintf("%s build exited with status %d", backend, status))
}

// send delivers a notification, falling back to the log when the platform
// refuses. Notification failures never affect the compile result.
func (n *BuildNotifier) send(title, message string) {
	if err := beeep.Notify(title, message, ""); err != nil {
		if n.logger != nil {
			n.logger.Debug(fmt.Sprintf("notification failed: %v", err))
		}
	}
}
