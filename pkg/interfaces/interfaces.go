// Package interfaces provides abstractions for dependency injection and testability
package interfaces

import (
	"context"

	"github.com/gomeson/gomeson/pkg/types"
)

// CommandRunner spawns a resolved driver invocation and relays its exit status.
// The child shares the caller's stdout/stderr; a nonzero exit is reported via
// the returned status, not the error.
type CommandRunner interface {
	Run(ctx context.Context, inv types.DriverInvocation) (int, error)
}

// Notifier reports dispatch completion to the user
type Notifier interface {
	NotifyBuildSuccess(backend string)
	NotifyBuildFailure(backend string, status int)
}
