// Package compile dispatches a configured build tree to its native build driver
package compile

import (
	"context"
	"fmt"

	"github.com/gomeson/gomeson/pkg/backend"
	"github.com/gomeson/gomeson/pkg/interfaces"
	"github.com/gomeson/gomeson/pkg/introspect"
	"github.com/gomeson/gomeson/pkg/logger"
	"github.com/gomeson/gomeson/pkg/types"
	"github.com/gomeson/gomeson/pkg/utils"
)

// Compiler translates normalized compile options into a backend-specific
// driver invocation and relays the driver's exit status.
type Compiler struct {
	logger   logger.Logger
	runner   interfaces.CommandRunner
	notifier interfaces.Notifier
	resolver *backend.Resolver
	fs       *utils.FileSystemUtils
}

// New creates a new compiler
func New(log logger.Logger, runner interfaces.CommandRunner, notifier interfaces.Notifier) *Compiler {
	return &Compiler{
		logger:   log,
		runner:   runner,
		notifier: notifier,
		resolver: backend.NewResolver(log),
		fs:       utils.NewFileSystemUtils(),
	}
}

// Compile runs one dispatch: validate the build directory, recover the
// configured backend, resolve and synthesize the driver invocation, spawn
// it, and return the driver's exit status unchanged. Any error means no
// driver was spawned, except the spawn failure itself.
func (c *Compiler) Compile(ctx context.Context, opts types.CompileOptions) (int, error) {
	if !c.fs.Exists(opts.BuildDir) {
		return 0, fmt.Errorf("%w: path to builddir %s does not exist", ErrInvalidBuildDir, opts.BuildDir)
	}
	if !c.fs.IsDirectory(opts.BuildDir) {
		return 0, fmt.Errorf("%w: builddir path should be a directory", ErrInvalidBuildDir)
	}

	backendName, err := introspect.Backend(opts.BuildDir)
	if err != nil {
		return 0, err
	}
	log := c.logger.WithBackend(backendName)

	inv, err := c.resolver.Invocation(backendName, opts)
	if err != nil {
		return 0, err
	}
	log.Debug("Dispatching: " + inv.String())

	status, err := c.runner.Run(ctx, inv)
	if err != nil {
		return 0, err
	}

	if c.notifier != nil {
		if status == 0 {
			c.notifier.NotifyBuildSuccess(backendName)
		} else {
			c.notifier.NotifyBuildFailure(backendName, status)
		}
	}

	return status, nil
}
