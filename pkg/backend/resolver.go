// Package backend resolves build drivers and synthesizes their command lines
package backend

import (
	"fmt"
	"os"

	"github.com/gomeson/gomeson/pkg/logger"
	"github.com/gomeson/gomeson/pkg/types"
	"github.com/gomeson/gomeson/pkg/utils"
)

// NinjaEnvVar overrides ninja-family runner resolution when set and non-empty
const NinjaEnvVar = "NINJA"

// Resolver locates build drivers and builds their invocations
type Resolver struct {
	fs     *utils.FileSystemUtils
	logger logger.Logger
}

// NewResolver creates a new backend resolver
func NewResolver(log logger.Logger) *Resolver {
	return &Resolver{
		fs:     utils.NewFileSystemUtils(),
		logger: log,
	}
}

// runnerStrategy is one step of prioritized runner resolution. It returns
// the resolved runner name, or "" when this step finds nothing.
type runnerStrategy struct {
	name  string
	probe func() string
}

// ResolveNinjaRunner locates a ninja-compatible runner. Resolution order:
// operator override > primary tool > fallback tool.
func (r *Resolver) ResolveNinjaRunner() (string, error) {
	strategies := []runnerStrategy{
		{
			name: "environment override",
			probe: func() string {
				return os.Getenv(NinjaEnvVar)
			},
		},
		{
			name: "ninja on PATH",
			probe: func() string {
				if r.fs.FindExecutable("ninja") != "" {
					return "ninja"
				}
				return ""
			},
		},
		{
			name: "samu on PATH",
			probe: func() string {
				if r.fs.FindExecutable("samu") != "" {
					return "samu"
				}
				return ""
			},
		},
	}

	for _, s := range strategies {
		if runner := s.probe(); runner != "" {
			r.logger.Info("Found runner: "+runner, logger.WithField("via", s.name))
			return runner, nil
		}
	}

	return "", ErrDriverNotFound
}

// Invocation resolves the driver for the configured backend and synthesizes
// its full command line from the compile options.
func (r *Resolver) Invocation(backend string, opts types.CompileOptions) (types.DriverInvocation, error) {
	switch types.ClassifyBackend(backend) {
	case types.FamilyNinja:
		runner, err := r.ResolveNinjaRunner()
		if err != nil {
			return types.DriverInvocation{}, err
		}
		return SynthesizeNinja(runner, opts), nil

	case types.FamilyVS:
		solution := ResolveSolution(opts.BuildDir)
		return SynthesizeVS(solution, opts, r.logger), nil

	default:
		return types.DriverInvocation{}, fmt.Errorf(
			"%w: backend `%s` is not yet supported by `compile`, use generated project files directly instead",
			ErrUnsupportedBackend, backend)
	}
}
