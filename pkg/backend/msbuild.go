package backend

import (
	"fmt"
	"path/filepath"

	"github.com/gomeson/gomeson/pkg/logger"
	"github.com/gomeson/gomeson/pkg/types"
)

// msbuildTool is the fixed driver for Visual Studio project backends
const msbuildTool = "msbuild"

// ResolveSolution locates the single solution file the configuration step
// generated in buildDir. Zero or multiple matches mean the configuration
// subsystem is broken, not that the user made a mistake, so this panics
// instead of returning an error.
func ResolveSolution(buildDir string) string {
	solutions, err := filepath.Glob(filepath.Join(buildDir, "*.sln"))
	if err != nil {
		// filepath.Glob only fails on a malformed pattern; ours is fixed.
		panic(fmt.Sprintf("solution glob failed: %v", err))
	}
	if len(solutions) != 1 {
		panic(fmt.Sprintf("expected exactly one solution in %s, found %d", buildDir, len(solutions)))
	}

	abs, err := filepath.Abs(solutions[0])
	if err != nil {
		panic(fmt.Sprintf("cannot resolve solution path %s: %v", solutions[0], err))
	}
	return abs
}

// SynthesizeVS builds the argument vector for msbuild against a resolved
// solution file.
func SynthesizeVS(solution string, opts types.CompileOptions, log logger.Logger) types.DriverInvocation {
	args := []string{solution}

	// In msbuild `-m` with no number means "detect cpus"; the default
	// without the flag would be `-m1`.
	if opts.Jobs > 0 {
		args = append(args, fmt.Sprintf("-m%d", opts.Jobs))
	} else {
		args = append(args, "-m")
	}

	if opts.LoadAverage != 0 {
		log.Warn("Msbuild does not have a load-average switch, ignoring.")
	}
	if opts.Clean {
		args = append(args, "/t:Clean")
	}

	return types.DriverInvocation{
		Driver: msbuildTool,
		Args:   args,
	}
}
