package backend

import (
	"path/filepath"
	"strconv"

	"github.com/gomeson/gomeson/pkg/types"
)

// SynthesizeNinja builds the argument vector for a ninja-compatible runner.
func SynthesizeNinja(runner string, opts types.CompileOptions) types.DriverInvocation {
	args := []string{"-C", filepath.ToSlash(opts.BuildDir)}

	// A value < 1 means don't pass -j at all, which lets ninja/samu
	// decide for themselves.
	if opts.Jobs > 0 {
		args = append(args, "-j", strconv.Itoa(opts.Jobs))
	}
	if opts.LoadAverage > 0 {
		args = append(args, "-l", strconv.Itoa(opts.LoadAverage))
	}
	if opts.Clean {
		args = append(args, "clean")
	}

	return types.DriverInvocation{
		Driver: runner,
		Args:   args,
	}
}
