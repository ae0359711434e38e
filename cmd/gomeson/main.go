// gomeson is a backend-agnostic compile front end for meson build trees.
package main

import (
	"errors"
	"os"

	"github.com/gomeson/gomeson/pkg/cli"
	"github.com/gomeson/gomeson/pkg/process"
)

var version = "1.0.0"

func main() {
	if err := cli.Execute(version); err != nil {
		// A dispatched driver's exit status passes through bit-for-bit
		var exitErr *process.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
