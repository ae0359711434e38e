// Package types provides core types for the compile front end
package types

import "strings"

// BackendFamily represents the driver family a configured backend maps to
type BackendFamily string

const (
	// FamilyNinja covers the ninja backend and drop-in compatible runners
	FamilyNinja BackendFamily = "ninja"
	// FamilyVS covers Visual Studio project backends (vs2010, vs2019, ...)
	FamilyVS BackendFamily = "vs"
	// FamilyUnsupported covers every backend this tool cannot dispatch to
	FamilyUnsupported BackendFamily = "unsupported"
)

// ClassifyBackend maps a backend identifier from the introspection data
// to its driver family.
func ClassifyBackend(backend string) BackendFamily {
	switch {
	case backend == "ninja":
		return FamilyNinja
	case strings.HasPrefix(backend, "vs"):
		return FamilyVS
	default:
		return FamilyUnsupported
	}
}

// CompileOptions is the normalized compile request. It is built once from
// the command line and never mutated.
type CompileOptions struct {
	// Jobs is the worker job limit. Values <= 0 mean "let the driver decide".
	Jobs int

	// LoadAverage is the system load ceiling to maintain. Values <= 0 mean unset.
	LoadAverage int

	// Clean requests cleaning the build directory instead of building.
	Clean bool

	// BuildDir is the configured build directory to dispatch into.
	BuildDir string

	// Notify requests a desktop notification when the driver finishes.
	Notify bool
}

// DriverInvocation is a resolved driver executable plus its argument
// vector, synthesized fresh for every compile call.
type DriverInvocation struct {
	Driver string
	Args   []string
}

// Argv returns the full command line including the driver itself.
func (d DriverInvocation) Argv() []string {
	return append([]string{d.Driver}, d.Args...)
}

// String renders the invocation for log output.
func (d DriverInvocation) String() string {
	return strings.Join(d.Argv(), " ")
}
