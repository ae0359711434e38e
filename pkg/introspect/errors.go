package introspect

import "errors"

// Sentinel errors for introspection reads.
// These enable reliable error checking with errors.Is()
var (
	// ErrConfigurationMissing indicates the introspection file or the
	// backend record inside it is absent
	ErrConfigurationMissing = errors.New("build configuration is missing")

	// ErrConfigurationCorrupt indicates the introspection file could not be parsed
	ErrConfigurationCorrupt = errors.New("build configuration is corrupt")
)
