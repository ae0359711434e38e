package compile

import "errors"

// ErrInvalidBuildDir indicates the build directory does not exist or is
// not a directory
var ErrInvalidBuildDir = errors.New("invalid build directory")
