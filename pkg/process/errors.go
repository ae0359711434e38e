package process

import "errors"

// ErrSpawnFailed indicates the resolved driver could not be started
var ErrSpawnFailed = errors.New("failed to spawn build driver")
