//go:build tools

// Package tools imports development dependencies to ensure they're tracked in go.mod.
// This follows Go best practices for managing tool dependencies.
// Install tools with: go install -tags tools ./...
package tools

import (
	// Linting and formatting
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "golang.org/x/tools/cmd/goimports"

	// Testing tools
	_ "gotest.tools/gotestsum"

	// Security scanning
	_ "github.com/securego/gosec/v2/cmd/gosec"
)
