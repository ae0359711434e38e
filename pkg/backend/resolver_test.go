package backend_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gomeson/gomeson/pkg/backend"
	"github.com/gomeson/gomeson/pkg/logger"
	"github.com/gomeson/gomeson/pkg/types"
)

// fakeExecutable drops an executable file named name into dir
func fakeExecutable(t *testing.T, dir, name string) {
	t.Helper()

	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
		t.Fatal(err)
	}
}

func testLogger() logger.Logger {
	var buf bytes.Buffer
	return logger.CreateLoggerWithOutput("", "debug", &buf)
}

func TestResolveNinjaRunner_EnvOverride(t *testing.T) {
	binDir := t.TempDir()
	fakeExecutable(t, binDir, "ninja")
	t.Setenv("PATH", binDir)
	t.Setenv("NINJA", "custom-runner")

	r := backend.NewResolver(testLogger())
	runner, err := r.ResolveNinjaRunner()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Override wins even though ninja is on PATH
	if runner != "custom-runner" {
		t.Errorf("runner = %q, want custom-runner", runner)
	}
}

func TestResolveNinjaRunner_PreferNinjaOverSamu(t *testing.T) {
	binDir := t.TempDir()
	fakeExecutable(t, binDir, "ninja")
	fakeExecutable(t, binDir, "samu")
	t.Setenv("PATH", binDir)
	t.Setenv("NINJA", "")

	r := backend.NewResolver(testLogger())
	runner, err := r.ResolveNinjaRunner()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if runner != "ninja" {
		t.Errorf("runner = %q, want ninja", runner)
	}
}

func TestResolveNinjaRunner_SamuFallback(t *testing.T) {
	binDir := t.TempDir()
	fakeExecutable(t, binDir, "samu")
	t.Setenv("PATH", binDir)
	t.Setenv("NINJA", "")

	r := backend.NewResolver(testLogger())
	runner, err := r.ResolveNinjaRunner()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if runner != "samu" {
		t.Errorf("runner = %q, want samu", runner)
	}
}

func TestResolveNinjaRunner_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	t.Setenv("NINJA", "")

	r := backend.NewResolver(testLogger())
	_, err := r.ResolveNinjaRunner()
	if !errors.Is(err, backend.ErrDriverNotFound) {
		t.Fatalf("expected ErrDriverNotFound, got %v", err)
	}
}

func TestInvocation_UnsupportedBackend(t *testing.T) {
	tests := []string{"xcode", "none", ""}

	r := backend.NewResolver(testLogger())
	for _, name := range tests {
		t.Run("backend "+name, func(t *testing.T) {
			_, err := r.Invocation(name, types.CompileOptions{BuildDir: t.TempDir()})
			if !errors.Is(err, backend.ErrUnsupportedBackend) {
				t.Fatalf("expected ErrUnsupportedBackend, got %v", err)
			}
		})
	}
}

func TestInvocation_VSBackend(t *testing.T) {
	buildDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(buildDir, "project.sln"), []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	r := backend.NewResolver(testLogger())
	inv, err := r.Invocation("vs2019", types.CompileOptions{BuildDir: buildDir, Jobs: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Driver != "msbuild" {
		t.Errorf("driver = %q, want msbuild", inv.Driver)
	}
	if filepath.Base(inv.Args[0]) != "project.sln" {
		t.Errorf("first arg = %q, want the solution path", inv.Args[0])
	}
	if !filepath.IsAbs(inv.Args[0]) {
		t.Errorf("solution path %q is not absolute", inv.Args[0])
	}
}

func TestResolveSolution_InvariantViolations(t *testing.T) {
	tests := []struct {
		name      string
		solutions []string
	}{
		{
			name:      "no solutions",
			solutions: nil,
		},
		{
			name:      "two solutions",
			solutions: []string{"a.sln", "b.sln"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buildDir := t.TempDir()
			for _, s := range tt.solutions {
				if err := os.WriteFile(filepath.Join(buildDir, s), []byte(""), 0644); err != nil {
					t.Fatal(err)
				}
			}

			defer func() {
				if recover() == nil {
					t.Error("expected a panic for a broken solution count")
				}
			}()
			backend.ResolveSolution(buildDir)
		})
	}
}
