//go:build mage

// Package main provides build targets for dietlog using Mage.
//
// Usage:
//
//	mage build      Compile the dietlog binary to bin/
//	mage test       Run all tests
//	mage race       Run all tests with the race detector
//	mage cover      Write coverage.out and print per-function coverage
//	mage lint       Run golangci-lint
//	mage clean      Remove build artifacts
//	mage install    Install dietlog to GOPATH/bin
//	mage serve      Build and serve the HTTP API on a scratch data directory
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo        = "go"
	binLint      = "golangci-lint"
	binaryName   = "dietlog"
	binaryDir    = "bin"
	cmdDir       = "./cmd/dietlog"
	coverProfile = "coverage.out"
	scratchDir   = ".dietlog-dev"
)

// Build compiles the dietlog binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Race runs all tests with the race detector. The stores are shared by
// concurrent HTTP handlers.
func Race() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Cover writes a coverage profile and prints the per-function summary.
func Cover() error {
	if err := sh.RunV(binGo, "test", "-coverprofile="+coverProfile, "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func="+coverProfile)
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	for _, p := range []string{binaryDir, coverProfile, scratchDir} {
		if err := os.RemoveAll(p); err != nil {
			return err
		}
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}

// Serve builds the binary and serves the HTTP API with config and data kept
// under .dietlog-dev/.
func Serve() error {
	mg.Deps(Build)
	env := map[string]string{
		"DIETLOG_CONFIG_DIR": filepath.Join(scratchDir, "config"),
		"DIETLOG_DATA_DIR":   filepath.Join(scratchDir, "data"),
		"DIETLOG_LOG_LEVEL":  "debug",
	}
	return sh.RunWithV(env, filepath.Join(binaryDir, binaryName), "serve")
}
