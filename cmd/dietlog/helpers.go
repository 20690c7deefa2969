// Shared helpers for dietlog CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dietlog/internal/app"
	"github.com/mesh-intelligence/dietlog/pkg/types"
)

// codedError carries the exit code for an error returned by a command.
type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

func userError(err error) error { return &codedError{code: exitUserError, err: err} }
func sysError(err error) error  { return &codedError{code: exitSysError, err: err} }

// withApp opens storage per the loaded settings, runs fn, and closes it.
func withApp(fn func(a *app.App) error) error {
	dataDir, err := resolveDataDir()
	if err != nil {
		return sysError(fmt.Errorf("resolve data dir: %w", err))
	}
	a, err := app.Open(types.Config{Backend: cfg.backend, DataDir: dataDir}, logger)
	if err != nil {
		return sysError(err)
	}
	runErr := fn(a)
	if err := a.Close(); err != nil && runErr == nil {
		return sysError(fmt.Errorf("close storage: %w", err))
	}
	return runErr
}

// emit writes v as indented JSON when --json is set, otherwise calls text.
func emit(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	out := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	text(tw)
	return tw.Flush()
}

// readJSONFile decodes the JSON document at path, or stdin when path is "-".
func readJSONFile(cmd *cobra.Command, path string, v any) error {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return userError(err)
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return userError(fmt.Errorf("parse %s: %w", path, err))
	}
	return nil
}

// validation marks validation failures as user errors and anything else as
// a system error.
func validation(err error) error {
	if _, ok := types.IsValidation(err); ok {
		return userError(err)
	}
	return sysError(err)
}

func notFound(what, id string) error {
	return userError(fmt.Errorf("%s %q not found", what, id))
}
