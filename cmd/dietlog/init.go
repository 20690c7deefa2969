package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dietlog/internal/paths"
	"github.com/mesh-intelligence/dietlog/pkg/dietlog"
	"github.com/mesh-intelligence/dietlog/pkg/types"
)

var initBackend string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize dietlog configuration and storage",
	Long: `Create the configuration and data directories, write config.yaml if it
is missing, and initialize the storage backend.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initBackend, "backend", types.BackendSQLite, "storage backend written to a new config.yaml (sqlite, file, memory)")
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := (types.Config{Backend: initBackend}).Validate(); err != nil {
		return userError(fmt.Errorf("backend %q: %w", initBackend, err))
	}
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return sysError(err)
	}

	dataDir := ""
	if flagDataDir != "" {
		if dataDir, err = filepath.Abs(flagDataDir); err != nil {
			return sysError(err)
		}
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}
	if err := writeConfigIfMissing(filepath.Join(configDir, configFileExt), initBackend, dataDir); err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}

	if err := setup(cmd); err != nil {
		return err
	}
	resolved, err := resolveDataDir()
	if err != nil {
		return sysError(err)
	}
	s, err := dietlog.OpenStorage(types.Config{Backend: cfg.backend, DataDir: resolved})
	if err != nil {
		return sysError(fmt.Errorf("initialize storage: %w", err))
	}
	if err := s.Close(); err != nil {
		return sysError(fmt.Errorf("finalize storage: %w", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "dietlog initialized (config %s, data %s)\n", configDir, resolved)
	return nil
}
