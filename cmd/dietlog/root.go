// Root command and global flags for the dietlog CLI.
package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dietlog/internal/logging"
	"github.com/mesh-intelligence/dietlog/internal/paths"
	"github.com/mesh-intelligence/dietlog/pkg/dietlog"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// cfg holds the settings loaded from config.yaml by PersistentPreRunE.
var cfg settings

// logger is built from cfg before any subcommand runs.
var logger logrus.FieldLogger = logging.Discard()

var rootCmd = &cobra.Command{
	Use:           "dietlog",
	Short:         "dietlog tracks meals, diet plans, recipes and a nutrition blog",
	Version:       dietlog.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd == versionCmd || cmd == initCmd {
			return nil
		}
		return setup(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/dietlog)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $XDG_DATA_HOME/dietlog)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(recipeCmd)
	rootCmd.AddCommand(blogCmd)
	rootCmd.AddCommand(mealCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(shoppingCmd)
	rootCmd.AddCommand(goalsCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads config.yaml and builds the logger.
func setup(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return sysError(err)
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return sysError(err)
	}
	cfg = settingsFrom(v)

	l, err := logging.New(logging.Config{
		Level:        cfg.logLevel,
		Out:          cmd.ErrOrStderr(),
		LogstashURL:  cfg.logstashURL,
		ElasticURL:   cfg.elasticURL,
		ElasticIndex: cfg.elasticIndex,
	})
	if err != nil {
		return userError(err)
	}
	logger = l
	return nil
}

// resolveDataDir returns the data directory: --data-dir flag >
// DIETLOG_DATA_DIR env > config.yaml data_dir > platform default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, cfg.dataDir)
}
