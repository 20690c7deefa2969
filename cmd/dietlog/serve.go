package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dietlog/internal/app"
	"github.com/mesh-intelligence/dietlog/internal/httpapi"
	"github.com/mesh-intelligence/dietlog/pkg/types"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON HTTP API",
	Long: `Serve exposes recipes, posts, meals, the diet plan and goals over HTTP
until interrupted. The port defaults to server.port from config.yaml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		port := cfg.port
		if cmd.Flags().Changed("port") {
			port = servePort
		}
		if cfg.backend == types.BackendMemory {
			logger.Warn("memory backend: data is lost when the server stops")
		}
		gin.SetMode(gin.ReleaseMode)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return withApp(func(a *app.App) error {
			err := httpapi.New(a).ListenAndServe(ctx, fmt.Sprintf(":%d", port))
			if err != nil && !errors.Is(err, context.Canceled) {
				return sysError(err)
			}
			return nil
		})
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", defaultServerPort, "listen port")
}
