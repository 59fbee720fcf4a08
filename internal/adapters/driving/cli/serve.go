package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/unitconv/internal/adapters/driving/rest"
	"github.com/custodia-labs/unitconv/internal/core/domain"
	"github.com/custodia-labs/unitconv/internal/logger"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP JSON API",
	Long: `Start an HTTP server exposing conversions as a JSON API.

Endpoints:
  GET /api/categories
  GET /api/categories/:category/units
  GET /api/convert?category=length&value=5&from=kilometers&to=miles
  GET /api/circle-area?radius=2
  GET /healthz

The listen address and per-client rate limit come from settings
(server.addr, server.rate_limit); --addr overrides the address.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from settings)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	converter, err := requireConverter()
	if err != nil {
		return err
	}

	cfg := serverSettings()
	addr := cfg.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	server, err := rest.NewServer(converter, rest.Options{RateLimit: cfg.RateLimit})
	if err != nil {
		return err
	}

	logger.SetTimestamps(true)
	logger.Section("HTTP API")

	ctx := commandContext(cmd)
	if watchSettings != nil {
		err := watchSettings(ctx, func() {
			logger.Info("settings reloaded; address and rate limit apply after restart")
		})
		if err != nil {
			logger.Warn("settings will not reload: %v", err)
		}
	}

	cmd.Printf("API listening on http://%s\n", addr)
	return server.Run(ctx, addr)
}

// serverSettings returns stored server settings, or defaults when settings
// are unavailable.
func serverSettings() domain.ServerSettings {
	defaults := domain.DefaultAppSettings().Server
	if settingsService == nil {
		return defaults
	}
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("using default server settings: %v", err)
		return defaults
	}
	return settings.Server
}
