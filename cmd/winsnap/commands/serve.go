package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bryanchriswhite/winsnap/internal/api"
	"github.com/bryanchriswhite/winsnap/internal/logger"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve window listing and capture over HTTP",
	Long: `Start an HTTP server exposing the window list and captures.

Endpoints:
  GET /api/health
  GET /api/windows
  GET /api/windows/capture?title=TITLE&format=png|jpeg|bmp|tiff
  GET /api/ws   (websocket: {"op":"list"} or {"op":"find","title":"..."})

All requests share one X connection and are handled one at a time.`,
	Example: `  # Start server on default port (8080)
  winsnap serve

  # Start server on custom port
  winsnap serve --port 9090`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Int("port", 0, "server port (default is 8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("api")
	cfg := configMgr.Get()

	log.Info().Str("display", cfg.Display).Msg("Connecting to X11 server")
	eng, closeSession, err := openEngine(cfg)
	if err != nil {
		return err
	}
	defer closeSession()

	server := api.NewServer(eng, encodingOptions())

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(cfg.ServerPort)
	}()

	log.Info().
		Int("port", cfg.ServerPort).
		Msgf("winsnap is running - API at http://localhost:%d/api", cfg.ServerPort)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sigChan:
		log.Info().Msg("Shutting down")
		return nil
	}
}
