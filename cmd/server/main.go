package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bryanchriswhite/winsnap/internal/api"
	"github.com/bryanchriswhite/winsnap/internal/config"
	"github.com/bryanchriswhite/winsnap/internal/engine"
	"github.com/bryanchriswhite/winsnap/internal/logger"
	"github.com/bryanchriswhite/winsnap/internal/output"
	"github.com/bryanchriswhite/winsnap/internal/x11"
)

// winsnap-server runs the HTTP API alone, configured only through the
// config file and WINSNAP_* environment variables.
func main() {
	log := logger.WithComponent("server")

	configMgr, err := config.NewManager(os.Getenv("WINSNAP_CONFIG"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config manager")
	}
	cfg := configMgr.Get()
	logger.Init(cfg.LogLevel, cfg.LogPretty)
	log = logger.WithComponent("server")
	log.Info().Str("path", configMgr.GetConfigPath()).Msg("Configuration loaded")

	log.Info().Str("display", cfg.Display).Msg("Connecting to X11 server")
	session, err := x11.Connect(x11.Options{
		Display:      cfg.Display,
		UseComposite: cfg.Capture.UseComposite,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to X11 server")
	}
	defer session.Close()

	server := api.NewServer(engine.New(session), output.Options{JPEGQuality: cfg.Capture.JPEGQuality})

	go func() {
		if err := server.Start(cfg.ServerPort); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	log.Info().
		Int("port", cfg.ServerPort).
		Msgf("winsnap-server is running - API at http://localhost:%d/api", cfg.ServerPort)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("Shutting down gracefully")
}
