package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bryanchriswhite/winsnap/internal/config"
	"github.com/bryanchriswhite/winsnap/internal/engine"
	"github.com/bryanchriswhite/winsnap/internal/logger"
	"github.com/bryanchriswhite/winsnap/internal/presenter"
	"github.com/bryanchriswhite/winsnap/internal/usecase"
	"github.com/bryanchriswhite/winsnap/internal/x11"
	"github.com/spf13/cobra"
)

// errPresented marks a failure the presenter already rendered
var errPresented = errors.New("error already presented")

var (
	cfgFile   string
	configMgr *config.Manager
	rootCmd   = &cobra.Command{
		Use:   "winsnap",
		Short: "winsnap - capture X11 windows by title",
		Long: `winsnap finds a visible X11 window by its exact title and saves a
screenshot of it, or lists the titles of all windows.

Titles are read from _NET_WM_NAME, falling back to WM_NAME. Windows are
searched in pre-order from the root window; the first exact match wins.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/winsnap/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringP("format", "f", "", "output format (text, json or yaml)")
	rootCmd.PersistentFlags().String("display", "", "X display to connect to (default is $DISPLAY)")
}

// loadConfig loads the config file and applies flag overrides before any command runs
func loadConfig(cmd *cobra.Command, args []string) error {
	mgr, err := config.NewManager(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := mgr.BindFlags(cmd.Flags()); err != nil {
		return err
	}
	configMgr = mgr

	cfg := mgr.Get()
	logger.Init(cfg.LogLevel, cfg.LogPretty)
	logger.WithComponent("config").Debug().
		Str("path", mgr.GetConfigPath()).
		Str("log_level", cfg.LogLevel).
		Msg("Configuration loaded")
	return nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errPresented) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// openEngine connects to the configured X display
func openEngine(cfg *config.Config) (*engine.Engine, func(), error) {
	session, err := x11.Connect(x11.Options{
		Display:      cfg.Display,
		UseComposite: cfg.Capture.UseComposite,
	})
	if err != nil {
		return nil, nil, err
	}
	return engine.New(session), func() { session.Close() }, nil
}

// present renders the outcome of a use case in the configured format.
// A failed use case is reported as errPresented so Execute only sets the
// exit code.
func present(out io.Writer, format string, result usecase.Result, err error) error {
	gateway, gerr := presenter.ForFormat(format, out)
	if gerr != nil {
		return gerr
	}
	if perr := presenter.New(gateway).Present(result, err); perr != nil {
		return perr
	}
	if err != nil {
		return fmt.Errorf("%w: %v", errPresented, err)
	}
	return nil
}
