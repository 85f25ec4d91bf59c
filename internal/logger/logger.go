package logger

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// Logger is the global logger instance
	Logger zerolog.Logger
)

func init() {
	// Warn level on stderr until Init is called; stdout belongs to the presenter.
	Logger = zerolog.New(os.Stderr).
		With().
		Timestamp().
		Logger()
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = Logger
}

// LogLevel represents the logging level
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

// ParseLevel maps a configured level name to a zerolog level.
// Unknown names fall back to warn.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case string(DebugLevel):
		return zerolog.DebugLevel
	case string(InfoLevel):
		return zerolog.InfoLevel
	case string(WarnLevel), "warning":
		return zerolog.WarnLevel
	case string(ErrorLevel):
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

// Init initializes the global logger with the specified level, writing to stderr
func Init(level string, pretty bool) {
	InitWriter(level, pretty, os.Stderr)
}

// InitWriter is Init with an explicit destination
func InitWriter(level string, pretty bool, out io.Writer) {
	zerolog.SetGlobalLevel(ParseLevel(level))

	output := out
	if pretty {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    false,
		}
	}

	ctx := zerolog.New(output).With().Timestamp()
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		ctx = ctx.Caller()
	}
	Logger = ctx.Logger()

	// Set as global logger
	log.Logger = Logger
}

// Get returns the global logger instance
func Get() *zerolog.Logger {
	return &Logger
}

// WithComponent returns a logger with a component field set
func WithComponent(component string) *zerolog.Logger {
	l := Logger.With().Str("component", component).Logger()
	return &l
}

// WithWindow returns a component logger that also carries a window id
func WithWindow(component string, window uint64) *zerolog.Logger {
	l := Logger.With().
		Str("component", component).
		Str("window", "0x"+strconv.FormatUint(window, 16)).
		Logger()
	return &l
}
