package fixture

import (
	"log/slog"

	"github.com/networkteam/careers-e2e/config"
	"github.com/networkteam/careers-e2e/journal"
)

// Options configures a browser session.
type Options struct {
	// Config supplies browser, context and page settings.
	Config config.Config
	// Name identifies the test; trace and journal files are named after it.
	Name string
	// Logger receives session and page logs. Default is slog.Default().
	Logger *slog.Logger
	// JournalCapacity bounds the log records kept for a failure dump.
	JournalCapacity uint64
}

// DefaultOptions returns options for a session named name using config.Default().
func DefaultOptions(name string) Options {
	return Options{
		Config:          config.Default(),
		Name:            name,
		JournalCapacity: journal.DefaultCapacity,
	}
}

// WithConfig replaces the session configuration.
func WithConfig(cfg config.Config) func(*Options) {
	return func(o *Options) {
		o.Config = cfg
	}
}

// WithBaseURL points the session at another careers page, e.g. a local fake.
func WithBaseURL(url string) func(*Options) {
	return func(o *Options) {
		o.Config.BaseURL = url
	}
}

// WithLogger sets the base logger.
func WithLogger(logger *slog.Logger) func(*Options) {
	return func(o *Options) {
		o.Logger = logger
	}
}
