package pages

import (
	"log/slog"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/networkteam/careers-e2e/config"
	"github.com/networkteam/careers-e2e/diagnostics"
)

// pageOptions holds configuration shared by the page objects.
// This is unexported; use Option functions to configure.
type pageOptions struct {
	url         string
	timeouts    config.Timeouts
	logger      *slog.Logger
	diagnostics *diagnostics.Capturer
}

// Option configures a page object.
type Option func(*pageOptions)

// WithURL sets the careers page URL. Default is config.DefaultBaseURL.
func WithURL(url string) Option {
	return func(o *pageOptions) {
		o.url = url
	}
}

// WithTimeouts sets the wait bounds. Default is config.DefaultTimeouts().
func WithTimeouts(timeouts config.Timeouts) Option {
	return func(o *pageOptions) {
		o.timeouts = timeouts
	}
}

// WithLogger sets the logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *pageOptions) {
		o.logger = logger
	}
}

// WithDiagnostics sets where failure screenshots are written.
// Default writes to "error_screenshots".
func WithDiagnostics(capturer *diagnostics.Capturer) Option {
	return func(o *pageOptions) {
		o.diagnostics = capturer
	}
}

func newPageOptions(opts []Option) pageOptions {
	o := pageOptions{
		url:      config.DefaultBaseURL,
		timeouts: config.DefaultTimeouts(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.diagnostics == nil {
		o.diagnostics = diagnostics.NewCapturer(config.Default().ScreenshotDir, o.logger)
	}
	return o
}

// ms converts a duration to a Playwright timeout in milliseconds.
func ms(d time.Duration) *float64 {
	return playwright.Float(float64(d.Milliseconds()))
}
