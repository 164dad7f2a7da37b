package fakesite

import (
	"log/slog"
	"time"
)

// siteOptions holds configuration for a Site.
// This is unexported; use Option functions to configure.
type siteOptions struct {
	jobs         []Job
	challenge    time.Duration
	cookieBanner bool
	readyMarkers bool
	logger       *slog.Logger
}

// Option configures a Site.
type Option func(*siteOptions)

// WithJobs replaces the default job listing.
func WithJobs(jobs ...Job) Option {
	return func(o *siteOptions) {
		o.jobs = jobs
	}
}

// WithChallenge covers every page with a human verification overlay that
// removes itself after d.
func WithChallenge(d time.Duration) Option {
	return func(o *siteOptions) {
		o.challenge = d
	}
}

// WithCookieBanner shows a consent banner until it is accepted.
func WithCookieBanner() Option {
	return func(o *siteOptions) {
		o.cookieBanner = true
	}
}

// WithoutReadyMarkers serves a blocked page instead of the careers page.
func WithoutReadyMarkers() Option {
	return func(o *siteOptions) {
		o.readyMarkers = false
	}
}

// WithLogger sets the request logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *siteOptions) {
		o.logger = logger
	}
}
