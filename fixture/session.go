// Package fixture owns the browser lifecycle of a test: it starts Playwright,
// launches Chromium, opens a traced context and page, and releases everything
// in reverse order when the test ends. Traces and log journals of failed
// tests are kept for inspection.
package fixture

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/playwright-community/playwright-go"
	slogmulti "github.com/samber/slog-multi"

	"github.com/networkteam/careers-e2e/config"
	"github.com/networkteam/careers-e2e/diagnostics"
	"github.com/networkteam/careers-e2e/journal"
	"github.com/networkteam/careers-e2e/pages"
)

// Session is one isolated browser context with a single page.
type Session struct {
	ID     uuid.UUID
	Name   string
	Config config.Config

	Playwright *playwright.Playwright
	Browser    playwright.Browser
	Context    playwright.BrowserContext
	Page       playwright.Page

	Logger      *slog.Logger
	Journal     *journal.Journal
	Diagnostics *diagnostics.Capturer

	teardown  *teardown
	failed    bool
	closeOnce sync.Once
}

func newSession(opts Options) *Session {
	capacity := opts.JournalCapacity
	if capacity == 0 {
		capacity = journal.DefaultCapacity
	}
	base := opts.Logger
	if base == nil {
		base = slog.Default()
	}

	j := journal.New(capacity)
	id := uuid.Must(uuid.NewV4())
	logger := slog.New(slogmulti.Fanout(base.Handler(), j.Handler(slog.LevelDebug))).With(
		slog.String("test", opts.Name),
		slog.String("session", id.String()),
	)

	return &Session{
		ID:          id,
		Name:        opts.Name,
		Config:      opts.Config,
		Logger:      logger,
		Journal:     j,
		Diagnostics: diagnostics.NewCapturer(opts.Config.ScreenshotDir, logger),
		teardown:    newTeardown(logger),
	}
}

// Open starts a browser session. Resources acquired before a failing step
// are released before the error is returned.
func Open(opts Options) (*Session, error) {
	s := newSession(opts)
	if err := s.open(); err != nil {
		s.teardown.run()
		return nil, err
	}
	return s, nil
}

func (s *Session) open() error {
	cfg := s.Config

	pw, err := playwright.Run()
	if err != nil {
		return fmt.Errorf("starting playwright: %w", err)
	}
	s.Playwright = pw
	s.teardown.push("playwright", pw.Stop)

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		Args:     cfg.BrowserArgs,
		Timeout:  playwright.Float(float64(cfg.LaunchTimeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}
	s.Browser = browser
	s.teardown.push("browser", func() error { return browser.Close() })

	contextOptions := playwright.BrowserNewContextOptions{
		UserAgent: playwright.String(cfg.UserAgent),
		Viewport: &playwright.Size{
			Width:  cfg.Viewport.Width,
			Height: cfg.Viewport.Height,
		},
		IgnoreHttpsErrors: playwright.Bool(cfg.IgnoreHTTPSErrors),
	}
	if cfg.BlockServiceWorkers {
		contextOptions.ServiceWorkers = playwright.ServiceWorkerPolicyBlock
	}
	browserContext, err := browser.NewContext(contextOptions)
	if err != nil {
		return fmt.Errorf("creating browser context: %w", err)
	}
	s.Context = browserContext
	s.teardown.push("context", func() error { return browserContext.Close() })

	tracing := browserContext.Tracing()
	err = tracing.Start(playwright.TracingStartOptions{
		Screenshots: playwright.Bool(true),
		Snapshots:   playwright.Bool(true),
		Sources:     playwright.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("starting trace: %w", err)
	}
	s.pushTrace(tracing)

	page, err := browserContext.NewPage()
	if err != nil {
		return fmt.Errorf("opening page: %w", err)
	}
	s.Page = page
	s.teardown.push("page", func() error { return page.Close() })

	s.Logger.Debug("Browser session opened",
		slog.Bool("headless", cfg.Headless),
		slog.Int("width", cfg.Viewport.Width),
		slog.Int("height", cfg.Viewport.Height),
	)
	return nil
}

func (s *Session) pushTrace(tracing playwright.Tracing) {
	s.teardown.push("trace", func() error {
		return s.finishTrace(tracing)
	})
}

// finishTrace stops tracing. For a failed test the trace archive and the log
// journal are written to the trace directory, otherwise the trace is discarded.
func (s *Session) finishTrace(tracing playwright.Tracing) error {
	if !s.failed {
		s.Logger.Debug("Test passed, discarding trace")
		return tracing.Stop()
	}

	base := filepath.Join(s.Config.TraceDir, ArtifactName(s.Name))
	if err := s.Journal.WriteFile(base + ".log"); err != nil {
		s.Logger.Error("Failed to write log journal", slog.Any("err", err))
	}

	path := base + ".zip"
	s.Logger.Error("Test failed, saving trace", slog.String("path", path))
	if err := os.MkdirAll(s.Config.TraceDir, 0o755); err != nil {
		s.Logger.Error("Failed to create trace directory", slog.Any("err", err))
	}
	if err := tracing.Stop(path); err != nil {
		s.Logger.Error("Failed to save trace, stopping without saving", slog.Any("err", err))
		return tracing.Stop()
	}
	return nil
}

// Close releases the session: page, trace, context, browser and Playwright,
// in that order. Pass failed=true to keep the trace and journal. Errors are
// logged; only the first call has an effect.
func (s *Session) Close(failed bool) {
	s.closeOnce.Do(func() {
		s.failed = failed
		s.teardown.run()
	})
}

// PageOptions returns page object options matching the session configuration.
func (s *Session) PageOptions() []pages.Option {
	return []pages.Option{
		pages.WithURL(s.Config.BaseURL),
		pages.WithTimeouts(s.Config.Timeouts),
		pages.WithLogger(s.Logger),
		pages.WithDiagnostics(s.Diagnostics),
	}
}

// CareersPage navigates to the careers page and returns its page object.
func (s *Session) CareersPage() (*pages.CareersPage, error) {
	p := pages.NewCareersPage(s.Page, s.PageOptions()...)
	if err := p.Navigate(); err != nil {
		return nil, err
	}
	return p, nil
}

// JobDetailsPage wraps the session page as a job details page.
func (s *Session) JobDetailsPage() *pages.JobDetailsPage {
	return pages.NewJobDetailsPage(s.Page, s.PageOptions()...)
}

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ArtifactName turns a test name into a file name.
func ArtifactName(name string) string {
	if name == "" {
		return "session"
	}
	return unsafeNameChars.ReplaceAllString(name, "_")
}
