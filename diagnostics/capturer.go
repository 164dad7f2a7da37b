// Package diagnostics captures best-effort artifacts of the current page state
// (screenshots, page source) to help investigating failed tests.
//
// Capturing never fails: problems are logged and an empty path is returned.
package diagnostics

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/playwright-community/playwright-go"
)

// TimestampLayout formats the timestamp part of artifact file names (YYYYMMDD_HHMMSS).
const TimestampLayout = "20060102_150405"

// Screenshotter is the part of playwright.Page needed to take a screenshot.
type Screenshotter interface {
	Screenshot(options ...playwright.PageScreenshotOptions) ([]byte, error)
}

// ContentSource is the part of playwright.Page needed to read the page source.
type ContentSource interface {
	Content() (string, error)
}

// Capturer writes diagnostic artifacts to Dir.
type Capturer struct {
	// Dir receives the artifacts, it is created on first use.
	Dir string
	// Now returns the time used in file names.
	Now func() time.Time
	// Logger receives capture results and failures.
	Logger *slog.Logger
}

// NewCapturer creates a capturer writing to dir.
func NewCapturer(dir string, logger *slog.Logger) *Capturer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Capturer{
		Dir:    dir,
		Now:    time.Now,
		Logger: logger,
	}
}

// Path returns the artifact path for tag and file extension at the current time.
func (c *Capturer) Path(tag, ext string) string {
	return filepath.Join(c.Dir, fmt.Sprintf("%s_%s.%s", tag, c.Now().Format(TimestampLayout), ext))
}

// Screenshot saves a PNG of the page as <dir>/<tag>_<timestamp>.png and
// returns its path, or "" if the screenshot could not be taken or written.
func (c *Capturer) Screenshot(page Screenshotter, tag string) string {
	path := c.Path(tag, "png")

	data, err := page.Screenshot()
	if err != nil {
		c.Logger.Error("Failed to take screenshot", slog.String("tag", tag), slog.Any("err", err))
		return ""
	}
	if err := c.write(path, data); err != nil {
		c.Logger.Error("Failed to save screenshot", slog.String("tag", tag), slog.Any("err", err))
		return ""
	}

	c.Logger.Info("Saved screenshot", slog.String("tag", tag), slog.String("path", path))
	return path
}

// SourceSnapshot saves the page HTML as a standalone, syntax highlighted HTML
// document <dir>/<tag>_<timestamp>.html and returns its path, or "" on failure.
func (c *Capturer) SourceSnapshot(page ContentSource, tag string) string {
	path := c.Path(tag, "html")

	content, err := page.Content()
	if err != nil {
		c.Logger.Error("Failed to read page source", slog.String("tag", tag), slog.Any("err", err))
		return ""
	}

	data, err := highlightSource(content)
	if err != nil {
		c.Logger.Warn("Failed to highlight page source, saving plain text", slog.Any("err", err))
		data = []byte(content)
	}
	if err := c.write(path, data); err != nil {
		c.Logger.Error("Failed to save page source", slog.String("tag", tag), slog.Any("err", err))
		return ""
	}

	c.Logger.Info("Saved page source", slog.String("tag", tag), slog.String("path", path))
	return path
}

func (c *Capturer) write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func highlightSource(content string) ([]byte, error) {
	lexer := lexers.Get("html")
	if lexer == nil {
		lexer = lexers.Fallback
	}

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := html.New(
		html.Standalone(true),
		html.WithLineNumbers(true),
		html.TabWidth(4),
	)

	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
