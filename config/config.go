// Package config holds the browser, site and timeout settings of the suite.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultBaseURL is the careers page the suite is written against.
	DefaultBaseURL = "https://www.epam.com/careers"
	// DefaultUserAgent is sent by every browser context.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	// EnvConfigFile names a YAML file that is laid over the defaults.
	EnvConfigFile = "CAREERS_CONFIG"
	// EnvBaseURL overrides BaseURL.
	EnvBaseURL = "CAREERS_URL"
	// EnvHeadless set to a false boolean ("false", "0", "f") runs with a visible
	// browser for debugging. Unparsable values are ignored.
	EnvHeadless = "HEADLESS"
)

// Viewport is a browser viewport size in CSS pixels.
type Viewport struct {
	Width  int `yaml:"width" validate:"gt=0"`
	Height int `yaml:"height" validate:"gt=0"`
}

// Device is a named viewport used by responsive scenarios.
type Device struct {
	Name     string `yaml:"name" validate:"required"`
	Viewport `yaml:",inline"`
}

// Timeouts bounds every wait performed by the page objects.
// Probe timeouts are short and treated as "not found"; the others are mandatory.
type Timeouts struct {
	// Navigation bounds the initial page load.
	Navigation time.Duration `yaml:"navigation" validate:"gt=0"`
	// ChallengeProbe bounds the check for a verification challenge per candidate.
	ChallengeProbe time.Duration `yaml:"challengeProbe" validate:"gt=0"`
	// ChallengeComplete bounds the wait for a detected challenge to disappear.
	ChallengeComplete time.Duration `yaml:"challengeComplete" validate:"gt=0"`
	// CookieProbe bounds the check for a consent button per candidate.
	CookieProbe time.Duration `yaml:"cookieProbe" validate:"gt=0"`
	// CookieSettle is the pause after accepting cookies.
	CookieSettle time.Duration `yaml:"cookieSettle" validate:"gte=0"`
	// Body bounds the mandatory wait for the document body.
	Body time.Duration `yaml:"body" validate:"gt=0"`
}

// DefaultTimeouts returns the timeouts used against the live site.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Navigation:        30 * time.Second,
		ChallengeProbe:    5 * time.Second,
		ChallengeComplete: 120 * time.Second,
		CookieProbe:       2 * time.Second,
		CookieSettle:      time.Second,
		Body:              5 * time.Second,
	}
}

// Config is the complete suite configuration.
type Config struct {
	BaseURL             string        `yaml:"baseURL" validate:"required,url"`
	UserAgent           string        `yaml:"userAgent" validate:"required"`
	Viewport            Viewport      `yaml:"viewport"`
	IgnoreHTTPSErrors   bool          `yaml:"ignoreHTTPSErrors"`
	BlockServiceWorkers bool          `yaml:"blockServiceWorkers"`
	Headless            bool          `yaml:"headless"`
	BrowserArgs         []string      `yaml:"browserArgs"`
	LaunchTimeout       time.Duration `yaml:"launchTimeout" validate:"gt=0"`
	Timeouts            Timeouts      `yaml:"timeouts"`

	// ScreenshotDir receives diagnostic screenshots.
	ScreenshotDir string `yaml:"screenshotDir" validate:"required"`
	// TraceDir receives trace archives of failed tests.
	TraceDir string `yaml:"traceDir" validate:"required"`

	Devices   []Device `yaml:"devices" validate:"dive"`
	Locations []string `yaml:"locations"`
	JobTypes  []string `yaml:"jobTypes"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		BaseURL:             DefaultBaseURL,
		UserAgent:           DefaultUserAgent,
		Viewport:            Viewport{Width: 1920, Height: 1080},
		IgnoreHTTPSErrors:   true,
		BlockServiceWorkers: true,
		Headless:            true,
		BrowserArgs: []string{
			"--start-maximized",
			"--disable-gpu",
			"--no-sandbox",
			"--disable-dev-shm-usage",
		},
		LaunchTimeout: 60 * time.Second,
		Timeouts:      DefaultTimeouts(),
		ScreenshotDir: "error_screenshots",
		TraceDir:      "traces",
		Devices: []Device{
			{Name: "iPhone 12", Viewport: Viewport{Width: 390, Height: 844}},
			{Name: "iPad Air", Viewport: Viewport{Width: 820, Height: 1180}},
			{Name: "Desktop", Viewport: Viewport{Width: 1920, Height: 1080}},
		},
		Locations: []string{"Poland", "United States", "United Kingdom", "Germany"},
		JobTypes:  []string{"Full Time", "Part Time", "Contract"},
	}
}

// Load reads a YAML file and lays it over the defaults.
// Keys missing from the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decoding config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ApplyEnv overrides fields from environment variables resolved through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvBaseURL); ok && v != "" {
		c.BaseURL = v
	}
	if v, ok := lookup(EnvHeadless); ok {
		if headless, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			c.Headless = headless
		}
	}
}

// FromEnv builds the configuration from CAREERS_CONFIG (if set) and the
// process environment.
func FromEnv() (Config, error) {
	cfg := Default()
	if path, ok := os.LookupEnv(EnvConfigFile); ok && path != "" {
		loaded, err := Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks the configuration for missing or out-of-range values.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("invalid config: %s failed on %q", verrs[0].Namespace(), verrs[0].Tag())
	}
	return fmt.Errorf("invalid config: %w", err)
}

var validate = validator.New()

// Device looks up a device by name.
func (c Config) Device(name string) (Device, bool) {
	for _, d := range c.Devices {
		if d.Name == name {
			return d, true
		}
	}
	return Device{}, false
}
