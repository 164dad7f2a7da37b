package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/networkteam/careers-e2e/config"
	"github.com/networkteam/careers-e2e/fixture"
)

var rootCmd = &cobra.Command{
	Use:           "careers-smoke",
	Short:         "Smoke test the careers site with a real browser",
	Long:          `Drive the careers page in Chromium to check that it loads, searches and filters. Traces of failed runs are written to the trace directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := config.LogLevel(os.Getenv(config.EnvLogLevel))
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(config.NewLogger(os.Stderr, level))
		return nil
	},
}

var (
	configFile string
	baseURL    string
	headed     bool
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML configuration file (default $"+config.EnvConfigFile+")")
	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "", "Careers page URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&headed, "headed", false, "Show the browser window")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")

	rootCmd.AddCommand(navigateCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(installCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig resolves the configuration from the config file, environment and flags.
func loadConfig() (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if configFile != "" {
		cfg, err = config.Load(configFile)
		if err != nil {
			return cfg, err
		}
		cfg.ApplyEnv(os.LookupEnv)
	} else {
		cfg, err = config.FromEnv()
		if err != nil {
			return cfg, err
		}
	}

	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if headed {
		cfg.Headless = false
	}
	return cfg, cfg.Validate()
}

// withSession runs fn with a browser session. The session trace is kept when fn fails.
func withSession(name string, fn func(s *fixture.Session) error) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := fixture.DefaultOptions(name)
	opts.Config = cfg
	s, err := fixture.Open(opts)
	if err != nil {
		return err
	}
	defer func() {
		s.Close(err != nil)
	}()

	return fn(s)
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Download the Chromium build used by the smoke tests",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return fixture.Install()
	},
}
