package fixture

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/careers-e2e/config"
)

// New opens a session for t configured from the environment. The session is
// closed when the test finishes; the trace is kept if the test failed.
func New(t testing.TB, configure ...func(*Options)) *Session {
	t.Helper()

	cfg, err := config.FromEnv()
	require.NoError(t, err, "failed to load config")

	opts := DefaultOptions(t.Name())
	opts.Config = cfg
	for _, c := range configure {
		c(&opts)
	}

	s, err := Open(opts)
	require.NoError(t, err, "failed to open browser session")

	t.Cleanup(func() {
		s.Close(t.Failed())
	})

	return s
}

// Install downloads the Chromium build used by the sessions.
func Install() error {
	return playwright.Install(&playwright.RunOptions{
		Browsers: []string{"chromium"},
	})
}
