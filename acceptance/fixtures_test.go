//go:build acceptance
// +build acceptance

package acceptance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/networkteam/careers-e2e/fakesite"
	"github.com/networkteam/careers-e2e/fixture"
	"github.com/networkteam/careers-e2e/pages"
)

// LiveFixtures bundles a session against the configured careers site.
type LiveFixtures struct {
	Session *fixture.Session
	Careers *pages.CareersPage
}

// WithCareersPage opens a session, navigates to the careers page and calls the
// test function. The session is released with t.Cleanup().
func WithCareersPage(t *testing.T, fn func(t *testing.T, f *LiveFixtures)) {
	t.Helper()

	session := fixture.New(t)
	careers, err := session.CareersPage()
	require.NoError(t, err, "failed to open careers page")

	fn(t, &LiveFixtures{
		Session: session,
		Careers: careers,
	})
}

// OfflineFixtures bundles a session pointed at a local fake careers site.
type OfflineFixtures struct {
	Server  *fakesite.Server
	Session *fixture.Session
}

// WithFakeSite starts a fake site and a session against it with short probe
// timeouts and artifacts written below t.TempDir(). Navigation is left to the test.
func WithFakeSite(t *testing.T, opts []fakesite.Option, fn func(t *testing.T, f *OfflineFixtures)) {
	t.Helper()

	srv := fakesite.NewServer(t, opts...)
	session := fixture.New(t, fixture.WithBaseURL(srv.CareersURL), offlineTimeouts(t))

	fn(t, &OfflineFixtures{
		Server:  srv,
		Session: session,
	})
}

func offlineTimeouts(t *testing.T) func(*fixture.Options) {
	return func(o *fixture.Options) {
		o.Config.Timeouts.Navigation = 10 * time.Second
		o.Config.Timeouts.ChallengeProbe = 300 * time.Millisecond
		o.Config.Timeouts.ChallengeComplete = 10 * time.Second
		o.Config.Timeouts.CookieProbe = 300 * time.Millisecond
		o.Config.Timeouts.CookieSettle = 100 * time.Millisecond
		o.Config.Timeouts.Body = 2 * time.Second
		o.Config.ScreenshotDir = t.TempDir()
		o.Config.TraceDir = t.TempDir()
	}
}
