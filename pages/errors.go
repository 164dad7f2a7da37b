package pages

import (
	"fmt"

	"github.com/networkteam/careers-e2e/diagnostics"
)

// ReadinessError is returned by Navigate when the page loaded but none of the
// known page-ready markers was found.
type ReadinessError struct {
	URL   string
	Title string
	// Screenshot is the path of the page_state screenshot, empty if it could not be taken.
	Screenshot string
	Summary    diagnostics.PageSummary
}

func (e *ReadinessError) Error() string {
	return fmt.Sprintf("could not verify page load - no known elements found (url: %s, title: %q)", e.URL, e.Title)
}
