package pages

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/networkteam/careers-e2e/diagnostics"
)

var fakePNG = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// fakeElement is the state of everything matched by one selector.
type fakeElement struct {
	visible bool
	// present means attached to the DOM, visible or not
	present bool
	// disappears makes a wait for the hidden state succeed
	disappears bool
	text       string
	texts      []string
	err        error
	onClick    func()
}

// fakePage implements the parts of playwright.Page used by the page objects.
// Calling any other method panics through the nil embedded interface.
type fakePage struct {
	playwright.Page

	elements map[string]*fakeElement
	calls    []string

	url           string
	title         string
	content       string
	gotoErr       error
	loadStateErr  error
	screenshotErr error
	screenshots   int
}

func newFakePage() *fakePage {
	return &fakePage{
		elements: map[string]*fakeElement{
			"body": {present: true, visible: true},
		},
		url:     "https://www.epam.com/careers",
		title:   "Explore Professional Growth Opportunities | EPAM Careers",
		content: "<html><head><title>EPAM Careers</title></head><body></body></html>",
	}
}

func (p *fakePage) record(format string, args ...any) {
	p.calls = append(p.calls, fmt.Sprintf(format, args...))
}

func (p *fakePage) Goto(url string, options ...playwright.PageGotoOptions) (playwright.Response, error) {
	p.record("goto %s", url)
	return nil, p.gotoErr
}

func (p *fakePage) Locator(selector string, options ...playwright.PageLocatorOptions) playwright.Locator {
	return &fakeLocator{page: p, key: selector}
}

func (p *fakePage) GetByRole(role playwright.AriaRole, options ...playwright.PageGetByRoleOptions) playwright.Locator {
	key := fmt.Sprintf("role=%s", role)
	if len(options) > 0 && options[0].Name != nil {
		key = fmt.Sprintf("role=%s[name=%v]", role, options[0].Name)
	}
	return &fakeLocator{page: p, key: key}
}

func (p *fakePage) GetByText(text interface{}, options ...playwright.PageGetByTextOptions) playwright.Locator {
	return &fakeLocator{page: p, key: fmt.Sprintf("text=%v", text)}
}

func (p *fakePage) WaitForLoadState(options ...playwright.PageWaitForLoadStateOptions) error {
	state := "load"
	if len(options) > 0 && options[0].State != nil {
		state = string(*options[0].State)
	}
	p.record("waitForLoadState %s", state)
	return p.loadStateErr
}

func (p *fakePage) WaitForTimeout(timeout float64) {
	p.record("waitForTimeout %.0f", timeout)
}

func (p *fakePage) URL() string {
	return p.url
}

func (p *fakePage) Title() (string, error) {
	return p.title, nil
}

func (p *fakePage) Content() (string, error) {
	return p.content, nil
}

func (p *fakePage) Screenshot(options ...playwright.PageScreenshotOptions) ([]byte, error) {
	p.screenshots++
	return fakePNG, p.screenshotErr
}

func (p *fakePage) SetViewportSize(width int, height int) error {
	p.record("setViewportSize %dx%d", width, height)
	return nil
}

// pwLocator lets fakeLocator embed the interface without a field named
// Locator shadowing the Locator method.
type pwLocator = playwright.Locator

type fakeLocator struct {
	pwLocator

	page *fakePage
	key  string
}

var (
	_ playwright.Page    = (*fakePage)(nil)
	_ playwright.Locator = (*fakeLocator)(nil)
)

func (l *fakeLocator) element() *fakeElement {
	return l.page.elements[l.key]
}

func (l *fakeLocator) First() playwright.Locator {
	return l
}

func (l *fakeLocator) Nth(index int) playwright.Locator {
	l.page.record("nth %d %s", index, l.key)
	return l
}

func (l *fakeLocator) Filter(options ...playwright.LocatorFilterOptions) playwright.Locator {
	return &fakeLocator{page: l.page, key: l.key + " >> filter"}
}

func (l *fakeLocator) WaitFor(options ...playwright.LocatorWaitForOptions) error {
	state := "visible"
	var timeout float64
	if len(options) > 0 {
		if options[0].State != nil {
			state = string(*options[0].State)
		}
		if options[0].Timeout != nil {
			timeout = *options[0].Timeout
		}
	}
	l.page.record("waitFor %s %s %.0f", state, l.key, timeout)

	el := l.element()
	if el != nil && el.err != nil {
		return el.err
	}

	var ok bool
	switch state {
	case "visible":
		ok = el != nil && el.visible
	case "hidden":
		ok = el == nil || !el.visible || el.disappears
	case "attached":
		ok = el != nil && (el.present || el.visible)
	case "detached":
		ok = el == nil || !el.present
	}
	if !ok {
		return timeoutError(timeout)
	}
	return nil
}

func (l *fakeLocator) IsVisible(options ...playwright.LocatorIsVisibleOptions) (bool, error) {
	el := l.element()
	if el == nil {
		return false, nil
	}
	if el.err != nil {
		return false, el.err
	}
	return el.visible, nil
}

func (l *fakeLocator) Count() (int, error) {
	el := l.element()
	if el == nil {
		return 0, nil
	}
	if el.err != nil {
		return 0, el.err
	}
	if el.present || el.visible {
		return max(1, len(el.texts)), nil
	}
	return 0, nil
}

func (l *fakeLocator) Click(options ...playwright.LocatorClickOptions) error {
	l.page.record("click %s", l.key)
	el := l.element()
	if el == nil {
		return timeoutError(30000)
	}
	if el.err != nil {
		return el.err
	}
	if el.onClick != nil {
		el.onClick()
	}
	return nil
}

func (l *fakeLocator) Fill(value string, options ...playwright.LocatorFillOptions) error {
	l.page.record("fill %s=%s", l.key, value)
	el := l.element()
	if el == nil {
		return timeoutError(30000)
	}
	return el.err
}

func (l *fakeLocator) TextContent(options ...playwright.LocatorTextContentOptions) (string, error) {
	el := l.element()
	if el == nil {
		return "", timeoutError(30000)
	}
	return el.text, el.err
}

func (l *fakeLocator) AllTextContents() ([]string, error) {
	el := l.element()
	if el == nil {
		return []string{}, nil
	}
	if el.err != nil {
		return nil, el.err
	}
	return el.texts, nil
}

func timeoutError(timeout float64) error {
	return fmt.Errorf("%w: Timeout %.0fms exceeded", playwright.ErrTimeout, timeout)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCapturer(t *testing.T) *diagnostics.Capturer {
	t.Helper()

	c := diagnostics.NewCapturer(t.TempDir(), discardLogger())
	c.Now = func() time.Time {
		return time.Date(2024, 5, 17, 14, 30, 0, 0, time.UTC)
	}
	return c
}
