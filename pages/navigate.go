package pages

import (
	"errors"
	"log/slog"

	"github.com/playwright-community/playwright-go"

	"github.com/networkteam/careers-e2e/diagnostics"
)

// Navigate opens the careers page and waits until it is usable:
//
//  1. wait for a verification challenge to complete, if one shows up
//  2. accept the cookie banner, if one shows up
//  3. confirm that one of the known page-ready markers exists
//
// If no marker is found a *ReadinessError is returned. Driver errors are
// returned unchanged after saving a navigation_error screenshot.
func (p *CareersPage) Navigate() error {
	err := p.navigate()
	if err == nil {
		return nil
	}

	var readinessErr *ReadinessError
	if !errors.As(err, &readinessErr) {
		p.logger.Error("Failed to navigate to careers page", slog.Any("err", err))
		p.diagnostics.Screenshot(p.Page, "navigation_error")
	}
	return err
}

func (p *CareersPage) navigate() error {
	p.logger.Info("Navigating to careers page", slog.String("url", p.URL))

	_, err := p.Page.Goto(p.URL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
		Timeout:   ms(p.timeouts.Navigation),
	})
	if err != nil {
		return err
	}
	p.logger.Info("Navigated to careers page")

	if err := p.awaitChallenge(); err != nil {
		return err
	}
	p.acceptCookies()

	return p.confirmReady()
}

// awaitChallenge waits for the first visible verification challenge to disappear.
func (p *CareersPage) awaitChallenge() error {
	for _, c := range challengeCandidates {
		loc := p.Page.Locator(c.selector)

		result, err := probeVisible(loc, p.timeouts.ChallengeProbe)
		if err != nil {
			return err
		}
		if !result.Found() {
			continue
		}

		p.logger.Info("Human verification detected, waiting for completion", slog.String("challenge", c.description))
		err = loc.First().WaitFor(playwright.LocatorWaitForOptions{
			State:   playwright.WaitForSelectorStateHidden,
			Timeout: ms(p.timeouts.ChallengeComplete),
		})
		if errors.Is(err, playwright.ErrTimeout) {
			p.logger.Warn("Human verification did not complete in time", slog.String("challenge", c.description))
			continue
		}
		if err != nil {
			return err
		}

		p.logger.Info("Human verification completed")
		return nil
	}

	p.logger.Debug("No verification challenge found, proceeding")
	return nil
}

// acceptCookies clicks the first visible consent button. It never fails.
func (p *CareersPage) acceptCookies() {
	for _, c := range cookieCandidates {
		button := p.Page.Locator(c.selector).First()

		result, err := probeVisible(button, p.timeouts.CookieProbe)
		if err != nil {
			p.logger.Debug("Error handling cookie banner", slog.String("selector", c.selector), slog.Any("err", err))
			return
		}
		if result != ProbeVisible {
			continue
		}

		if err := button.Click(); err != nil {
			p.logger.Debug("Error handling cookie banner", slog.String("selector", c.selector), slog.Any("err", err))
			return
		}
		p.logger.Info("Accepted cookies", slog.String("selector", c.selector))
		p.Page.WaitForTimeout(float64(p.timeouts.CookieSettle.Milliseconds()))
		return
	}

	p.logger.Debug("No cookie banner found")
}

// confirmReady checks the readiness markers in order, the first visible or
// present one confirms the page.
func (p *CareersPage) confirmReady() error {
	err := p.Page.Locator("body").WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: ms(p.timeouts.Body),
	})
	if err != nil {
		return err
	}

	p.logger.Info("Current page URL", slog.String("url", p.Page.URL()))

	for _, c := range readinessCandidates {
		result, err := probeNow(p.Page.Locator(c.selector))
		if err != nil {
			p.logger.Debug("Error checking selector", slog.String("selector", c.selector), slog.Any("err", err))
			continue
		}
		if result.Found() {
			p.logger.Info("Page ready", slog.String("marker", c.description), slog.String("state", result.String()))
			return nil
		}
	}

	return p.readinessFailure()
}

func (p *CareersPage) readinessFailure() error {
	url := p.Page.URL()
	title, err := p.Page.Title()
	if err != nil {
		p.logger.Debug("Failed to read page title", slog.Any("err", err))
	}

	var summary diagnostics.PageSummary
	if content, err := p.Page.Content(); err == nil {
		summary = diagnostics.Summarize(content)
	}

	p.logger.Error("Could not find any known elements",
		slog.String("url", url),
		slog.String("title", title),
		slog.Any("summary", summary),
	)

	screenshot := p.diagnostics.Screenshot(p.Page, "page_state")
	p.diagnostics.SourceSnapshot(p.Page, "page_state")

	return &ReadinessError{
		URL:        url,
		Title:      title,
		Screenshot: screenshot,
		Summary:    summary,
	}
}
