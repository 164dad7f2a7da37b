package pages

import (
	"log/slog"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// JobDetailsPage provides read access to a single job's details page.
type JobDetailsPage struct {
	Page playwright.Page

	logger *slog.Logger

	title       playwright.Locator
	location    playwright.Locator
	description playwright.Locator
	applyButton playwright.Locator
}

// NewJobDetailsPage creates the page object for the page currently showing a job.
func NewJobDetailsPage(page playwright.Page, opts ...Option) *JobDetailsPage {
	o := newPageOptions(opts)

	return &JobDetailsPage{
		Page:   page,
		logger: o.logger.With(slog.String("page", "job_details")),

		title:       page.Locator("h1[class='vacancy-details-23__job-title']"),
		location:    page.Locator(".vacancy-details-23__location"),
		description: page.Locator("div[class='vacancy-details-23__content-holder'] li"),
		applyButton: page.Locator("[data-auto='apply-button']"),
	}
}

// JobTitle returns the trimmed job title.
func (p *JobDetailsPage) JobTitle() (string, error) {
	return trimmedText(p.title)
}

// JobLocation returns the trimmed job location.
func (p *JobDetailsPage) JobLocation() (string, error) {
	return trimmedText(p.location)
}

// JobDescription returns the texts of all list items of the description,
// joined by single spaces. It is empty if the description has no list items.
func (p *JobDetailsPage) JobDescription() (string, error) {
	items, err := p.description.AllTextContents()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.Join(items, " ")), nil
}

// ClickApply clicks the apply button and waits for the network to settle.
func (p *JobDetailsPage) ClickApply() error {
	p.logger.Info("Clicking apply")

	if err := p.applyButton.Click(); err != nil {
		return err
	}
	return p.Page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateNetworkidle,
	})
}

func trimmedText(loc playwright.Locator) (string, error) {
	text, err := loc.TextContent()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
