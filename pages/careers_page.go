// Package pages implements page objects for the careers site.
//
// Page objects hold a playwright.Page and a fixed set of locators. Locators
// are re-resolved on every interaction, so a page object stays valid across
// navigations. Driver errors are returned unchanged to the caller.
package pages

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/playwright-community/playwright-go"
	"github.com/samber/lo"

	"github.com/networkteam/careers-e2e/config"
	"github.com/networkteam/careers-e2e/diagnostics"
)

var emptyText = regexp.MustCompile(`^$`)

// CareersPage provides the job search, filtering and mobile layout
// interactions of the careers page.
type CareersPage struct {
	Page playwright.Page
	URL  string

	timeouts    config.Timeouts
	logger      *slog.Logger
	diagnostics *diagnostics.Capturer

	searchInput    playwright.Locator
	findButton     playwright.Locator
	locationFilter playwright.Locator
	jobTitles      playwright.Locator
	noResults      playwright.Locator
	hamburgerMenu  playwright.Locator
	skillsFilter   playwright.Locator
}

// NewCareersPage creates the page object. It does not navigate, call Navigate for that.
func NewCareersPage(page playwright.Page, opts ...Option) *CareersPage {
	o := newPageOptions(opts)

	return &CareersPage{
		Page: page,
		URL:  o.url,

		timeouts:    o.timeouts,
		logger:      o.logger.With(slog.String("page", "careers")),
		diagnostics: o.diagnostics,

		searchInput: page.Locator("#new_form_job_search-keyword"),
		findButton: page.GetByRole("button", playwright.PageGetByRoleOptions{
			Name:  "Find",
			Exact: playwright.Bool(true),
		}),
		locationFilter: page.Locator(".select2-selection__rendered[role='textbox']"),
		jobTitles:      page.Locator("//ul/li//div//h5//a"),
		noResults:      page.Locator("div[role='alert']"),
		hamburgerMenu:  page.Locator(".hamburger-menu-ui.hamburger-menu-ui-23"),
		skillsFilter:   page.Locator(".default-label"),
	}
}

// SearchJobs enters keyword into the search input and submits the search.
func (p *CareersPage) SearchJobs(keyword string) error {
	p.logger.Info("Searching jobs", slog.String("keyword", keyword))

	if err := p.searchInput.Fill(keyword); err != nil {
		return err
	}
	return p.submit()
}

// FilterByLocation selects a location in the location combobox and submits the search.
// The location must match the display text of an option, e.g. "All Cities in Poland".
// An unknown location results in an empty job list, not an error.
func (p *CareersPage) FilterByLocation(location string) error {
	p.logger.Info("Filtering by location", slog.String("location", location))

	if err := p.locationFilter.Click(); err != nil {
		return err
	}

	combobox := p.Page.GetByRole("combobox").Filter(playwright.LocatorFilterOptions{
		HasText: emptyText,
	}).First()
	if err := combobox.Click(); err != nil {
		return err
	}
	// Fill clears the current value first
	if err := combobox.Fill(location); err != nil {
		return err
	}
	return p.submit()
}

// FilterByJobType activates the filter control labelled exactly jobType and submits the search.
func (p *CareersPage) FilterByJobType(jobType string) error {
	p.logger.Info("Filtering by job type", slog.String("jobType", jobType))

	control := p.Page.GetByText(jobType, playwright.PageGetByTextOptions{
		Exact: playwright.Bool(true),
	})
	if err := control.Click(); err != nil {
		return err
	}
	return p.submit()
}

func (p *CareersPage) submit() error {
	if err := p.findButton.Click(); err != nil {
		return err
	}
	return p.waitForNetworkIdle()
}

func (p *CareersPage) waitForNetworkIdle() error {
	return p.Page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateNetworkidle,
	})
}

// GetJobTitles returns the titles of all listed jobs in page order.
// It returns an empty slice if no job is listed.
func (p *CareersPage) GetJobTitles() ([]string, error) {
	texts, err := p.jobTitles.AllTextContents()
	if err != nil {
		return nil, err
	}
	return lo.Map(texts, func(text string, _ int) string {
		return strings.TrimSpace(text)
	}), nil
}

// OpenJob clicks the title of the job at index and waits for the details page to load.
func (p *CareersPage) OpenJob(index int) error {
	if err := p.jobTitles.Nth(index).Click(); err != nil {
		return err
	}
	return p.Page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateLoad,
	})
}

// IsNoResultsDisplayed reports whether the "no results" alert is visible.
func (p *CareersPage) IsNoResultsDisplayed() (bool, error) {
	return p.noResults.IsVisible()
}

// VerifyMobileMenu opens the hamburger menu and reports whether the menu control is visible.
func (p *CareersPage) VerifyMobileMenu() (bool, error) {
	if err := p.hamburgerMenu.Click(); err != nil {
		return false, err
	}
	if err := p.waitForNetworkIdle(); err != nil {
		return false, err
	}
	return p.hamburgerMenu.IsVisible()
}

// CheckIfSearchInputVisible toggles the search panel and reports whether the search input is visible.
func (p *CareersPage) CheckIfSearchInputVisible() (bool, error) {
	toggle := p.Page.GetByRole("button", playwright.PageGetByRoleOptions{
		Name:  "Search",
		Exact: playwright.Bool(true),
	})
	if err := toggle.Click(); err != nil {
		return false, err
	}
	return p.searchInput.IsVisible()
}

// CheckIfFiltersVisible reports whether the location filter is visible.
func (p *CareersPage) CheckIfFiltersVisible() (bool, error) {
	return p.locationFilter.IsVisible()
}

// IsSkillsFilterVisible reports whether the skills filter is visible.
func (p *CareersPage) IsSkillsFilterVisible() (bool, error) {
	return p.skillsFilter.First().IsVisible()
}

// SetViewport resizes the page viewport.
func (p *CareersPage) SetViewport(width, height int) error {
	p.logger.Debug("Setting viewport", slog.Int("width", width), slog.Int("height", height))
	return p.Page.SetViewportSize(width, height)
}
