package fakesite

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

const stylesheet = `
body { font-family: sans-serif; margin: 0; }
.header { display: flex; justify-content: space-between; padding: 12px 24px; background: #222; color: #fff; }
.header nav a { color: #fff; margin-right: 16px; }
.hamburger-menu-ui { display: none; }
.mobile-menu { display: none; }
.mobile-menu.open { display: block; }
.job-search { padding: 24px; }
.search-result__list { list-style: none; padding: 0; }
.cookie-banner { position: fixed; bottom: 0; left: 0; right: 0; padding: 16px; background: #eee; }
#challenge-stage { position: fixed; inset: 0; background: #fff; padding: 48px; }
@media (max-width: 1024px) {
  .header nav { display: none; }
  .hamburger-menu-ui { display: inline-block; }
}
`

type layoutProps struct {
	Title        string
	Challenge    int64 // milliseconds until the challenge clears, 0 for none
	CookieBanner bool
}

func layout(props layoutProps, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>%s</title><style>%s</style></head><body>`,
			templ.EscapeString(props.Title), stylesheet)
		if err != nil {
			return err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		if props.Challenge > 0 {
			if err := challenge(props.Challenge).Render(ctx, w); err != nil {
				return err
			}
		}
		if props.CookieBanner {
			if err := cookieBanner().Render(ctx, w); err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, `</body></html>`)
		return err
	})
}

func challenge(clearAfterMillis int64) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div id="challenge-stage"><h2>Verifying you are human</h2>`+
			`<div id="challenge-running">This may take a few seconds.</div></div>`+
			`<script>setTimeout(function () { document.getElementById('challenge-stage').remove(); }, %d);</script>`,
			clearAfterMillis)
		return err
	})
}

func cookieBanner() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="onetrust-banner-sdk" class="cookie-banner">`+
			`<p>We use cookies to improve your experience.</p>`+
			`<button id="onetrust-accept-btn-handler" type="button" `+
			`onclick="document.cookie='`+consentCookie+`=1; path=/'; document.getElementById('onetrust-banner-sdk').remove();">`+
			`Accept All</button></div>`)
		return err
	})
}

func header() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<header class="header top-navigation--epam-sticky">`+
			`<a class="header__logo" href="/careers">Careers</a>`+
			`<nav><a href="/careers">Find your job</a><a href="/careers/apply">Apply</a></nav>`+
			`<button type="button" class="header-search__button" aria-label="Search" `+
			`onclick="document.getElementById('new_form_job_search-keyword').focus();">&#128269;</button>`+
			`<button type="button" class="hamburger-menu-ui hamburger-menu-ui-23" aria-label="Menu" `+
			`onclick="document.querySelector('.mobile-menu').classList.toggle('open');">&#9776;</button>`+
			`</header>`+
			`<div class="mobile-menu"><a href="/careers">Find your job</a> <a href="/careers/apply">Apply</a></div>`)
		return err
	})
}

type careersProps struct {
	Query jobQuery
	Jobs  []Job
	// Searched is set when the form was submitted
	Searched bool
}

func careersPage(props careersProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := header().Render(ctx, w); err != nil {
			return err
		}

		_, err := fmt.Fprintf(w, `<main class="job-search">`+
			`<form id="jobSearchFilterForm" class="job-search__form" action="/careers" method="get">`+
			`<input id="new_form_job_search-keyword" type="search" name="q" placeholder="Keyword or job ID" value="%s">`+
			`<span class="select2-selection__rendered" role="textbox" aria-readonly="true" `+
			`onclick="document.getElementById('location-field').focus();">%s</span>`+
			`<input id="location-field" role="combobox" aria-label="Location" name="location" value="">`,
			templ.EscapeString(props.Query.keyword),
			templ.EscapeString(locationLabel(props.Query.location)),
		)
		if err != nil {
			return err
		}

		for _, jobType := range []string{"Office", "Remote", "Hybrid"} {
			checked := ""
			if containsType(props.Query.jobTypes, jobType) {
				checked = " checked"
			}
			_, err = fmt.Fprintf(w, `<label class="job-search__type"><input type="checkbox" name="type" value="%[1]s"%[2]s>%[1]s</label>`,
				templ.EscapeString(jobType), checked)
			if err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, `<span class="default-label">Skills</span>`+
			`<button type="submit" class="job-search__submit">Find</button></form>`)
		if err != nil {
			return err
		}

		if props.Searched && len(props.Jobs) == 0 {
			_, err = io.WriteString(w, `<div role="alert" class="search-result__error-message">`+
				`Sorry, your search returned no results. Please try another combination.</div>`)
			if err != nil {
				return err
			}
		}

		if _, err = io.WriteString(w, `<ul class="search-result__list">`); err != nil {
			return err
		}
		for _, job := range props.Jobs {
			_, err = fmt.Fprintf(w, `<li class="search-result__item"><div class="search-result__item-info">`+
				`<h5 class="search-result__item-name-section"><a class="search-result__item-name" href="/careers/vacancy/%s">%s</a></h5>`+
				`<span class="search-result__location">%s</span></div></li>`,
				job.ID, templ.EscapeString(job.Title), templ.EscapeString(job.Location))
			if err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, `</ul></main>`)
		return err
	})
}

func locationLabel(location string) string {
	if location == "" {
		return "All Locations"
	}
	return location
}

func containsType(types []string, jobType string) bool {
	for _, t := range types {
		if t == jobType {
			return true
		}
	}
	return false
}

func jobDetailsPage(job Job) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := header().Render(ctx, w); err != nil {
			return err
		}

		_, err := fmt.Fprintf(w, `<main class="vacancy-details-23">`+
			`<h1 class="vacancy-details-23__job-title">%s</h1>`+
			`<div class="vacancy-details-23__location">%s</div>`+
			`<div class="vacancy-details-23__content-holder"><ul>`,
			templ.EscapeString(job.Title), templ.EscapeString(job.Location))
		if err != nil {
			return err
		}
		for _, item := range job.Description {
			if _, err = fmt.Fprintf(w, `<li>%s</li>`, templ.EscapeString(item)); err != nil {
				return err
			}
		}
		_, err = fmt.Fprintf(w, `</ul></div>`+
			`<a data-auto="apply-button" class="button-ui" href="/careers/apply?job=%s">Apply</a></main>`,
			job.ID)
		return err
	})
}

func applyPage(job *Job) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := header().Render(ctx, w); err != nil {
			return err
		}

		title := "Apply"
		if job != nil {
			title = "Apply for " + job.Title
		}
		_, err := fmt.Fprintf(w, `<main class="application-form"><h1>%s</h1>`+
			`<form><input name="name" placeholder="Full name"><input name="email" placeholder="Email"></form></main>`,
			templ.EscapeString(title))
		return err
	})
}

// blockedPage has none of the markup the page objects look for.
func blockedPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<h1>Access denied</h1><p>Your request was blocked.</p>`)
		return err
	})
}
