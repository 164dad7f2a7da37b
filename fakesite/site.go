// Package fakesite serves a small careers site with the markup the page
// objects expect. It can add a verification challenge, a cookie banner or
// drop the page markers entirely, so navigation can be exercised offline.
package fakesite

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/gofrs/uuid"
	"github.com/samber/lo"
)

const consentCookie = "cookies_accepted"

// Site is an http.Handler serving the fake careers pages.
type Site struct {
	options siteOptions
	mux     *http.ServeMux
}

// New creates a Site. Without options it lists DefaultJobs with no challenge
// and no cookie banner.
func New(opts ...Option) *Site {
	o := siteOptions{
		readyMarkers: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.jobs == nil {
		o.jobs = DefaultJobs()
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	mux := http.NewServeMux()
	site := &Site{
		options: o,
		mux:     mux,
	}

	mux.HandleFunc("GET /careers", site.careers)
	mux.HandleFunc("GET /careers/vacancy/{jobId}", site.jobDetails)
	mux.HandleFunc("GET /careers/apply", site.apply)

	return site
}

func (s *Site) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.options.logger.Debug("Serving fake site request",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("query", r.URL.RawQuery),
	)
	s.mux.ServeHTTP(w, r)
}

// Jobs returns the full job listing.
func (s *Site) Jobs() []Job {
	return s.options.jobs
}

// Job looks up a job by id.
func (s *Site) Job(id uuid.UUID) (Job, bool) {
	return lo.Find(s.options.jobs, func(job Job) bool {
		return job.ID == id
	})
}

func (s *Site) render(w http.ResponseWriter, r *http.Request, title string, body templ.Component, opts ...func(*templ.ComponentHandler)) {
	props := layoutProps{
		Title:     title,
		Challenge: s.options.challenge.Milliseconds(),
	}
	if s.options.cookieBanner {
		_, err := r.Cookie(consentCookie)
		props.CookieBanner = err != nil
	}

	templ.Handler(layout(props, body), opts...).ServeHTTP(w, r)
}

func (s *Site) careers(w http.ResponseWriter, r *http.Request) {
	if !s.options.readyMarkers {
		s.render(w, r, "Access denied", blockedPage(), templ.WithStatus(http.StatusForbidden))
		return
	}

	q := r.URL.Query()
	query := jobQuery{
		keyword:  q.Get("q"),
		location: q.Get("location"),
		jobTypes: q["type"],
	}

	s.render(w, r, "Explore Professional Growth Opportunities | Careers", careersPage(careersProps{
		Query:    query,
		Jobs:     query.filter(s.options.jobs),
		Searched: q.Has("q") || q.Has("location") || q.Has("type"),
	}))
}

func (s *Site) jobDetails(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.FromString(r.PathValue("jobId"))
	if err != nil {
		http.Error(w, "Invalid job id", http.StatusBadRequest)
		return
	}

	job, exists := s.Job(id)
	if !exists {
		http.Error(w, "Job not found", http.StatusNotFound)
		return
	}

	s.render(w, r, job.Title+" | Careers", jobDetailsPage(job))
}

func (s *Site) apply(w http.ResponseWriter, r *http.Request) {
	var job *Job
	if id, err := uuid.FromString(r.URL.Query().Get("job")); err == nil {
		if found, exists := s.Job(id); exists {
			job = &found
		}
	}

	s.render(w, r, "Apply | Careers", applyPage(job))
}

// Server is a running Site.
type Server struct {
	*httptest.Server
	Site *Site
	// CareersURL is the absolute URL of the careers page.
	CareersURL string
}

// NewServer starts a Site on a local port for the duration of the test.
func NewServer(t testing.TB, opts ...Option) *Server {
	t.Helper()

	site := New(opts...)
	srv := httptest.NewServer(site)
	t.Cleanup(srv.Close)

	return &Server{
		Server:     srv,
		Site:       site,
		CareersURL: srv.URL + "/careers",
	}
}
