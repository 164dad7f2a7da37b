package fakesite

import (
	"strings"

	"github.com/gofrs/uuid"
	"github.com/samber/lo"
)

// Job is a vacancy listed by the fake site.
type Job struct {
	ID          uuid.UUID
	Title       string
	Location    string
	Type        string
	Description []string
}

// NewJob creates a job with a fresh id.
func NewJob(title, location, jobType string, description ...string) Job {
	return Job{
		ID:          uuid.Must(uuid.NewV4()),
		Title:       title,
		Location:    location,
		Type:        jobType,
		Description: description,
	}
}

// DefaultJobs returns the listing served when no jobs are configured.
func DefaultJobs() []Job {
	return []Job{
		NewJob("Senior QA Automation Engineer", "Gdansk, Poland", "Remote",
			"Design and maintain UI test automation",
			"Review test plans with developers",
		),
		NewJob("Lead Software Test Engineer", "Krakow, Poland", "Office",
			"Own the regression strategy of a banking platform",
			"Mentor test engineers",
		),
		NewJob("Quality Assurance Manager", "Austin, United States", "Hybrid",
			"Lead a distributed quality team",
		),
		NewJob("Senior Python Developer", "Berlin, Germany", "Remote",
			"Build data pipelines",
			"Contribute to the platform architecture",
		),
		NewJob("Java Developer", "London, United Kingdom", "Office",
			"Develop trading services",
		),
	}
}

// jobQuery is the filter submitted by the search form.
type jobQuery struct {
	keyword  string
	location string
	jobTypes []string
}

func (q jobQuery) matches(job Job) bool {
	if q.keyword != "" && !containsFold(job.Title, q.keyword) {
		return false
	}
	if q.location != "" {
		location := q.location
		// "All Cities in Poland" selects every city of a country
		if country, ok := strings.CutPrefix(location, "All Cities in "); ok {
			location = country
		}
		if !containsFold(job.Location, location) {
			return false
		}
	}
	if len(q.jobTypes) > 0 && !lo.ContainsBy(q.jobTypes, func(t string) bool {
		return strings.EqualFold(t, job.Type)
	}) {
		return false
	}
	return true
}

func (q jobQuery) filter(jobs []Job) []Job {
	return lo.Filter(jobs, func(job Job, _ int) bool {
		return q.matches(job)
	})
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
