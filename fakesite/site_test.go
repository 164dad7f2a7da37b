package fakesite_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/careers-e2e/fakesite"
)

func get(t *testing.T, site *fakesite.Site, target string, cookies ...*http.Cookie) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	site.ServeHTTP(rec, req)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return rec, doc
}

func jobTitles(doc *goquery.Document) []string {
	return doc.Find("ul li div h5 a").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
}

func TestCareers_ListsAllJobsWithPageMarkup(t *testing.T) {
	site := fakesite.New()

	rec, doc := get(t, site, "/careers")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, jobTitles(doc), len(fakesite.DefaultJobs()))
	assert.Equal(t, 1, doc.Find("#jobSearchFilterForm").Length())
	assert.Equal(t, 1, doc.Find("#new_form_job_search-keyword").Length())
	assert.Equal(t, 1, doc.Find(".select2-selection__rendered[role='textbox']").Length())
	assert.Equal(t, 1, doc.Find("[role='combobox']").Length())
	assert.Equal(t, 1, doc.Find(".hamburger-menu-ui.hamburger-menu-ui-23").Length())
	assert.Equal(t, 0, doc.Find("div[role='alert']").Length())
	assert.Equal(t, 0, doc.Find("#challenge-stage").Length())
	assert.Equal(t, 0, doc.Find("#onetrust-accept-btn-handler").Length())
}

func TestCareers_Search(t *testing.T) {
	site := fakesite.New()

	tests := []struct {
		name      string
		query     string
		want      []string
		wantAlert bool
	}{
		{
			name:  "keyword",
			query: "q=qa",
			want:  []string{"Senior QA Automation Engineer"},
		},
		{
			name:  "country location",
			query: "location=All+Cities+in+Poland",
			want:  []string{"Senior QA Automation Engineer", "Lead Software Test Engineer"},
		},
		{
			name:  "job type",
			query: "type=Remote",
			want:  []string{"Senior QA Automation Engineer", "Senior Python Developer"},
		},
		{
			name:  "keyword and type",
			query: "q=python&type=Remote",
			want:  []string{"Senior Python Developer"},
		},
		{
			name:      "no results",
			query:     "q=xzy123%21%40%23",
			want:      nil,
			wantAlert: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, doc := get(t, site, "/careers?"+tt.query)

			titles := jobTitles(doc)
			if tt.want == nil {
				assert.Empty(t, titles)
			} else {
				assert.Equal(t, tt.want, titles)
			}
			assert.Equal(t, tt.wantAlert, doc.Find("div[role='alert']").Length() == 1)
		})
	}
}

func TestJobDetails(t *testing.T) {
	job := fakesite.NewJob("Senior QA Automation Engineer", "Gdansk, Poland", "Remote", "Write tests", "Review <code>")
	site := fakesite.New(fakesite.WithJobs(job))

	_, list := get(t, site, "/careers")
	href, ok := list.Find("ul li div h5 a").Attr("href")
	require.True(t, ok)

	rec, doc := get(t, site, href)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Senior QA Automation Engineer", doc.Find("h1[class='vacancy-details-23__job-title']").Text())
	assert.Equal(t, "Gdansk, Poland", doc.Find(".vacancy-details-23__location").Text())
	assert.Equal(t, []string{"Write tests", "Review <code>"}, doc.Find("div[class='vacancy-details-23__content-holder'] li").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	}))

	apply, ok := doc.Find("[data-auto='apply-button']").Attr("href")
	require.True(t, ok)
	_, applyDoc := get(t, site, apply)
	assert.Equal(t, "Apply for Senior QA Automation Engineer", applyDoc.Find("h1").Text())
}

func TestJobDetails_UnknownOrInvalidID(t *testing.T) {
	site := fakesite.New()

	rec, _ := get(t, site, "/careers/vacancy/not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = get(t, site, "/careers/vacancy/6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWithChallenge(t *testing.T) {
	site := fakesite.New(fakesite.WithChallenge(1500 * time.Millisecond))

	_, doc := get(t, site, "/careers")

	assert.Equal(t, 1, doc.Find("#challenge-stage").Length())
	assert.Contains(t, doc.Find("script").Text(), "1500")
}

func TestWithCookieBanner(t *testing.T) {
	site := fakesite.New(fakesite.WithCookieBanner())

	_, doc := get(t, site, "/careers")
	assert.Equal(t, 1, doc.Find("button#onetrust-accept-btn-handler").Length())

	// Accepted consent is remembered
	_, doc = get(t, site, "/careers", &http.Cookie{Name: "cookies_accepted", Value: "1"})
	assert.Equal(t, 0, doc.Find("#onetrust-accept-btn-handler").Length())
}

func TestWithoutReadyMarkers(t *testing.T) {
	site := fakesite.New(fakesite.WithoutReadyMarkers())

	rec, doc := get(t, site, "/careers")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Access denied", doc.Find("title").Text())
	for _, selector := range []string{
		"input[type='search']",
		"#jobSearchFilterForm",
		".top-navigation--epam-sticky",
		"[class*='job-search']",
		"[class*='search-form']",
	} {
		assert.Equal(t, 0, doc.Find(selector).Length(), selector)
	}
}

func TestNewServer(t *testing.T) {
	srv := fakesite.NewServer(t)

	resp, err := srv.Client().Get(srv.CareersURL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}
