package diagnostics

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const maxSummaryHeadings = 5

// PageSummary is a short description of a page source for failure reports.
type PageSummary struct {
	Title    string
	Length   int
	Forms    int
	Inputs   int
	IFrames  int
	Headings []string
}

// Summarize extracts a PageSummary from an HTML document.
// Unparseable input yields a summary with only Length set.
func Summarize(content string) PageSummary {
	summary := PageSummary{Length: len(content)}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return summary
	}

	summary.Title = strings.TrimSpace(doc.Find("title").First().Text())
	summary.Forms = doc.Find("form").Length()
	summary.Inputs = doc.Find("input").Length()
	summary.IFrames = doc.Find("iframe").Length()
	doc.Find("h1, h2, h3").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.Join(strings.Fields(s.Text()), " ")
		if text != "" {
			summary.Headings = append(summary.Headings, text)
		}
		return len(summary.Headings) < maxSummaryHeadings
	})

	return summary
}

// LogValue implements slog.LogValuer.
func (s PageSummary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("title", s.Title),
		slog.Int("length", s.Length),
		slog.Int("forms", s.Forms),
		slog.Int("inputs", s.Inputs),
		slog.Int("iframes", s.IFrames),
		slog.Any("headings", s.Headings),
	)
}
