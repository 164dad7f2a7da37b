package pages

import (
	"iter"
	"strings"

	"github.com/samber/lo"
)

// MatchingTitles yields every job title containing at least one of the
// keywords, case-insensitively, in the order of jobs. The sequence is lazy
// and can be ranged over repeatedly.
func MatchingTitles(jobs []string, keywords []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, job := range jobs {
			title := strings.ToLower(job)
			matches := lo.SomeBy(keywords, func(keyword string) bool {
				return strings.Contains(title, strings.ToLower(keyword))
			})
			if matches && !yield(job) {
				return
			}
		}
	}
}
