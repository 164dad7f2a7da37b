package main

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/networkteam/careers-e2e/fixture"
	"github.com/networkteam/careers-e2e/pages"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search jobs and print the matching titles",
	Long: `Search the careers page for a keyword, optionally narrowed by location and job type.
With --match, only titles containing one of the given keywords are printed and the
command fails when none match.`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

var (
	searchKeyword  string
	searchLocation string
	searchJobType  string
	searchMatch    []string
)

var errNoMatchingJobs = errors.New("no matching jobs found")

func init() {
	searchCmd.Flags().StringVarP(&searchKeyword, "keyword", "k", "", "Search keyword")
	searchCmd.Flags().StringVar(&searchLocation, "location", "", `Location filter, e.g. "All Cities in Poland"`)
	searchCmd.Flags().StringVar(&searchJobType, "type", "", `Job type filter, e.g. "Remote"`)
	searchCmd.Flags().StringSliceVar(&searchMatch, "match", nil, "Keywords a title must contain (comma separated)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	return withSession("search", func(s *fixture.Session) error {
		careers, err := s.CareersPage()
		if err != nil {
			return err
		}

		if searchKeyword != "" {
			if err := careers.SearchJobs(searchKeyword); err != nil {
				return fmt.Errorf("searching %q: %w", searchKeyword, err)
			}
		}
		if searchLocation != "" {
			if err := careers.FilterByLocation(searchLocation); err != nil {
				return fmt.Errorf("filtering by location %q: %w", searchLocation, err)
			}
		}
		if searchJobType != "" {
			if err := careers.FilterByJobType(searchJobType); err != nil {
				return fmt.Errorf("filtering by job type %q: %w", searchJobType, err)
			}
		}

		noResults, err := careers.IsNoResultsDisplayed()
		if err != nil {
			return err
		}
		titles, err := careers.GetJobTitles()
		if err != nil {
			return err
		}
		s.Logger.Info("Search finished",
			slog.String("keyword", searchKeyword),
			slog.Int("results", len(titles)),
			slog.Bool("noResultsMessage", noResults),
		)

		if len(searchMatch) > 0 {
			titles = slices.Collect(pages.MatchingTitles(titles, searchMatch))
			if len(titles) == 0 {
				return errNoMatchingJobs
			}
		}

		for _, title := range titles {
			fmt.Fprintln(cmd.OutOrStdout(), title)
		}
		return nil
	})
}
