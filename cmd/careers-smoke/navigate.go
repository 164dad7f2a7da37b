package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/networkteam/careers-e2e/fixture"
)

var navigateCmd = &cobra.Command{
	Use:   "navigate",
	Short: "Open the careers page and verify it is ready",
	Long:  `Open the careers page, wait out any human verification, accept cookies and check that known page elements are present.`,
	Args:  cobra.NoArgs,
	RunE:  runNavigate,
}

func runNavigate(cmd *cobra.Command, args []string) error {
	return withSession("navigate", func(s *fixture.Session) error {
		careers, err := s.CareersPage()
		if err != nil {
			return err
		}

		title, err := careers.Page.Title()
		if err != nil {
			return err
		}
		s.Logger.Info("Careers page ready", slog.String("url", careers.Page.URL()))
		fmt.Fprintf(cmd.OutOrStdout(), "ready: %s (%s)\n", title, careers.Page.URL())
		return nil
	})
}
