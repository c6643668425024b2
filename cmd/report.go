package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show team mood analytics and a morale recommendation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			teamReport, err := app.reports.TeamReport(cmd.Context())
			if err != nil {
				return err
			}

			out, err := app.reportRenderer(teamReport)
			if err != nil {
				return fmt.Errorf("render team report: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}
