package cmd

import (
	"fmt"

	"github.com/amdox/moodtrack/internal/adapters/moodsource"
	checkinrender "github.com/amdox/moodtrack/internal/adapters/render/checkin"
	"github.com/amdox/moodtrack/internal/application"
	"github.com/amdox/moodtrack/internal/domain"
	"github.com/spf13/cobra"
)

func newCheckinCmd(app *app) *cobra.Command {
	var (
		name        string
		workloadRaw string
		moodLabel   string
	)

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Run an anonymized mood check-in session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Workload is validated before anything else happens; a bad
			// value must leave the history file untouched.
			workload, err := domain.ParseWorkload(workloadRaw)
			if err != nil {
				return err
			}

			label := moodLabel
			if label == "" {
				prompt := moodsource.NewPrompt(cmd.InOrStdin(), cmd.OutOrStdout())
				label, err = prompt.Read(cmd.Context())
				if err != nil {
					// Inconclusive capture; the session defaults to neutral.
					label = ""
				}
			}

			session := app.sessionService(moodsource.NewStatic(label))

			var result application.SessionResult
			err = runScanSpinner(cmd.Context(), cmd.OutOrStdout(), func() error {
				var runErr error
				result, runErr = session.Run(cmd.Context(), name, workload)
				return runErr
			})
			if err != nil {
				return err
			}

			out, err := app.checkinRenderer(result, checkinrender.RenderOptions{Name: name})
			if err != nil {
				return fmt.Errorf("render check-in result: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "employee name (anonymized before storage)")
	cmd.Flags().StringVar(&workloadRaw, "workload", "", "current workload level (1-10)")
	cmd.Flags().StringVar(&moodLabel, "mood", "", "mood label (skips the interactive prompt)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("workload")

	return cmd
}
