package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "moodtrack",
		Short:         "moodtrack: anonymized mood check-ins with burnout alerts",
		Long:          "moodtrack records anonymized per-user mood check-ins, recommends a task for the current state and workload, flags sustained negative streaks, and reports team-level mood analytics.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newCheckinCmd(app),
		newHistoryCmd(app),
		newReportCmd(app),
		newQuoteCmd(app),
	)

	return rootCmd
}
