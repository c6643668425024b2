package cmd

import (
	"fmt"

	"github.com/amdox/moodtrack/internal/adapters/moodsource"
	"github.com/amdox/moodtrack/internal/domain"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *app) *cobra.Command {
	var (
		name string
		last int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the stored mood history for one user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := app.sessionService(moodsource.NewStatic(""))

			records, err := session.UserHistory(cmd.Context(), name, last)
			if err != nil {
				return err
			}

			if len(records) == 0 {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "No history for user %s\n", domain.AnonymizeID(name))
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "History for user %s\n", records[0].UserHash)
			for _, record := range records {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n",
					record.Timestamp.Format(domain.TimestampLayout), record.Mood)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "employee name (anonymized before lookup)")
	cmd.Flags().IntVar(&last, "last", 0, "limit to the most recent n entries (0 = all)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
