package cmd

import (
	"fmt"
	"strings"

	"github.com/amdox/moodtrack/internal/domain"
	"github.com/spf13/cobra"
)

func newQuoteCmd(app *app) *cobra.Command {
	var moodLabel string

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print a supportive quote for a mood",
		RunE: func(cmd *cobra.Command, _ []string) error {
			category := domain.Classify(strings.ToLower(strings.TrimSpace(moodLabel)))

			quote, err := app.quotes.Pick(category)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), quote)
			return err
		},
	}

	cmd.Flags().StringVar(&moodLabel, "mood", "neutral", "mood label to pick a quote for")

	return cmd
}
