package main

import (
	"fmt"

	"FxRisk/internal/di"

	"github.com/spf13/cobra"
)

func newNewsCmd(opts *rootOptions) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "news",
		Short: "Print a day's news and sentiment summary as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := parseOptionalDate("date", date)
			if err != nil {
				return err
			}

			cfg, err := opts.load()
			if err != nil {
				return fmt.Errorf("config load failed: %w", err)
			}
			cli, cleanup, err := di.InitializeCLI(cfg)
			if err != nil {
				return fmt.Errorf("initialization failed: %w", err)
			}
			defer cleanup()

			res, err := cli.News.News(cmd.Context(), d)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "news date YYYY-MM-DD (default news.as_of)")
	return cmd
}
