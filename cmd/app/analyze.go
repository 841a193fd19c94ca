package main

import (
	"fmt"
	"time"

	"FxRisk/internal/di"
	"FxRisk/internal/domain/models"
	"FxRisk/internal/usecase"
	xutil "FxRisk/pkg/util"

	"github.com/spf13/cobra"
)

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	var (
		direction string
		amount    float64
		start     string
		target    string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run one risk analysis and print it as JSON",
		Example: `  fxrisk analyze --direction export --amount 250000 --target 2025-12-31
  fxrisk analyze -d import`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if direction != string(models.DirectionExport) && direction != string(models.DirectionImport) {
				return fmt.Errorf("--direction must be export or import, got %q", direction)
			}
			p := usecase.AnalyzeParams{Direction: models.Direction(direction), AmountUSD: amount}
			var err error
			if p.StartDate, err = parseOptionalDate("start", start); err != nil {
				return err
			}
			if p.TargetDate, err = parseOptionalDate("target", target); err != nil {
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

			res, err := cli.Analysis.Analyze(cmd.Context(), p)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVarP(&direction, "direction", "d", "", "trade direction: export or import")
	cmd.Flags().Float64VarP(&amount, "amount", "a", 1_000_000, "amount in USD")
	cmd.Flags().StringVar(&start, "start", "", "start date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&target, "target", "", "target date YYYY-MM-DD (default start + 90 days)")
	_ = cmd.MarkFlagRequired("direction")
	return cmd
}

func parseOptionalDate(name, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, ok := xutil.ParseDate(s)
	if !ok {
		return time.Time{}, fmt.Errorf("--%s must be YYYY-MM-DD, got %q", name, s)
	}
	return t, nil
}
