package main

import (
	"encoding/json"
	"io"

	"FxRisk/pkg/config"

	"github.com/spf13/cobra"
)

var version = "dev"

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "fxrisk",
		Short:         "USD/KRW risk dashboard API",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "config/config.yaml", "config file path")

	cmd.AddCommand(
		newServeCmd(opts),
		newAnalyzeCmd(opts),
		newNewsCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

func (o *rootOptions) load() (*config.Config, error) {
	return config.LoadWithEnv(o.configPath)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
