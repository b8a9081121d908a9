package cli

import (
	"github.com/spf13/cobra"
)

// Version se pisa en build con -ldflags "-X customer-contract-portal/internal/cli.Version=...".
var Version = "dev"

type RootOptions struct {
	ConfigFile string
}

// NewRootCommand arma el CLI. Sin subcomando, levanta la API (igual que `serve`).
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	serve := NewServeCommand(opts)

	cmd := &cobra.Command{
		Use:           "portal",
		Short:         "Customer & contract portal API",
		Long:          "REST API for customers, contracts, notes, events and the contract approval lifecycle.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", "", "path to YAML config (default $CONFIG_FILE)")

	cmd.AddCommand(serve)
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}
