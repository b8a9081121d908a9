package cli

import (
	"fmt"
	"time"

	"customer-contract-portal/internal/platform/config"
	"customer-contract-portal/internal/platform/httpclient"
	"customer-contract-portal/internal/platform/logger"
	"customer-contract-portal/internal/seed"

	"github.com/spf13/cobra"
)

type SeedOptions struct {
	APIURL  string
	Actor   string
	Seed    uint64
	Timeout time.Duration
	Counts  seed.Counts
}

// NewSeedCommand puebla una API ya levantada; habla HTTP, no abre la base.
func NewSeedCommand(root *RootOptions) *cobra.Command {
	opts := &SeedOptions{Counts: seed.DefaultCounts()}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate a running API with sample data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.ConfigFile)
			if err != nil {
				return err
			}
			log := logger.New(logger.Options{
				Level:  logger.ParseLevel(cfg.Log.Level),
				Format: logger.ParseFormat(cfg.Log.Format),
				App:    cfg.Log.App,
			})
			defer func() { _ = log.Sync() }()

			if opts.Seed == 0 {
				opts.Seed = uint64(time.Now().UnixNano())
			}

			api, err := httpclient.New(opts.APIURL, opts.Timeout)
			if err != nil {
				return err
			}
			api.Actor = opts.Actor

			res, err := seed.New(api, log, opts.Seed).Run(cmd.Context(), opts.Counts)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"seeded %d customers, %d contracts, %d events, %d notes, %d actions\n",
				res.Customers, res.Contracts, res.Events, res.Notes, res.Actions)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.APIURL, "api-url", "http://localhost:8080", "base URL of the running API")
	cmd.Flags().StringVar(&opts.Actor, "actor", "seed", "value sent as X-Actor")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed (0 = time based)")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", httpclient.DefaultTimeout, "per-request timeout")
	cmd.Flags().IntVar(&opts.Counts.Customers, "customers", opts.Counts.Customers, "customers to create")
	cmd.Flags().IntVar(&opts.Counts.Contracts, "contracts", opts.Counts.Contracts, "contracts to create")
	cmd.Flags().IntVar(&opts.Counts.Events, "events", opts.Counts.Events, "events to create")
	cmd.Flags().IntVar(&opts.Counts.Notes, "notes", opts.Counts.Notes, "notes to create")
	cmd.Flags().IntVar(&opts.Counts.Actions, "actions", opts.Counts.Actions, "actions to create")

	return cmd
}
