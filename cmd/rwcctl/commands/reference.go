// AngelaMos | 2026
// reference.go

package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carterperez-dev/rwc-wellness/internal/booking"
	"github.com/carterperez-dev/rwc-wellness/internal/core"
)

func referenceCmd(opts *rootOptions) *cobra.Command {
	var (
		n       int
		reserve bool
	)

	cmd := &cobra.Command{
		Use:   "reference",
		Short: "Generate booking references",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 1 {
				return errors.New("-n must be at least 1")
			}

			out := cmd.OutOrStdout()
			gen := booking.NewGenerator(booking.WithPrefix(opts.cfg.Booking.ReferencePrefix))

			if !reserve {
				for range n {
					fmt.Fprintln(out, gen.Generate())
				}
				return nil
			}

			if !opts.cfg.Redis.Enabled() {
				return errors.New("--reserve needs REDIS_URL")
			}

			rdb, err := core.NewRedis(cmd.Context(), opts.cfg.Redis, "rwcctl")
			if err != nil {
				return err
			}
			defer func() {
				_ = rdb.Close() //nolint:errcheck // best-effort close for a one-shot command
			}()

			registry := booking.NewRegistry(rdb, gen, booking.RegistryConfig{
				TTL:         opts.cfg.Booking.ReferenceTTL,
				MaxAttempts: opts.cfg.Booking.MaxAttempts,
			})

			for range n {
				ref, err := registry.Reserve(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(out, ref)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "count", "n", 1, "how many references to print")
	cmd.Flags().BoolVar(&reserve, "reserve", false, "reserve each reference in Redis")
	return cmd
}
