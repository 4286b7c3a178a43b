// AngelaMos | 2026
// format.go

package commands

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/carterperez-dev/rwc-wellness/internal/money"
)

func formatCmd(opts *rootOptions) *cobra.Command {
	var vatRate float64

	cmd := &cobra.Command{
		Use:   "format <amount>...",
		Short: "Show how amounts render and what VAT they carry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate := opts.cfg.Pricing.VATRate
			if cmd.Flags().Changed("vat-rate") {
				rate = vatRate
			}

			f := money.NewFormatter(opts.cfg.Pricing.CurrencySymbol, opts.cfg.Pricing.Locale)
			out := cmd.OutOrStdout()

			for _, arg := range args {
				amount, ok := f.Parse(arg)
				if !ok {
					return fmt.Errorf("not an amount: %q", arg)
				}
				fmt.Fprintf(out, "%s\tnumber=%s\tvat=%s\ttotal=%s\n",
					f.Currency(amount),
					f.Number(amount),
					f.Currency(money.VAT(amount, rate)),
					f.Currency(money.TotalWithVAT(amount, rate)),
				)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&vatRate, "vat-rate", money.DefaultVATRate, "VAT rate override, e.g. 0.075")
	return cmd
}

// formatRate renders 0.075 as "7.5".
func formatRate(rate float64) string {
	return strconv.FormatFloat(math.Round(rate*10000)/100, 'f', -1, 64)
}
