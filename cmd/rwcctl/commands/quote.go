// AngelaMos | 2026
// quote.go

package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/carterperez-dev/rwc-wellness/internal/catalog"
	"github.com/carterperez-dev/rwc-wellness/internal/money"
)

func quoteCmd(opts *rootOptions) *cobra.Command {
	var req catalog.QuoteRequest

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a service with optional add-ons, including VAT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.loadCatalog(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			svc := catalog.NewQuoteService(cat, opts.cfg.Pricing.VATRate)
			q, err := svc.Quote(cmd.Context(), req)
			if err != nil {
				return err
			}

			f := money.NewFormatter(opts.cfg.Pricing.CurrencySymbol, opts.cfg.Pricing.Locale)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)

			fmt.Fprintf(tw, "%s\t%s\t\n", q.Service.Name, f.Currency(q.Service.Price))
			for _, a := range q.AddOns {
				fmt.Fprintf(tw, "+ %s\t%s\t\n", a.Name, f.Currency(a.Price))
			}
			if q.Discount > 0 {
				fmt.Fprintf(tw, "You save\t%s (%d%%)\t\n", f.Currency(q.Discount), q.DiscountPercentage)
			}
			fmt.Fprintf(tw, "Subtotal\t%s\t\n", f.Currency(q.Subtotal))
			fmt.Fprintf(tw, "VAT (%s%%)\t%s\t\n", formatRate(q.VATRate), f.Currency(q.VAT))
			fmt.Fprintf(tw, "Total\t%s\t\n", f.Currency(q.Total))
			if q.Duration > 0 {
				fmt.Fprintf(tw, "Duration\t%d min\t\n", q.Duration)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&req.ServiceID, "service", "s", "", "service id")
	cmd.Flags().StringSliceVarP(&req.AddOnIDs, "add-on", "a", nil, "add-on id, repeatable")
	_ = cmd.MarkFlagRequired("service") //nolint:errcheck // flag is defined above
	return cmd
}
