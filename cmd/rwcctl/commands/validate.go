// AngelaMos | 2026
// validate.go

package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carterperez-dev/rwc-wellness/internal/catalog"
	"github.com/carterperez-dev/rwc-wellness/internal/textutil"
)

func validateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a catalog seed for duplicate ids, dangling references and bad values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			src, cleanup, err := opts.source(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			seed, err := src.Load(ctx)
			if err != nil {
				return err
			}

			if err := catalog.Validate(seed); err != nil {
				var verr *catalog.ValidationError
				if !errors.As(err, &verr) {
					return err
				}
				for _, issue := range verr.Issues {
					fmt.Fprintln(out, issue.String())
				}
				return fmt.Errorf(
					"%s: %d %s",
					src.Name(),
					len(verr.Issues),
					textutil.Pluralize(len(verr.Issues), "issue"),
				)
			}

			c := catalog.New(seed).Counts()
			fmt.Fprintf(out, "%s: ok (%s, %s, %s, %s, %s, %s)\n",
				src.Name(),
				count(c.Categories, "category", "categories"),
				count(c.Services, "service"),
				count(c.Staff, "staff member"),
				count(c.AddOns, "add-on"),
				count(c.Memberships, "membership plan"),
				count(c.Testimonials, "testimonial"),
			)
			return nil
		},
	}
}

func count(n int, singular string, plural ...string) string {
	return fmt.Sprintf("%d %s", n, textutil.Pluralize(n, singular, plural...))
}
