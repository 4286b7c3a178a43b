// AngelaMos | 2026
// validate.go

package catalog

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/rwc-wellness/internal/core"
	"github.com/carterperez-dev/rwc-wellness/internal/textutil"
)

// Issue is one problem found in a seed.
type Issue struct {
	Entity  string `json:"entity"`
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.ID == "" {
		return fmt.Sprintf("%s: %s", i.Entity, i.Message)
	}
	return fmt.Sprintf("%s %q: %s", i.Entity, i.ID, i.Message)
}

type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, issue.String())
	}
	return fmt.Sprintf(
		"catalog has %d issue(s): %s",
		len(e.Issues),
		strings.Join(msgs, "; "),
	)
}

func (e *ValidationError) Unwrap() error {
	return core.ErrInvalidInput
}

// NewValidator returns a validator that knows the catalog's custom tags:
// "slug" for canonical slugs and "phone" for dialable numbers.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	//nolint:errcheck // tag names are static and valid
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s != "" && textutil.TitleToSlug(s) == s
	})
	//nolint:errcheck // tag names are static and valid
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return textutil.IsPhoneNumber(fl.Field().String())
	})

	return v
}

// Validate checks a seed before it is turned into a Catalog. It returns nil
// or a *ValidationError carrying every issue found.
func Validate(seed Seed) error {
	c := checker{v: NewValidator()}

	categoryIDs := c.unique("category", "id", len(seed.Categories), func(i int) string {
		return seed.Categories[i].ID
	})
	c.unique("category", "slug", len(seed.Categories), func(i int) string {
		return seed.Categories[i].Slug
	})
	for _, cat := range seed.Categories {
		c.fields("category", cat.ID, cat)
	}

	serviceIDs := c.unique("service", "id", len(seed.Services), func(i int) string {
		return seed.Services[i].ID
	})
	c.unique("service", "slug", len(seed.Services), func(i int) string {
		return seed.Services[i].Slug
	})
	for _, svc := range seed.Services {
		c.fields("service", svc.ID, svc)
		if _, ok := categoryIDs[svc.CategoryID]; !ok {
			c.add("service", svc.ID, fmt.Sprintf("unknown category %q", svc.CategoryID))
		}
		if svc.OriginalPrice != nil && *svc.OriginalPrice < svc.Price {
			c.add("service", svc.ID, "original price is below price")
		}
	}

	c.unique("staff", "id", len(seed.Staff), func(i int) string {
		return seed.Staff[i].ID
	})
	for _, member := range seed.Staff {
		c.fields("staff", member.ID, member)
		for _, sid := range member.Services {
			if _, ok := serviceIDs[sid]; !ok {
				c.add("staff", member.ID, fmt.Sprintf("unknown service %q", sid))
			}
		}
	}

	c.unique("add-on", "id", len(seed.AddOns), func(i int) string {
		return seed.AddOns[i].ID
	})
	for _, addOn := range seed.AddOns {
		c.fields("add-on", addOn.ID, addOn)
	}

	c.unique("membership", "id", len(seed.Memberships), func(i int) string {
		return seed.Memberships[i].ID
	})
	c.unique("membership", "slug", len(seed.Memberships), func(i int) string {
		return seed.Memberships[i].Slug
	})
	popular := 0
	for _, plan := range seed.Memberships {
		c.fields("membership", plan.ID, plan)
		if plan.IsPopular {
			popular++
		}
		if want := plan.ExpectedSavings(); plan.AnnualSavings != want {
			c.add("membership", plan.ID, fmt.Sprintf(
				"annual savings %d, expected %d",
				plan.AnnualSavings,
				want,
			))
		}
	}
	if popular > 1 {
		c.add("membership", "", fmt.Sprintf("%d plans flagged popular, at most one allowed", popular))
	}

	c.unique("testimonial", "id", len(seed.Testimonials), func(i int) string {
		return seed.Testimonials[i].ID
	})
	for _, t := range seed.Testimonials {
		c.fields("testimonial", t.ID, t)
	}

	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

type checker struct {
	v      *validator.Validate
	issues []Issue
}

func (c *checker) add(entity, id, message string) {
	c.issues = append(c.issues, Issue{Entity: entity, ID: id, Message: message})
}

func (c *checker) fields(entity, id string, value any) {
	if err := c.v.Struct(value); err != nil {
		c.add(entity, id, core.FormatValidationError(err))
	}
}

// unique reports repeated non-empty keys and returns the set of keys seen.
func (c *checker) unique(entity, field string, n int, key func(int) string) map[string]struct{} {
	seen := make(map[string]struct{}, n)
	for i := range n {
		k := key(i)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			c.add(entity, k, fmt.Sprintf("duplicate %s", field))
			continue
		}
		seen[k] = struct{}{}
	}
	return seen
}
