// AngelaMos | 2026
// postgres.go

package catalog

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/rwc-wellness/internal/core"
)

// Schema is the DDL for the tables PostgresSource reads.
//
//go:embed schema.sql
var Schema string

const (
	selectCategories = `
		SELECT id, name, description, icon, image, slug
		FROM service_categories
		ORDER BY position`

	selectServices = `
		SELECT id, category_id, name, slug, description, price,
		       original_price, duration, image
		FROM services
		ORDER BY position`

	selectStaff = `
		SELECT id, name, email, phone, avatar, role, department, bio, active
		FROM staff
		ORDER BY position`

	selectStaffServices = `
		SELECT staff_id, service_id
		FROM staff_services
		ORDER BY staff_id, position`

	selectAddOns = `
		SELECT id, name, description, price, duration
		FROM add_ons
		ORDER BY position`

	selectMemberships = `
		SELECT id, name, slug, description, monthly_price, annual_price,
		       annual_savings, is_popular, color
		FROM membership_plans
		ORDER BY position`

	selectMembershipFeatures = `
		SELECT plan_id, name, included, detail
		FROM membership_features
		ORDER BY plan_id, position`

	selectTestimonials = `
		SELECT id, name, role, avatar, rating, comment, service,
		       to_char(date, 'YYYY-MM-DD') AS date
		FROM testimonials
		ORDER BY position`
)

type staffServiceRow struct {
	StaffID   string `db:"staff_id"`
	ServiceID string `db:"service_id"`
}

type featureRow struct {
	PlanID string `db:"plan_id"`
	Feature
}

// PostgresSource reads the seed from catalog tables. Every table carries a
// position column that fixes insertion order. All reads share one read-only
// transaction so the snapshot is consistent.
type PostgresSource struct {
	DB *sqlx.DB
}

func (PostgresSource) Name() string { return "postgres" }

func (s PostgresSource) Load(ctx context.Context) (Seed, error) {
	var seed Seed

	err := core.ReadSnapshot(ctx, s.DB, func(q core.Querier) error {
		var err error
		seed, err = loadSeed(ctx, q)
		return err
	})
	if err != nil {
		return Seed{}, err
	}

	return seed, nil
}

func loadSeed(ctx context.Context, db core.Querier) (Seed, error) {
	var (
		seed          Seed
		staffServices []staffServiceRow
		features      []featureRow
	)

	reads := []struct {
		name  string
		dest  any
		query string
	}{
		{"service categories", &seed.Categories, selectCategories},
		{"services", &seed.Services, selectServices},
		{"staff", &seed.Staff, selectStaff},
		{"staff services", &staffServices, selectStaffServices},
		{"add-ons", &seed.AddOns, selectAddOns},
		{"membership plans", &seed.Memberships, selectMemberships},
		{"membership features", &features, selectMembershipFeatures},
		{"testimonials", &seed.Testimonials, selectTestimonials},
	}

	for _, r := range reads {
		if err := db.SelectContext(ctx, r.dest, r.query); err != nil {
			return Seed{}, fmt.Errorf("select %s: %w", r.name, err)
		}
	}

	servicesByStaff := make(map[string][]string, len(seed.Staff))
	for _, row := range staffServices {
		servicesByStaff[row.StaffID] = append(servicesByStaff[row.StaffID], row.ServiceID)
	}
	for i := range seed.Staff {
		seed.Staff[i].Services = servicesByStaff[seed.Staff[i].ID]
	}

	featuresByPlan := make(map[string][]Feature, len(seed.Memberships))
	for _, row := range features {
		featuresByPlan[row.PlanID] = append(featuresByPlan[row.PlanID], row.Feature)
	}
	for i := range seed.Memberships {
		seed.Memberships[i].Features = featuresByPlan[seed.Memberships[i].ID]
	}

	return seed, nil
}
