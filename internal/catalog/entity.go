// AngelaMos | 2026
// entity.go

package catalog

import "slices"

type ServiceCategory struct {
	ID          string `json:"id"          db:"id"          validate:"required"`
	Name        string `json:"name"        db:"name"        validate:"required,max=100"`
	Description string `json:"description" db:"description"`
	Icon        string `json:"icon"        db:"icon"`
	Image       string `json:"image"       db:"image"`
	Slug        string `json:"slug"        db:"slug"        validate:"required,slug"`
}

type Service struct {
	ID            string `json:"id"            db:"id"             validate:"required"`
	CategoryID    string `json:"categoryId"    db:"category_id"    validate:"required"`
	Name          string `json:"name"          db:"name"           validate:"required,max=100"`
	Slug          string `json:"slug"          db:"slug"           validate:"required,slug"`
	Description   string `json:"description"   db:"description"`
	Price         int64  `json:"price"         db:"price"          validate:"gte=0"`
	OriginalPrice *int64 `json:"originalPrice" db:"original_price" validate:"omitempty,gte=0"`
	Duration      *int   `json:"duration"      db:"duration"       validate:"omitempty,gt=0"`
	Image         string `json:"image"         db:"image"`
}

type Staff struct {
	ID         string   `json:"id"         db:"id"         validate:"required"`
	Name       string   `json:"name"       db:"name"       validate:"required,max=100"`
	Email      string   `json:"email"      db:"email"      validate:"omitempty,email"`
	Phone      string   `json:"phone"      db:"phone"      validate:"omitempty,phone"`
	Avatar     string   `json:"avatar"     db:"avatar"`
	Role       string   `json:"role"       db:"role"       validate:"required"`
	Department string   `json:"department" db:"department" validate:"required"`
	Services   []string `json:"services"   db:"-"`
	Bio        string   `json:"bio"        db:"bio"`
	Active     bool     `json:"active"     db:"active"`
}

type AddOn struct {
	ID          string `json:"id"          db:"id"          validate:"required"`
	Name        string `json:"name"        db:"name"        validate:"required,max=100"`
	Description string `json:"description" db:"description"`
	Price       int64  `json:"price"       db:"price"       validate:"gte=0"`
	Duration    *int   `json:"duration"    db:"duration"    validate:"omitempty,gt=0"`
}

type Feature struct {
	Name     string  `json:"name"     db:"name"     validate:"required"`
	Included bool    `json:"included" db:"included"`
	Detail   *string `json:"detail"   db:"detail"`
}

type MembershipPlan struct {
	ID            string    `json:"id"            db:"id"             validate:"required"`
	Name          string    `json:"name"          db:"name"           validate:"required,max=100"`
	Slug          string    `json:"slug"          db:"slug"           validate:"required,slug"`
	Description   string    `json:"description"   db:"description"`
	MonthlyPrice  int64     `json:"monthlyPrice"  db:"monthly_price"  validate:"gte=0"`
	AnnualPrice   int64     `json:"annualPrice"   db:"annual_price"   validate:"gte=0"`
	AnnualSavings int64     `json:"annualSavings" db:"annual_savings"`
	Features      []Feature `json:"features"      db:"-"              validate:"dive"`
	IsPopular     bool      `json:"isPopular"     db:"is_popular"`
	Color         string    `json:"color"         db:"color"`
}

// ExpectedSavings is what AnnualSavings should hold for the plan's prices.
func (p MembershipPlan) ExpectedSavings() int64 {
	return p.MonthlyPrice*12 - p.AnnualPrice
}

type Testimonial struct {
	ID      string `json:"id"      db:"id"      validate:"required"`
	Name    string `json:"name"    db:"name"    validate:"required"`
	Role    string `json:"role"    db:"role"`
	Avatar  string `json:"avatar"  db:"avatar"`
	Rating  int    `json:"rating"  db:"rating"  validate:"min=1,max=5"`
	Comment string `json:"comment" db:"comment" validate:"required"`
	Service string `json:"service" db:"service"`
	Date    string `json:"date"    db:"date"    validate:"required,datetime=2006-01-02"`
}

// Seed is the raw material a Catalog is built from.
type Seed struct {
	Categories   []ServiceCategory `json:"categories"`
	Services     []Service         `json:"services"`
	Staff        []Staff           `json:"staff"`
	AddOns       []AddOn           `json:"addOns"`
	Memberships  []MembershipPlan  `json:"memberships"`
	Testimonials []Testimonial     `json:"testimonials"`
}

func (c ServiceCategory) clone() ServiceCategory { return c }

func (s Service) clone() Service {
	if s.OriginalPrice != nil {
		v := *s.OriginalPrice
		s.OriginalPrice = &v
	}
	if s.Duration != nil {
		v := *s.Duration
		s.Duration = &v
	}
	return s
}

func (s Staff) clone() Staff {
	s.Services = slices.Clone(s.Services)
	return s
}

func (a AddOn) clone() AddOn {
	if a.Duration != nil {
		v := *a.Duration
		a.Duration = &v
	}
	return a
}

func (f Feature) clone() Feature {
	if f.Detail != nil {
		v := *f.Detail
		f.Detail = &v
	}
	return f
}

func (p MembershipPlan) clone() MembershipPlan {
	p.Features = cloneAll(p.Features)
	return p
}

func (t Testimonial) clone() Testimonial { return t }

type cloner[T any] interface {
	clone() T
}

func cloneAll[T cloner[T]](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = item.clone()
	}
	return out
}
