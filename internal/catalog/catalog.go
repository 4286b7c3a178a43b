// AngelaMos | 2026
// catalog.go

package catalog

import "slices"

// TopRating is the rating a testimonial needs to count as top rated.
const TopRating = 5

// Catalog holds the seed collections for the life of the process. It is
// never mutated after New, so concurrent readers need no locking. Every
// accessor hands out copies.
type Catalog struct {
	categories   []ServiceCategory
	services     []Service
	staff        []Staff
	addOns       []AddOn
	memberships  []MembershipPlan
	testimonials []Testimonial
}

func New(seed Seed) *Catalog {
	return &Catalog{
		categories:   cloneAll(seed.Categories),
		services:     cloneAll(seed.Services),
		staff:        cloneAll(seed.Staff),
		addOns:       cloneAll(seed.AddOns),
		memberships:  cloneAll(seed.Memberships),
		testimonials: cloneAll(seed.Testimonials),
	}
}

// Seed returns a copy of the collections the catalog was built from.
func (c *Catalog) Seed() Seed {
	return Seed{
		Categories:   cloneAll(c.categories),
		Services:     cloneAll(c.services),
		Staff:        cloneAll(c.staff),
		AddOns:       cloneAll(c.addOns),
		Memberships:  cloneAll(c.memberships),
		Testimonials: cloneAll(c.testimonials),
	}
}

type Counts struct {
	Categories   int `json:"categories"`
	Services     int `json:"services"`
	Staff        int `json:"staff"`
	ActiveStaff  int `json:"active_staff"`
	AddOns       int `json:"add_ons"`
	Memberships  int `json:"memberships"`
	Testimonials int `json:"testimonials"`
}

func (c *Catalog) Counts() Counts {
	active := 0
	for _, s := range c.staff {
		if s.Active {
			active++
		}
	}

	return Counts{
		Categories:   len(c.categories),
		Services:     len(c.services),
		Staff:        len(c.staff),
		ActiveStaff:  active,
		AddOns:       len(c.addOns),
		Memberships:  len(c.memberships),
		Testimonials: len(c.testimonials),
	}
}

// find returns the first item in insertion order that matches.
func find[T cloner[T]](items []T, match func(T) bool) (T, bool) {
	for _, item := range items {
		if match(item) {
			return item.clone(), true
		}
	}
	var zero T
	return zero, false
}

// filter keeps insertion order and never returns nil.
func filter[T cloner[T]](items []T, match func(T) bool) []T {
	out := make([]T, 0)
	for _, item := range items {
		if match(item) {
			out = append(out, item.clone())
		}
	}
	return out
}

func all[T cloner[T]](items []T) []T {
	out := cloneAll(items)
	if out == nil {
		return []T{}
	}
	return out
}

func (c *Catalog) Categories() []ServiceCategory {
	return all(c.categories)
}

func (c *Catalog) CategoryByID(id string) (ServiceCategory, bool) {
	return find(c.categories, func(cat ServiceCategory) bool { return cat.ID == id })
}

func (c *Catalog) CategoryBySlug(slug string) (ServiceCategory, bool) {
	return find(c.categories, func(cat ServiceCategory) bool { return cat.Slug == slug })
}

func (c *Catalog) Services() []Service {
	return all(c.services)
}

func (c *Catalog) ServiceByID(id string) (Service, bool) {
	return find(c.services, func(s Service) bool { return s.ID == id })
}

func (c *Catalog) ServiceBySlug(slug string) (Service, bool) {
	return find(c.services, func(s Service) bool { return s.Slug == slug })
}

func (c *Catalog) ServicesByCategory(categoryID string) []Service {
	return filter(c.services, func(s Service) bool { return s.CategoryID == categoryID })
}

func (c *Catalog) Staff() []Staff {
	return all(c.staff)
}

func (c *Catalog) StaffByID(id string) (Staff, bool) {
	return find(c.staff, func(s Staff) bool { return s.ID == id })
}

func (c *Catalog) StaffByDepartment(department string) []Staff {
	return filter(c.staff, func(s Staff) bool { return s.Department == department })
}

func (c *Catalog) StaffByService(serviceID string) []Staff {
	return filter(c.staff, func(s Staff) bool {
		return slices.Contains(s.Services, serviceID)
	})
}

func (c *Catalog) ActiveStaff() []Staff {
	return filter(c.staff, func(s Staff) bool { return s.Active })
}

// ServiceResolution is the outcome of following a staff member's service
// ids. Unresolved lists ids with no matching service, in staff order.
type ServiceResolution struct {
	Services   []Service
	Unresolved []string
}

func (r ServiceResolution) Complete() bool {
	return len(r.Unresolved) == 0
}

// StaffServices resolves the services a staff member performs. The bool is
// false only when the staff id itself is unknown.
func (c *Catalog) StaffServices(staffID string) (ServiceResolution, bool) {
	member, ok := c.StaffByID(staffID)
	if !ok {
		return ServiceResolution{}, false
	}

	res := ServiceResolution{
		Services:   make([]Service, 0, len(member.Services)),
		Unresolved: make([]string, 0),
	}
	for _, id := range member.Services {
		svc, found := c.ServiceByID(id)
		if !found {
			res.Unresolved = append(res.Unresolved, id)
			continue
		}
		res.Services = append(res.Services, svc)
	}

	return res, true
}

func (c *Catalog) AddOns() []AddOn {
	return all(c.addOns)
}

func (c *Catalog) AddOnByID(id string) (AddOn, bool) {
	return find(c.addOns, func(a AddOn) bool { return a.ID == id })
}

// AddOnsByIDs returns the add-ons whose id is in ids, in catalog order.
// Unknown ids are ignored.
func (c *Catalog) AddOnsByIDs(ids []string) []AddOn {
	return filter(c.addOns, func(a AddOn) bool { return slices.Contains(ids, a.ID) })
}

func (c *Catalog) Memberships() []MembershipPlan {
	return all(c.memberships)
}

func (c *Catalog) MembershipByID(id string) (MembershipPlan, bool) {
	return find(c.memberships, func(p MembershipPlan) bool { return p.ID == id })
}

func (c *Catalog) MembershipBySlug(slug string) (MembershipPlan, bool) {
	return find(c.memberships, func(p MembershipPlan) bool { return p.Slug == slug })
}

// PopularMembership returns the plan flagged popular. When more than one is
// flagged the first in catalog order wins.
func (c *Catalog) PopularMembership() (MembershipPlan, bool) {
	return find(c.memberships, func(p MembershipPlan) bool { return p.IsPopular })
}

func (c *Catalog) Testimonials() []Testimonial {
	return all(c.testimonials)
}

func (c *Catalog) TestimonialByID(id string) (Testimonial, bool) {
	return find(c.testimonials, func(t Testimonial) bool { return t.ID == id })
}

func (c *Catalog) TestimonialsByRating(rating int) []Testimonial {
	return filter(c.testimonials, func(t Testimonial) bool { return t.Rating == rating })
}

// TopRatedTestimonials returns up to limit five-star testimonials in catalog
// order. A non-positive limit yields an empty result.
func (c *Catalog) TopRatedTestimonials(limit int) []Testimonial {
	if limit <= 0 {
		return []Testimonial{}
	}

	top := c.TestimonialsByRating(TopRating)
	if len(top) > limit {
		top = top[:limit]
	}
	return top
}
