// AngelaMos | 2026
// handler.go

package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/rwc-wellness/internal/core"
	"github.com/carterperez-dev/rwc-wellness/internal/money"
)

const defaultTopLimit = 3

type Handler struct {
	catalog   *Catalog
	quotes    *QuoteService
	formatter *money.Formatter
}

func NewHandler(cat *Catalog, quotes *QuoteService, formatter *money.Formatter) *Handler {
	return &Handler{
		catalog:   cat,
		quotes:    quotes,
		formatter: formatter,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.ListCategories)
		r.Get("/{slug}", h.GetCategory)
		r.Get("/{slug}/services", h.ListCategoryServices)
	})

	r.Route("/services", func(r chi.Router) {
		r.Get("/", h.ListServices)
		r.Get("/{id}", h.GetService)
		r.Get("/{id}/staff", h.ListServiceStaff)
	})

	r.Route("/staff", func(r chi.Router) {
		r.Get("/", h.ListStaff)
		r.Get("/{id}", h.GetStaff)
		r.Get("/{id}/services", h.GetStaffServices)
	})

	r.Route("/add-ons", func(r chi.Router) {
		r.Get("/", h.ListAddOns)
		r.Get("/{id}", h.GetAddOn)
	})

	r.Route("/memberships", func(r chi.Router) {
		r.Get("/", h.ListMemberships)
		r.Get("/popular", h.GetPopularMembership)
		r.Get("/{slug}", h.GetMembership)
	})

	r.Route("/testimonials", func(r chi.Router) {
		r.Get("/", h.ListTestimonials)
		r.Get("/top", h.ListTopTestimonials)
	})

	r.Post("/quotes", h.CreateQuote)
}

func (h *Handler) ListCategories(w http.ResponseWriter, _ *http.Request) {
	items := mapAll(h.catalog.Categories(), ToCategoryResponse)
	core.List(w, items, len(items))
}

func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	cat, ok := h.catalog.CategoryBySlug(chi.URLParam(r, "slug"))
	if !ok {
		core.NotFound(w, "category")
		return
	}

	core.OK(w, ToCategoryResponse(cat))
}

func (h *Handler) ListCategoryServices(w http.ResponseWriter, r *http.Request) {
	cat, ok := h.catalog.CategoryBySlug(chi.URLParam(r, "slug"))
	if !ok {
		core.NotFound(w, "category")
		return
	}

	h.writeServices(w, h.catalog.ServicesByCategory(cat.ID))
}

func (h *Handler) ListServices(w http.ResponseWriter, _ *http.Request) {
	h.writeServices(w, h.catalog.Services())
}

func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.catalog.ServiceByID(chi.URLParam(r, "id"))
	if !ok {
		core.NotFound(w, "service")
		return
	}

	core.OK(w, ToServiceResponse(svc, h.formatter))
}

func (h *Handler) ListServiceStaff(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.catalog.ServiceByID(id); !ok {
		core.NotFound(w, "service")
		return
	}

	writeStaff(w, h.catalog.StaffByService(id))
}

// ListStaff applies the department, service and active query filters.
// Filters combine with AND.
func (h *Handler) ListStaff(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	staff := h.catalog.Staff()
	if service := q.Get("service"); service != "" {
		staff = h.catalog.StaffByService(service)
	}

	if department := q.Get("department"); department != "" {
		staff = slices.DeleteFunc(staff, func(s Staff) bool {
			return s.Department != department
		})
	}

	if raw := q.Get("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			core.BadRequest(w, "active must be true or false")
			return
		}
		staff = slices.DeleteFunc(staff, func(s Staff) bool {
			return s.Active != active
		})
	}

	writeStaff(w, staff)
}

func (h *Handler) GetStaff(w http.ResponseWriter, r *http.Request) {
	member, ok := h.catalog.StaffByID(chi.URLParam(r, "id"))
	if !ok {
		core.NotFound(w, "staff member")
		return
	}

	core.OK(w, ToStaffResponse(member))
}

func (h *Handler) GetStaffServices(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, ok := h.catalog.StaffServices(id)
	if !ok {
		core.NotFound(w, "staff member")
		return
	}

	core.OK(w, ToStaffServicesResponse(id, res, h.formatter))
}

func (h *Handler) ListAddOns(w http.ResponseWriter, r *http.Request) {
	addOns := h.catalog.AddOns()
	if raw := r.URL.Query().Get("ids"); raw != "" {
		addOns = h.catalog.AddOnsByIDs(splitList(raw))
	}

	items := mapAll(addOns, func(a AddOn) AddOnResponse {
		return ToAddOnResponse(a, h.formatter)
	})
	core.List(w, items, len(items))
}

func (h *Handler) GetAddOn(w http.ResponseWriter, r *http.Request) {
	addOn, ok := h.catalog.AddOnByID(chi.URLParam(r, "id"))
	if !ok {
		core.NotFound(w, "add-on")
		return
	}

	core.OK(w, ToAddOnResponse(addOn, h.formatter))
}

func (h *Handler) ListMemberships(w http.ResponseWriter, _ *http.Request) {
	items := mapAll(h.catalog.Memberships(), func(p MembershipPlan) MembershipResponse {
		return ToMembershipResponse(p, h.formatter)
	})
	core.List(w, items, len(items))
}

func (h *Handler) GetPopularMembership(w http.ResponseWriter, _ *http.Request) {
	plan, ok := h.catalog.PopularMembership()
	if !ok {
		core.NotFound(w, "popular membership")
		return
	}

	core.OK(w, ToMembershipResponse(plan, h.formatter))
}

func (h *Handler) GetMembership(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.catalog.MembershipBySlug(chi.URLParam(r, "slug"))
	if !ok {
		core.NotFound(w, "membership")
		return
	}

	core.OK(w, ToMembershipResponse(plan, h.formatter))
}

func (h *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials := h.catalog.Testimonials()
	if raw := r.URL.Query().Get("rating"); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil {
			core.BadRequest(w, "rating must be an integer")
			return
		}
		testimonials = h.catalog.TestimonialsByRating(rating)
	}

	writeTestimonials(w, testimonials)
}

func (h *Handler) ListTopTestimonials(w http.ResponseWriter, r *http.Request) {
	limit := defaultTopLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			core.BadRequest(w, "limit must be an integer")
			return
		}
		limit = parsed
	}

	writeTestimonials(w, h.catalog.TopRatedTestimonials(limit))
}

func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	quote, err := h.quotes.Quote(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "service")
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, err.Error())
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, ToQuoteResponse(quote, h.formatter))
}

func (h *Handler) writeServices(w http.ResponseWriter, services []Service) {
	items := mapAll(services, func(s Service) ServiceResponse {
		return ToServiceResponse(s, h.formatter)
	})
	core.List(w, items, len(items))
}

func writeStaff(w http.ResponseWriter, staff []Staff) {
	items := mapAll(staff, ToStaffResponse)
	core.List(w, items, len(items))
}

func writeTestimonials(w http.ResponseWriter, testimonials []Testimonial) {
	items := mapAll(testimonials, ToTestimonialResponse)
	core.List(w, items, len(items))
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
