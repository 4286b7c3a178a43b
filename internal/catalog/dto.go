// AngelaMos | 2026
// dto.go

package catalog

import (
	"strconv"

	"github.com/carterperez-dev/rwc-wellness/internal/money"
	"github.com/carterperez-dev/rwc-wellness/internal/textutil"
)

type QuoteRequest struct {
	ServiceID string   `json:"service_id" validate:"required,max=100"`
	AddOnIDs  []string `json:"add_on_ids" validate:"max=10,unique,dive,required"`
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Image       string `json:"image"`
	Slug        string `json:"slug"`
}

type ServiceResponse struct {
	ID                   string `json:"id"`
	CategoryID           string `json:"category_id"`
	Name                 string `json:"name"`
	Slug                 string `json:"slug"`
	Description          string `json:"description"`
	Summary              string `json:"summary"`
	Price                int64  `json:"price"`
	PriceDisplay         string `json:"price_display"`
	OriginalPrice        *int64 `json:"original_price,omitempty"`
	OriginalPriceDisplay string `json:"original_price_display,omitempty"`
	DiscountPercentage   int    `json:"discount_percentage,omitempty"`
	Duration             *int   `json:"duration,omitempty"`
	Image                string `json:"image"`
}

type StaffResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Initials   string   `json:"initials"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Avatar     string   `json:"avatar"`
	Role       string   `json:"role"`
	Department string   `json:"department"`
	Services   []string `json:"services"`
	Bio        string   `json:"bio"`
	Active     bool     `json:"active"`
}

type StaffServicesResponse struct {
	StaffID    string            `json:"staff_id"`
	Services   []ServiceResponse `json:"services"`
	Unresolved []string          `json:"unresolved"`
	Complete   bool              `json:"complete"`
}

type AddOnResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        int64  `json:"price"`
	PriceDisplay string `json:"price_display"`
	Duration     *int   `json:"duration,omitempty"`
}

type FeatureResponse struct {
	Name     string  `json:"name"`
	Included bool    `json:"included"`
	Detail   *string `json:"detail,omitempty"`
}

type MembershipResponse struct {
	ID                   string            `json:"id"`
	Name                 string            `json:"name"`
	Slug                 string            `json:"slug"`
	Description          string            `json:"description"`
	MonthlyPrice         int64             `json:"monthly_price"`
	MonthlyPriceDisplay  string            `json:"monthly_price_display"`
	AnnualPrice          int64             `json:"annual_price"`
	AnnualPriceDisplay   string            `json:"annual_price_display"`
	AnnualSavings        int64             `json:"annual_savings"`
	AnnualSavingsDisplay string            `json:"annual_savings_display"`
	Features             []FeatureResponse `json:"features"`
	IsPopular            bool              `json:"is_popular"`
	Color                string            `json:"color"`
}

type TestimonialResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Initials      string `json:"initials"`
	Role          string `json:"role"`
	Avatar        string `json:"avatar"`
	Rating        int    `json:"rating"`
	RatingDisplay string `json:"rating_display"`
	Comment       string `json:"comment"`
	Service       string `json:"service"`
	Date          string `json:"date"`
}

type QuoteLine struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	PriceDisplay string `json:"price_display"`
}

type QuoteResponse struct {
	Service            QuoteLine   `json:"service"`
	AddOns             []QuoteLine `json:"add_ons"`
	ListPrice          int64       `json:"list_price"`
	Discount           int64       `json:"discount"`
	DiscountPercentage int         `json:"discount_percentage"`
	Subtotal           int64       `json:"subtotal"`
	SubtotalDisplay    string      `json:"subtotal_display"`
	VATRate            float64     `json:"vat_rate"`
	VAT                int64       `json:"vat"`
	VATDisplay         string      `json:"vat_display"`
	Total              int64       `json:"total"`
	TotalDisplay       string      `json:"total_display"`
	Duration           int         `json:"duration"`
	Summary            string      `json:"summary"`
}

const summaryLength = 80

func ToCategoryResponse(c ServiceCategory) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		Image:       c.Image,
		Slug:        c.Slug,
	}
}

func ToServiceResponse(s Service, f *money.Formatter) ServiceResponse {
	resp := ServiceResponse{
		ID:            s.ID,
		CategoryID:    s.CategoryID,
		Name:          s.Name,
		Slug:          s.Slug,
		Description:   s.Description,
		Summary:       textutil.Truncate(s.Description, summaryLength),
		Price:         s.Price,
		PriceDisplay:  f.Currency(s.Price),
		OriginalPrice: s.OriginalPrice,
		Duration:      s.Duration,
		Image:         s.Image,
	}
	if s.OriginalPrice != nil {
		resp.OriginalPriceDisplay = f.Currency(*s.OriginalPrice)
		resp.DiscountPercentage = money.DiscountPercentage(*s.OriginalPrice, s.Price)
	}
	return resp
}

func ToStaffResponse(s Staff) StaffResponse {
	services := s.Services
	if services == nil {
		services = []string{}
	}
	return StaffResponse{
		ID:         s.ID,
		Name:       s.Name,
		Initials:   textutil.GetInitials(s.Name),
		Email:      s.Email,
		Phone:      textutil.FormatPhoneNumber(s.Phone),
		Avatar:     s.Avatar,
		Role:       s.Role,
		Department: s.Department,
		Services:   services,
		Bio:        s.Bio,
		Active:     s.Active,
	}
}

func ToStaffServicesResponse(
	staffID string,
	res ServiceResolution,
	f *money.Formatter,
) StaffServicesResponse {
	return StaffServicesResponse{
		StaffID:    staffID,
		Services:   mapAll(res.Services, func(s Service) ServiceResponse { return ToServiceResponse(s, f) }),
		Unresolved: res.Unresolved,
		Complete:   res.Complete(),
	}
}

func ToAddOnResponse(a AddOn, f *money.Formatter) AddOnResponse {
	return AddOnResponse{
		ID:           a.ID,
		Name:         a.Name,
		Description:  a.Description,
		Price:        a.Price,
		PriceDisplay: f.Currency(a.Price),
		Duration:     a.Duration,
	}
}

func ToMembershipResponse(p MembershipPlan, f *money.Formatter) MembershipResponse {
	return MembershipResponse{
		ID:                   p.ID,
		Name:                 p.Name,
		Slug:                 p.Slug,
		Description:          p.Description,
		MonthlyPrice:         p.MonthlyPrice,
		MonthlyPriceDisplay:  f.Currency(p.MonthlyPrice),
		AnnualPrice:          p.AnnualPrice,
		AnnualPriceDisplay:   f.Currency(p.AnnualPrice),
		AnnualSavings:        p.AnnualSavings,
		AnnualSavingsDisplay: f.Currency(p.AnnualSavings),
		Features: mapAll(p.Features, func(ft Feature) FeatureResponse {
			return FeatureResponse{Name: ft.Name, Included: ft.Included, Detail: ft.Detail}
		}),
		IsPopular: p.IsPopular,
		Color:     p.Color,
	}
}

func ToTestimonialResponse(t Testimonial) TestimonialResponse {
	return TestimonialResponse{
		ID:            t.ID,
		Name:          t.Name,
		Initials:      textutil.GetInitials(t.Name),
		Role:          t.Role,
		Avatar:        t.Avatar,
		Rating:        t.Rating,
		RatingDisplay: textutil.FormatRating(float64(t.Rating)),
		Comment:       t.Comment,
		Service:       t.Service,
		Date:          t.Date,
	}
}

func ToQuoteResponse(q *Quote, f *money.Formatter) QuoteResponse {
	addOns := mapAll(q.AddOns, func(a AddOn) QuoteLine {
		return QuoteLine{ID: a.ID, Name: a.Name, Price: a.Price, PriceDisplay: f.Currency(a.Price)}
	})

	summary := q.Service.Name
	if n := len(addOns); n > 0 {
		summary += " with " + strconv.Itoa(n) + " " + textutil.Pluralize(n, "add-on")
	}

	return QuoteResponse{
		Service: QuoteLine{
			ID:           q.Service.ID,
			Name:         q.Service.Name,
			Price:        q.Service.Price,
			PriceDisplay: f.Currency(q.Service.Price),
		},
		AddOns:             addOns,
		ListPrice:          q.ListPrice,
		Discount:           q.Discount,
		DiscountPercentage: q.DiscountPercentage,
		Subtotal:           q.Subtotal,
		SubtotalDisplay:    f.Currency(q.Subtotal),
		VATRate:            q.VATRate,
		VAT:                q.VAT,
		VATDisplay:         f.Currency(q.VAT),
		Total:              q.Total,
		TotalDisplay:       f.Currency(q.Total),
		Duration:           q.Duration,
		Summary:            summary,
	}
}

func mapAll[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
