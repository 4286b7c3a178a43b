// AngelaMos | 2026
// quote.go

package catalog

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/carterperez-dev/rwc-wellness/internal/core"
	"github.com/carterperez-dev/rwc-wellness/internal/money"
)

// Quote prices one service plus a-la-carte add-ons. Nothing is booked.
type Quote struct {
	Service            Service
	AddOns             []AddOn
	ListPrice          int64
	Discount           int64
	DiscountPercentage int
	Subtotal           int64
	VATRate            float64
	VAT                int64
	Total              int64
	Duration           int
}

type QuoteService struct {
	catalog   *Catalog
	vatRate   float64
	validator *validator.Validate
	tracer    trace.Tracer
}

func NewQuoteService(cat *Catalog, vatRate float64) *QuoteService {
	return &QuoteService{
		catalog:   cat,
		vatRate:   vatRate,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		tracer:    otel.Tracer("rwc-wellness/catalog"),
	}
}

func (s *QuoteService) VATRate() float64 {
	return s.vatRate
}

// Quote returns core.ErrNotFound for an unknown service and
// core.ErrInvalidInput for a malformed request or an unknown add-on.
func (s *QuoteService) Quote(ctx context.Context, req QuoteRequest) (*Quote, error) {
	_, span := s.tracer.Start(ctx, "catalog.QuoteService.Quote")
	defer span.End()

	q, err := s.quote(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "quote failed")
		return nil, err
	}

	span.SetAttributes(
		attribute.String("catalog.service_id", q.Service.ID),
		attribute.Int("catalog.add_ons", len(q.AddOns)),
		attribute.Int64("catalog.total", q.Total),
	)
	return q, nil
}

func (s *QuoteService) quote(req QuoteRequest) (*Quote, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf(
			"quote: %s: %w",
			core.FormatValidationError(err),
			core.ErrInvalidInput,
		)
	}

	svc, ok := s.catalog.ServiceByID(req.ServiceID)
	if !ok {
		return nil, fmt.Errorf("quote service %q: %w", req.ServiceID, core.ErrNotFound)
	}

	q := &Quote{
		Service:   svc,
		AddOns:    make([]AddOn, 0, len(req.AddOnIDs)),
		ListPrice: svc.Price,
		Subtotal:  svc.Price,
		VATRate:   s.vatRate,
	}
	if svc.OriginalPrice != nil {
		q.ListPrice = *svc.OriginalPrice
		q.Discount = *svc.OriginalPrice - svc.Price
		q.DiscountPercentage = money.DiscountPercentage(*svc.OriginalPrice, svc.Price)
	}
	if svc.Duration != nil {
		q.Duration = *svc.Duration
	}

	for _, id := range req.AddOnIDs {
		addOn, found := s.catalog.AddOnByID(id)
		if !found {
			return nil, fmt.Errorf("quote add-on %q: %w", id, core.ErrInvalidInput)
		}
		q.AddOns = append(q.AddOns, addOn)
		q.ListPrice += addOn.Price
		q.Subtotal += addOn.Price
		if addOn.Duration != nil {
			q.Duration += *addOn.Duration
		}
	}

	q.VAT = money.VAT(q.Subtotal, s.vatRate)
	q.Total = money.TotalWithVAT(q.Subtotal, s.vatRate)

	return q, nil
}
