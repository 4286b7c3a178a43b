// AngelaMos | 2026
// handler_test.go

package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/rwc-wellness/internal/money"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta *struct {
		Count int `json:"count"`
	} `json:"meta"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cat := fixture(t)
	h := NewHandler(
		cat,
		NewQuoteService(cat, money.DefaultVATRate),
		money.NewFormatter(money.DefaultSymbol, money.DefaultLocale),
	)

	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func do(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func TestHandler_StatusCodes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		target string
		status int
		count  int
	}{
		{"/categories", http.StatusOK, 4},
		{"/categories/facials", http.StatusOK, -1},
		{"/categories/yoga", http.StatusNotFound, -1},
		{"/categories/massage-therapy/services", http.StatusOK, 3},
		{"/categories/yoga/services", http.StatusNotFound, -1},
		{"/services", http.StatusOK, 9},
		{"/services/swedish-massage", http.StatusOK, -1},
		{"/services/reiki", http.StatusNotFound, -1},
		{"/services/swedish-massage/staff", http.StatusOK, 2},
		{"/services/reiki/staff", http.StatusNotFound, -1},
		{"/staff", http.StatusOK, 6},
		{"/staff?department=Nail+Care", http.StatusOK, 2},
		{"/staff?department=Nail+Care&active=true", http.StatusOK, 1},
		{"/staff?service=hot-stone-massage", http.StatusOK, 2},
		{"/staff?active=maybe", http.StatusBadRequest, -1},
		{"/staff/s3", http.StatusOK, -1},
		{"/staff/s99", http.StatusNotFound, -1},
		{"/staff/s99/services", http.StatusNotFound, -1},
		{"/add-ons", http.StatusOK, 5},
		{"/add-ons?ids=hot-towel,aromatherapy,missing", http.StatusOK, 2},
		{"/add-ons/hot-towel", http.StatusOK, -1},
		{"/add-ons/gold-leaf", http.StatusNotFound, -1},
		{"/memberships", http.StatusOK, 3},
		{"/memberships/vip", http.StatusOK, -1},
		{"/memberships/platinum", http.StatusNotFound, -1},
		{"/testimonials", http.StatusOK, 6},
		{"/testimonials?rating=5", http.StatusOK, 4},
		{"/testimonials?rating=five", http.StatusBadRequest, -1},
		{"/testimonials/top", http.StatusOK, 3},
		{"/testimonials/top?limit=10", http.StatusOK, 4},
		{"/testimonials/top?limit=0", http.StatusOK, 0},
		{"/testimonials/top?limit=x", http.StatusBadRequest, -1},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec, env := do(t, router, http.MethodGet, tt.target, "")
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.status == http.StatusOK, env.Success)
			if tt.count >= 0 {
				require.NotNil(t, env.Meta)
				assert.Equal(t, tt.count, env.Meta.Count)
			}
		})
	}
}

func TestHandler_GetStaff_FormatsDisplayFields(t *testing.T) {
	_, env := do(t, newTestRouter(t), http.MethodGet, "/staff/s3", "")

	staff := decodeData[StaffResponse](t, env)
	assert.Equal(t, "CE", staff.Initials)
	assert.Equal(t, "0810 111 2222", staff.Phone)
	assert.Equal(t, []string{"classic-facial", "hydrating-facial"}, staff.Services)
}

func TestHandler_GetService_Discount(t *testing.T) {
	_, env := do(t, newTestRouter(t), http.MethodGet, "/services/spa-pedicure", "")

	svc := decodeData[ServiceResponse](t, env)
	assert.Equal(t, "₦12,000", svc.PriceDisplay)
	assert.Equal(t, "₦15,000", svc.OriginalPriceDisplay)
	assert.Equal(t, 20, svc.DiscountPercentage)
}

func TestHandler_PopularMembership(t *testing.T) {
	_, env := do(t, newTestRouter(t), http.MethodGet, "/memberships/popular", "")

	plan := decodeData[MembershipResponse](t, env)
	assert.Equal(t, "premium", plan.ID)
	assert.Equal(t, "₦45,000", plan.MonthlyPriceDisplay)
	assert.Equal(t, "₦54,000", plan.AnnualSavingsDisplay)
	assert.True(t, plan.IsPopular)
	assert.Len(t, plan.Features, 4)
}

func TestHandler_StaffServices(t *testing.T) {
	_, env := do(t, newTestRouter(t), http.MethodGet, "/staff/s1/services", "")

	res := decodeData[StaffServicesResponse](t, env)
	assert.Equal(t, "s1", res.StaffID)
	assert.True(t, res.Complete)
	assert.Empty(t, res.Unresolved)
	assert.Len(t, res.Services, 3)
}

func TestHandler_TopTestimonials(t *testing.T) {
	_, env := do(t, newTestRouter(t), http.MethodGet, "/testimonials/top?limit=2", "")

	items := decodeData[[]TestimonialResponse](t, env)
	require.Len(t, items, 2)
	assert.Equal(t, "t1", items[0].ID)
	assert.Equal(t, "5.0", items[0].RatingDisplay)
	assert.Equal(t, "t2", items[1].ID)
}

func TestHandler_CreateQuote(t *testing.T) {
	rec, env := do(t, newTestRouter(t), http.MethodPost, "/quotes",
		`{"service_id":"swedish-massage","add_on_ids":["aromatherapy"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	q := decodeData[QuoteResponse](t, env)
	assert.Equal(t, int64(30000), q.Subtotal)
	assert.Equal(t, int64(2250), q.VAT)
	assert.Equal(t, int64(32250), q.Total)
	assert.Equal(t, "₦32,250", q.TotalDisplay)
	assert.Equal(t, "Swedish Massage with 1 add-on", q.Summary)
}

func TestHandler_CreateQuote_Errors(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"malformed", `{`, http.StatusBadRequest, "BAD_REQUEST"},
		{"missing service", `{}`, http.StatusBadRequest, "BAD_REQUEST"},
		{"unknown service", `{"service_id":"reiki"}`, http.StatusNotFound, "NOT_FOUND"},
		{
			"unknown add-on",
			`{"service_id":"swedish-massage","add_on_ids":["gold-leaf"]}`,
			http.StatusBadRequest,
			"BAD_REQUEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, router, http.MethodPost, "/quotes", tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}
