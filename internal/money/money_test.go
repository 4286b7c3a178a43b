// AngelaMos | 2026
// money_test.go

package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVAT_Scenarios(t *testing.T) {
	assert.Equal(t, int64(7500), VAT(100000, 0.075))
	assert.Equal(t, int64(107500), CalculateTotalWithVAT(100000))
	assert.Equal(t, int64(7500), CalculateVAT(100000))
	assert.Equal(t, int64(0), VAT(0, DefaultVATRate))
	assert.Equal(t, int64(10), VAT(100, 0.1))
}

func TestVAT_RoundsHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, int64(2), VAT(3, 0.5))
	assert.Equal(t, int64(3), VAT(5, 0.5))
	assert.Equal(t, int64(-3), VAT(-5, 0.5))
}

func TestTotalWithVAT_IsAmountPlusVAT(t *testing.T) {
	rates := []float64{0, 0.05, 0.075, 0.1, 0.2, 1}
	amounts := []int64{0, 1, 7, 99, 1000, 25000, 100000, 987654321}

	for _, r := range rates {
		for _, a := range amounts {
			assert.Equal(t, a+VAT(a, r), TotalWithVAT(a, r),
				"amount=%d rate=%v", a, r)
		}
	}
}

func TestDiscountPercentage(t *testing.T) {
	tests := []struct {
		name       string
		original   int64
		discounted int64
		want       int
	}{
		{"quarter off", 100000, 75000, 25},
		{"no discount", 100000, 100000, 0},
		{"free", 5000, 0, 100},
		{"rounds down", 30000, 20000, 33},
		{"rounds half away", 200, 199, 1},
		{"markup is negative", 10000, 12500, -25},
		{"zero original", 0, 500, 0},
		{"negative original", -100, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DiscountPercentage(tt.original, tt.discounted))
		})
	}
}

func TestDiscountPercentage_SamePriceIsZero(t *testing.T) {
	for _, original := range []int64{1, 3, 17, 4500, 100000, 1 << 40} {
		assert.Equal(t, 0, DiscountPercentage(original, original))
	}
}

func TestDiscountPercentage_NonPositiveOriginal(t *testing.T) {
	for _, original := range []int64{0, -1, -250000} {
		for _, discounted := range []int64{-10, 0, 10, 1 << 30} {
			assert.Equal(t, 0, DiscountPercentage(original, discounted))
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "₦0", FormatCurrency(0))
	assert.Equal(t, "₦950", FormatCurrency(950))
	assert.Equal(t, "₦100,000", FormatCurrency(100000))
	assert.Equal(t, "₦1,234,567", FormatCurrency(1234567))
	assert.Equal(t, "-₦5,000", FormatCurrency(-5000))
}

func TestFormatCurrency_Extremes(t *testing.T) {
	assert.Equal(t, "-₦9,223,372,036,854,775,808", FormatCurrency(math.MinInt64))
	assert.Equal(t, "₦9,223,372,036,854,775,807", FormatCurrency(math.MaxInt64))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "7,500", FormatNumber(7500))
	assert.Equal(t, "107,500", FormatNumber(107500))
}

func TestNewFormatter_CustomSymbol(t *testing.T) {
	f := NewFormatter("$", "en-US")
	assert.Equal(t, "$", f.Symbol())
	assert.Equal(t, "$12,000", f.Currency(12000))

	fallback := NewFormatter("₦", "not a locale!")
	assert.Equal(t, "₦12,000", fallback.Currency(12000))
}

func TestFormatter_Parse(t *testing.T) {
	f := NewFormatter(DefaultSymbol, DefaultLocale)

	tests := []struct {
		in     string
		want   int64
		wantOK bool
	}{
		{"100000", 100000, true},
		{"100,000", 100000, true},
		{"₦25,000", 25000, true},
		{" 7 500 ", 7500, true},
		{"-₦5,000", -5000, true},
		{"NGN 1200", 1200, true},
		{"₦-5", -5, true},
		{"NGN -1,500", -1500, true},
		{"-₦-5", 0, false},
		{"abc12", 0, false},
		{"$12", 0, false},
		{",100", 0, false},
		{"", 0, false},
		{"₦", 0, false},
		{"12abc", 0, false},
		{"99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := f.Parse(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatter_ParseOwnSymbol(t *testing.T) {
	f := NewFormatter("$", "en-US")

	got, ok := f.Parse("$1,250")
	assert.True(t, ok)
	assert.Equal(t, int64(1250), got)

	got, ok = f.Parse("-$40")
	assert.True(t, ok)
	assert.Equal(t, int64(-40), got)

	got, ok = f.Parse("₦300")
	assert.True(t, ok)
	assert.Equal(t, int64(300), got)

	_, ok = f.Parse("€300")
	assert.False(t, ok)
}
