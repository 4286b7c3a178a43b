// AngelaMos | 2026
// money.go

// Package money holds the pricing arithmetic shared by every front-end:
// VAT, discount percentages and display formatting of whole-unit amounts.
package money

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultVATRate is the 7.5% consumption tax applied when callers do not
// supply a rate.
const DefaultVATRate = 0.075

const (
	DefaultSymbol = "₦"
	DefaultCode   = "NGN"
	DefaultLocale = "en"
)

// Formatter renders amounts with locale grouping and a currency symbol.
// It is safe for concurrent use.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter builds a Formatter for the given BCP 47 locale. An unparsable
// locale falls back to English grouping.
func NewFormatter(symbol, locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	return &Formatter{
		symbol:  symbol,
		printer: message.NewPrinter(tag),
	}
}

func (f *Formatter) Symbol() string {
	return f.symbol
}

// Currency formats amount with zero decimals. Negative amounts keep their
// sign in front of the symbol.
func (f *Formatter) Currency(amount int64) string {
	n := f.Number(amount)
	if digits, negative := strings.CutPrefix(n, "-"); negative {
		return "-" + f.symbol + digits
	}
	return f.symbol + n
}

func (f *Formatter) Number(amount int64) string {
	return f.printer.Sprintf("%d", amount)
}

var defaultFormatter = NewFormatter(DefaultSymbol, DefaultLocale)

func FormatCurrency(amount int64) string {
	return defaultFormatter.Currency(amount)
}

func FormatNumber(amount int64) string {
	return defaultFormatter.Number(amount)
}

// DiscountPercentage returns round((original-discounted)/original*100).
// A non-positive original yields 0. Markups produce negative percentages.
func DiscountPercentage(original, discounted int64) int {
	if original <= 0 {
		return 0
	}

	pct := float64(original-discounted) / float64(original) * 100
	return int(round(pct))
}

func VAT(amount int64, rate float64) int64 {
	return int64(round(float64(amount) * rate))
}

func TotalWithVAT(amount int64, rate float64) int64 {
	return amount + VAT(amount, rate)
}

func CalculateVAT(amount int64) int64 {
	return VAT(amount, DefaultVATRate)
}

func CalculateTotalWithVAT(amount int64) int64 {
	return TotalWithVAT(amount, DefaultVATRate)
}

// round is half away from zero.
func round(v float64) float64 {
	return math.Round(v)
}

// Parse reads a whole-unit amount such as "100,000", "₦25 000" or
// "NGN 1200", written with this formatter's symbol, the default symbol or the
// ISO code. A minus sign may come before or after the symbol. Grouping
// separators are ignored and any other text is rejected.
func (f *Formatter) Parse(s string) (int64, bool) {
	return parseAmount(s, f.symbol, DefaultSymbol, DefaultCode)
}

func parseAmount(s string, symbols ...string) (int64, bool) {
	s = strings.TrimSpace(s)

	negative := false
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		negative, s = true, rest
	}

	for _, sym := range symbols {
		if rest, ok := strings.CutPrefix(s, sym); ok && sym != "" {
			s = strings.TrimSpace(rest)
			break
		}
	}

	if rest, ok := strings.CutPrefix(s, "-"); ok {
		if negative {
			return 0, false
		}
		negative, s = true, rest
	}

	var n int64
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			if n > (math.MaxInt64-int64(r-'0'))/10 {
				return 0, false
			}
			n = n*10 + int64(r-'0')
			digits++
		case digits > 0 && isGroupSeparator(r):
		default:
			return 0, false
		}
	}

	if digits == 0 {
		return 0, false
	}
	if negative {
		n = -n
	}
	return n, true
}

func isGroupSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '_' || r == '\u00a0'
}
