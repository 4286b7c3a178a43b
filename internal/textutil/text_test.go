// AngelaMos | 2026
// text_test.go

package textutil

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Massage", Capitalize("massage"))
	assert.Equal(t, "Massage", Capitalize("MASSAGE"))
	assert.Equal(t, "É", Capitalize("é"))
}

func TestSlugToTitle(t *testing.T) {
	assert.Equal(t, "Swedish Massage", SlugToTitle("swedish-massage"))
	assert.Equal(t, "Hot Stone Therapy", SlugToTitle("hot-stone-therapy"))
	assert.Equal(t, "Spa", SlugToTitle("spa"))
}

func TestTitleToSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Swedish Massage", "swedish-massage"},
		{"  Hot Stone -- Therapy!! ", "hot-stone-therapy"},
		{"Body & Mind", "body-mind"},
		{"Mani/Pedi Combo", "mani-pedi-combo"},
		{"24k Gold Facial", "24k-gold-facial"},
		{"Crème Brûlée Scrub", "cr-me-br-l-e-scrub"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleToSlug(tt.in))
		})
	}
}

func TestTitleToSlug_Idempotent(t *testing.T) {
	inputs := []string{
		"Swedish Massage",
		"  Deep   Tissue  ",
		"Couples' Retreat (90 min)",
		"already-a-slug",
		"UPPER_snake_Case",
		"Ñandú & Co.",
	}

	for _, in := range inputs {
		once := TitleToSlug(in)
		assert.Equal(t, once, TitleToSlug(once), "input %q", in)
	}
}

func TestSlugRoundTrip(t *testing.T) {
	slugs := []string{
		"swedish-massage",
		"deep-tissue",
		"facial",
		"couples-spa-day",
		"24k-gold-facial",
	}

	for _, s := range slugs {
		title := SlugToTitle(s)
		assert.Equal(t, title, SlugToTitle(TitleToSlug(title)), "slug %q", s)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "Relax...", Truncate("Relax and unwind", 6))
	assert.Equal(t, "Relax and...", Truncate("Relax and unwind", 10))
	assert.Equal(t, "...", Truncate("anything", 0))
	assert.Equal(t, "...", Truncate("anything", -4))
	assert.Equal(t, "Crème...", Truncate("Crème brûlée", 5))
}

func TestTruncate_LengthBound(t *testing.T) {
	text := "A soothing full-body massage using long, flowing strokes."

	for n := 0; n <= utf8.RuneCountInString(text)+2; n++ {
		got := Truncate(text, n)
		assert.LessOrEqual(t, utf8.RuneCountInString(got), n+3, "n=%d", n)
		if utf8.RuneCountInString(text) <= n {
			assert.Equal(t, text, got)
		} else {
			assert.True(t, strings.HasSuffix(got, "..."))
		}
	}
}

func TestGetInitials(t *testing.T) {
	assert.Equal(t, "AO", GetInitials("Adaeze Okafor"))
	assert.Equal(t, "CE", GetInitials("chinedu emeka obi"))
	assert.Equal(t, "T", GetInitials("  tolu  "))
	assert.Equal(t, "", GetInitials(""))
	assert.Equal(t, "ÉB", GetInitials("émile bello"))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "session", Pluralize(1, "session"))
	assert.Equal(t, "sessions", Pluralize(0, "session"))
	assert.Equal(t, "sessions", Pluralize(3, "session"))
	assert.Equal(t, "therapies", Pluralize(2, "therapy", "therapies"))
	assert.Equal(t, "therapy", Pluralize(1, "therapy", "therapies"))
	assert.Equal(t, "sessions", Pluralize(-1, "session"))
}

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "4.0", FormatRating(4))
	assert.Equal(t, "4.5", FormatRating(4.5))
	assert.Equal(t, "5.0", FormatRating(5))
	assert.Equal(t, "3.7", FormatRating(3.66))
}

func ExampleTitleToSlug() {
	fmt.Println(TitleToSlug("Hot Stone Therapy"))
	// Output: hot-stone-therapy
}
