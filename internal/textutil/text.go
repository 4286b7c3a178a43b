// AngelaMos | 2026
// text.go

// Package textutil contains the display helpers used when rendering catalog
// data: slug and title conversion, truncation, initials and pluralization.
package textutil

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const ellipsis = "..."

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Capitalize upper-cases the first rune and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

func SlugToTitle(slug string) string {
	parts := strings.Split(slug, "-")
	for i, p := range parts {
		parts[i] = Capitalize(p)
	}
	return strings.Join(parts, " ")
}

// TitleToSlug lower-cases title, collapses every run of characters outside
// [a-z0-9] into one hyphen and trims hyphens from both ends. Catalog slugs are
// expected to equal TitleToSlug(name), so this must not change.
func TitleToSlug(title string) string {
	slug := nonAlphanumeric.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// Truncate keeps at most maxLength runes of text and appends "..." when it
// cut anything. The ellipsis is not counted, so the result can be up to three
// runes longer than maxLength.
func Truncate(text string, maxLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}

	runes := []rune(text)
	cut := strings.TrimRightFunc(string(runes[:maxLength]), unicode.IsSpace)
	return cut + ellipsis
}

func GetInitials(name string) string {
	var b strings.Builder
	count := 0
	for _, word := range strings.Fields(name) {
		if count == 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		count++
	}
	return b.String()
}

// Pluralize returns singular for a count of exactly one, otherwise the
// optional plural form or singular+"s". Irregular plurals must be passed in.
func Pluralize(count int, singular string, plural ...string) string {
	if count == 1 {
		return singular
	}
	if len(plural) > 0 && plural[0] != "" {
		return plural[0]
	}
	return singular + "s"
}

func FormatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', 1, 64)
}
