// AngelaMos | 2026
// phone.go

package textutil

import "strings"

const countryCode = "234"

// FormatPhoneNumber renders Nigerian numbers as "+234 XXX XXX XXXX" or
// "0XXX XXX XXXX". Anything else is returned exactly as given.
func FormatPhoneNumber(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	switch {
	case strings.HasPrefix(digits, countryCode):
		return strings.TrimSpace("+" + countryCode + " " + groups(digits, 3, 6, 9))
	case strings.HasPrefix(digits, "0"):
		return groups(digits, 0, 4, 7)
	default:
		return phone
	}
}

// groups splits digits at the given offsets and joins the non-empty pieces
// with spaces. The last group takes the remainder.
func groups(digits string, offsets ...int) string {
	pieces := make([]string, 0, len(offsets))
	for i, from := range offsets {
		if from >= len(digits) {
			break
		}
		to := len(digits)
		if i+1 < len(offsets) && offsets[i+1] < to {
			to = offsets[i+1]
		}
		pieces = append(pieces, digits[from:to])
	}
	return strings.Join(pieces, " ")
}

// IsPhoneNumber reports whether phone holds between 7 and 15 digits once
// spaces, dashes and parentheses are removed, with an optional leading '+'.
func IsPhoneNumber(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	cleaned = strings.TrimPrefix(cleaned, "+")
	if len(cleaned) < 7 || len(cleaned) > 15 {
		return false
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
