// AngelaMos | 2026
// phone_test.go

package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhoneNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"international formatted", "+234 810 111 2222", "+234 810 111 2222"},
		{"international raw", "2348101112222", "+234 810 111 2222"},
		{"international dashed", "+234-803-555-0101", "+234 803 555 0101"},
		{"local", "08101112222", "0810 111 2222"},
		{"local with punctuation", "(0810) 111-2222", "0810 111 2222"},
		{"short local", "0810", "0810"},
		{"unrecognized passes through", "+1 (415) 555-0100", "+1 (415) 555-0100"},
		{"no digits passes through", "call us", "call us"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPhoneNumber(tt.in))
		})
	}
}

func TestIsPhoneNumber(t *testing.T) {
	assert.True(t, IsPhoneNumber("+234 810 111 2222"))
	assert.True(t, IsPhoneNumber("(0810) 111-2222"))
	assert.False(t, IsPhoneNumber("12345"))
	assert.False(t, IsPhoneNumber("0810-ABC-2222"))
	assert.False(t, IsPhoneNumber(""))
}
