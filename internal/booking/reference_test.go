// AngelaMos | 2026
// reference_test.go

package booking

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referencePattern = regexp.MustCompile(`^RWC-[0-9A-Z]+-[0-9A-Z]{4}$`)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerateReference_Shape(t *testing.T) {
	for i := 0; i < 100; i++ {
		ref := GenerateReference()
		assert.True(t, strings.HasPrefix(ref, "RWC-"), ref)
		assert.Regexp(t, referencePattern, ref)
	}
}

func TestGenerateReference_Distinct(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	prev := ""
	for i := 0; i < 1000; i++ {
		ref := GenerateReference()
		assert.NotEqual(t, prev, ref)
		seen[ref] = struct{}{}
		prev = ref
	}
	// allow for rare same-millisecond collisions
	assert.Greater(t, len(seen), 995)
}

func TestGenerator_Deterministic(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	g := NewGenerator(
		WithClock(fixedClock(at)),
		WithRandom(func(int) int { return 35 }),
	)

	assert.Equal(t, "RWC-LOYW3V28-000Z", g.Generate())
}

func TestGenerator_PadsAndUppercases(t *testing.T) {
	g := NewGenerator(
		WithPrefix("spa"),
		WithClock(fixedClock(time.UnixMilli(0))),
		WithRandom(func(int) int { return 0 }),
	)

	assert.Equal(t, "SPA-0-0000", g.Generate())
	assert.Equal(t, "spa", g.Prefix())
}

func TestGenerator_RandomSpace(t *testing.T) {
	var asked int
	g := NewGenerator(WithRandom(func(n int) int {
		asked = n
		return n - 1
	}))

	ref := g.Generate()
	assert.Equal(t, 1679616, asked)
	assert.True(t, strings.HasSuffix(ref, "-ZZZZ"), ref)
}

func TestParseReference(t *testing.T) {
	at := time.UnixMilli(1700000000123).UTC()
	g := NewGenerator(WithClock(fixedClock(at)))

	prefix, issued, ok := ParseReference(g.Generate())
	require.True(t, ok)
	assert.Equal(t, "RWC", prefix)
	assert.True(t, at.Equal(issued))

	for _, bad := range []string{"", "RWC", "RWC-ABC", "RWC-!!-ABCD", "RWC-ABC-AB", "-ABC-ABCD", "RWC--ABCD"} {
		_, _, ok := ParseReference(bad)
		assert.False(t, ok, bad)
	}
}

func TestParseReference_HyphenatedPrefix(t *testing.T) {
	at := time.UnixMilli(1700000000000).UTC()
	g := NewGenerator(
		WithPrefix("rwc-dev"),
		WithClock(fixedClock(at)),
		WithRandom(func(int) int { return 35 }),
	)

	ref := g.Generate()
	assert.Equal(t, "RWC-DEV-LOYW3V28-000Z", ref)

	prefix, issued, ok := ParseReference(ref)
	require.True(t, ok)
	assert.Equal(t, "RWC-DEV", prefix)
	assert.True(t, at.Equal(issued))
}
