// AngelaMos | 2026
// reference.go

// Package booking issues human-shareable booking references of the form
// RWC-<base36 millisecond timestamp>-<4 random base36 chars>, upper-cased.
//
// A bare Generator only guarantees probabilistic uniqueness: two references
// minted in the same millisecond collide with probability 1/36^4. Registry
// removes that gap by reserving each reference in Redis.
package booking

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPrefix = "RWC"

	randomLength = 4
	randomSpace  = 36 * 36 * 36 * 36
)

type Generator struct {
	prefix string
	now    func() time.Time
	intN   func(n int) int
}

type Option func(*Generator)

func WithPrefix(prefix string) Option {
	return func(g *Generator) {
		g.prefix = prefix
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithRandom replaces the source of the random suffix. intN must return a
// value in [0, n).
func WithRandom(intN func(n int) int) Option {
	return func(g *Generator) {
		g.intN = intN
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		prefix: DefaultPrefix,
		now:    time.Now,
		//nolint:gosec // G404: reference suffix is not a secret
		intN: rand.IntN,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) Prefix() string {
	return g.prefix
}

func (g *Generator) Generate() string {
	ts := strconv.FormatInt(g.now().UnixMilli(), 36)

	suffix := strconv.FormatInt(int64(g.intN(randomSpace)), 36)
	if len(suffix) < randomLength {
		suffix = strings.Repeat("0", randomLength-len(suffix)) + suffix
	}

	return strings.ToUpper(g.prefix + "-" + ts + "-" + suffix)
}

var defaultGenerator = NewGenerator()

func GenerateReference() string {
	return defaultGenerator.Generate()
}

// ParseReference splits ref into its prefix and the time it was issued. The
// prefix may itself contain hyphens, so ref is split from the right.
func ParseReference(ref string) (prefix string, issued time.Time, ok bool) {
	head, suffix, found := cutLast(ref, "-")
	if !found || len(suffix) != randomLength {
		return "", time.Time{}, false
	}

	prefix, stamp, found := cutLast(head, "-")
	if !found || prefix == "" || stamp == "" {
		return "", time.Time{}, false
	}

	ms, err := strconv.ParseInt(strings.ToLower(stamp), 36, 64)
	if err != nil || ms < 0 {
		return "", time.Time{}, false
	}

	if _, err := strconv.ParseInt(strings.ToLower(suffix), 36, 64); err != nil {
		return "", time.Time{}, false
	}

	return prefix, time.UnixMilli(ms).UTC(), true
}

func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}
