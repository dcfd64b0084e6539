package normalized

import (
	"fmt"

	"github.com/npillmayer/textnorm"
	"github.com/npillmayer/textnorm/rules"
)

// String is a normalized text together with its original and the changes
// performed to get from the original to the normalized text.
// A String is a read-only data structure.
type String struct {
	original   string
	normalized string
	changes    []textnorm.Change
}

type config struct {
	pipeline textnorm.Pipeline
	passes   int
}

// Option configures the construction of a String.
type Option func(*config)

// WithPipeline normalizes with pipeline p instead of the standard rules.
func WithPipeline(p textnorm.Pipeline) Option {
	return func(c *config) {
		c.pipeline = p
	}
}

// Settle re-applies the pipeline to its own output until the output does not
// change any more, but at most maxPasses times. Values below 1 are treated
// as 1, which is the default.
func Settle(maxPasses int) Option {
	return func(c *config) {
		c.passes = max(1, maxPasses)
	}
}

// StringFromString normalizes s with the standard rules.
func StringFromString(s string) *String {
	return New(s)
}

// New normalizes original. Without options, the standard rules of package
// rules are applied once.
func New(original string, opts ...Option) *String {
	cfg := config{pipeline: rules.Standard(), passes: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	b := borrowBuilder()
	defer b.release()
	text, pass := original, 1
	for ; ; pass++ {
		n := len(b.changes)
		out := cfg.pipeline.Run(text, b.record)
		settled := out == text || len(b.changes) == n
		if settled && pass > 1 {
			// rewrites of a settled text cancel each other out
			b.changes = b.changes[:n]
		}
		text = out
		if settled || pass >= cfg.passes {
			break
		}
	}
	TC().P("passes", pass).Infof("normalized %d bytes to %d bytes, %d changes",
		len(original), len(text), len(b.changes))
	return b.freeze(original, text)
}

// Original returns the text s has been created from.
func (s *String) Original() string {
	return s.original
}

// Normalized returns the normalized text.
func (s *String) Normalized() string {
	return s.normalized
}

// String returns the normalized text (interface fmt.Stringer).
func (s *String) String() string {
	return s.normalized
}

// Len is the length of the normalized text in bytes.
func (s *String) Len() int {
	return len(s.normalized)
}

// Changes returns a copy of the change log, in the order the changes have
// been performed.
func (s *String) Changes() []textnorm.Change {
	changes := make([]textnorm.Change, len(s.changes))
	copy(changes, s.changes)
	return changes
}

// ToOriginal maps a range of the normalized text to the corresponding range
// of the original text.
//
// r must be a valid range within the normalized text. ToOriginal panics
// otherwise; clients are expected to derive ranges from the normalized text
// only.
func (s *String) ToOriginal(r textnorm.Range) textnorm.Range {
	if r.Start > r.End || !textnorm.RangeOf(s.normalized).Includes(r) {
		panic(fmt.Sprintf("normalized string range out of bounds, %v in %v",
			r, textnorm.RangeOf(s.normalized)))
	}
	for i := len(s.changes) - 1; i >= 0; i-- {
		r = s.changes[i].Revert(r)
	}
	return r
}

// ToOriginalAll maps each range of rs with ToOriginal.
func (s *String) ToOriginalAll(rs []textnorm.Range) []textnorm.Range {
	result := make([]textnorm.Range, len(rs))
	for i, r := range rs {
		result[i] = s.ToOriginal(r)
	}
	return result
}
