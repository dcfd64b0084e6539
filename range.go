package textnorm

import (
	"fmt"

	"github.com/emirpasic/gods/utils"
)

// Range is a half-open interval [Start, End) of byte offsets into a specific
// text. Ranges are values; all operations return new ranges.
//
// Clients must keep Start <= End. NewRange checks this, composite literals
// do not.
type Range struct {
	Start int // inclusive
	End   int // exclusive
}

// NewRange creates a range [start, end). It panics if start is negative or
// greater than end.
func NewRange(start, end int) Range {
	if start < 0 || start > end {
		panic(fmt.Sprintf("textnorm: invalid range [%d,%d)", start, end))
	}
	return Range{Start: start, End: end}
}

// RangeOf returns the range covering all of s.
func RangeOf(s string) Range {
	return Range{Start: 0, End: len(s)}
}

// Len is the number of bytes covered by r.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty is true for ranges of length 0.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Includes is true if other lies completely within r.
func (r Range) Includes(other Range) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// IsBefore is true if r ends at or before the start of other.
func (r Range) IsBefore(other Range) bool {
	return r.End <= other.Start
}

// IsAfter is true if r starts at or after the end of other.
func (r Range) IsAfter(other Range) bool {
	return other.End <= r.Start
}

// Shift moves the start of r by ds and the end of r by de.
func (r Range) Shift(ds, de int) Range {
	return Range{Start: r.Start + ds, End: r.End + de}
}

// In returns the part of s covered by r. r has to be within RangeOf(s).
func (r Range) In(s string) string {
	return s[r.Start:r.End]
}

// Less orders ranges by start position, then by end position.
func (r Range) Less(other Range) bool {
	if r.Start != other.Start {
		return r.Start < other.Start
	}
	return r.End < other.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// RangeComparator compares two Range values for use in ordered containers.
// Both arguments have to be of type Range.
var RangeComparator utils.Comparator = func(a, b interface{}) int {
	r1, r2 := a.(Range), b.(Range)
	switch {
	case r1.Less(r2):
		return -1
	case r2.Less(r1):
		return 1
	}
	return 0
}
