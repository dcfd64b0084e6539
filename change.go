package textnorm

import "fmt"

// Change records a single rewrite. Range is the span which has been replaced,
// expressed in the coordinates of the text as it was immediately before the
// rewrite. Length is the length of the replacement, i.e. the length of the
// span after the rewrite.
type Change struct {
	Range  Range
	Length int
}

// Delta is the growth (positive) or shrinkage (negative) of the text caused
// by c.
func (c Change) Delta() int {
	return c.Length - c.Range.Len()
}

// Affected is the span occupied by the replacement text, in the coordinates
// of the text immediately after the rewrite.
func (c Change) Affected() Range {
	return c.Range.Shift(0, c.Delta())
}

// Revert maps r, given in the coordinates immediately after c, to the
// coordinates immediately before c.
//
// Ranges which lie completely within the replacement text collapse to the
// replaced span, as there is no finer pre-image. Ranges partially overlapping
// the replacement are widened to cover the complete replaced span. The
// result may therefore be wider than the exact textual pre-image, but it never
// misses any part of it.
func (c Change) Revert(r Range) Range {
	delta := c.Delta()
	affected := c.Affected()
	switch {
	case affected.Includes(r):
		return c.Range
	case r.IsBefore(affected):
		return r
	case r.IsAfter(affected):
		return r.Shift(-delta, -delta)
	case r.End > affected.End: // overlapping on the right
		return Range{Start: r.Start, End: max(r.Start, r.End-delta)}
	}
	// Overlapping on the left: r starts before the edit and ends inside the
	// replacement. r.End is a post-edit offset and has to be shifted back
	// before comparing it to the pre-edit end.
	return Range{
		Start: min(c.Range.Start, r.Start),
		End:   max(c.Range.End, r.End-delta),
	}
}

func (c Change) String() string {
	return fmt.Sprintf("%v->%d", c.Range, c.Length)
}

// Edit is a Change together with the replacement text. Edits are handed out
// to observers of a rule pipeline; they are not kept in edit logs.
type Edit struct {
	Change
	Text string
}

// Apply performs the edit on text, which has to be in the coordinates
// immediately before the edit.
func (e Edit) Apply(text string) string {
	return text[:e.Range.Start] + e.Text + text[e.Range.End:]
}

// Replay applies a sequence of edits to text, in order.
func Replay(text string, edits []Edit) string {
	for _, e := range edits {
		text = e.Apply(text)
	}
	return text
}
