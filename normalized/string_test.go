package normalized_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textnorm"
	"github.com/npillmayer/textnorm/normalized"
	"github.com/npillmayer/textnorm/rules"
	"github.com/npillmayer/textnorm/sentence"
)

func ExampleString_ToOriginal() {
	s := normalized.StringFromString("Hello,,world...  See e.g. the Java 1.6 docs!")
	fmt.Printf("%q\n", s.Normalized())
	for _, r := range sentence.Split(s.Normalized()) {
		fmt.Printf("%q <- %q\n", r.In(s.Normalized()), s.ToOriginal(r).In(s.Original()))
	}
	// Output: "hello, world. see eg the java 16 docs!"
	// "hello, world." <- "Hello,,world...  "
	// "see eg the java 16 docs!" <- "See e.g. the Java 1.6 docs!"
}

const scenarioA = "ksajd...asdf1.6flk; ajsl;;;;;;fj askdlj sakl..,.,3986asd ;k jkjlasdf "

func TestScenarioA(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := normalized.StringFromString(scenarioA)
	if s.Normalized() != "ksajd. asdf16flk ajsl fj askdlj sakl. , . , 3986asd k jkjlasdf" {
		t.Errorf("unexpected normalized text %q", s.Normalized())
	}
	if s.Original() != scenarioA || s.String() != s.Normalized() || s.Len() != 62 {
		t.Errorf("accessors do not match construction")
	}
	expected := [][3]int{
		{18, 19, 1}, {24, 30, 1}, {52, 53, 1}, {13, 14, 0}, {17, 19, 1}, {49, 51, 1}, {60, 61, 0},
		{5, 8, 1}, {35, 37, 1}, {6, 6, 1}, {37, 37, 1}, {39, 39, 1}, {41, 41, 1}, {43, 43, 1},
	}
	changes := s.Changes()
	if len(changes) != len(expected) {
		t.Fatalf("expected %d changes, have %d: %v", len(expected), len(changes), changes)
	}
	for i, c := range changes {
		x := textnorm.Change{Range: textnorm.NewRange(expected[i][0], expected[i][1]), Length: expected[i][2]}
		if c != x {
			t.Errorf("change #%d: expected %v, is %v", i, x, c)
		}
	}
	r := textnorm.NewRange(3, 27)
	if r.In(s.Normalized()) != "jd. asdf16flk ajsl fj as" {
		t.Errorf("unexpected normalized text at %v: %q", r, r.In(s.Normalized()))
	}
	o := s.ToOriginal(r)
	if o != textnorm.NewRange(3, 35) {
		t.Errorf("expected %v to translate to [3,35), is %v", r, o)
	}
	if o.In(s.Original()) != "jd...asdf1.6flk; ajsl;;;;;;fj as" {
		t.Errorf("unexpected original text at %v: %q", o, o.In(s.Original()))
	}
}

func TestScenarioB(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	s := normalized.StringFromString(scenarioB)
	if s.Normalized() != scenarioBNormalized {
		t.Fatalf("unexpected normalized text:\n%s", s.Normalized())
	}
	if n := len(s.Changes()); n != 102 {
		t.Errorf("expected 102 changes, have %d", n)
	}
	expected := []textnorm.Range{
		{Start: 0, End: 47}, {Start: 47, End: 147}, {Start: 148, End: 225}, {Start: 225, End: 265},
		{Start: 265, End: 322}, {Start: 322, End: 359}, {Start: 363, End: 454}, {Start: 458, End: 528},
		{Start: 528, End: 532}, {Start: 532, End: 589}, {Start: 589, End: 593}, {Start: 593, End: 639},
		{Start: 639, End: 678}, {Start: 678, End: 692}, {Start: 696, End: 953}, {Start: 953, End: 1040},
	}
	sentences := s.ToOriginalAll(sentence.Split(s.Normalized()))
	if len(sentences) != len(expected) {
		t.Fatalf("expected %d sentences, have %d", len(expected), len(sentences))
	}
	for i, r := range sentences {
		if r != expected[i] {
			t.Errorf("sentence #%d: expected %v, is %v (%q)", i, expected[i], r, r.In(scenarioB))
		}
	}
	if got := sentences[0].In(scenarioB); got != "The String class represents character strings. " {
		t.Errorf("unexpected first sentence %q", got)
	}
	if got := sentences[5].In(scenarioB); got != "For example:\n       String str = \"abc" {
		t.Errorf("unexpected sentence #5 %q", got)
	}
}

// Replaying the edits of the standard pipeline must reproduce the normalized
// text, and the change log of a String must be exactly the log of those edits.
func TestForwardReplay(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, text := range append(randomTexts(500, 7), scenarioA, scenarioB) {
		var edits []textnorm.Edit
		p := rules.Standard()
		out := p.Run(text, func(e textnorm.Edit) { edits = append(edits, e) })
		s := normalized.StringFromString(text)
		if out != s.Normalized() {
			t.Fatalf("pipeline and String disagree for %q", text)
		}
		if textnorm.Replay(rules.FoldASCII(text), edits) != out {
			t.Fatalf("replaying edits does not reproduce normalized text for %q", text)
		}
		changes := s.Changes()
		if len(changes) != len(edits) {
			t.Fatalf("expected %d changes, have %d, for %q", len(edits), len(changes), text)
		}
		for i := range changes {
			if changes[i] != edits[i].Change {
				t.Errorf("change #%d for %q: %v != %v", i, text, changes[i], edits[i].Change)
			}
		}
	}
}

func TestTranslationBounds(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, text := range randomTexts(1000, 11) {
		s := normalized.StringFromString(text)
		all := textnorm.RangeOf(s.Original())
		n := s.Len()
		for a := 0; a <= n; a++ {
			for b := a; b <= n; b++ {
				r := s.ToOriginal(textnorm.NewRange(a, b))
				if r.Start > r.End || !all.Includes(r) {
					t.Fatalf("[%d,%d) of %q translates to %v, outside of %v", a, b, text, r, all)
				}
			}
		}
	}
}

func TestTranslationOrder(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, text := range randomTexts(1000, 5) {
		s := normalized.StringFromString(text)
		prev := 0
		for a := 0; a < s.Len(); a++ {
			r := s.ToOriginal(textnorm.NewRange(a, a+1))
			if r.Start < prev {
				t.Fatalf("translation of %q does not preserve order at %d", text, a)
			}
			prev = r.Start
		}
	}
}

// The merge of a range overlapping an insertion on the left must not reach
// into the text following the insertion.
func TestTranslationMerge(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	s := normalized.StringFromString("x.y")
	if s.Normalized() != "x. y" {
		t.Fatalf("unexpected normalized text %q", s.Normalized())
	}
	if r := s.ToOriginal(textnorm.NewRange(0, 3)); r != textnorm.NewRange(0, 2) {
		t.Errorf("expected 'x. ' to translate to [0,2), is %v", r)
	}
	if r := s.ToOriginal(textnorm.NewRange(3, 4)); r.In(s.Original()) != "y" {
		t.Errorf("expected 'y' to translate to 'y', is %q", r.In(s.Original()))
	}
}

func TestSettle(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	once := normalized.StringFromString("x ?g")
	if once.Normalized() != "x ? g" {
		t.Errorf("expected single pass to yield 'x ? g', is %q", once.Normalized())
	}
	if again := normalized.StringFromString(once.Normalized()); again.Normalized() == once.Normalized() {
		t.Errorf("expected 'x ? g' to be normalized further")
	}
	settled := normalized.New("x ?g", normalized.Settle(8))
	if settled.Normalized() != "x? g" {
		t.Errorf("expected settled string to be 'x? g', is %q", settled.Normalized())
	}
	if n := len(settled.Changes()); n != 3 {
		t.Errorf("expected 3 changes over all passes, have %d", n)
	}
	if r := settled.ToOriginal(textnorm.NewRange(0, 2)); r != textnorm.NewRange(0, 3) {
		t.Errorf("expected 'x?' to translate to [0,3), is %v", r)
	}
	for _, text := range randomTexts(1000, 13) {
		s := normalized.New(text, normalized.Settle(8))
		if again := normalized.StringFromString(s.Normalized()); again.Normalized() != s.Normalized() {
			t.Fatalf("settled %q is not idempotent: %q -> %q", text, s.Normalized(), again.Normalized())
		}
		all := textnorm.RangeOf(text)
		for a := 0; a <= s.Len(); a += 3 {
			if r := s.ToOriginal(textnorm.NewRange(a, s.Len())); !all.Includes(r) {
				t.Fatalf("[%d,%d) of settled %q translates out of bounds: %v", a, s.Len(), text, r)
			}
		}
	}
}

func TestCustomPipeline(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	p := textnorm.Pipeline{Rules: []textnorm.Rule{rules.ReduceSpaces, rules.TrimEnd}}
	s := normalized.New("Keep  CASE  ", normalized.WithPipeline(p))
	if s.Normalized() != "Keep CASE" {
		t.Errorf("expected 'Keep CASE', is %q", s.Normalized())
	}
	if r := s.ToOriginal(textnorm.NewRange(4, 5)); r != textnorm.NewRange(4, 6) {
		t.Errorf("expected collapsed space to translate to [4,6), is %v", r)
	}
}

func TestEdgeCases(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	empty := normalized.StringFromString("")
	if empty.Normalized() != "" || len(empty.Changes()) != 0 {
		t.Errorf("expected empty string to stay empty without changes")
	}
	if r := empty.ToOriginal(textnorm.NewRange(0, 0)); r != textnorm.NewRange(0, 0) {
		t.Errorf("expected [0,0) of empty string to translate to [0,0), is %v", r)
	}
	canonical := normalized.StringFromString("all fine, really")
	if canonical.Normalized() != "all fine, really" || len(canonical.Changes()) != 0 {
		t.Errorf("expected canonical text to be left alone")
	}
	r := textnorm.NewRange(4, 9)
	if canonical.ToOriginal(r) != r {
		t.Errorf("expected identity translation without changes")
	}
	blank := normalized.StringFromString(" \r\n\t ")
	if blank.Normalized() != "" {
		t.Errorf("expected whitespace to normalize to empty string, is %q", blank.Normalized())
	}
	if r := blank.ToOriginal(textnorm.NewRange(0, 0)); !textnorm.RangeOf(blank.Original()).Includes(r) {
		t.Errorf("translation of empty range out of bounds: %v", r)
	}
}

func TestChangesIsCopy(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	s := normalized.StringFromString(scenarioA)
	changes := s.Changes()
	changes[0] = textnorm.Change{}
	if s.Changes()[0] == changes[0] {
		t.Errorf("modifying the result of Changes must not modify the String")
	}
	if r := s.ToOriginal(textnorm.NewRange(3, 27)); r != textnorm.NewRange(3, 35) {
		t.Errorf("translation changed after modifying a copy of the change log: %v", r)
	}
}

func TestOutOfBounds(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	s := normalized.StringFromString("Hello World")
	for _, r := range []textnorm.Range{{Start: 0, End: 12}, {Start: 5, End: 3}, {Start: -1, End: 2}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected translation of %v to panic", r)
				}
			}()
			s.ToOriginal(r)
		}()
	}
}

func TestConcurrentConstruction(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	done := make(chan *normalized.String)
	for i := 0; i < 8; i++ {
		go func() {
			done <- normalized.StringFromString(scenarioB)
		}()
	}
	for i := 0; i < 8; i++ {
		if s := <-done; s.Normalized() != scenarioBNormalized || len(s.Changes()) != 102 {
			t.Errorf("concurrent construction produced different results")
		}
	}
}

// randomTexts creates n deterministic pseudo-random texts, made from
// characters the rules care about.
func randomTexts(n int, seed int64) []string {
	const alphabet = "aAeEgGiItTcC0123456789 .,!?;:\n\r\t\"-()"
	rnd := rand.New(rand.NewSource(seed))
	texts := make([]string, n)
	for i := range texts {
		b := make([]byte, rnd.Intn(41))
		for j := range b {
			b[j] = alphabet[rnd.Intn(len(alphabet))]
		}
		texts[i] = string(b)
	}
	return texts
}
