package textnorm

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Rule is a single normalization rule. Rules are values; a set of rules in a
// fixed order makes up a Pipeline.
//
// Pattern finds candidate matches. Accept, if set, may veto a candidate; the
// search then continues one code-point after the start of the vetoed
// candidate. Patterns of rules with an Accept function are matched against
// suffixes of the text, therefore they must not contain '^' or other
// left-context assertions (Accept has to check left context instead).
//
// Edit receives the text and the submatch indices of an accepted match
// (as returned by regexp.FindStringSubmatchIndex) and returns the span to
// replace, together with the replacement. Every replacement must be of length
// Length.
//
// A rule must strictly decrease some finite measure of the text with every
// application, otherwise applying it to a fixpoint will not terminate.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Accept  func(text string, m []int) bool
	Edit    func(text string, m []int) (Range, string)
	Length  int
}

// Apply applies rule to text until it does not match any more. After every
// single rewrite, emit is called with the edit performed (emit may be nil)
// and the text is re-scanned from the start.
//
// Apply panics if a rule produces a replacement of unexpected length or does
// not reach a fixpoint in a reasonable number of steps. Both are defects of
// the rule, not of the input.
func (rule Rule) Apply(text string, emit func(Edit)) string {
	limit := 2*len(text) + 8
	for n := 0; ; n++ {
		m := rule.find(text)
		if m == nil {
			return text
		}
		if n >= limit {
			panic(fmt.Sprintf("textnorm: rule %s does not reach a fixpoint", rule.Name))
		}
		span, repl := rule.Edit(text, m)
		if len(repl) != rule.Length {
			panic(fmt.Sprintf("textnorm: rule %s replaced %v by %d bytes, declared %d",
				rule.Name, span, len(repl), rule.Length))
		}
		edit := Edit{Change: Change{Range: span, Length: rule.Length}, Text: repl}
		CT().P("rule", rule.Name).Debugf("%v %q -> %q", span, span.In(text), repl)
		text = edit.Apply(text)
		if emit != nil {
			emit(edit)
		}
	}
}

// Matches is true if rule would rewrite text.
func (rule Rule) Matches(text string) bool {
	return rule.find(text) != nil
}

// find returns the submatch indices of the leftmost accepted match, or nil.
func (rule Rule) find(text string) []int {
	if rule.Accept == nil {
		return rule.Pattern.FindStringSubmatchIndex(text)
	}
	for p := 0; p <= len(text); {
		m := rule.Pattern.FindStringSubmatchIndex(text[p:])
		if m == nil {
			return nil
		}
		for i := range m {
			if m[i] >= 0 {
				m[i] += p
			}
		}
		if rule.Accept(text, m) {
			return m
		}
		_, w := utf8.DecodeRuneInString(text[m[0]:])
		if w == 0 { // empty candidate at end of text
			w = 1
		}
		p = m[0] + w
	}
	return nil
}

// Pipeline is an ordered list of rules, preceded by an optional fold
// function. Fold has to preserve the length of the text and the position of
// every byte; its effect is not recorded.
type Pipeline struct {
	Fold  func(string) string
	Rules []Rule
}

// Run folds text, then applies every rule of p in order, each one to its
// fixpoint. emit is called for every single rewrite (emit may be nil).
func (p Pipeline) Run(text string, emit func(Edit)) string {
	if p.Fold != nil {
		folded := p.Fold(text)
		if len(folded) != len(text) {
			panic(fmt.Sprintf("textnorm: fold changed text length from %d to %d",
				len(text), len(folded)))
		}
		text = folded
	}
	for _, rule := range p.Rules {
		text = rule.Apply(text, emit)
	}
	return text
}
