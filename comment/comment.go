/*
Package comment finds comments in source code and positions the sentences of
comments within the source file.

Comments are located by language specific patterns. Every comment is
normalized on its own (see package normalized), split into sentences (see
package sentence), and the range of every sentence is mapped back to the
comment and from there to the source file. This lets tools which work on
normalized sentences (classifiers, for example) report their findings in
terms of the source code the user sees.

Supported languages are Java (line and block comments), Pharo (double-quoted
comments) and Python (line comments and triple-quoted strings).
*/
package comment

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textnorm"
	"github.com/npillmayer/textnorm/normalized"
	"github.com/npillmayer/textnorm/sentence"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Language selects the comment syntax.
type Language int

// Supported languages
const (
	Java Language = iota
	Pharo
	Python
)

var languageNames = [...]string{"java", "pharo", "python"}

func (l Language) String() string {
	if l < 0 || int(l) >= len(languageNames) {
		return fmt.Sprintf("Language(%d)", int(l))
	}
	return languageNames[l]
}

// ErrUnknownLanguage is returned by ParseLanguage for unsupported languages.
var ErrUnknownLanguage = errors.New("unknown language")

// ParseLanguage returns the language for a name like "java" (case is ignored).
func ParseLanguage(name string) (Language, error) {
	for i, n := range languageNames {
		if strings.EqualFold(n, name) {
			return Language(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
}

var patterns = [...]*regexp.Regexp{
	Java:   regexp.MustCompile(`//.*|(?s:/\*.*?\*/)`),
	Pharo:  regexp.MustCompile(`(?s)"(?:\\[^"]|\\"|.)*?"`),
	Python: regexp.MustCompile(`#.*|(?s:'''.*?'''|""".*?""")`),
}

// Comment is a comment in a source text, including its delimiters.
type Comment struct {
	Range textnorm.Range // position within the source
	Text  string
}

// Extract returns the comments of source, in order of appearance.
func Extract(source string, lang Language) []Comment {
	if lang < 0 || int(lang) >= len(patterns) {
		tracer().Errorf("no comment syntax for %v", lang)
		return nil
	}
	locs := patterns[lang].FindAllStringIndex(source, -1)
	comments := make([]Comment, len(locs))
	for i, loc := range locs {
		comments[i] = Comment{
			Range: textnorm.Range{Start: loc[0], End: loc[1]},
			Text:  source[loc[0]:loc[1]],
		}
	}
	tracer().P("lang", lang).Debugf("found %d comments", len(comments))
	return comments
}

// Sentence is a sentence of a comment.
type Sentence struct {
	Range      textnorm.Range // position within the source
	Normalized string         // normalized text of the sentence
	Comment    int            // index of the comment, as returned by Extract
}

// Sentences returns the sentences of all comments of source, ordered by their
// position in source. opts are passed to normalized.New for every comment.
//
// Mapping sentences back to the source may widen ranges (see
// normalized.String.ToOriginal). If two sentences end up at the same source
// range, the later one wins.
func Sentences(source string, lang Language, opts ...normalized.Option) []Sentence {
	sorted := treemap.NewWith(textnorm.RangeComparator)
	for i, c := range Extract(source, lang) {
		s := normalized.New(c.Text, opts...)
		offset := c.Range.Start
		for _, r := range sentence.Split(s.Normalized()) {
			at := s.ToOriginal(r).Shift(offset, offset)
			sorted.Put(at, Sentence{
				Range:      at,
				Normalized: r.In(s.Normalized()),
				Comment:    i,
			})
		}
	}
	result := make([]Sentence, 0, sorted.Size())
	it := sorted.Iterator()
	for it.Next() {
		result = append(result, it.Value().(Sentence))
	}
	return result
}
