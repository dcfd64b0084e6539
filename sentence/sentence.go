// Package sentence splits normalized text into sentences.
//
// The splitter relies on the canonical form produced by the standard rules of
// package rules: sentences end with a single terminator followed by a space or
// a newline, and a newline always ends a sentence. It is not meant to be used on
// arbitrary text.
package sentence

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textnorm"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Split returns the ranges of all sentences of text, in order. Ranges do not
// include the whitespace between sentences.
func Split(text string) []textnorm.Range {
	var sentences []textnorm.Range
	i := 0
	for i < len(text) {
		for i < len(text) && isSpace(text[i]) {
			i++
		}
		if i == len(text) {
			break
		}
		j := endOfSentence(text, i)
		e := j
		for e > i && text[e-1] == ' ' {
			e--
		}
		sentences = append(sentences, textnorm.Range{Start: i, End: e})
		i = j
	}
	T().Debugf("split %d bytes into %d sentences", len(text), len(sentences))
	return sentences
}

// endOfSentence returns the position after the sentence starting at i.
func endOfSentence(text string, i int) int {
	for ; i < len(text); i++ {
		switch text[i] {
		case '\n':
			return i
		case '.', '!', '?':
			if i+1 == len(text) || isSpace(text[i+1]) {
				return i + 1
			}
		}
	}
	return i
}

// Texts returns the text of each sentence of text.
func Texts(text string) []string {
	ranges := Split(text)
	texts := make([]string, len(ranges))
	for i, r := range ranges {
		texts[i] = r.In(text)
	}
	return texts
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n'
}
