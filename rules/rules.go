/*
Package rules contains the standard normalization rules.

Content

The rules turn free text into a canonical form made of lowercase ASCII
letters, digits, single spaces, at most two consecutive newlines and a small set
of punctuation characters (',', '.', '!', '?'). In the canonical form

  - a sentence ends with exactly one terminator, followed by a space or a newline
  - a sentence is never broken across lines
  - floats like 1.6 do not look like sentence ends (they become 16)
  - the abbreviations "e.g.", "i.e." and "etc." are spelled eg, ie and etc

Standard returns the pipeline of all rules in the order in which they have to
be applied. The rules are exported as single values as well, so clients may
test or combine them individually.

Typical Usage

  p := rules.Standard()
  normalized := p.Run(text, func(e textnorm.Edit) {
      // record e.Change
  })

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package rules

import (
	"regexp"

	"github.com/npillmayer/textnorm"
)

// FoldASCII maps the ASCII letters A to Z to lowercase. All other bytes,
// including those of multi-byte code-points, are left alone, thus byte
// positions do not change.
func FoldASCII(s string) string {
	i := 0
	for i < len(s) && !isUpper(s[i]) {
		i++
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if isUpper(b[i]) {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

func isUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

// Standard returns the standard normalization pipeline: ASCII case folding
// followed by all the rules of this package in their canonical order.
func Standard() textnorm.Pipeline {
	return textnorm.Pipeline{
		Fold: FoldASCII,
		Rules: []textnorm.Rule{
			NormalizeLineEnds,
			ReduceAlphabet,
			ReduceFloats,
			ReduceSpaces,
			TrimStart,
			TrimEnd,
			ReduceLineStarts,
			ReduceLineEnds,
			ReduceNewLines,
			JoinLines,
			NormalizeSentenceEnds,
			NormalizeCommas,
			SplitJoinedSentences,
			NormalizeLineStarts,
			NormalizeEg,
			NormalizeIe,
			NormalizeEtc,
		},
	}
}

// --- Rules ------------------------------------------------------------

// NormalizeLineEnds turns "\r\n" and "\r" into "\n".
var NormalizeLineEnds = textnorm.Rule{
	Name:    "normalize-line-ends",
	Pattern: regexp.MustCompile(`\r\n|\r`),
	Edit:    replaceGroup(0, "\n"),
	Length:  1,
}

// ReduceAlphabet replaces every run of characters outside of
// [a-z0-9,.!? \n] by a single space. Code-points outside of ASCII and invalid
// UTF-8 bytes are outside of this alphabet as well.
var ReduceAlphabet = textnorm.Rule{
	Name:    "reduce-alphabet",
	Pattern: regexp.MustCompile(`[^a-z0-9,.!? \n]+`),
	Edit:    replaceGroup(0, " "),
	Length:  1,
}

// ReduceFloats removes the decimal point between two runs of digits.
var ReduceFloats = textnorm.Rule{
	Name:    "reduce-floats",
	Pattern: regexp.MustCompile(`[0-9]+(\.)[0-9]+`),
	Edit:    replaceGroup(1, ""),
	Length:  0,
}

// ReduceSpaces collapses runs of spaces.
var ReduceSpaces = textnorm.Rule{
	Name:    "reduce-spaces",
	Pattern: regexp.MustCompile(` {2,}`),
	Edit:    replaceGroup(0, " "),
	Length:  1,
}

// TrimStart removes whitespace at the start of the text.
var TrimStart = textnorm.Rule{
	Name:    "trim-start",
	Pattern: regexp.MustCompile(`^[ \n]+`),
	Edit:    replaceGroup(0, ""),
	Length:  0,
}

// TrimEnd removes whitespace at the end of the text.
var TrimEnd = textnorm.Rule{
	Name:    "trim-end",
	Pattern: regexp.MustCompile(`[ \n]+$`),
	Edit:    replaceGroup(0, ""),
	Length:  0,
}

// ReduceLineStarts removes a space following a newline.
var ReduceLineStarts = textnorm.Rule{
	Name:    "reduce-line-starts",
	Pattern: regexp.MustCompile(`\n( )`),
	Edit:    replaceGroup(1, ""),
	Length:  0,
}

// ReduceLineEnds removes a space preceding a newline.
var ReduceLineEnds = textnorm.Rule{
	Name:    "reduce-line-ends",
	Pattern: regexp.MustCompile(`( )\n`),
	Edit:    replaceGroup(1, ""),
	Length:  0,
}

// ReduceNewLines removes newlines in excess of two.
var ReduceNewLines = textnorm.Rule{
	Name:    "reduce-new-lines",
	Pattern: regexp.MustCompile(`\n\n(\n+)`),
	Edit:    replaceGroup(1, ""),
	Length:  0,
}

// JoinLines replaces a newline by a space, if the line does not end a
// sentence and is not followed by an empty line.
var JoinLines = textnorm.Rule{
	Name:    "join-lines",
	Pattern: regexp.MustCompile(`[^.!?\n](\n)[^\n]`),
	Edit:    replaceGroup(1, " "),
	Length:  1,
}

// NormalizeSentenceEnds collapses an optional space, a terminator and the run
// of spaces and terminators following it to the single terminator.
var NormalizeSentenceEnds = textnorm.Rule{
	Name:    "normalize-sentence-ends",
	Pattern: regexp.MustCompile(` ?([.!?])[ .!?]+`),
	Edit:    collapseToGroup(1),
	Length:  1,
}

// NormalizeCommas replaces an optional space followed by two or more commas
// by ", ".
var NormalizeCommas = textnorm.Rule{
	Name:    "normalize-commas",
	Pattern: regexp.MustCompile(` ?,,+`),
	Edit:    replaceGroup(0, ", "),
	Length:  2,
}

// SplitJoinedSentences inserts a space between a terminator or comma and a
// directly following non-space character.
var SplitJoinedSentences = textnorm.Rule{
	Name:    "split-joined-sentences",
	Pattern: regexp.MustCompile(`[,.!?]()[^ ]`),
	Edit:    replaceGroup(1, " "),
	Length:  1,
}

// NormalizeLineStarts removes spaces and terminators at the start of the
// text and at the start of lines.
var NormalizeLineStarts = textnorm.Rule{
	Name:    "normalize-line-starts",
	Pattern: regexp.MustCompile(`(?:\n|^)([ .!?]+)`),
	Edit:    replaceGroup(1, ""),
	Length:  0,
}

// NormalizeEg spells variants of "e.g." as "eg".
var NormalizeEg = abbreviation("normalize-eg", `e\.? ?g\.? ?`, "eg")

// NormalizeIe spells variants of "i.e." as "ie".
var NormalizeIe = abbreviation("normalize-ie", `i\.? ?e\.? ?`, "ie")

// NormalizeEtc spells variants of "etc." as "etc".
var NormalizeEtc = abbreviation("normalize-etc", `etc\.? ?`, "etc")

// --- Helpers ----------------------------------------------------------

// replaceGroup replaces submatch g by repl. Group 0 is the whole match.
func replaceGroup(g int, repl string) func(string, []int) (textnorm.Range, string) {
	return func(_ string, m []int) (textnorm.Range, string) {
		return textnorm.Range{Start: m[2*g], End: m[2*g+1]}, repl
	}
}

// collapseToGroup replaces the whole match by the text of submatch g.
func collapseToGroup(g int) func(string, []int) (textnorm.Range, string) {
	return func(text string, m []int) (textnorm.Range, string) {
		return textnorm.Range{Start: m[0], End: m[1]}, text[m[2*g]:m[2*g+1]]
	}
}

// abbreviation creates a rule replacing matches of variant by canonical.
// A variant has to stand on its own: it must neither be preceded by a letter
// or digit nor be followed by a letter, a digit or a period. Occurrences
// already spelled canonical are left alone, otherwise the rule would never
// reach a fixpoint.
func abbreviation(name, variant, canonical string) textnorm.Rule {
	return textnorm.Rule{
		Name:    name,
		Pattern: regexp.MustCompile(variant + `($|[^.a-z0-9])`),
		Accept: func(text string, m []int) bool {
			if m[0] > 0 && isAlnum(text[m[0]-1]) {
				return false
			}
			return text[m[0]:m[2]] != canonical
		},
		Edit: func(_ string, m []int) (textnorm.Range, string) {
			return textnorm.Range{Start: m[0], End: m[2]}, canonical
		},
		Length: len(canonical),
	}
}

func isAlnum(c byte) bool {
	return 'a' <= c && c <= 'z' || '0' <= c && c <= '9'
}
