/*
Package textnorm is about normalizing free-form natural-language text while
keeping track of where every piece of the result came from.

Description

Comments in source code, commit messages and similar free text are written
with little discipline: mixed case, stray punctuation, hard line breaks in the
middle of a sentence, version numbers which look like sentence ends, and so
on. Downstream consumers such as sentence splitters and feature extractors
are a lot simpler if they can rely on a canonical form of such text. However,
results of those consumers have to be reported against the text the user
actually wrote. Package textnorm therefore never throws away the relation
between the normalized text and the original.

Normalization is performed by rules. A rule is a short regular expression
together with an edit: which span of a match to replace, and by what. Rules
are applied in a fixed order, and every rule is applied to a fixpoint before
the next rule starts:

   find leftmost match -> rewrite -> record a Change -> rescan from start

Each single rewrite is recorded as a Change, i.e. the span which has been
replaced (in the coordinates of the text just before the rewrite) and the
length of the replacement. The sequence of changes is an edit log. Replaying
the log backwards maps any range of the normalized text to a range of the
original text (see Change.Revert).

Contents

Base package textnorm provides the value types (Range, Change, Edit) and the
rule engine (Rule, Pipeline). The standard rule set sits in sub-package
rules. The aggregate type, holding original text, normalized text and the
edit log, is normalized.String in sub-package normalized.
Sub-packages sentence and comment build on normalized strings: they split
normalized text into sentences and position the sentences of source code
comments within the source file.

Offsets are byte offsets. Case folding is restricted to ASCII and therefore
does not alter byte positions; every other code-point is outside of the
alphabet of normalized text and will be reduced to a space.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package textnorm

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
