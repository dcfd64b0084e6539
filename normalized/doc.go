/*
Package normalized provides strings which know where they came from.

A normalized.String holds an original text, its normalized form and the log of
changes which led from one to the other. It is created in one go and is
read-only afterwards, so it may be shared freely between goroutines.

Typical Usage

  s := normalized.StringFromString(comment)
  for _, r := range sentence.Split(s.Normalized()) {
      fmt.Printf("%q was %q\n", r.In(s.Normalized()), s.ToOriginal(r).In(s.Original()))
  }

Ranges in the normalized text are mapped back to the original text with
ToOriginal. The mapping replays the change log backwards. Where a range
touches text which has been produced by a rewrite, the result covers the
complete span which has been replaced, so translated ranges may be wider than
one would expect, but never narrower.

Clients may use their own rule pipelines (see WithPipeline) and may ask for
settled strings (see Settle): the standard rules are applied once, in order,
which for some inputs produces text the same rules would rewrite again.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package normalized

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// TC traces to the core-tracer.
func TC() tracing.Trace {
	return gtrace.CoreTracer
}
