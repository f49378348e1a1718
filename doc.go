/*
Package ortho segments text into graphemes defined by an orthography profile.

An orthography profile is a table declaring which character sequences of a
source document count as single graphemes (Unicode parlance: tailored
graphemes), optionally together with alternate representations per grapheme
in additional columns (an IPA transcription, say). The profile is compiled
into a trie, and words are parsed by a greedy longest-match walk that keeps
a shorter match whenever a longer one leaves an unparsable remainder.

For example, a profile might declare that in source X <uu> is a single
grapheme and should be chunked as such:

	input:  uubo uubo
	output: uu b o # uu b o

Word boundaries are marked with '#', characters missing from the profile
with '?'. The output of a profile parse can be remapped into any other
profile column, and an ordered list of regular-expression rewrite rules can
be applied on top.

Without a profile the package falls back to plain Unicode extended grapheme
cluster segmentation (Unicode Standard Annex #29).

Profile and rules file parsing is kept out of this package; see package qlc
for the tab-separated profile format. Profiles are immutable once loaded
and may be shared freely between goroutines.

Further Reading

	https://unicode.org/reports/tr29/

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package ortho

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ortho'
func tracer() tracing.Trace {
	return tracing.Select("ortho")
}
