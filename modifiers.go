package ortho

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Tie bars span two segments: U+0361 COMBINING DOUBLE INVERTED BREVE and
// U+035C COMBINING DOUBLE BREVE BELOW.
const (
	tieBarAbove = '\u0361'
	tieBarBelow = '\u035C'
)

// TokenizeIPA tokenizes an IPA transcription into grapheme clusters with
// modifier letters attached to their base characters. Experimental.
func (t *Tokenizer) TokenizeIPA(s string) string {
	return t.CombineModifiers(t.GraphemeClusters(norm.NFD.String(s)))
}

// CombineModifiers regroups a space-delimited grapheme cluster string into
// tailored grapheme clusters: a single-character segment of Unicode
// category Lm (Modifier Letter) merges onto the preceding segment, and a
// modifier letter at the very start of the string merges into the first
// real segment. A second pass joins any segment ending in a combining tie
// bar with its successor, treating the pair as one digraph-spanning unit.
// Experimental.
func (t *Tokenizer) CombineModifiers(s string) string {
	graphemes := strings.Fields(s)
	merged := make([]string, 0, len(graphemes)) // collected in reverse order
	modifiers := ""
	for i := len(graphemes) - 1; i >= 0; i-- {
		grapheme := graphemes[i]
		if r, size := utf8.DecodeRuneInString(grapheme); size == len(grapheme) && unicode.Is(unicode.Lm, r) {
			modifiers = grapheme + modifiers
			if i == 0 && len(merged) > 0 { // lone modifier at string start
				merged[len(merged)-1] = modifiers + merged[len(merged)-1]
			}
			continue
		}
		merged = append(merged, grapheme+modifiers)
		modifiers = ""
	}
	segments := make([]string, 0, len(merged))
	for i := len(merged) - 1; i >= 0; i-- {
		segments = append(segments, merged[i])
	}
	result := make([]string, 0, len(segments))
	for i := 0; i < len(segments); i++ {
		if i+1 < len(segments) && endsInTieBar(segments[i]) {
			result = append(result, segments[i]+segments[i+1])
			i++
			continue
		}
		result = append(result, segments[i])
	}
	return strings.Join(result, " ")
}

func endsInTieBar(segment string) bool {
	last, _ := utf8.DecodeLastRuneInString(segment)
	return last == tieBarAbove || last == tieBarBelow
}
