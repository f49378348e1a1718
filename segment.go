package ortho

import "strings"

// Boundary marks word boundaries in tokenized output.
const Boundary = "#"

// Unknown replaces characters absent from the active profile.
const Unknown = "?"

// parseWord segments one whitespace-free word into profile graphemes,
// space-delimited and prefixed with a boundary marker. It returns the
// empty string when no complete segmentation exists.
func (p *Profile) parseWord(word string) string {
	parse := p.segment([]rune(word))
	if parse == "" {
		return ""
	}
	return Boundary + " " + parse
}

// segment walks the grapheme trie over line, one character at a time.
// Whenever the walk passes a terminal node, the remaining suffix is
// segmented recursively; a successful sub-parse overwrites any earlier
// candidate, a failing one does not. The surviving candidate therefore
// belongs to the longest prefix grapheme whose remainder segments too.
//
// Running out of input or out of matching children without ever having
// recorded a candidate yields the empty string.
func (p *Profile) segment(line []rune) string {
	if len(line) == 0 {
		return Boundary
	}
	var parse string
	walker := p.graphemes.Walker()
	for curr := 0; curr < len(line); curr++ {
		ok, terminal := walker.Next(line[curr])
		if !ok {
			break
		}
		if !terminal {
			continue
		}
		if sub := p.segment(line[curr+1:]); sub != "" {
			parse = string(line[:curr+1]) + " " + sub
		}
	}
	return parse
}

// missingCharacters re-tokenizes a character-split word, replacing every
// character that is not itself a profile grapheme with the unknown marker.
func (p *Profile) missingCharacters(characters string) string {
	tokens := strings.Fields(characters)
	for i, token := range tokens {
		if _, ok := p.entries[token]; !ok {
			tokens[i] = Unknown
		}
	}
	return strings.Join(tokens, " ")
}
