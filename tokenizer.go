package ortho

import (
	"errors"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// ErrNoProfile is returned by operations that need an orthography profile
// when none is configured.
var ErrNoProfile = errors.New("tokenizer has no orthography profile")

// Tokenizer tokenizes text, driven by an orthography profile and/or a set
// of rewrite rules. Either may be nil:
//
//   - profile and rules:   segment + remap, then apply the rules
//   - neither:             Unicode extended grapheme clusters
//   - profile only:        segment + remap
//   - rules only:          rules applied to grapheme cluster output
//
// All operations are pure; a Tokenizer may be shared between goroutines.
type Tokenizer struct {
	profile *Profile
	rules   *Ruleset
}

// NewTokenizer creates a tokenizer. Both arguments are optional.
func NewTokenizer(profile *Profile, rules *Ruleset) *Tokenizer {
	return &Tokenizer{profile: profile, rules: rules}
}

// Profile returns the configured orthography profile, or nil.
func (t *Tokenizer) Profile() *Profile { return t.profile }

// Characters returns s as a space-delimited string of Unicode code points,
// in NFD, with word boundaries marked '#'.
func (t *Tokenizer) Characters(s string) string {
	s = norm.NFD.String(strings.ReplaceAll(s, " ", Boundary))
	runes := []rune(s)
	characters := make([]string, len(runes))
	for i, r := range runes {
		characters[i] = string(r)
	}
	return strings.Join(characters, " ")
}

// GraphemeClusters returns s as a space-delimited string of Unicode
// extended grapheme clusters (Unicode Standard Annex #29), in NFD, with
// word boundaries marked '#'.
func (t *Tokenizer) GraphemeClusters(s string) string {
	s = norm.NFD.String(strings.ReplaceAll(s, " ", Boundary))
	var clusters []string
	state := -1
	var cluster string
	for len(s) > 0 {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		clusters = append(clusters, cluster)
	}
	return strings.Join(clusters, " ")
}

// Graphemes tokenizes s into the graphemes of the orthography profile.
// Words that cannot be segmented completely degrade to character-level
// tokenization, with characters missing from the profile replaced by '?'.
// Without a profile, Graphemes returns plain grapheme clusters.
func (t *Tokenizer) Graphemes(s string) string {
	s = norm.NFD.String(s)
	if t.profile == nil {
		return t.GraphemeClusters(s)
	}
	var parses strings.Builder
	for _, word := range strings.Fields(s) {
		parse := t.profile.parseWord(word)
		if parse == "" {
			parse = " " + t.profile.missingCharacters(t.Characters(word))
		}
		parses.WriteString(parse)
	}
	// Word parses carry boundary markers on both ends; collapse the doubled
	// markers between words and drop the outer ones.
	result := strings.ReplaceAll(parses.String(), Boundary+Boundary, Boundary)
	result = strings.TrimRight(result, Boundary)
	result = strings.TrimLeft(result, Boundary)
	return strings.TrimSpace(result)
}

// Transform tokenizes s into profile graphemes and remaps every grapheme
// into the given profile column. Boundary and unknown markers pass through
// unchanged; a target value of "NULL" drops the token from the output.
//
// Remapping to the "graphemes" column, or to a column the profile does not
// declare, degrades to plain grapheme tokenization. Transform requires a
// profile and returns ErrNoProfile without one.
func (t *Tokenizer) Transform(s string, column string) (string, error) {
	if t.profile == nil {
		return "", ErrNoProfile
	}
	if column == ColumnGraphemes {
		return t.Graphemes(s), nil
	}
	if !t.profile.HasColumn(column) {
		return t.Graphemes(s), nil
	}
	var result []string
	for _, token := range strings.Fields(t.Graphemes(s)) {
		if token == Boundary || token == Unknown {
			result = append(result, token)
			continue
		}
		target, ok := t.profile.mapping(token, column)
		if !ok {
			tracer().Debugf("profile has no %q mapping for grapheme %q", column, token)
			result = append(result, token)
			continue
		}
		if target != NullValue {
			result = append(result, target)
		}
	}
	return strings.TrimSpace(strings.Join(result, " ")), nil
}

// Rules applies the configured rewrite rules to s. Without rules it
// returns s unchanged.
func (t *Tokenizer) Rules(s string) string {
	if t.rules == nil {
		return s
	}
	return t.rules.Apply(s)
}

// TransformRules tokenizes s into profile graphemes and applies the
// rewrite rules to the result.
func (t *Tokenizer) TransformRules(s string) (string, error) {
	transformed, err := t.Transform(s, ColumnGraphemes)
	if err != nil {
		return "", err
	}
	return t.Rules(transformed), nil
}

// Tokenize dispatches on the configured profile and rules. With both, s is
// segmented and remapped into column, then rewritten by the rules; with
// neither, s is split into grapheme clusters; with only a profile, s is
// segmented and remapped; with only rules, the rules are applied to the
// grapheme cluster tokenization. The last combination has no obvious use,
// but callers rely on the current behavior.
func (t *Tokenizer) Tokenize(s string, column string) (string, error) {
	if t.profile != nil && t.rules != nil {
		transformed, err := t.Transform(s, column)
		if err != nil {
			return "", err
		}
		return t.Rules(transformed), nil
	}
	if t.profile == nil && t.rules == nil {
		return t.GraphemeClusters(s), nil
	}
	if t.profile != nil {
		return t.Transform(s, column)
	}
	return t.Rules(t.GraphemeClusters(s)), nil
}
