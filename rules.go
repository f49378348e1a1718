package ortho

import (
	"fmt"
	"io"
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// Rule is one compiled rewrite rule: a pattern plus a replacement template
// in Go's regexp expansion syntax (group references as ${1}).
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// RuleReader yields rewrite rules one-by-one.
// It should return io.EOF when the stream is exhausted. A source that
// cannot produce a replacement for a pattern must return an error instead
// of a half rule.
type RuleReader interface {
	Next() (pattern string, replacement string, err error)
}

// Ruleset is an ordered list of rewrite rules. Order is the source order
// and is significant: each rule rewrites the output of its predecessor.
//
// Rulesets are immutable after loading and safe for concurrent readers.
type Ruleset struct {
	rules []Rule
}

// LoadRules compiles rules from a streaming, format-agnostic source.
// Patterns and replacements are NFD-normalized before compilation.
func LoadRules(reader RuleReader) (*Ruleset, error) {
	rs := &Ruleset{}
	for {
		pattern, replacement, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		re, err := regexp.Compile(norm.NFD.String(pattern))
		if err != nil {
			return nil, fmt.Errorf("rule %d: %v", len(rs.rules)+1, err)
		}
		rs.rules = append(rs.rules, Rule{
			Pattern:     re,
			Replacement: norm.NFD.String(replacement),
		})
	}
	tracer().Infof("loaded %d rewrite rules", len(rs.rules))
	return rs, nil
}

// Len returns the number of rules in the set.
func (rs *Ruleset) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}

// Apply rewrites s with every rule, in order. Rule i substitutes all
// non-overlapping matches of its pattern throughout the accumulated result
// of rules 0..i-1, never the original input; rules that do not match are
// no-ops. The final result is re-normalized to NFD, guarding against rule
// files that introduce non-normalized sequences.
//
// A nil or empty ruleset is the identity.
func (rs *Ruleset) Apply(s string) string {
	if rs.Len() == 0 {
		return s
	}
	result := norm.NFD.String(s)
	for _, rule := range rs.rules {
		result = rule.Pattern.ReplaceAllString(result, rule.Replacement)
	}
	return norm.NFD.String(result)
}
