// Package qlc parses orthography profiles and rewrite rules in the
// tab-separated format of the QLC project and feeds them to package ortho.
//
// Profiles are tables with one grapheme per row:
//
//	graphemes	ipa	funny
//	à	a	e
//	tt	tː	l
//
// The first content row is the header; its first column must read
// "graphemes", the remaining labels declare the remap columns. Rules files
// hold one rule per line as "pattern, replacement". In both formats blank
// lines and lines starting with '#' are ignored, and all content is
// normalized to NFD.
package qlc

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/ortho"
	"golang.org/x/text/unicode/norm"
)

// LoadProfile parses an orthography profile table and returns a
// ready-to-use profile.
func LoadProfile(name string, reader io.Reader) (*ortho.Profile, error) {
	r, err := NewProfileReader(reader)
	if err != nil {
		return nil, err
	}
	return ortho.LoadProfile(name, r)
}

// LoadRules parses a rules file and returns a compiled ruleset.
//
// Group references in replacements use the backslash notation of the rules
// format (\1) and are rewritten to Go's ${1} form before compilation.
// A line that does not split into exactly one pattern and one replacement
// is a fatal format error.
func LoadRules(reader io.Reader) (*ortho.Ruleset, error) {
	return ortho.LoadRules(NewRuleReader(reader))
}

// --- Profiles --------------------------------------------------------------

// ProfileReader streams grapheme entries from a tab-separated orthography
// profile. It implements ortho.ProfileReader.
type ProfileReader struct {
	scanner *bufio.Scanner
	columns []string
	line    int
}

// NewProfileReader wraps reader and consumes the header row.
func NewProfileReader(reader io.Reader) (*ProfileReader, error) {
	r := &ProfileReader{scanner: bufio.NewScanner(reader)}
	header, line, err := r.nextRow()
	if err == io.EOF {
		return nil, fmt.Errorf("orthography profile has no header row")
	}
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(strings.ToLower(header[0]), ortho.ColumnGraphemes) {
		return nil, fmt.Errorf("orthography profile line %d: header must start with %q",
			line, ortho.ColumnGraphemes)
	}
	for _, label := range header {
		r.columns = append(r.columns, strings.ToLower(strings.TrimSpace(label)))
	}
	return r, nil
}

// Columns returns the header labels, lowercased.
func (r *ProfileReader) Columns() []string {
	return r.columns
}

// Next returns the next profile row as (grapheme, values, line), where
// values holds one entry per header column, the grapheme included.
// It returns io.EOF when exhausted.
func (r *ProfileReader) Next() (string, []string, int, error) {
	row, line, err := r.nextRow()
	if err != nil {
		return "", nil, line, err
	}
	return row[0], row, line, nil
}

// nextRow scans to the next non-blank, non-comment line and splits it on
// tabs, NFD-normalized.
func (r *ProfileReader) nextRow() ([]string, int, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(norm.NFD.String(line), "\t")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		return fields, r.line, nil
	}
	if err := r.scanner.Err(); err != nil {
		return nil, r.line, err
	}
	return nil, r.line, io.EOF
}

// --- Rules -----------------------------------------------------------------

// RuleReader streams rewrite rules from a QLC rules file. It implements
// ortho.RuleReader.
type RuleReader struct {
	scanner *bufio.Scanner
	line    int
}

func NewRuleReader(reader io.Reader) *RuleReader {
	return &RuleReader{scanner: bufio.NewScanner(reader)}
}

// Next returns the next rule as (pattern, replacement).
// It returns io.EOF when exhausted.
func (r *RuleReader) Next() (string, string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(norm.NFD.String(line), ",")
		if len(parts) != 2 {
			return "", "", fmt.Errorf("rules line %d: number of patterns does not match number of replacements",
				r.line)
		}
		pattern := strings.TrimSpace(parts[0])
		replacement := expandGroupRefs(strings.TrimSpace(parts[1]))
		return pattern, replacement, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", "", err
	}
	return "", "", io.EOF
}

// expandGroupRefs rewrites \1..\9 group references to ${1} form.
func expandGroupRefs(replacement string) string {
	var b strings.Builder
	for i := 0; i < len(replacement); i++ {
		if replacement[i] == '\\' && i+1 < len(replacement) &&
			replacement[i+1] >= '1' && replacement[i+1] <= '9' {
			b.WriteString("${")
			b.WriteByte(replacement[i+1])
			b.WriteString("}")
			i++
			continue
		}
		b.WriteByte(replacement[i])
	}
	return b.String()
}
