package ortho

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ColumnGraphemes is the label of the mandatory first profile column.
const ColumnGraphemes = "graphemes"

// NullValue is the sentinel replacement value that drops a token during
// remapping instead of rendering it.
const NullValue = "NULL"

// Entry is one grapheme row of an orthography profile.
//
// Grapheme is the NFD-normalized character sequence the profile declares
// as one unit. Mappings holds one replacement string per declared profile
// column, keyed by column label.
type Entry struct {
	Grapheme string
	Mappings map[string]string
}

// ProfileReader yields orthography profile entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type ProfileReader interface {
	// Columns returns the declared column labels. The first label is
	// always "graphemes".
	Columns() []string
	// Next returns the next grapheme together with one value per declared
	// column, plus the source line the entry came from.
	Next() (grapheme string, values []string, line int, err error)
}

// Profile is a loaded orthography profile.
//
// A profile contains:
//   - the grapheme inventory, indexed by a trie for segmentation
//   - per-grapheme mappings into the profile's other columns.
//
// Profiles are immutable after loading and safe for concurrent readers.
type Profile struct {
	columns    []string          // declared column labels, in header order
	entries    map[string]*Entry // NFD grapheme => entry
	graphemes  segmentTrie
	Identifier string // Identifies the profile
}

// LoadProfile builds a profile from a streaming, format-agnostic source.
//
// File format parsing is intentionally outside the base package. Use
// adapters like package qlc to parse concrete formats and feed this API.
//
// Graphemes must be unique across the profile; a duplicate aborts loading
// with an error naming the offending source line.
func LoadProfile(name string, reader ProfileReader) (*Profile, error) {
	profile := &Profile{
		entries:    make(map[string]*Entry),
		graphemes:  newNodeTrie(),
		Identifier: fmt.Sprintf("profile: %s", name),
	}
	for _, label := range reader.Columns() {
		profile.columns = append(profile.columns, strings.ToLower(strings.TrimSpace(label)))
	}
	if len(profile.columns) == 0 || !strings.HasPrefix(profile.columns[0], ColumnGraphemes) {
		return nil, fmt.Errorf("profile %q: first column label must be %q", name, ColumnGraphemes)
	}
	for {
		grapheme, values, line, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		grapheme = norm.NFD.String(strings.TrimSpace(grapheme))
		if grapheme == "" {
			continue
		}
		if _, ok := profile.entries[grapheme]; ok {
			return nil, fmt.Errorf("duplicate grapheme in orthography profile at line %d", line)
		}
		entry := &Entry{
			Grapheme: grapheme,
			Mappings: make(map[string]string, len(profile.columns)),
		}
		for i, value := range values {
			if i >= len(profile.columns) {
				break
			}
			entry.Mappings[profile.columns[i]] = norm.NFD.String(strings.TrimSpace(value))
		}
		profile.entries[grapheme] = entry
		profile.graphemes.Insert(grapheme)
	}
	stats := profile.graphemes.Stats()
	tracer().Infof("grapheme trie stats backend=%s nodes=%d terminals=%d maxdepth=%d",
		stats.Backend, stats.Nodes, stats.Terminals, stats.MaxDepth)
	return profile, nil
}

// Columns returns the profile's declared column labels, in header order.
func (p *Profile) Columns() []string {
	columns := make([]string, len(p.columns))
	copy(columns, p.columns)
	return columns
}

// HasColumn reports whether label is among the declared columns.
func (p *Profile) HasColumn(label string) bool {
	for _, column := range p.columns {
		if column == label {
			return true
		}
	}
	return false
}

// Lookup returns the profile entry for an NFD grapheme.
func (p *Profile) Lookup(grapheme string) (*Entry, bool) {
	entry, ok := p.entries[grapheme]
	return entry, ok
}

// mapping returns the replacement for (grapheme, column), if declared.
func (p *Profile) mapping(grapheme, column string) (string, bool) {
	entry, ok := p.entries[grapheme]
	if !ok {
		return "", false
	}
	target, ok := entry.Mappings[column]
	return target, ok
}
