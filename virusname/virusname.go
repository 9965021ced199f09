// Package virusname is the narrow interface hidb5 uses for the virus-name
// tokenizer (spec §1, §6): splitting a chart name of the shape
// "A(H3N2)/HOST/LOCATION/ISOLATION/YEAR[ PASSAGE]" into its components. The
// real tokenizer is an external collaborator; Default provides a
// reasonable reference implementation so the builder and query engine are
// runnable and testable on their own.
package virusname

import (
	"errors"
	"strings"
)

// ErrUnrecognized is returned when name does not match the generic grammar.
// The builder treats this as fatal for antigen ingestion (after trying the
// CDC short-form fallbacks itself); the query engine instead degrades to
// slash-split heuristics (spec §4.3).
var ErrUnrecognized = errors.New("virusname: unrecognized name")

// Parts is the decomposition of a chart name.
type Parts struct {
	VirusType string
	Host      string
	Location  string
	Isolation string
	Year      string
	Passage   string
	Extra     string
}

// Splitter decomposes a chart antigen/serum name into Parts.
type Splitter interface {
	Split(name string) (Parts, error)
}

// Default returns the reference Splitter implementation.
func Default() Splitter { return defaultSplitter{} }

type defaultSplitter struct{}

// Split implements the generic "VT/HOST/LOC/ISO/YEAR" grammar. The virus
// type is the leading token up to the first '/' (it may itself contain
// '(' ')', e.g. "A(H3N2)"); the remaining tokens are host, location,
// isolation, and year, in that order. A trailing " PASSAGE" suffix on the
// year token, if present, is split off into Passage. Names with fewer than
// 4 slash-delimited tokens after the virus type are unrecognized -- callers
// needing partial matches use their own slash-split fallback (spec §4.3).
func (defaultSplitter) Split(name string) (Parts, error) {
	fields := strings.Split(name, "/")
	if len(fields) < 5 {
		return Parts{}, ErrUnrecognized
	}

	vt := fields[0]
	host := fields[1]
	location := fields[2]
	isolation := fields[3]
	yearField := fields[4]

	year, passage, _ := strings.Cut(yearField, " ")

	extra := ""
	if len(fields) > 5 {
		extra = strings.Join(fields[5:], "/")
	}

	if vt == "" || location == "" || isolation == "" || year == "" {
		return Parts{}, ErrUnrecognized
	}

	return Parts{
		VirusType: vt,
		Host:      host,
		Location:  location,
		Isolation: isolation,
		Year:      year,
		Passage:   passage,
		Extra:     extra,
	}, nil
}
