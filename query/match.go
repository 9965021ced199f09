package query

import (
	"sort"

	"github.com/acorg/hidb5/chart"
	"github.com/acorg/hidb5/record"
)

// PassageStrictness controls how FindMatchingAntigen/FindMatchingSerum
// compare the passage field (spec §4.3 "Find matching chart antigen/
// serum").
type PassageStrictness int

const (
	// PassageStrict requires an exact passage match.
	PassageStrict PassageStrictness = iota
	// PassageIgnoreIfEmptyInQuery accepts any stored passage when the
	// chart-side passage is empty, otherwise requires an exact match.
	PassageIgnoreIfEmptyInQuery
	// PassageAlwaysIgnore never compares passage.
	PassageAlwaysIgnore
)

func passageMatches(strictness PassageStrictness, queryPassage, storedPassage string) bool {
	switch strictness {
	case PassageAlwaysIgnore:
		return true
	case PassageIgnoreIfEmptyInQuery:
		if queryPassage == "" {
			return true
		}

		return queryPassage == storedPassage
	default:
		return queryPassage == storedPassage
	}
}

// annotationsEqual compares two annotation sets ignoring order.
func annotationsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	sa := append([]string(nil), a...)
	sb := append([]string(nil), b...)
	sort.Strings(sa)
	sort.Strings(sb)

	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}

	return true
}

func bytesToStrings(bs [][]byte) []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = string(b)
	}

	return out
}

// FindMatchingAntigen returns the first DB antigen with identical
// annotations and reassortant, and (per strictness) passage, as ca. A
// chart antigen marked "distinct" never matches (spec §4.2 step 2: never
// indexed in the first place).
func (e *Engine) FindMatchingAntigen(ca chart.Antigen, strictness PassageStrictness) (record.Antigen, bool) {
	if ca.Distinct() {
		return record.Antigen{}, false
	}

	candidates, err := e.FindAntigens(ca.Name())
	if err != nil {
		return record.Antigen{}, false
	}

	for _, cand := range candidates {
		if !annotationsEqual(bytesToStrings(cand.Annotations()), ca.Annotations()) {
			continue
		}
		if string(cand.Reassortant()) != ca.Reassortant() {
			continue
		}
		if !passageMatches(strictness, ca.Passage(), string(cand.Passage())) {
			continue
		}

		return cand, true
	}

	return record.Antigen{}, false
}

// FindMatchingSerum is FindMatchingAntigen's serum analogue, keyed
// additionally on serum_id: a query serum_id of "UNKNOWN" matches a stored
// empty serum_id as a fallback (spec §4.3).
func (e *Engine) FindMatchingSerum(cs chart.Serum, strictness PassageStrictness) (record.Serum, bool) {
	if cs.Distinct() {
		return record.Serum{}, false
	}

	candidates, err := e.FindSera(cs.Name())
	if err != nil {
		return record.Serum{}, false
	}

	for _, cand := range candidates {
		if !annotationsEqual(bytesToStrings(cand.Annotations()), cs.Annotations()) {
			continue
		}
		if string(cand.Reassortant()) != cs.Reassortant() {
			continue
		}
		if !passageMatches(strictness, cs.Passage(), string(cand.Passage())) {
			continue
		}
		if !serumIDMatches(cs.SerumID(), string(cand.SerumID())) {
			continue
		}

		return cand, true
	}

	return record.Serum{}, false
}

func serumIDMatches(query, stored string) bool {
	if query == stored {
		return true
	}

	return query == "UNKNOWN" && stored == ""
}
