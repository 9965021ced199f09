package query

import "github.com/acorg/hidb5/record"

// FindSera searches the serum section the same way FindAntigens searches
// the antigen section (spec §4.3); the identity sort prefix is identical
// (location, isolation, year) so the same lower-bound narrowing applies.
func (e *Engine) FindSera(query string) ([]record.Serum, error) {
	pq, ok := e.parseQuery(query)
	if !ok {
		return nil, nil
	}

	pq.location = e.normalizeLocation(pq.location)

	sec := e.db.Sera
	n := sec.Count()

	lo, hi := exactRange(0, n, func(i int) string { return string(sec.At(i).Location()) }, pq.location)

	prefixed := false
	if pq.hasIsolation {
		iLo, iHi := exactRange(lo, hi, func(i int) string { return string(sec.At(i).Isolation()) }, pq.isolation)
		if iLo == iHi && e.fuzzy {
			iLo, iHi = prefixRange(lo, hi, func(i int) string { return string(sec.At(i).Isolation()) }, pq.isolation)
			prefixed = true
		}
		lo, hi = iLo, iHi
	}

	if pq.hasYear && !prefixed {
		lo, hi = exactRange(lo, hi, func(i int) string { return sec.At(i).Year() }, pq.year)
	}

	out := make([]record.Serum, 0, hi-lo)
	for i := lo; i < hi; i++ {
		if prefixed && pq.hasYear && sec.At(i).Year() != pq.year {
			continue
		}
		out = append(out, sec.At(i))
	}

	return out, nil
}

// HomologousSera returns every serum whose stored homologous-antigen list
// contains antigenIndex and whose (location, isolation, year) match the
// antigen's own, per spec §4.3 "Homologous serum resolution". location,
// isolation and year are the antigen's own fields, so the search can narrow
// to the matching run before checking the homologous list, rather than
// scanning every serum; an empty year does not narrow.
func (e *Engine) HomologousSera(antigenIndex uint32, location, isolation, year string) []record.Serum {
	location = e.normalizeLocation(location)

	sec := e.db.Sera
	n := sec.Count()

	lo, hi := exactRange(0, n, func(i int) string { return string(sec.At(i).Location()) }, location)
	lo, hi = exactRange(lo, hi, func(i int) string { return string(sec.At(i).Isolation()) }, isolation)
	if year != "" {
		lo, hi = exactRange(lo, hi, func(i int) string { return sec.At(i).Year() }, year)
	}

	var out []record.Serum
	for i := lo; i < hi; i++ {
		s := sec.At(i)
		if s.HasHomologousAntigen(antigenIndex) {
			out = append(out, s)
		}
	}

	return out
}
