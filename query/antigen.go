package query

import "github.com/acorg/hidb5/record"

// FindAntigens searches the antigen section for a free-form query string
// (spec §4.3 "Exact / prefix search"). The query is parsed per §4.3's
// fallback chain; location is lower-bounded first, then isolation (falling
// back to a prefix match within fuzzy mode if the exact filter is empty),
// then year. Results are returned in section order, which spec §5
// guarantees is stable identity order.
func (e *Engine) FindAntigens(query string) ([]record.Antigen, error) {
	pq, ok := e.parseQuery(query)
	if !ok {
		return nil, nil
	}

	pq.location = e.normalizeLocation(pq.location)

	sec := e.db.Antigens
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

	// Years are only sorted within one exact isolation, so a prefix run is
	// filtered by year record by record instead of by lower bound.
	if pq.hasYear && !prefixed {
		lo, hi = exactRange(lo, hi, func(i int) string { return sec.At(i).Year() }, pq.year)
	}

	out := make([]record.Antigen, 0, hi-lo)
	for i := lo; i < hi; i++ {
		if prefixed && pq.hasYear && sec.At(i).Year() != pq.year {
			continue
		}
		out = append(out, sec.At(i))
	}

	return out, nil
}

// FindLabID scans the antigen section for antigens whose lab-id set
// contains id (spec §4.3 "Lab-id search"). If id has no "#" the engine
// probes, in order, "CDC#id", "MELB#id", "NIID#id", and finally the literal
// id itself, returning the first probe with any match.
func (e *Engine) FindLabID(id string) []record.Antigen {
	for _, candidate := range labIDCandidates(id) {
		matches := e.scanLabID(candidate)
		if len(matches) > 0 {
			return matches
		}
	}

	return nil
}

func (e *Engine) scanLabID(id string) []record.Antigen {
	sec := e.db.Antigens
	var out []record.Antigen
	for i := 0; i < sec.Count(); i++ {
		a := sec.At(i)
		if a.HasLabID(id) {
			out = append(out, a)
		}
	}

	return out
}

func labIDCandidates(id string) []string {
	for _, c := range id {
		if c == '#' {
			return []string{id}
		}
	}

	return []string{"CDC#" + id, "MELB#" + id, "NIID#" + id, id}
}

// DateRange returns every antigen whose raw date falls in the half-open
// interval [first, afterLast) (spec §4.3 "Date range"). Empty bounds
// default to record.MinDate/record.MaxDate.
func (e *Engine) DateRange(first, afterLast uint32) []record.Antigen {
	if first == 0 {
		first = record.MinDate
	}
	if afterLast == 0 {
		afterLast = record.MaxDate
	}

	sec := e.db.Antigens
	var out []record.Antigen
	for i := 0; i < sec.Count(); i++ {
		a := sec.At(i)
		for _, d := range a.Dates() {
			if d >= first && d < afterLast {
				out = append(out, a)
				break
			}
		}
	}

	return out
}
