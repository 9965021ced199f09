package query

import (
	"regexp"
	"strings"
)

// cdcShortForm matches the CDC-style "LL ISO" query form (spec §4.3): a
// bare two-letter location, a single space, and the rest as isolation. This
// is deliberately narrower than build's cdcShortForm (which also accepts a
// hyphen separator and a trailing "/YEAR") -- the query-time fallback chain
// is its own, spec-specified sequence, not a reuse of the builder's.
var cdcShortForm = regexp.MustCompile(`^([A-Z]{2}) (.+)$`)

// parsedQuery is what a search needs out of a free-form query string:
// which of location/isolation/year were actually specified, so the caller
// narrows the section only on fields the query named.
type parsedQuery struct {
	host         string
	location     string
	isolation    string
	year         string
	hasIsolation bool
	hasYear      bool
}

// parseQuery decomposes q per spec §4.3's fallback chain: the generic
// virus-name grammar first, then the CDC short form, then a plain slash
// split (1 token -> location only, 2 -> location/isolation, 3 ->
// host/location/isolation, more -> warn and skip).
func (e *Engine) parseQuery(q string) (parsedQuery, bool) {
	if parts, err := e.splitter.Split(q); err == nil {
		return parsedQuery{
			host:         parts.Host,
			location:     parts.Location,
			isolation:    parts.Isolation,
			year:         parts.Year,
			hasIsolation: parts.Isolation != "",
			hasYear:      parts.Year != "",
		}, true
	}

	if m := cdcShortForm.FindStringSubmatch(q); m != nil {
		return parsedQuery{location: m[1], isolation: m[2], hasIsolation: true}, true
	}

	fields := strings.Split(q, "/")
	switch len(fields) {
	case 1:
		return parsedQuery{location: fields[0]}, true
	case 2:
		return parsedQuery{location: fields[0], isolation: fields[1], hasIsolation: true}, true
	case 3:
		return parsedQuery{host: fields[0], location: fields[1], isolation: fields[2], hasIsolation: true}, true
	default:
		e.logf("query: %q does not match any recognized name form, skipping", q)
		return parsedQuery{}, false
	}
}

// normalizeLocation runs loc through the configured location database, if
// any (spec §4.3: "Callers may request location normalization"). Errors
// from the external DB are not fatal to the search -- the raw token is
// used unchanged.
func (e *Engine) normalizeLocation(loc string) string {
	if e.locDB == nil || loc == "" {
		return loc
	}

	canon, err := e.locDB.Find(loc)
	if err != nil {
		return loc
	}

	return canon
}
