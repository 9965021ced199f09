package build

import "strings"

// minDate and maxDate bound the half-open date range spec §3 requires every
// stored date to fall in: [10000101, 30000101). Duplicated from
// record.MinDate/MaxDate rather than imported, since build has no other
// reason to depend on record.
const (
	minDate = 10000101
	maxDate = 30000101
)

// parseDate converts a chart date string, in either YYYYMMDD or YYYY-MM-DD
// form, into the YYYYMMDD integer the binary container stores (spec §3,
// §4.1), reporting whether s was well-formed.
func parseDate(s string) (uint32, bool) {
	s = strings.ReplaceAll(s, "-", "")
	if len(s) != 8 {
		return 0, false
	}

	var n uint32
	for i := 0; i < 8; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + uint32(c-'0')
	}

	return n, true
}

// parseDateUint32 is parseDate without the ok flag, for call sites that
// only ever see dates validateAntigen has already accepted (spec §7:
// InvalidDate is fatal at Add time, so by the time finalize/encode walk a
// record's date set, every entry is known well-formed).
func parseDateUint32(s string) uint32 {
	n, _ := parseDate(s)
	return n
}

// validDate reports whether s parses as YYYYMMDD/YYYY-MM-DD and falls in
// spec §3's required [10000101, 30000101) range.
func validDate(s string) bool {
	n, ok := parseDate(s)
	return ok && n >= minDate && n < maxDate
}
