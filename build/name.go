package build

import (
	"regexp"
	"strings"
)

// cdcShortForm matches the CDC short name grammar spec §4.2 step 3
// describes as the fallback when the generic VT/HOST/LOC/ISO/YEAR grammar
// does not match: a bare two-letter location, a separator (space or
// hyphen), and an isolation that may carry a trailing "/YEAR".
var cdcShortForm = regexp.MustCompile(`^([A-Z]{2})[ \-](.+)$`)

var yearLike = regexp.MustCompile(`^\d{4}$`)

// splitCDCShortForm decomposes name per the CDC short grammar. ok is false
// if name does not match at all.
func splitCDCShortForm(name string) (location, isolation, year string, ok bool) {
	m := cdcShortForm.FindStringSubmatch(name)
	if m == nil {
		return "", "", "", false
	}

	location = m[1]
	rest := m[2]

	if idx := strings.LastIndex(rest, "/"); idx >= 0 {
		maybeYear := rest[idx+1:]
		if yearLike.MatchString(maybeYear) {
			return location, rest[:idx], maybeYear, true
		}
	}

	return location, rest, "", true
}

// parsedName is the host/location/isolation/year decomposition the builder
// needs out of a chart name, regardless of which grammar produced it.
type parsedName struct {
	virusType string
	host      string
	location  string
	isolation string
	year      string
}

// parseName tries the configured generic splitter first, per spec §4.2 step
// 3 ("Chart names that fail the generic grammar fall back to the CDC short
// form"), then the CDC short form, using tableVirusType when the CDC branch
// yields no virus type of its own (the CDC form never embeds one). It
// returns ok=false, matching neither, when the antigen/serum name is
// unrecognized by either grammar -- the caller turns that into
// errs.ErrUnrecognizedName.
func (b *Builder) parseName(name, tableVirusType string) (parsedName, bool) {
	if parts, err := b.splitter.Split(name); err == nil {
		return parsedName{
			virusType: parts.VirusType,
			host:      parts.Host,
			location:  parts.Location,
			isolation: parts.Isolation,
			year:      parts.Year,
		}, true
	}

	if location, isolation, year, ok := splitCDCShortForm(name); ok {
		return parsedName{
			virusType: tableVirusType,
			host:      "",
			location:  location,
			isolation: isolation,
			year:      year,
		}, true
	}

	return parsedName{}, false
}
