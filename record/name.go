package record

// isCDCShortLocation reports whether location looks like a bare CDC
// two-letter location abbreviation (e.g. "CA", "TX"), the shape spec §4.1
// uses to decide between the generic and CDC-style bare name. The location
// database itself (spec §6, external collaborator) is what resolves such an
// abbreviation to a canonical name; here we only need to recognize its
// shape to choose a formatting branch.
func isCDCShortLocation(location string) bool {
	if len(location) != 2 {
		return false
	}

	for _, c := range location {
		if c < 'A' || c > 'Z' {
			return false
		}
	}

	return true
}

// BareName composes the "bare" antigen/serum name spec §4.1 describes:
// host/location/isolation/year, except when host is empty and location is a
// bare CDC two-letter form, in which case it is "LOC ISOLATION". The caller
// (the database's consumer) is responsible for prepending the virus type.
func BareName(host, location, isolation, year string) string {
	if host == "" && isCDCShortLocation(location) {
		return location + " " + isolation
	}

	name := host + "/" + location + "/" + isolation
	if year != "" {
		name += "/" + year
	}

	return name
}
