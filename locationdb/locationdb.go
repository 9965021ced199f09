// Package locationdb is the narrow interface hidb5 uses for the location
// database (spec §1, §6): resolving a raw chart location token (which may
// be a CDC abbreviation) to its canonical name, and mapping a canonical
// location to its country/continent. This is an external collaborator --
// the real geographic data lives outside this module. DB is the contract
// query.WithLocationNormalize and the hidb5-stat and hidb5-first-table-date
// commands consume; Static is a
// minimal in-memory reference implementation for tests and small
// deployments.
package locationdb

// DB resolves location tokens.
type DB interface {
	// Find resolves token (possibly a CDC two-letter abbreviation like
	// "CA") to its canonical location name. Returns token unchanged if it
	// is not recognized.
	Find(token string) (string, error)
	// Country returns the country containing location.
	Country(location string) (string, error)
	// Continent returns the continent containing location.
	Continent(location string) (string, error)
}

// Static is a small map-backed DB, sufficient for tests and for
// deployments with a fixed, short location list.
type Static struct {
	Canonical  map[string]string // abbreviation/alias -> canonical name
	Countries  map[string]string // canonical name -> country
	Continents map[string]string // country -> continent
}

// NewStatic creates an empty Static location database.
func NewStatic() *Static {
	return &Static{
		Canonical:  make(map[string]string),
		Countries:  make(map[string]string),
		Continents: make(map[string]string),
	}
}

// Find implements DB.
func (s *Static) Find(token string) (string, error) {
	if canon, ok := s.Canonical[token]; ok {
		return canon, nil
	}

	return token, nil
}

// Country implements DB.
func (s *Static) Country(location string) (string, error) {
	return s.Countries[location], nil
}

// Continent implements DB.
func (s *Static) Continent(location string) (string, error) {
	country := s.Countries[location]
	return s.Continents[country], nil
}

var _ DB = (*Static)(nil)
