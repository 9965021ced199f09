// Package whocc is the narrow interface hidb5's vaccine resolver uses for
// the WHO Collaborating Centre vaccine table (spec §1, §6): the list of
// currently recommended vaccine strain names for a (virus_type, lineage)
// pair, and lab-name normalization. Both are external collaborators; this
// package defines the contract vaccine.Resolve consumes (VaccineLister),
// plus a map-backed Static implementation.
package whocc

// VaccineLister names the currently recommended vaccine strains for a given
// virus type and lineage.
type VaccineLister interface {
	VaccineNames(virusType string, lineage byte) ([]string, error)
}

// LabNameNormalizer canonicalizes a lab name as it appears in chart data
// (e.g. differing capitalization/abbreviations across labs).
type LabNameNormalizer interface {
	NormalizeLabName(lab string) string
}

// Static is a minimal map-backed VaccineLister/LabNameNormalizer for tests.
type Static struct {
	Vaccines map[string][]string // "virusType|lineage" -> names
	LabNames map[string]string
}

// NewStatic creates an empty Static table.
func NewStatic() *Static {
	return &Static{Vaccines: make(map[string][]string), LabNames: make(map[string]string)}
}

func key(virusType string, lineage byte) string {
	return virusType + "|" + string(lineage)
}

// VaccineNames implements VaccineLister.
func (s *Static) VaccineNames(virusType string, lineage byte) ([]string, error) {
	return s.Vaccines[key(virusType, lineage)], nil
}

// NormalizeLabName implements LabNameNormalizer.
func (s *Static) NormalizeLabName(lab string) string {
	if n, ok := s.LabNames[lab]; ok {
		return n
	}

	return lab
}

var (
	_ VaccineLister     = (*Static)(nil)
	_ LabNameNormalizer = (*Static)(nil)
)
