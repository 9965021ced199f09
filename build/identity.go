package build

import (
	"strings"

	"github.com/acorg/hidb5/internal/identity"
)

// antigenKey is the antigen identity tuple spec §3 names: virus type, host,
// location, isolation, year, annotations, reassortant, passage. Two chart
// antigens with the same key are the same antigen record.
func antigenKey(virusType, host, location, isolation, year string, annotations []string, reassortant, passage string) string {
	return identity.Key(virusType, host, location, isolation, year, strings.Join(annotations, "\x01"), reassortant, passage)
}

// serumKey is the serum identity tuple: virus type, host, location,
// isolation, year, annotations, reassortant, serum id.
func serumKey(virusType, host, location, isolation, year string, annotations []string, reassortant, serumID string) string {
	return identity.Key(virusType, host, location, isolation, year, strings.Join(annotations, "\x01"), reassortant, serumID)
}

// tableKey is the table identity tuple: virus, virus type, subset, lineage,
// assay, lab, rbc species, date. Two charts describing the same assay table
// collide here (spec §7: "Fatal for table identity" -> ErrDuplicateTable).
func tableKey(virus, virusType, subset string, lineage byte, assay, lab, rbc, date string) string {
	return identity.Key(virus, virusType, subset, string(lineage), assay, lab, rbc, date)
}
