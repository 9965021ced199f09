package build

import "strings"

// arenaAntigen is one antigen's mutable build-time state, accumulated across
// every table that references it until Save projects it into its final,
// index-assigned, sorted form (spec §4.2 steps 1-3).
type arenaAntigen struct {
	virusType   string
	host        string
	location    string
	isolation   string
	year        string
	passage     string
	reassortant string
	annotations []string // at most 3, insertion order
	lineage     byte

	dates  map[string]struct{}
	labIDs map[string]struct{} // at most 5

	tables map[*arenaTable]struct{}

	index uint32 // assigned by Save, after sorting
}

// arenaSerum is one serum's mutable build-time state.
type arenaSerum struct {
	virusType   string
	host        string
	location    string
	isolation   string
	year        string
	passage     string
	reassortant string
	annotations []string
	lineage     byte

	serumID      string
	serumSpecies string

	homologousAntigenName string // raw chart name, resolved to an index at Save
	homologous            map[*arenaAntigen]struct{}

	tables map[*arenaTable]struct{}

	index uint32
}

// arenaTable is one assay table's build-time state. AntigenRefs/SerumRefs
// hold only the non-distinct columns/rows (spec §4.2 step 2: distinct
// antigens/sera are never indexed, so a table that references one simply
// omits that column/row from its own stored geometry); titers is the
// correspondingly filtered dense matrix, row-major by serum.
type arenaTable struct {
	virus     string
	virusType string
	subset    string
	lineage   byte
	assay     string
	lab       string
	rbc       string
	date      string

	antigenRefs []*arenaAntigen
	serumRefs   []*arenaSerum
	titers      [][]string // titers[serumPos][antigenPos]

	index uint32
}

func newArenaAntigen() *arenaAntigen {
	return &arenaAntigen{
		dates:  make(map[string]struct{}),
		labIDs: make(map[string]struct{}),
		tables: make(map[*arenaTable]struct{}),
	}
}

func newArenaSerum() *arenaSerum {
	return &arenaSerum{
		homologous: make(map[*arenaAntigen]struct{}),
		tables:     make(map[*arenaTable]struct{}),
	}
}

// sortedDates returns a's accumulated dates, each normalized to YYYYMMDD and
// lexically sorted (fixed-width digit strings sort in date order, and the
// same date seen as YYYYMMDD and as YYYY-MM-DD is kept once).
func (a *arenaAntigen) sortedDates() []string {
	compact := make(map[string]struct{}, len(a.dates))
	for d := range a.dates {
		compact[strings.ReplaceAll(d, "-", "")] = struct{}{}
	}

	return sortedStringSet(compact)
}

// sortedLabIDs returns a's accumulated lab ids in sorted order.
func (a *arenaAntigen) sortedLabIDs() []string {
	return sortedStringSet(a.labIDs)
}

// sortedTableIndices returns the section indices of every table a appears
// in, ascending (spec invariant: table index lists are sorted).
func (a *arenaAntigen) sortedTableIndices() []uint32 {
	return sortedTableSet(a.tables)
}

func (s *arenaSerum) sortedTableIndices() []uint32 {
	return sortedTableSet(s.tables)
}

// sortedHomologous returns s's homologous antigen section indices, ascending.
func (s *arenaSerum) sortedHomologous() []uint32 {
	out := make([]uint32, 0, len(s.homologous))
	for a := range s.homologous {
		out = append(out, a.index)
	}
	sortUint32(out)

	return out
}
