package build

import (
	"sort"
	"strings"

	"github.com/acorg/hidb5/internal/errs"
	"github.com/acorg/hidb5/internal/identity"
)

// finalized holds the builder's antigens, sera, and tables in their final
// sorted, index-assigned order (spec §4.2 step 3: "indices are assigned
// only after full ingestion, immediately before serialization").
type finalized struct {
	antigens []*arenaAntigen
	sera     []*arenaSerum
	tables   []*arenaTable
}

// finalize sorts every record by its identity tuple, assigns ascending
// section indices, and resolves each serum's homologous-antigen name into
// the corresponding antigen pointer(s).
func (b *Builder) finalize() (finalized, error) {
	antigens := b.antigens.Values()
	sort.Slice(antigens, func(i, j int) bool { return antigenLess(antigens[i], antigens[j]) })
	for i, a := range antigens {
		a.index = uint32(i) //nolint:gosec
	}

	sera := b.sera.Values()
	sort.Slice(sera, func(i, j int) bool { return serumLess(sera[i], sera[j]) })
	for i, s := range sera {
		s.index = uint32(i) //nolint:gosec
	}

	tables := append([]*arenaTable(nil), b.tableList...)
	sort.Slice(tables, func(i, j int) bool { return tableLess(tables[i], tables[j]) })
	for i, t := range tables {
		t.index = uint32(i) //nolint:gosec
	}

	bareIndex := buildBareAntigenIndex(antigens)
	for _, s := range sera {
		if s.homologousAntigenName == "" {
			continue
		}

		for _, a := range b.resolveHomologous(s, bareIndex) {
			s.homologous[a] = struct{}{}
		}
	}

	for _, a := range antigens {
		if len(a.tables) == 0 {
			return finalized{}, errs.ErrEmptyTableIndexList
		}
	}
	for _, s := range sera {
		if len(s.tables) == 0 {
			return finalized{}, errs.ErrEmptyTableIndexList
		}
	}

	return finalized{antigens: antigens, sera: sera, tables: tables}, nil
}

// buildBareAntigenIndex groups antigens by their bare identity (virus type,
// host, location, isolation, year -- everything but annotations/passage/
// reassortant), the granularity a serum's recorded homologous antigen name
// is resolved at (spec §9 Open Question: homologous lists must be
// populated from whatever relation the chart records).
func buildBareAntigenIndex(antigens []*arenaAntigen) map[string][]*arenaAntigen {
	idx := make(map[string][]*arenaAntigen)
	for _, a := range antigens {
		key := identity.Key(a.virusType, a.host, a.location, a.isolation, a.year)
		idx[key] = append(idx[key], a)
	}

	return idx
}

func (b *Builder) resolveHomologous(s *arenaSerum, bareIndex map[string][]*arenaAntigen) []*arenaAntigen {
	name, ok := b.parseName(s.homologousAntigenName, s.virusType)
	if !ok {
		b.logf("build: homologous antigen name %q for serum %q unrecognized, skipping", s.homologousAntigenName, s.isolation)
		return nil
	}

	key := identity.Key(name.virusType, name.host, name.location, name.isolation, name.year)
	return bareIndex[key]
}

// antigenLess orders by the spec §3 identity key (location, isolation,
// year, host, annotations, reassortant, passage); virus_type is constant
// within a file so its position doesn't affect ordering and it is left out
// of the key entirely.
func antigenLess(a, b *arenaAntigen) bool {
	return compareTuples(
		[]string{a.location, a.isolation, a.year, a.host, strings.Join(a.annotations, " "), a.reassortant, a.passage},
		[]string{b.location, b.isolation, b.year, b.host, strings.Join(b.annotations, " "), b.reassortant, b.passage},
	)
}

func serumLess(a, b *arenaSerum) bool {
	return compareTuples(
		[]string{a.location, a.isolation, a.year, a.host, strings.Join(a.annotations, " "), a.reassortant, a.serumID},
		[]string{b.location, b.isolation, b.year, b.host, strings.Join(b.annotations, " "), b.reassortant, b.serumID},
	)
}

func tableLess(a, b *arenaTable) bool {
	return compareTuples(
		[]string{a.virus, a.virusType, a.subset, string(a.lineage), a.assay, a.lab, a.rbc, a.date},
		[]string{b.virus, b.virusType, b.subset, string(b.lineage), b.assay, b.lab, b.rbc, b.date},
	)
}

func compareTuples(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}
