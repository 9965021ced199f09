// Package vaccine joins a chart's antigens against an opened database to
// classify vaccine candidates into egg/cell/reassortant buckets with their
// homologous sera, per spec §4.5. Grounded on the original source's
// hidb::vaccines()/hidb::Vaccines (original_source/cc/vaccines.cc,
// vaccines.hh): for each WHO CC vaccine name, find matching chart antigens,
// look each up in the database with passage-strictness
// "ignore-if-empty-in-query", resolve homologous sera, and sort every
// bucket by (number_of_tables descending, most_recent_table.date
// descending) -- sera additionally demoting species "SHEEP" (NIMR
// artefact noted in the original comment: "avoid using sheep serum as
// homologous").
package vaccine

import (
	"sort"
	"strings"

	"github.com/acorg/hidb5/chart"
	"github.com/acorg/hidb5/query"
	"github.com/acorg/hidb5/record"
	"github.com/acorg/hidb5/whocc"
)

// Bucket is one of the three passage classifications spec §4.5 names.
type Bucket int

const (
	BucketEgg Bucket = iota
	BucketCell
	BucketReassortant
)

// HomologousSerumCandidate pairs a chart serum with its matched database
// record and that record's most recent table.
type HomologousSerumCandidate struct {
	ChartSerumIndex int
	ChartSerum      chart.Serum
	DBSerum         record.Serum
	MostRecentTable record.Table
}

// Candidate is one matched vaccine antigen, with its homologous sera
// already sorted.
type Candidate struct {
	ChartAntigenIndex int
	ChartAntigen      chart.Antigen
	DBAntigen         record.Antigen
	MostRecentTable   record.Table
	HomologousSera    []HomologousSerumCandidate
}

// VaccineSet is one WHO CC vaccine name's candidates, bucketed by passage
// classification.
type VaccineSet struct {
	Name     string
	Buckets  [3][]Candidate // indexed by Bucket
}

// Egg, Cell, and Reassortant expose a bucket by name, mirroring the
// original's Vaccines::egg()/cell()/reassortant() accessors.
func (v VaccineSet) Egg() []Candidate         { return v.Buckets[BucketEgg] }
func (v VaccineSet) Cell() []Candidate        { return v.Buckets[BucketCell] }
func (v VaccineSet) Reassortant() []Candidate { return v.Buckets[BucketReassortant] }

// Resolve finds, for every WHO CC vaccine name scoped to t's virus type and
// lineage, the chart antigens in t matching that name, their database
// record, and their homologous sera, and returns one VaccineSet per name.
func Resolve(t chart.Table, e *query.Engine, lister whocc.VaccineLister) ([]VaccineSet, error) {
	names, err := lister.VaccineNames(t.VirusType(), t.Lineage())
	if err != nil {
		return nil, err
	}

	antigens := t.Antigens()
	sera := t.Sera()

	sets := make([]VaccineSet, 0, len(names))
	for _, name := range names {
		set := VaccineSet{Name: name}

		for i, ca := range antigens {
			if !strings.Contains(ca.Name(), name) {
				continue
			}

			dbAntigen, ok := e.FindMatchingAntigen(ca, query.PassageIgnoreIfEmptyInQuery)
			if !ok {
				continue
			}

			antigenIdx, ok := e.AntigenIndex(dbAntigen)
			if !ok {
				continue
			}
			homologousRecords := e.HomologousSera(antigenIdx, string(dbAntigen.Location()), string(dbAntigen.Isolation()), dbAntigen.Year())

			var homologous []HomologousSerumCandidate
			for _, dbSerum := range homologousRecords {
				j, cs, ok := matchingChartSerum(sera, dbSerum)
				if !ok {
					continue
				}

				recent, _ := e.MostRecentTable(dbSerum.Tables())
				homologous = append(homologous, HomologousSerumCandidate{
					ChartSerumIndex: j,
					ChartSerum:      cs,
					DBSerum:         dbSerum,
					MostRecentTable: recent,
				})
			}

			sort.SliceStable(homologous, func(a, b int) bool { return lessHomologous(homologous[a], homologous[b]) })

			recent, _ := e.MostRecentTable(dbAntigen.Tables())
			set.Buckets[classify(ca.Reassortant(), ca.Passage())] = append(
				set.Buckets[classify(ca.Reassortant(), ca.Passage())],
				Candidate{
					ChartAntigenIndex: i,
					ChartAntigen:      ca,
					DBAntigen:         dbAntigen,
					MostRecentTable:   recent,
					HomologousSera:    homologous,
				},
			)
		}

		for b := range set.Buckets {
			bucket := set.Buckets[b]
			sort.SliceStable(bucket, func(i, j int) bool { return lessCandidate(bucket[i], bucket[j]) })
		}

		sets = append(sets, set)
	}

	return sets, nil
}

// matchingChartSerum finds the first chart serum among sera whose name
// contains dbSerum's bare name, the same name-containment rule Resolve uses
// to match chart antigens against a vaccine name.
func matchingChartSerum(sera []chart.Serum, dbSerum record.Serum) (int, chart.Serum, bool) {
	bare := record.BareName(string(dbSerum.Host()), string(dbSerum.Location()), string(dbSerum.Isolation()), dbSerum.Year())

	for j, cs := range sera {
		if strings.Contains(cs.Name(), bare) {
			return j, cs, true
		}
	}

	return 0, nil, false
}

// lessCandidate orders two candidates by (number_of_tables descending,
// most_recent_table.date descending), the original Entry::operator<.
func lessCandidate(a, b Candidate) bool {
	an, bn := len(a.DBAntigen.Tables()), len(b.DBAntigen.Tables())
	if an != bn {
		return an > bn
	}

	return tableDate(a.MostRecentTable) > tableDate(b.MostRecentTable)
}

// lessHomologous is the serum analogue, additionally demoting a "SHEEP"
// chart serum species to the end regardless of table count (the original's
// NIMR-artefact special case).
func lessHomologous(a, b HomologousSerumCandidate) bool {
	aSheep := strings.EqualFold(a.ChartSerum.SerumSpecies(), "SHEEP")
	bSheep := strings.EqualFold(b.ChartSerum.SerumSpecies(), "SHEEP")
	if aSheep != bSheep {
		return !aSheep
	}

	an, bn := len(a.DBSerum.Tables()), len(b.DBSerum.Tables())
	if an != bn {
		return an > bn
	}

	return tableDate(a.MostRecentTable) > tableDate(b.MostRecentTable)
}

func tableDate(t record.Table) uint32 {
	return parseDateUint32(string(t.Date()))
}

func classify(reassortant, passage string) Bucket {
	if reassortant != "" {
		return BucketReassortant
	}
	if isEggPassage(passage) {
		return BucketEgg
	}

	return BucketCell
}
