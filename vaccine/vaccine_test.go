package vaccine_test

import (
	"bytes"
	"testing"

	"github.com/acorg/hidb5/build"
	"github.com/acorg/hidb5/chart"
	"github.com/acorg/hidb5/hidb"
	"github.com/acorg/hidb5/query"
	"github.com/acorg/hidb5/vaccine"
	"github.com/acorg/hidb5/whocc"
	"github.com/stretchr/testify/require"
)

// buildTestDB runs one chart table through a Builder and opens the
// resulting container, so Resolve exercises the real binary-container read
// path rather than a hand-built fixture.
func buildTestDB(t *testing.T, table chart.Table) *hidb.Database {
	t.Helper()

	b := build.New()
	require.NoError(t, b.Add(table))

	var buf bytes.Buffer
	require.NoError(t, b.Save(&buf))

	db, err := hidb.Open(buf.Bytes())
	require.NoError(t, err)

	return db
}

func TestResolveClassifiesAndFindsHomologousSerum(t *testing.T) {
	r := require.New(t)

	antigen := chart.SimpleAntigen{NameValue: "A(H3N2)/HUMAN/CALIFORNIA/7/2019"}
	serum := chart.SimpleSerum{
		NameValue:                  "A(H3N2)/HUMAN/CALIFORNIA/7/2019",
		SerumSpeciesValue:          "FERRET",
		HomologousAntigenNameValue: "A(H3N2)/HUMAN/CALIFORNIA/7/2019",
	}

	tbl := chart.SimpleTable{
		VirusValue:     "A(H3N2)",
		VirusTypeValue: "A(H3N2)",
		AssayValue:     "HI",
		LabValue:       "CDC",
		RBCValue:       "TURKEY",
		DateValue:      "2019-03-01",
		AntigenValues:  []chart.SimpleAntigen{antigen},
		SerumValues:    []chart.SimpleSerum{serum},
		TiterValues:    [][]string{{"40"}},
	}

	db := buildTestDB(t, tbl)
	engine := query.New(db)

	lister := whocc.NewStatic()
	lister.Vaccines["A(H3N2)|\x00"] = []string{"CALIFORNIA/7/2019"}

	sets, err := vaccine.Resolve(tbl, engine, lister)
	r.NoError(err)
	r.Len(sets, 1)

	set := sets[0]
	r.Equal("CALIFORNIA/7/2019", set.Name)

	candidates := set.Cell()
	r.Len(candidates, 1)
	r.Equal("A(H3N2)/HUMAN/CALIFORNIA/7/2019", candidates[0].ChartAntigen.Name())
	r.Empty(set.Egg())
	r.Empty(set.Reassortant())

	r.Len(candidates[0].HomologousSera, 1)
	r.Equal("A(H3N2)/HUMAN/CALIFORNIA/7/2019", candidates[0].HomologousSera[0].ChartSerum.Name())
}

func TestResolveNoMatchingVaccineNameYieldsEmptyBuckets(t *testing.T) {
	r := require.New(t)

	antigen := chart.SimpleAntigen{NameValue: "A(H3N2)/HUMAN/TEXAS/1/2020"}
	tbl := chart.SimpleTable{
		VirusTypeValue: "A(H3N2)",
		AssayValue:     "HI",
		LabValue:       "CDC",
		RBCValue:       "TURKEY",
		DateValue:      "2020-01-01",
		AntigenValues:  []chart.SimpleAntigen{antigen},
		TiterValues:    [][]string{},
	}

	// A serum-less table would fail EmptyTableIndexList only if a serum is
	// referenced; with zero sera the antigen alone is fine as long as it has
	// at least one table, which Add always attaches.
	db := buildTestDB(t, tbl)
	engine := query.New(db)

	lister := whocc.NewStatic()
	lister.Vaccines["A(H3N2)|\x00"] = []string{"NOWHERE/99/1999"}

	sets, err := vaccine.Resolve(tbl, engine, lister)
	r.NoError(err)
	r.Len(sets, 1)
	r.Empty(sets[0].Egg())
	r.Empty(sets[0].Cell())
	r.Empty(sets[0].Reassortant())
}
