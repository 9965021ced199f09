package query_test

import (
	"bytes"
	"testing"

	"github.com/acorg/hidb5/build"
	"github.com/acorg/hidb5/chart"
	"github.com/acorg/hidb5/hidb"
	"github.com/acorg/hidb5/query"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T, tbls ...chart.Table) *hidb.Database {
	t.Helper()

	b := build.New()
	for _, tbl := range tbls {
		require.NoError(t, b.Add(tbl))
	}

	var buf bytes.Buffer
	require.NoError(t, b.Save(&buf))

	db, err := hidb.Open(buf.Bytes())
	require.NoError(t, err)

	return db
}

func sampleTable() chart.SimpleTable {
	return chart.SimpleTable{
		VirusTypeValue: "A(H3N2)",
		AssayValue:     "HI",
		LabValue:       "CDC",
		RBCValue:       "TURKEY",
		DateValue:      "2019-03-01",
		AntigenValues: []chart.SimpleAntigen{
			{NameValue: "A(H3N2)/HUMAN/CALIFORNIA/71/2019"},
			{NameValue: "A(H3N2)/HUMAN/KANSAS/14/2017"},
		},
		SerumValues: []chart.SimpleSerum{
			{NameValue: "A(H3N2)/HUMAN/CALIFORNIA/71/2019", SerumSpeciesValue: "FERRET",
				HomologousAntigenNameValue: "A(H3N2)/HUMAN/CALIFORNIA/71/2019"},
		},
		TiterValues: [][]string{{"40", "1280"}},
	}
}

func TestFindAntigensExactMatch(t *testing.T) {
	r := require.New(t)

	db := openTestDB(t, sampleTable())
	e := query.New(db)

	found, err := e.FindAntigens("A(H3N2)/HUMAN/CALIFORNIA/71/2019")
	r.NoError(err)
	r.Len(found, 1)
	r.Equal("CALIFORNIA", string(found[0].Location()))
}

func TestFindAntigensFuzzyPrefixFallback(t *testing.T) {
	r := require.New(t)

	db := openTestDB(t, sampleTable())
	e := query.New(db, query.WithFuzzy())

	// "71" isn't an exact isolation match for "7", but shares its prefix.
	found, err := e.FindAntigens("CALIFORNIA/7")
	r.NoError(err)
	r.Len(found, 1)
}

func TestHomologousSera(t *testing.T) {
	r := require.New(t)

	db := openTestDB(t, sampleTable())
	e := query.New(db)

	antigen := db.Antigens.At(0) // CALIFORNIA sorts first
	r.Equal("CALIFORNIA", string(antigen.Location()))

	idx, ok := e.AntigenIndex(antigen)
	r.True(ok)

	sera := e.HomologousSera(idx, string(antigen.Location()), string(antigen.Isolation()), antigen.Year())
	r.Len(sera, 1)
	r.Equal("FERRET", string(sera[0].SerumSpecies()))
}

func TestGroupTablesAndMostRecent(t *testing.T) {
	r := require.New(t)

	older := sampleTable()
	older.DateValue = "2018-01-01"

	newer := sampleTable()
	newer.DateValue = "2019-06-01"

	db := openTestDB(t, older, newer)
	e := query.New(db)

	all := make([]uint32, db.Tables.Count())
	for i := range all {
		all[i] = uint32(i)
	}

	groups := e.GroupTables(all, query.RecentFirst)
	r.Len(groups, 1) // same (lab, assay, rbc) for both
	r.Len(groups[0].Tables, 2)
	r.Equal("2019-06-01", string(groups[0].Tables[0].Date())) // recent first

	recent, ok := e.MostRecentTable(all)
	r.True(ok)
	r.Equal("2019-06-01", string(recent.Date()))

	oldest, ok := e.OldestTable(all)
	r.True(ok)
	r.Equal("2018-01-01", string(oldest.Date()))
}

func TestFindMatchingAntigenPassageStrictness(t *testing.T) {
	r := require.New(t)

	tbl := sampleTable()
	tbl.AntigenValues[0].PassageValue = "MDCK2"

	db := openTestDB(t, tbl)
	e := query.New(db)

	// Chart-side query antigen carries no passage at all.
	ca := chart.SimpleAntigen{NameValue: "A(H3N2)/HUMAN/CALIFORNIA/71/2019"}

	_, ok := e.FindMatchingAntigen(ca, query.PassageStrict)
	r.False(ok, "stored passage is MDCK2, query passage is empty -- strict mode must not match")

	match, ok := e.FindMatchingAntigen(ca, query.PassageIgnoreIfEmptyInQuery)
	r.True(ok, "an empty query passage should be ignored in this mode")
	r.Equal("CALIFORNIA", string(match.Location()))
}
