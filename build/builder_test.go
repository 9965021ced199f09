package build_test

import (
	"bytes"
	"testing"

	"github.com/acorg/hidb5/build"
	"github.com/acorg/hidb5/chart"
	"github.com/acorg/hidb5/hidb"
	"github.com/acorg/hidb5/internal/errs"
	"github.com/stretchr/testify/require"
)

func threeValentTable() chart.SimpleTable {
	return chart.SimpleTable{
		VirusValue:     "A(H3N2)",
		VirusTypeValue: "A(H3N2)",
		AssayValue:     "HI",
		LabValue:       "CDC",
		RBCValue:       "TURKEY",
		DateValue:      "2019-03-01",
		AntigenValues: []chart.SimpleAntigen{
			{NameValue: "A(H3N2)/HUMAN/CALIFORNIA/7/2019"},
			{NameValue: "A(H3N2)/HUMAN/KANSAS/14/2017"},
		},
		SerumValues: []chart.SimpleSerum{
			{NameValue: "A(H3N2)/HUMAN/CALIFORNIA/7/2019", SerumSpeciesValue: "FERRET"},
		},
		TiterValues: [][]string{{"40", "1280"}},
	}
}

func TestBuilderAddAndSaveRoundTrips(t *testing.T) {
	r := require.New(t)

	b := build.New()
	r.NoError(b.Add(threeValentTable()))

	var buf bytes.Buffer
	r.NoError(b.Save(&buf))

	db, err := hidb.Open(buf.Bytes())
	r.NoError(err)
	r.Equal("A(H3N2)", db.VirusType())
	r.Equal(2, db.Antigens.Count())
	r.Equal(1, db.Sera.Count())
	r.Equal(1, db.Tables.Count())

	// Antigens are stored sorted by identity tuple: CALIFORNIA < KANSAS.
	r.Equal("CALIFORNIA", string(db.Antigens.At(0).Location()))
	r.Equal("KANSAS", string(db.Antigens.At(1).Location()))

	table := db.Tables.At(0)
	r.Equal("HI", string(table.Assay()))
	r.Len(table.AntigenIndices(), 2)
	r.Len(table.SerumIndices(), 1)
}

func TestBuilderRejectsDuplicateTable(t *testing.T) {
	r := require.New(t)

	b := build.New()
	r.NoError(b.Add(threeValentTable()))

	err := b.Add(threeValentTable())
	r.ErrorIs(err, errs.ErrDuplicateTable)
}

func TestBuilderRejectsUnrecognizedAntigenName(t *testing.T) {
	r := require.New(t)

	tbl := threeValentTable()
	tbl.AntigenValues = []chart.SimpleAntigen{{NameValue: "not a recognizable name"}}

	b := build.New()
	err := b.Add(tbl)
	r.ErrorIs(err, errs.ErrUnrecognizedName)
}

func TestBuilderDistinctAntigenNeverIndexed(t *testing.T) {
	r := require.New(t)

	tbl := threeValentTable()
	tbl.AntigenValues = append(tbl.AntigenValues, chart.SimpleAntigen{
		NameValue:     "this is ignored entirely / not even parsed",
		DistinctValue: true,
	})
	tbl.TiterValues = [][]string{{"40", "1280", "160"}}

	b := build.New()
	r.NoError(b.Add(tbl))

	var buf bytes.Buffer
	r.NoError(b.Save(&buf))

	db, err := hidb.Open(buf.Bytes())
	r.NoError(err)
	r.Equal(2, db.Antigens.Count())

	table := db.Tables.At(0)
	r.Len(table.AntigenIndices(), 2)
}

func TestBuilderHomologousSerumPopulated(t *testing.T) {
	r := require.New(t)

	tbl := threeValentTable()
	tbl.SerumValues[0].HomologousAntigenNameValue = "A(H3N2)/HUMAN/CALIFORNIA/7/2019"

	b := build.New()
	r.NoError(b.Add(tbl))

	var buf bytes.Buffer
	r.NoError(b.Save(&buf))

	db, err := hidb.Open(buf.Bytes())
	r.NoError(err)

	serum := db.Sera.At(0)
	antigen := db.Antigens.At(0) // CALIFORNIA, the lower-sorted of the two
	idx, ok := db.Antigens.IndexOf(antigen)
	r.True(ok)
	r.True(serum.HasHomologousAntigen(uint32(idx)))
}
