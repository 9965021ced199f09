// Package chart defines the narrow interfaces hidb5's builder consumes from
// the chart parser (spec §1, §6: "chart parsing ... provides antigen/serum/
// titer iterators and a virus-type/lineage string" -- an external
// collaborator, not part of the core).
//
// The interfaces are deliberately small: the builder only ever asks a chart
// for its identity fields and its titer matrix. A production deployment
// wires its own parser (Lispmds/ACMACS chart format, etc.) behind these
// interfaces; Simple* below is a JSON-backed reference implementation used
// by this repository's own tests and by the hidb-make CLI when no richer
// parser is configured.
package chart

// Antigen is one antigen reagent as observed in a chart.
type Antigen interface {
	// Name is the raw chart name, e.g. "A(H3N2)/ALGERIA/1/2019" or a CDC
	// short form like "CA 7/2017".
	Name() string
	Passage() string
	Reassortant() string
	// Annotations are the antigen's real annotations (at most 3 are ever
	// stored; the "distinct" marker is reported separately via Distinct,
	// never included here).
	Annotations() []string
	// Distinct reports whether this antigen carries the chart's "distinct"
	// flag, meaning it must never be indexed (spec §4.2 step 2, GLOSSARY).
	Distinct() bool
	Lineage() byte
	// Dates are the ISO-like dates (YYYYMMDD or YYYY-MM-DD) this antigen
	// was observed on.
	Dates() []string
	LabIDs() []string
}

// Serum is one serum reagent as observed in a chart.
type Serum interface {
	Name() string
	Passage() string
	Reassortant() string
	Annotations() []string
	Distinct() bool
	SerumID() string
	SerumSpecies() string
	Lineage() byte
	// HomologousAntigenName is the name of the antigen this serum was
	// raised against, if the chart records that relationship, or "" if
	// not. Used to populate Serum.HomologousAntigens during build (spec
	// §9 Open Question: homologous lists must be populated, not left
	// empty).
	HomologousAntigenName() string
}

// Table is one assay table (antigens x sera -> titers) as observed in a
// chart, plus the table-level identity fields spec §3 "Table" names.
type Table interface {
	Virus() string
	VirusType() string
	Subset() string
	Lineage() byte
	Assay() string
	Lab() string
	RBC() string
	Date() string
	Antigens() []Antigen
	Sera() []Serum
	// Titer returns the raw titer string for the antigen at column
	// antigenIdx and the serum at row serumIdx (indices into the slices
	// returned by Antigens/Sera, not hidb5 section indices).
	Titer(antigenIdx, serumIdx int) string
}
