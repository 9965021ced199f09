// Package intermediate is the "hidb-v5" JSON intermediate form a Builder
// projects its sorted, index-assigned antigens/sera/tables into
// (build.ToIntermediate), and that build.EncodeIntermediate writes out as a
// binary container (spec §4.2 step 3, §6 "JSON intermediate").
//
// Field names match the spec's single-letter keys exactly, except for one
// documented deviation: the source format reuses the key "s" for both a
// table's "subset" string and its serum-index array, which spec §9's first
// Open Question says not to guess at. Since the two can never coexist in a
// well-formed Go struct tag, this package keeps "s" for the serum index
// array (the field every decode-time invariant in spec §8 depends on) and
// encodes subset under the non-colliding key "subset". See DESIGN.md.
package intermediate

// Version is the intermediate format's version tag.
const Version = "hidb-v5"

// Root is the top-level JSON object.
type Root struct {
	Version string    `json:"  version"`
	A       []Antigen `json:"a"`
	S       []Serum   `json:"s"`
	T       []Table   `json:"t"`
}

// Antigen is one antigen in the intermediate form.
type Antigen struct {
	V string   `json:"V"`
	H string   `json:"H,omitempty"`
	O string   `json:"O"`
	I string   `json:"i"`
	Y string   `json:"y,omitempty"`
	L byte     `json:"L,omitempty"`
	P string   `json:"P,omitempty"`
	R string   `json:"R,omitempty"`
	A []string `json:"a,omitempty"`
	D []uint32 `json:"D,omitempty"`
	Lab []string `json:"l,omitempty"`
	T []uint32 `json:"T"`
}

// Serum is one serum in the intermediate form.
type Serum struct {
	V string   `json:"V"`
	H string   `json:"H,omitempty"`
	O string   `json:"O"`
	I string   `json:"i"`
	Y string   `json:"y,omitempty"`
	L byte     `json:"L,omitempty"`
	P string   `json:"P,omitempty"`
	R string   `json:"R,omitempty"`
	A []string `json:"a,omitempty"`
	SerumID      string   `json:"I,omitempty"`
	SerumSpecies string   `json:"s,omitempty"`
	Homologous   []uint32 `json:"h,omitempty"`
	T            []uint32 `json:"T"`
}

// Table is one assay table in the intermediate form.
type Table struct {
	Virus     string   `json:"v"`
	VirusType string   `json:"V"`
	Assay     string   `json:"A"`
	Date      string   `json:"D"`
	Lab       string   `json:"l"`
	RBC       string   `json:"r"`
	Subset    string   `json:"subset,omitempty"`
	Lineage   byte     `json:"L,omitempty"`
	Antigens  []uint32 `json:"a"`
	Sera      []uint32 `json:"s"`
	Titers    [][]string `json:"t"`
}
