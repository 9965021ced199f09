package chart

// SimpleAntigen is a plain-struct Antigen, usable directly by tests and by
// hidb-make when no richer chart parser is wired in.
type SimpleAntigen struct {
	NameValue        string   `json:"name"`
	PassageValue     string   `json:"passage"`
	ReassortantValue string   `json:"reassortant"`
	AnnotationValues []string `json:"annotations"`
	DistinctValue    bool     `json:"distinct"`
	LineageValue     byte     `json:"lineage"`
	DateValues       []string `json:"dates"`
	LabIDValues      []string `json:"lab_ids"`
}

func (a SimpleAntigen) Name() string          { return a.NameValue }
func (a SimpleAntigen) Passage() string       { return a.PassageValue }
func (a SimpleAntigen) Reassortant() string   { return a.ReassortantValue }
func (a SimpleAntigen) Annotations() []string { return a.AnnotationValues }
func (a SimpleAntigen) Distinct() bool        { return a.DistinctValue }
func (a SimpleAntigen) Lineage() byte         { return a.LineageValue }
func (a SimpleAntigen) Dates() []string       { return a.DateValues }
func (a SimpleAntigen) LabIDs() []string      { return a.LabIDValues }

var _ Antigen = SimpleAntigen{}

// SimpleSerum is a plain-struct Serum.
type SimpleSerum struct {
	NameValue                   string   `json:"name"`
	PassageValue                string   `json:"passage"`
	ReassortantValue            string   `json:"reassortant"`
	AnnotationValues            []string `json:"annotations"`
	DistinctValue               bool     `json:"distinct"`
	SerumIDValue                string   `json:"serum_id"`
	SerumSpeciesValue           string   `json:"serum_species"`
	LineageValue                byte     `json:"lineage"`
	HomologousAntigenNameValue  string   `json:"homologous_antigen"`
}

func (s SimpleSerum) Name() string                 { return s.NameValue }
func (s SimpleSerum) Passage() string               { return s.PassageValue }
func (s SimpleSerum) Reassortant() string           { return s.ReassortantValue }
func (s SimpleSerum) Annotations() []string         { return s.AnnotationValues }
func (s SimpleSerum) Distinct() bool                { return s.DistinctValue }
func (s SimpleSerum) SerumID() string               { return s.SerumIDValue }
func (s SimpleSerum) SerumSpecies() string          { return s.SerumSpeciesValue }
func (s SimpleSerum) Lineage() byte                 { return s.LineageValue }
func (s SimpleSerum) HomologousAntigenName() string { return s.HomologousAntigenNameValue }

var _ Serum = SimpleSerum{}

// SimpleTable is a plain-struct Table with a dense titer matrix, row-major
// by serum (TiterValues[serumIdx][antigenIdx]).
type SimpleTable struct {
	VirusValue      string          `json:"virus"`
	VirusTypeValue  string          `json:"virus_type"`
	SubsetValue     string          `json:"subset"`
	LineageValue    byte            `json:"lineage"`
	AssayValue      string          `json:"assay"`
	LabValue        string          `json:"lab"`
	RBCValue        string          `json:"rbc"`
	DateValue       string          `json:"date"`
	AntigenValues   []SimpleAntigen `json:"antigens"`
	SerumValues     []SimpleSerum   `json:"sera"`
	TiterValues     [][]string      `json:"titers"`
}

func (t SimpleTable) Virus() string     { return t.VirusValue }
func (t SimpleTable) VirusType() string { return t.VirusTypeValue }
func (t SimpleTable) Subset() string    { return t.SubsetValue }
func (t SimpleTable) Lineage() byte     { return t.LineageValue }
func (t SimpleTable) Assay() string     { return t.AssayValue }
func (t SimpleTable) Lab() string       { return t.LabValue }
func (t SimpleTable) RBC() string       { return t.RBCValue }
func (t SimpleTable) Date() string      { return t.DateValue }

func (t SimpleTable) Antigens() []Antigen {
	out := make([]Antigen, len(t.AntigenValues))
	for i, a := range t.AntigenValues {
		out[i] = a
	}

	return out
}

func (t SimpleTable) Sera() []Serum {
	out := make([]Serum, len(t.SerumValues))
	for i, s := range t.SerumValues {
		out[i] = s
	}

	return out
}

func (t SimpleTable) Titer(antigenIdx, serumIdx int) string {
	if serumIdx < 0 || serumIdx >= len(t.TiterValues) {
		return ""
	}
	row := t.TiterValues[serumIdx]
	if antigenIdx < 0 || antigenIdx >= len(row) {
		return ""
	}

	return row[antigenIdx]
}

var _ Table = SimpleTable{}
