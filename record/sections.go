package record

import "github.com/acorg/hidb5/internal/bin"

// Antigens is the antigen section: a sorted, indexable view over the
// antigen records in a container's byte buffer.
type Antigens struct {
	buf         []byte
	offsets     bin.OffsetTable
	recordsBase int // absolute offset where the records area starts
}

// NewAntigens builds an Antigens view starting at sectionOffset within buf.
func NewAntigens(buf []byte, sectionOffset int) (Antigens, error) {
	table, headerLen, err := bin.ParseOffsetTable(littleEndianEngine(), buf[sectionOffset:])
	if err != nil {
		return Antigens{}, err
	}

	return Antigens{buf: buf, offsets: table, recordsBase: sectionOffset + headerLen}, nil
}

// Count returns the number of antigen records in the section.
func (a Antigens) Count() int { return a.offsets.Count() }

// At returns the antigen at section index i.
func (a Antigens) At(i int) Antigen {
	start, _ := a.offsets.RecordBounds(i)
	return NewAntigen(a.buf, a.recordsBase+start)
}

// OffsetTable exposes the raw cumulative offset table for the query
// package's sorted lookups.
func (a Antigens) OffsetTable() bin.OffsetTable { return a.offsets }

// IndexOf returns rec's section index, by locating its byte offset (an
// antigen handle carries no index of its own -- spec §9's "lightweight
// handles (base pointer + record offset)") within the section's offset
// table. Used by the query package to resolve an antigen index for
// homologous-serum lookups after a name search has already located the
// antigen itself.
func (a Antigens) IndexOf(rec Antigen) (int, bool) {
	return a.offsets.IndexForOffset(uint32(rec.offset - a.recordsBase)) //nolint:gosec
}

// Sera is the serum section: a sorted, indexable view over the serum
// records in a container's byte buffer.
type Sera struct {
	buf         []byte
	offsets     bin.OffsetTable
	recordsBase int
}

// NewSera builds a Sera view starting at sectionOffset within buf.
func NewSera(buf []byte, sectionOffset int) (Sera, error) {
	table, headerLen, err := bin.ParseOffsetTable(littleEndianEngine(), buf[sectionOffset:])
	if err != nil {
		return Sera{}, err
	}

	return Sera{buf: buf, offsets: table, recordsBase: sectionOffset + headerLen}, nil
}

// Count returns the number of serum records in the section.
func (s Sera) Count() int { return s.offsets.Count() }

// At returns the serum at section index i.
func (s Sera) At(i int) Serum {
	start, _ := s.offsets.RecordBounds(i)
	return NewSerum(s.buf, s.recordsBase+start)
}

// OffsetTable exposes the raw cumulative offset table.
func (s Sera) OffsetTable() bin.OffsetTable { return s.offsets }

// Tables is the table section: an indexable view over the assay table
// records in a container's byte buffer.
type Tables struct {
	buf         []byte
	offsets     bin.OffsetTable
	recordsBase int
}

// NewTables builds a Tables view starting at sectionOffset within buf.
func NewTables(buf []byte, sectionOffset int) (Tables, error) {
	table, headerLen, err := bin.ParseOffsetTable(littleEndianEngine(), buf[sectionOffset:])
	if err != nil {
		return Tables{}, err
	}

	return Tables{buf: buf, offsets: table, recordsBase: sectionOffset + headerLen}, nil
}

// Count returns the number of table records in the section.
func (t Tables) Count() int { return t.offsets.Count() }

// At returns the table at section index i.
func (t Tables) At(i int) Table {
	start, _ := t.offsets.RecordBounds(i)
	return NewTable(t.buf, t.recordsBase+start)
}

// OffsetTable exposes the raw cumulative offset table.
func (t Tables) OffsetTable() bin.OffsetTable { return t.offsets }
