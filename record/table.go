package record

import (
	"github.com/acorg/hidb5/internal/bin"
	"github.com/acorg/hidb5/internal/endian"
)

// Table is a zero-copy handle to one assay table record inside a
// container's byte buffer.
type Table struct {
	buf    []byte
	offset int
}

// NewTable wraps a record's absolute byte offset within buf.
func NewTable(buf []byte, offset int) Table {
	return Table{buf: buf, offset: offset}
}

func (t Table) prefix() bin.TablePrefix {
	p, _ := bin.ParseTablePrefix(t.buf[t.offset : t.offset+bin.TablePrefixSize])
	return p
}

func (t Table) payload() []byte {
	return t.buf[t.offset+bin.TablePrefixSize:]
}

// Assay returns the table's assay field (e.g. "HI", "FOCUS-REDUCTION").
func (t Table) Assay() []byte {
	p := t.prefix()
	return t.payload()[0:p.DateOffset]
}

// Date returns the table's raw date field, NUL-trimmed, in whatever form it
// was stored (YYYYMMDD or YYYY-MM-DD, per the chart source).
func (t Table) Date() []byte {
	p := t.prefix()
	return bin.TrimNUL(t.payload()[p.DateOffset:p.LabOffset])
}

// Lab returns the table's lab field, NUL-trimmed.
func (t Table) Lab() []byte {
	p := t.prefix()
	return bin.TrimNUL(t.payload()[p.LabOffset:p.RBCOffset])
}

// RBC returns the table's rbc species field, NUL-trimmed.
func (t Table) RBC() []byte {
	p := t.prefix()
	return bin.TrimNUL(t.payload()[p.RBCOffset:p.AntigenIndexOffset])
}

// Lineage returns the table's lineage character.
func (t Table) Lineage() byte {
	return t.prefix().Lineage
}

// AntigenIndices returns the section indices of the antigens in this table,
// in column order.
func (t Table) AntigenIndices() []uint32 {
	p := t.prefix()
	n := (int(p.SerumIndexOffset) - int(p.AntigenIndexOffset)) / 4
	return t.readIndices(int(p.AntigenIndexOffset), n)
}

// SerumIndices returns the section indices of the sera in this table, in
// row order.
func (t Table) SerumIndices() []uint32 {
	p := t.prefix()
	n := (int(p.TiterOffset) - int(p.SerumIndexOffset)) / 4
	return t.readIndices(int(p.SerumIndexOffset), n)
}

func (t Table) readIndices(off, n int) []uint32 {
	payload := t.payload()
	engine := endian.Little()

	out := make([]uint32, n)
	for i := range out {
		o := off + i*4
		out[i] = engine.Uint32(payload[o : o+4])
	}

	return out
}

// titerWidth is the fixed byte width of every cell in this table's titer
// matrix, the longest raw titer string across all antigens x sera.
func (t Table) titerWidth() int {
	p := t.prefix()
	return int(t.payload()[p.TiterOffset])
}

// Titer returns the raw (NUL-trimmed) titer string for the given
// antigen/serum column/row index within this table (not section indices --
// positions within AntigenIndices()/SerumIndices()).
func (t Table) Titer(antigenPos, serumPos int) []byte {
	p := t.prefix()
	width := t.titerWidth()
	numSerum := (int(p.TiterOffset) - int(p.SerumIndexOffset)) / 4

	cellsStart := int(p.TiterOffset) + 1
	idx := antigenPos*numSerum + serumPos
	off := cellsStart + idx*width

	return bin.TrimNUL(t.payload()[off : off+width])
}
