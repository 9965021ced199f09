package record

import (
	"github.com/acorg/hidb5/internal/bin"
	"github.com/acorg/hidb5/internal/endian"
)

// Antigen is a zero-copy handle to one antigen record inside a container's
// byte buffer. It is a value type: copying it copies only the (buf, offset)
// pair, never the underlying bytes.
type Antigen struct {
	buf    []byte
	offset int // absolute byte offset of the record's fixed prefix
}

// NewAntigen wraps a record's absolute byte offset within buf.
func NewAntigen(buf []byte, offset int) Antigen {
	return Antigen{buf: buf, offset: offset}
}

func (a Antigen) prefix() bin.AntigenPrefix {
	p, _ := bin.ParseAntigenPrefix(a.buf[a.offset : a.offset+bin.AntigenPrefixSize])
	return p
}

func (a Antigen) payload() []byte {
	return a.buf[a.offset+bin.AntigenPrefixSize:]
}

// Host returns the antigen's host field.
func (a Antigen) Host() []byte {
	p := a.prefix()
	return a.payload()[0:p.LocationOffset]
}

// Location returns the antigen's location field.
func (a Antigen) Location() []byte {
	p := a.prefix()
	return a.payload()[p.LocationOffset:p.IsolationOffset]
}

// Isolation returns the antigen's isolation field.
func (a Antigen) Isolation() []byte {
	p := a.prefix()
	return a.payload()[p.IsolationOffset:p.PassageOffset]
}

// Passage returns the antigen's passage field.
func (a Antigen) Passage() []byte {
	p := a.prefix()
	return a.payload()[p.PassageOffset:p.ReassortantOffset]
}

// Reassortant returns the antigen's reassortant field.
func (a Antigen) Reassortant() []byte {
	p := a.prefix()
	return a.payload()[p.ReassortantOffset:p.AnnotationOffset[0]]
}

// Annotations returns the non-empty annotation slices (spec §4.1: "iterate
// the three annotation slices and emit only non-empty entries").
func (a Antigen) Annotations() [][]byte {
	p := a.prefix()
	payload := a.payload()
	bounds := [4]uint8{p.AnnotationOffset[0], p.AnnotationOffset[1], p.AnnotationOffset[2], p.LabIDOffset[0]}

	out := make([][]byte, 0, 3)
	for i := 0; i < 3; i++ {
		s := payload[bounds[i]:bounds[i+1]]
		if len(s) > 0 {
			out = append(out, s)
		}
	}

	return out
}

// LabIDs returns the non-empty lab-id slices, NUL-trimmed.
func (a Antigen) LabIDs() [][]byte {
	p := a.prefix()
	payload := a.payload()
	bounds := [6]uint8{
		p.LabIDOffset[0], p.LabIDOffset[1], p.LabIDOffset[2],
		p.LabIDOffset[3], p.LabIDOffset[4], p.DateOffset,
	}

	out := make([][]byte, 0, 5)
	for i := 0; i < 5; i++ {
		s := bin.TrimNUL(payload[bounds[i]:bounds[i+1]])
		if len(s) > 0 {
			out = append(out, s)
		}
	}

	return out
}

// HasLabID reports whether the given lab id string appears in the antigen's
// lab-id set.
func (a Antigen) HasLabID(id string) bool {
	for _, l := range a.LabIDs() {
		if string(l) == id {
			return true
		}
	}

	return false
}

// Dates returns the antigen's raw YYYYMMDD date integers, in the order they
// were stored (ascending, since the builder maintains a sorted date set).
func (a Antigen) Dates() []uint32 {
	p := a.prefix()
	if p.DateOffset == p.TableIndexOffset {
		return nil
	}

	payload := a.payload()
	engine := endian.Little()
	n := (int(p.TableIndexOffset) - int(p.DateOffset)) / 4
	dates := make([]uint32, n)
	for i := range dates {
		off := int(p.DateOffset) + i*4
		dates[i] = engine.Uint32(payload[off : off+4])
	}

	return dates
}

// Year returns the antigen's year as a 4-character string, or "" if the
// antigen carries no year (spec §4.1 "Year").
func (a Antigen) Year() string {
	p := a.prefix()
	if !p.HasYear() {
		return ""
	}

	return string(p.YearData[:])
}

// Lineage returns the antigen's lineage character (only meaningful for B).
func (a Antigen) Lineage() byte {
	return a.prefix().Lineage
}

// Tables returns the section indices of the tables this antigen appears in.
func (a Antigen) Tables() []uint32 {
	p := a.prefix()
	payload := a.payload()
	engine := endian.Little()

	countOff := int(p.TableIndexOffset)
	count := int(engine.Uint32(payload[countOff : countOff+4]))
	indices := make([]uint32, count)
	base := countOff + 4
	for i := range indices {
		off := base + i*4
		indices[i] = engine.Uint32(payload[off : off+4])
	}

	return indices
}

// BareName returns the antigen's name without the leading virus type, per
// spec §4.1's name composition rule.
func (a Antigen) BareName() string {
	return BareName(string(a.Host()), string(a.Location()), string(a.Isolation()), a.Year())
}
