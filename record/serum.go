package record

import (
	"github.com/acorg/hidb5/internal/bin"
	"github.com/acorg/hidb5/internal/endian"
)

// Serum is a zero-copy handle to one serum record inside a container's byte
// buffer.
type Serum struct {
	buf    []byte
	offset int
}

// NewSerum wraps a record's absolute byte offset within buf.
func NewSerum(buf []byte, offset int) Serum {
	return Serum{buf: buf, offset: offset}
}

func (s Serum) prefix() bin.SerumPrefix {
	p, _ := bin.ParseSerumPrefix(s.buf[s.offset : s.offset+bin.SerumPrefixSize])
	return p
}

func (s Serum) payload() []byte {
	return s.buf[s.offset+bin.SerumPrefixSize:]
}

// Host returns the serum's host field.
func (s Serum) Host() []byte {
	p := s.prefix()
	return s.payload()[0:p.LocationOffset]
}

// Location returns the serum's location field.
func (s Serum) Location() []byte {
	p := s.prefix()
	return s.payload()[p.LocationOffset:p.IsolationOffset]
}

// Isolation returns the serum's isolation field.
func (s Serum) Isolation() []byte {
	p := s.prefix()
	return s.payload()[p.IsolationOffset:p.PassageOffset]
}

// Passage returns the serum's passage field.
func (s Serum) Passage() []byte {
	p := s.prefix()
	return s.payload()[p.PassageOffset:p.ReassortantOffset]
}

// Reassortant returns the serum's reassortant field.
func (s Serum) Reassortant() []byte {
	p := s.prefix()
	return s.payload()[p.ReassortantOffset:p.AnnotationOffset[0]]
}

// Annotations returns the non-empty annotation slices.
func (s Serum) Annotations() [][]byte {
	p := s.prefix()
	payload := s.payload()
	bounds := [4]uint8{p.AnnotationOffset[0], p.AnnotationOffset[1], p.AnnotationOffset[2], p.SerumIDOffset}

	out := make([][]byte, 0, 3)
	for i := 0; i < 3; i++ {
		v := payload[bounds[i]:bounds[i+1]]
		if len(v) > 0 {
			out = append(out, v)
		}
	}

	return out
}

// SerumID returns the serum's serum-id field.
func (s Serum) SerumID() []byte {
	p := s.prefix()
	return s.payload()[p.SerumIDOffset:p.SerumSpeciesOffset]
}

// SerumSpecies returns the serum's species field, NUL-trimmed.
func (s Serum) SerumSpecies() []byte {
	p := s.prefix()
	return bin.TrimNUL(s.payload()[p.SerumSpeciesOffset:p.HomologousAntigenIndexOffset])
}

// HomologousAntigens returns the section indices of antigens this serum was
// raised against.
func (s Serum) HomologousAntigens() []uint32 {
	p := s.prefix()
	payload := s.payload()
	engine := endian.Little()

	n := (int(p.TableIndexOffset) - int(p.HomologousAntigenIndexOffset)) / 4
	out := make([]uint32, n)
	base := int(p.HomologousAntigenIndexOffset)
	for i := range out {
		off := base + i*4
		out[i] = engine.Uint32(payload[off : off+4])
	}

	return out
}

// HasHomologousAntigen reports whether antigenIndex appears in the serum's
// homologous-antigen list.
func (s Serum) HasHomologousAntigen(antigenIndex uint32) bool {
	for _, idx := range s.HomologousAntigens() {
		if idx == antigenIndex {
			return true
		}
	}

	return false
}

// Lineage returns the serum's lineage character.
func (s Serum) Lineage() byte {
	return s.prefix().Lineage
}

// Year returns the serum's year as a 4-character string, or "" if absent.
func (s Serum) Year() string {
	p := s.prefix()
	if !p.HasYear() {
		return ""
	}

	return string(p.YearData[:])
}

// Tables returns the section indices of the tables this serum appears in.
func (s Serum) Tables() []uint32 {
	p := s.prefix()
	payload := s.payload()
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

// BareName returns the serum's name without the leading virus type.
func (s Serum) BareName() string {
	return BareName(string(s.Host()), string(s.Location()), string(s.Isolation()), s.Year())
}
