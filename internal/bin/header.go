// Package bin implements the hidb5 binary container: the fixed 32-byte file
// header, the three cumulative-offset sections (antigens, sera, tables), and
// the shared low-level slice primitives (NUL-trimmed variable-length fields,
// lower-bound offset search) that the record package builds typed accessors
// on top of.
//
// The split mirrors the teacher package's section/ + blob.go split: section
// defines the packed structs and raw byte algebra (NumericHeader,
// NumericIndexEntry); blob.go builds the friendly, zero-copy handle types on
// top. Here, bin is the former and record is the latter.
package bin

import (
	"sort"

	"github.com/acorg/hidb5/internal/endian"
	"github.com/acorg/hidb5/internal/errs"
)

// Signature is the 8-byte magic identifying a hidb5 binary container.
const Signature = "HIDB0500"

// HeaderSize is the fixed size, in bytes, of the container header.
const HeaderSize = 32

// Header is the container's 32-byte prefix (spec §3 "Container").
//
// Layout:
//
//	offset  size  field
//	0       8     signature ("HIDB0500")
//	8       4     AntigenSectionOffset
//	12      4     SerumSectionOffset
//	16      4     TableSectionOffset
//	20      1     VirusTypeLen
//	21      7     VirusType (NUL-padded)
//	28      4     reserved, zero
type Header struct {
	AntigenSectionOffset uint32
	SerumSectionOffset   uint32
	TableSectionOffset   uint32
	VirusType            string // e.g. "A(H3N2)", "A(H1N1)", "B"
}

// Bytes serializes the header using little-endian encoding, the only byte
// order hidb5 ever writes (spec §6).
func (h Header) Bytes() ([]byte, error) {
	if len(h.VirusType) > 7 {
		return nil, errs.ErrSliceTooLong
	}

	b := make([]byte, HeaderSize)
	copy(b[0:8], Signature)

	engine := endian.Little()
	engine.PutUint32(b[8:12], h.AntigenSectionOffset)
	engine.PutUint32(b[12:16], h.SerumSectionOffset)
	engine.PutUint32(b[16:20], h.TableSectionOffset)
	b[20] = byte(len(h.VirusType))
	copy(b[21:28], h.VirusType)

	return b, nil
}

// ParseHeader validates the signature and decodes the fixed header from the
// start of data. The engine used to decode the rest of the container is
// always little-endian; hidb5 never writes big-endian containers, so there
// is no endianness bit to recover from the header itself (unlike the
// teacher's packed NumericFlag, which stores its own byte order).
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	if string(data[0:8]) != Signature {
		return Header{}, errs.ErrInvalidSignature
	}

	engine := endian.Little()
	h := Header{
		AntigenSectionOffset: engine.Uint32(data[8:12]),
		SerumSectionOffset:   engine.Uint32(data[12:16]),
		TableSectionOffset:   engine.Uint32(data[16:20]),
	}

	vtLen := int(data[20])
	if vtLen > 7 {
		return Header{}, errs.ErrInvalidHeaderSize
	}
	h.VirusType = string(data[21 : 21+vtLen])

	return h, nil
}

// HasSignature reports whether data begins with the hidb5 binary signature.
// Used by chartio's format autodetection (spec §6).
func HasSignature(data []byte) bool {
	return len(data) >= 8 && string(data[0:8]) == Signature
}

// OffsetTable is the `count:u32` + `(count+1)*u32` cumulative relative
// offset array that precedes every section's records (spec §3 "Container").
// Offset i is the byte distance from the start of the records area to record
// i; offset[count] is the section's total payload length.
type OffsetTable struct {
	Offsets []uint32
}

// EncodeOffsetTable writes the count and cumulative offsets for count
// records, each of length lens[i], returning the encoded bytes and the
// OffsetTable for immediate use.
func EncodeOffsetTable(engine endian.Engine, lens []int) ([]byte, OffsetTable) {
	count := len(lens)
	offsets := make([]uint32, count+1)
	var cur uint32
	for i, l := range lens {
		offsets[i] = cur
		cur += uint32(l) //nolint:gosec
	}
	offsets[count] = cur

	b := make([]byte, 4+4*(count+1))
	engine.PutUint32(b[0:4], uint32(count)) //nolint:gosec
	for i, off := range offsets {
		engine.PutUint32(b[4+4*i:8+4*i], off)
	}

	return b, OffsetTable{Offsets: offsets}
}

// ParseOffsetTable reads a section's count and cumulative offset array
// starting at the beginning of data, and returns the table plus the byte
// length it consumed (so the caller can locate the records area that
// follows).
func ParseOffsetTable(engine endian.Engine, data []byte) (OffsetTable, int, error) {
	if len(data) < 4 {
		return OffsetTable{}, 0, errs.ErrInvalidHeaderSize
	}

	count := int(engine.Uint32(data[0:4]))
	headerLen := 4 + 4*(count+1)
	if len(data) < headerLen {
		return OffsetTable{}, 0, errs.ErrInvalidHeaderSize
	}

	offsets := make([]uint32, count+1)
	for i := range offsets {
		offsets[i] = engine.Uint32(data[4+4*i : 8+4*i])
	}

	return OffsetTable{Offsets: offsets}, headerLen, nil
}

// Count returns the number of records described by the table.
func (t OffsetTable) Count() int {
	if len(t.Offsets) == 0 {
		return 0
	}

	return len(t.Offsets) - 1
}

// RecordBounds returns the [start, end) byte range of record i within the
// records area.
func (t OffsetTable) RecordBounds(i int) (int, int) {
	return int(t.Offsets[i]), int(t.Offsets[i+1])
}

// PayloadLen returns the section's total records-area length (the final
// cumulative offset).
func (t OffsetTable) PayloadLen() int {
	if len(t.Offsets) == 0 {
		return 0
	}

	return int(t.Offsets[len(t.Offsets)-1])
}

// IndexForOffset performs the "branch-free lower-bound lookup" spec §4.1
// describes: given a byte offset relative to the records area, it returns
// the index of the record that starts at that offset, or (-1, false) if no
// record begins exactly there.
func (t OffsetTable) IndexForOffset(off uint32) (int, bool) {
	n := t.Count()
	i := sort.Search(n, func(i int) bool { return t.Offsets[i] >= off })
	if i < n && t.Offsets[i] == off {
		return i, true
	}

	return -1, false
}
