package bin

import (
	"github.com/acorg/hidb5/internal/endian"
	"github.com/acorg/hidb5/internal/errs"
)

// TablePrefixSize is the fixed-size prefix preceding every table record's
// variable-length payload (spec §3 "Table").
const TablePrefixSize = 16

// TablePrefix is the parsed form of a table record's fixed prefix. Lineage
// is placed at byte 3 (rather than trailing, as the spec prose lists it)
// purely so the three u32 offsets that follow start on a 4-byte boundary;
// the spec leaves the exact prefix field order within a component
// unspecified beyond "carries byte offsets for date, lab, rbc ... 32-bit
// offsets for antigen_index, serum_index, titer; lineage char".
type TablePrefix struct {
	DateOffset       uint8
	LabOffset        uint8
	RBCOffset        uint8
	Lineage          byte
	AntigenIndexOffset uint32
	SerumIndexOffset   uint32
	TiterOffset        uint32
}

// ParseTablePrefix reads the fixed prefix from the start of data.
func ParseTablePrefix(data []byte) (TablePrefix, error) {
	if len(data) < TablePrefixSize {
		return TablePrefix{}, errs.ErrInvalidHeaderSize
	}

	engine := endian.Little()

	return TablePrefix{
		DateOffset:         data[0],
		LabOffset:          data[1],
		RBCOffset:          data[2],
		Lineage:            data[3],
		AntigenIndexOffset: engine.Uint32(data[4:8]),
		SerumIndexOffset:   engine.Uint32(data[8:12]),
		TiterOffset:        engine.Uint32(data[12:16]),
	}, nil
}

// Bytes serializes the prefix.
func (p TablePrefix) Bytes() []byte {
	b := make([]byte, TablePrefixSize)
	b[0] = p.DateOffset
	b[1] = p.LabOffset
	b[2] = p.RBCOffset
	b[3] = p.Lineage

	engine := endian.Little()
	engine.PutUint32(b[4:8], p.AntigenIndexOffset)
	engine.PutUint32(b[8:12], p.SerumIndexOffset)
	engine.PutUint32(b[12:16], p.TiterOffset)

	return b
}
