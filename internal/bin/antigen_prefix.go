package bin

import "github.com/acorg/hidb5/internal/errs"

// AntigenPrefixSize is the fixed-size prefix preceding every antigen
// record's variable-length payload (spec §3 "Antigen").
const AntigenPrefixSize = 20

// AntigenPrefix is the parsed form of an antigen record's fixed prefix.
// All Offset fields are byte distances from the start of the payload (the
// byte immediately after the fixed prefix), monotonically non-decreasing,
// and each must fit in a single byte (spec invariant: offsets in [0,255]).
type AntigenPrefix struct {
	LocationOffset    uint8
	IsolationOffset   uint8
	PassageOffset     uint8
	ReassortantOffset uint8
	AnnotationOffset  [3]uint8
	LabIDOffset       [5]uint8
	DateOffset        uint8
	TableIndexOffset  uint8
	Lineage           byte
	YearData          [4]byte
}

// ParseAntigenPrefix reads the fixed prefix from the start of data.
func ParseAntigenPrefix(data []byte) (AntigenPrefix, error) {
	if len(data) < AntigenPrefixSize {
		return AntigenPrefix{}, errs.ErrInvalidHeaderSize
	}

	p := AntigenPrefix{
		LocationOffset:    data[0],
		IsolationOffset:   data[1],
		PassageOffset:     data[2],
		ReassortantOffset: data[3],
		DateOffset:        data[12],
		TableIndexOffset:  data[13],
		Lineage:           data[14],
		// data[15] is the explicit pad byte.
	}
	copy(p.AnnotationOffset[:], data[4:7])
	copy(p.LabIDOffset[:], data[7:12])
	copy(p.YearData[:], data[16:20])

	return p, nil
}

// Bytes serializes the prefix.
func (p AntigenPrefix) Bytes() []byte {
	b := make([]byte, AntigenPrefixSize)
	b[0] = p.LocationOffset
	b[1] = p.IsolationOffset
	b[2] = p.PassageOffset
	b[3] = p.ReassortantOffset
	copy(b[4:7], p.AnnotationOffset[:])
	copy(b[7:12], p.LabIDOffset[:])
	b[12] = p.DateOffset
	b[13] = p.TableIndexOffset
	b[14] = p.Lineage
	b[15] = 0 // pad
	copy(b[16:20], p.YearData[:])

	return b
}

// HasYear reports whether the record carries a year (spec §4.1 "Year": if
// year_data[0] == 0 return empty).
func (p AntigenPrefix) HasYear() bool {
	return p.YearData[0] != 0
}
