package bin

import "github.com/acorg/hidb5/internal/errs"

// SerumPrefixSize is the fixed-size prefix preceding every serum record's
// variable-length payload (spec §3 "Serum"). It mirrors AntigenPrefix but
// replaces the lab-id and date slots with serum_id_offset,
// serum_species_offset, and homologous_antigen_index_offset -- the year
// field, needed because year is part of the serum identity tuple, is kept
// as the last four bytes of the prefix, as in AntigenPrefix (here bytes
// 12..15, since the serum prefix is shorter).
const SerumPrefixSize = 16

// SerumPrefix is the parsed form of a serum record's fixed prefix.
type SerumPrefix struct {
	LocationOffset               uint8
	IsolationOffset               uint8
	PassageOffset                 uint8
	ReassortantOffset             uint8
	AnnotationOffset              [3]uint8
	SerumIDOffset                 uint8
	SerumSpeciesOffset            uint8
	HomologousAntigenIndexOffset  uint8
	TableIndexOffset              uint8
	Lineage                       byte
	YearData                      [4]byte
}

// ParseSerumPrefix reads the fixed prefix from the start of data.
func ParseSerumPrefix(data []byte) (SerumPrefix, error) {
	if len(data) < SerumPrefixSize {
		return SerumPrefix{}, errs.ErrInvalidHeaderSize
	}

	p := SerumPrefix{
		LocationOffset:               data[0],
		IsolationOffset:              data[1],
		PassageOffset:                data[2],
		ReassortantOffset:            data[3],
		SerumIDOffset:                data[7],
		SerumSpeciesOffset:           data[8],
		HomologousAntigenIndexOffset: data[9],
		TableIndexOffset:             data[10],
		Lineage:                      data[11],
	}
	copy(p.AnnotationOffset[:], data[4:7])
	copy(p.YearData[:], data[12:16])

	return p, nil
}

// Bytes serializes the prefix.
func (p SerumPrefix) Bytes() []byte {
	b := make([]byte, SerumPrefixSize)
	b[0] = p.LocationOffset
	b[1] = p.IsolationOffset
	b[2] = p.PassageOffset
	b[3] = p.ReassortantOffset
	copy(b[4:7], p.AnnotationOffset[:])
	b[7] = p.SerumIDOffset
	b[8] = p.SerumSpeciesOffset
	b[9] = p.HomologousAntigenIndexOffset
	b[10] = p.TableIndexOffset
	b[11] = p.Lineage
	copy(b[12:16], p.YearData[:])

	return b
}

// HasYear reports whether the record carries a year.
func (p SerumPrefix) HasYear() bool {
	return p.YearData[0] != 0
}
