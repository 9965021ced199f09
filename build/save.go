package build

import (
	"io"

	"github.com/acorg/hidb5/internal/bin"
	"github.com/acorg/hidb5/internal/pool"
)

// Save assigns final indices, encodes the binary container in a single
// forward sweep, and writes it to w (spec §4.2 step 4, §6). The container's
// virus_type header field is the most frequent virus-type string across
// every ingested antigen and serum (spec §4.2: "computed, not asserted").
func (b *Builder) Save(w io.Writer) error {
	f, err := b.finalize()
	if err != nil {
		return err
	}

	buf := pool.Get()
	defer pool.Put(buf)

	buf.Write(make([]byte, bin.HeaderSize))

	antigenSectionOffset := buf.Len()
	if err := b.encodeAntigens(buf, f.antigens); err != nil {
		return err
	}

	serumSectionOffset := buf.Len()
	if err := b.encodeSera(buf, f.sera); err != nil {
		return err
	}

	tableSectionOffset := buf.Len()
	if err := b.encodeTables(buf, f.tables); err != nil {
		return err
	}

	header := bin.Header{
		AntigenSectionOffset: uint32(antigenSectionOffset), //nolint:gosec
		SerumSectionOffset:   uint32(serumSectionOffset),   //nolint:gosec
		TableSectionOffset:   uint32(tableSectionOffset),   //nolint:gosec
		VirusType:            mostFrequentVirusType(f),
	}

	headerBytes, err := header.Bytes()
	if err != nil {
		return err
	}
	copy(buf.Bytes()[:bin.HeaderSize], headerBytes)

	_, err = w.Write(buf.Bytes())

	return err
}

// mostFrequentVirusType returns the most common virus_type string across
// every antigen and serum, breaking ties by first occurrence for
// determinism.
func mostFrequentVirusType(f finalized) string {
	counts := make(map[string]int)
	order := make([]string, 0, 4)

	note := func(vt string) {
		if vt == "" {
			return
		}
		if counts[vt] == 0 {
			order = append(order, vt)
		}
		counts[vt]++
	}

	for _, a := range f.antigens {
		note(a.virusType)
	}
	for _, s := range f.sera {
		note(s.virusType)
	}

	best := ""
	bestCount := 0
	for _, vt := range order {
		if counts[vt] > bestCount {
			best = vt
			bestCount = counts[vt]
		}
	}

	return best
}
