package build

import (
	"io"

	"github.com/acorg/hidb5/intermediate"
	"github.com/acorg/hidb5/internal/bin"
	"github.com/acorg/hidb5/internal/endian"
	"github.com/acorg/hidb5/internal/pool"
)

// EncodeIntermediate writes root's already-sorted, already-index-assigned
// records straight into the binary container, the mirror of ToIntermediate
// (spec §6 "hidb5-convert"): unlike Save, there is no Builder state to
// finalize, since every section index and homologous/table reference in
// root was computed the first time this data went through a Builder.
func EncodeIntermediate(root intermediate.Root, w io.Writer) error {
	engine := endian.Little()

	buf := pool.Get()
	defer pool.Put(buf)

	buf.Write(make([]byte, bin.HeaderSize))

	antigenSectionOffset := buf.Len()
	if err := encodeIntermediateAntigens(buf, engine, root.A); err != nil {
		return err
	}

	serumSectionOffset := buf.Len()
	if err := encodeIntermediateSera(buf, engine, root.S); err != nil {
		return err
	}

	tableSectionOffset := buf.Len()
	if err := encodeIntermediateTables(buf, engine, root.T); err != nil {
		return err
	}

	header := bin.Header{
		AntigenSectionOffset: uint32(antigenSectionOffset), //nolint:gosec
		SerumSectionOffset:   uint32(serumSectionOffset),   //nolint:gosec
		TableSectionOffset:   uint32(tableSectionOffset),   //nolint:gosec
		VirusType:            mostFrequentIntermediateVirusType(root),
	}

	headerBytes, err := header.Bytes()
	if err != nil {
		return err
	}
	copy(buf.Bytes()[:bin.HeaderSize], headerBytes)

	_, err = w.Write(buf.Bytes())

	return err
}

func encodeIntermediateAntigens(buf *pool.Buffer, engine endian.Engine, antigens []intermediate.Antigen) error {
	lens := make([]int, 0, len(antigens))
	bodies := make([][]byte, 0, len(antigens))

	for _, a := range antigens {
		body, err := encodeIntermediateAntigenBody(engine, a)
		if err != nil {
			return err
		}

		lens = append(lens, len(body))
		bodies = append(bodies, body)
	}

	header, _ := bin.EncodeOffsetTable(engine, lens)
	buf.Write(header)
	for _, body := range bodies {
		buf.Write(body)
	}

	return nil
}

func encodeIntermediateAntigenBody(engine endian.Engine, a intermediate.Antigen) ([]byte, error) {
	names, bounds := cumulative(
		[]byte(a.H), []byte(a.O), []byte(a.I), []byte(a.P), []byte(a.R),
		annotationBytes(a.A, 0), annotationBytes(a.A, 1), annotationBytes(a.A, 2),
		labIDBytes(a.Lab, 0), labIDBytes(a.Lab, 1), labIDBytes(a.Lab, 2),
		labIDBytes(a.Lab, 3), labIDBytes(a.Lab, 4),
	)

	dateOffset := bin.AlignUp(len(names), 4)
	tableIndexOffset := dateOffset + len(a.D)*4

	prefix := bin.AntigenPrefix{Lineage: a.L}
	var err error
	if prefix.LocationOffset, err = fitUint8(bounds[1]); err != nil {
		return nil, err
	}
	if prefix.IsolationOffset, err = fitUint8(bounds[2]); err != nil {
		return nil, err
	}
	if prefix.PassageOffset, err = fitUint8(bounds[3]); err != nil {
		return nil, err
	}
	if prefix.ReassortantOffset, err = fitUint8(bounds[4]); err != nil {
		return nil, err
	}
	for i := range prefix.AnnotationOffset {
		if prefix.AnnotationOffset[i], err = fitUint8(bounds[5+i]); err != nil {
			return nil, err
		}
	}
	for i := range prefix.LabIDOffset {
		if prefix.LabIDOffset[i], err = fitUint8(bounds[8+i]); err != nil {
			return nil, err
		}
	}
	if prefix.DateOffset, err = fitUint8(dateOffset); err != nil {
		return nil, err
	}
	if prefix.TableIndexOffset, err = fitUint8(tableIndexOffset); err != nil {
		return nil, err
	}
	if a.Y != "" {
		copy(prefix.YearData[:], a.Y)
	}

	payload := make([]byte, tableIndexOffset+4+len(a.T)*4)
	copy(payload, names)
	for i, d := range a.D {
		engine.PutUint32(payload[dateOffset+i*4:], d)
	}
	engine.PutUint32(payload[tableIndexOffset:], uint32(len(a.T))) //nolint:gosec
	for i, idx := range a.T {
		engine.PutUint32(payload[tableIndexOffset+4+i*4:], idx)
	}

	return append(prefix.Bytes(), payload...), nil
}

func encodeIntermediateSera(buf *pool.Buffer, engine endian.Engine, sera []intermediate.Serum) error {
	lens := make([]int, 0, len(sera))
	bodies := make([][]byte, 0, len(sera))

	for _, s := range sera {
		body, err := encodeIntermediateSerumBody(engine, s)
		if err != nil {
			return err
		}

		lens = append(lens, len(body))
		bodies = append(bodies, body)
	}

	header, _ := bin.EncodeOffsetTable(engine, lens)
	buf.Write(header)
	for _, body := range bodies {
		buf.Write(body)
	}

	return nil
}

func encodeIntermediateSerumBody(engine endian.Engine, s intermediate.Serum) ([]byte, error) {
	names, bounds := cumulative(
		[]byte(s.H), []byte(s.O), []byte(s.I), []byte(s.P), []byte(s.R),
		annotationBytes(s.A, 0), annotationBytes(s.A, 1), annotationBytes(s.A, 2),
		[]byte(s.SerumID), []byte(s.SerumSpecies),
	)

	homologousOffset := bin.AlignUp(len(names), 4)
	tableIndexOffset := homologousOffset + len(s.Homologous)*4

	prefix := bin.SerumPrefix{Lineage: s.L}
	var err error
	if prefix.LocationOffset, err = fitUint8(bounds[1]); err != nil {
		return nil, err
	}
	if prefix.IsolationOffset, err = fitUint8(bounds[2]); err != nil {
		return nil, err
	}
	if prefix.PassageOffset, err = fitUint8(bounds[3]); err != nil {
		return nil, err
	}
	if prefix.ReassortantOffset, err = fitUint8(bounds[4]); err != nil {
		return nil, err
	}
	for i := range prefix.AnnotationOffset {
		if prefix.AnnotationOffset[i], err = fitUint8(bounds[5+i]); err != nil {
			return nil, err
		}
	}
	if prefix.SerumIDOffset, err = fitUint8(bounds[8]); err != nil {
		return nil, err
	}
	if prefix.SerumSpeciesOffset, err = fitUint8(bounds[9]); err != nil {
		return nil, err
	}
	if prefix.HomologousAntigenIndexOffset, err = fitUint8(homologousOffset); err != nil {
		return nil, err
	}
	if prefix.TableIndexOffset, err = fitUint8(tableIndexOffset); err != nil {
		return nil, err
	}
	if s.Y != "" {
		copy(prefix.YearData[:], s.Y)
	}

	payload := make([]byte, tableIndexOffset+4+len(s.T)*4)
	copy(payload, names)
	for i, h := range s.Homologous {
		engine.PutUint32(payload[homologousOffset+i*4:], h)
	}
	engine.PutUint32(payload[tableIndexOffset:], uint32(len(s.T))) //nolint:gosec
	for i, idx := range s.T {
		engine.PutUint32(payload[tableIndexOffset+4+i*4:], idx)
	}

	return append(prefix.Bytes(), payload...), nil
}

func encodeIntermediateTables(buf *pool.Buffer, engine endian.Engine, tables []intermediate.Table) error {
	lens := make([]int, 0, len(tables))
	bodies := make([][]byte, 0, len(tables))

	for _, t := range tables {
		body, err := encodeIntermediateTableBody(engine, t)
		if err != nil {
			return err
		}

		lens = append(lens, len(body))
		bodies = append(bodies, body)
	}

	header, _ := bin.EncodeOffsetTable(engine, lens)
	buf.Write(header)
	for _, body := range bodies {
		buf.Write(body)
	}

	return nil
}

func encodeIntermediateTableBody(engine endian.Engine, t intermediate.Table) ([]byte, error) {
	names, bounds := cumulative([]byte(t.Assay), []byte(t.Date), []byte(t.Lab), []byte(t.RBC))

	antigenIndexOffset := bin.AlignUp(len(names), 4)
	numAntigens := len(t.Antigens)
	numSerum := len(t.Sera)
	serumIndexOffset := antigenIndexOffset + numAntigens*4
	titerOffset := serumIndexOffset + numSerum*4

	width := 1
	for _, row := range t.Titers {
		for _, cell := range row {
			if len(cell) > width {
				width = len(cell)
			}
		}
	}

	prefix := bin.TablePrefix{Lineage: t.Lineage}
	var err error
	if prefix.DateOffset, err = fitUint8(bounds[1]); err != nil {
		return nil, err
	}
	if prefix.LabOffset, err = fitUint8(bounds[2]); err != nil {
		return nil, err
	}
	if prefix.RBCOffset, err = fitUint8(bounds[3]); err != nil {
		return nil, err
	}
	prefix.AntigenIndexOffset = uint32(antigenIndexOffset) //nolint:gosec
	prefix.SerumIndexOffset = uint32(serumIndexOffset)     //nolint:gosec
	prefix.TiterOffset = uint32(titerOffset)               //nolint:gosec

	cellsStart := titerOffset + 1
	payloadLen := cellsStart + numAntigens*numSerum*width
	payloadLen = bin.AlignUp(payloadLen, 4)

	payload := make([]byte, payloadLen)
	copy(payload, names)
	for i, a := range t.Antigens {
		engine.PutUint32(payload[antigenIndexOffset+i*4:], a)
	}
	for i, s := range t.Sera {
		engine.PutUint32(payload[serumIndexOffset+i*4:], s)
	}
	payload[titerOffset] = byte(width)
	for row := 0; row < numSerum; row++ {
		for col := 0; col < numAntigens; col++ {
			cell := t.Titers[row][col]
			off := cellsStart + (col*numSerum+row)*width
			copy(payload[off:off+width], cell)
		}
	}

	return append(prefix.Bytes(), payload...), nil
}

func mostFrequentIntermediateVirusType(root intermediate.Root) string {
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

	for _, a := range root.A {
		note(a.V)
	}
	for _, s := range root.S {
		note(s.V)
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
