package build

import (
	"errors"

	"github.com/acorg/hidb5/internal/bin"
	"github.com/acorg/hidb5/internal/endian"
	"github.com/acorg/hidb5/internal/errs"
	"github.com/acorg/hidb5/internal/pool"
)

// encodeAntigens writes f.antigens in section order into buf, using a
// single forward sweep (spec §4.2 step 4), the same shape the teacher
// encoder uses to walk its metric list once. Records that overflow a uint8
// offset are fatal unless warnOnOverflow is set, in which case they are
// dropped and logged (spec §7).
func (b *Builder) encodeAntigens(buf *pool.Buffer, antigens []*arenaAntigen) error {
	engine := endian.Little()
	lens := make([]int, 0, len(antigens))
	bodies := make([][]byte, 0, len(antigens))

	for _, a := range antigens {
		body, err := b.encodeAntigenBody(engine, a)
		if err != nil {
			if b.warnOnOverflow && errors.Is(err, errs.ErrOffsetOverflow) {
				b.logf("build: antigen %s/%s dropped, offset overflow", a.location, a.isolation)
				continue
			}

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

func (b *Builder) encodeAntigenBody(engine endian.Engine, a *arenaAntigen) ([]byte, error) {
	dates := a.sortedDates()
	tableIdx := a.sortedTableIndices()

	labIDs := a.sortedLabIDs()
	names, bounds := cumulative(
		[]byte(a.host), []byte(a.location), []byte(a.isolation), []byte(a.passage), []byte(a.reassortant),
		annotationBytes(a.annotations, 0), annotationBytes(a.annotations, 1), annotationBytes(a.annotations, 2),
		labIDBytes(labIDs, 0), labIDBytes(labIDs, 1), labIDBytes(labIDs, 2),
		labIDBytes(labIDs, 3), labIDBytes(labIDs, 4),
	)

	dateOffset := bin.AlignUp(len(names), 4)
	tableIndexOffset := dateOffset + len(dates)*4

	prefix := bin.AntigenPrefix{Lineage: a.lineage}
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
	if a.year != "" {
		copy(prefix.YearData[:], a.year)
	}

	payload := make([]byte, tableIndexOffset+4+len(tableIdx)*4)
	copy(payload, names)
	for i, d := range dates {
		engine.PutUint32(payload[dateOffset+i*4:], parseDateUint32(d))
	}
	engine.PutUint32(payload[tableIndexOffset:], uint32(len(tableIdx))) //nolint:gosec
	for i, idx := range tableIdx {
		engine.PutUint32(payload[tableIndexOffset+4+i*4:], idx)
	}

	return append(prefix.Bytes(), payload...), nil
}

func (b *Builder) encodeSera(buf *pool.Buffer, sera []*arenaSerum) error {
	engine := endian.Little()
	lens := make([]int, 0, len(sera))
	bodies := make([][]byte, 0, len(sera))

	for _, s := range sera {
		body, err := b.encodeSerumBody(engine, s)
		if err != nil {
			if b.warnOnOverflow && errors.Is(err, errs.ErrOffsetOverflow) {
				b.logf("build: serum %s/%s dropped, offset overflow", s.location, s.isolation)
				continue
			}

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

func (b *Builder) encodeSerumBody(engine endian.Engine, s *arenaSerum) ([]byte, error) {
	homologous := s.sortedHomologous()
	tableIdx := s.sortedTableIndices()

	names, bounds := cumulative(
		[]byte(s.host), []byte(s.location), []byte(s.isolation), []byte(s.passage), []byte(s.reassortant),
		annotationBytes(s.annotations, 0), annotationBytes(s.annotations, 1), annotationBytes(s.annotations, 2),
		[]byte(s.serumID), []byte(s.serumSpecies),
	)

	homologousOffset := bin.AlignUp(len(names), 4)
	tableIndexOffset := homologousOffset + len(homologous)*4

	prefix := bin.SerumPrefix{Lineage: s.lineage}
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
	if s.year != "" {
		copy(prefix.YearData[:], s.year)
	}

	payload := make([]byte, tableIndexOffset+4+len(tableIdx)*4)
	copy(payload, names)
	for i, h := range homologous {
		engine.PutUint32(payload[homologousOffset+i*4:], h)
	}
	engine.PutUint32(payload[tableIndexOffset:], uint32(len(tableIdx))) //nolint:gosec
	for i, idx := range tableIdx {
		engine.PutUint32(payload[tableIndexOffset+4+i*4:], idx)
	}

	return append(prefix.Bytes(), payload...), nil
}

func (b *Builder) encodeTables(buf *pool.Buffer, tables []*arenaTable) error {
	engine := endian.Little()
	lens := make([]int, 0, len(tables))
	bodies := make([][]byte, 0, len(tables))

	for _, t := range tables {
		body, err := encodeTableBody(engine, t)
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

func encodeTableBody(engine endian.Engine, t *arenaTable) ([]byte, error) {
	names, bounds := cumulative([]byte(t.assay), []byte(t.date), []byte(t.lab), []byte(t.rbc))

	antigenIndexOffset := bin.AlignUp(len(names), 4)
	numAntigens := len(t.antigenRefs)
	numSerum := len(t.serumRefs)
	serumIndexOffset := antigenIndexOffset + numAntigens*4
	titerOffset := serumIndexOffset + numSerum*4

	width := 1
	for _, row := range t.titers {
		for _, cell := range row {
			if len(cell) > width {
				width = len(cell)
			}
		}
	}

	prefix := bin.TablePrefix{Lineage: t.lineage}
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
	for i, a := range t.antigenRefs {
		engine.PutUint32(payload[antigenIndexOffset+i*4:], a.index)
	}
	for i, s := range t.serumRefs {
		engine.PutUint32(payload[serumIndexOffset+i*4:], s.index)
	}
	payload[titerOffset] = byte(width)
	for row := 0; row < numSerum; row++ {
		for col := 0; col < numAntigens; col++ {
			cell := t.titers[row][col]
			off := cellsStart + (col*numSerum+row)*width
			copy(payload[off:off+width], cell)
		}
	}

	return append(prefix.Bytes(), payload...), nil
}

// annotationBytes returns annotations[i] as bytes, or nil if there is no
// annotation at that slot (spec: at most 3, unused slots are zero-length).
func annotationBytes(annotations []string, i int) []byte {
	if i >= len(annotations) {
		return nil
	}

	return []byte(annotations[i])
}

// labIDBytes returns sorted lab ids[i] as bytes, or nil if absent.
func labIDBytes(labIDs []string, i int) []byte {
	if i >= len(labIDs) {
		return nil
	}

	return []byte(labIDs[i])
}
