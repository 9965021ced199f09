// Package build turns parsed chart tables into a hidb5 binary container: it
// deduplicates antigens, sera, and tables across however many charts are fed
// to it, then encodes the result as the binary container (Save) or projects
// it into the "hidb-v5" intermediate form (ToIntermediate, SaveJSON) (spec
// §4.2, §6). Save encodes the finalized records directly; it does not go
// through the intermediate form.
//
// The two-phase Add/Save lifecycle is grounded on the teacher package's
// encoder shape (github.com/arloliu/mebo's StartMetricID/AddDataPoint/
// EndMetric, then Finish() to serialize): Add accumulates, Save assigns
// indices and writes.
package build

import (
	"log"
	"os"

	"github.com/acorg/hidb5/chart"
	"github.com/acorg/hidb5/internal/errs"
	"github.com/acorg/hidb5/internal/identity"
	"github.com/acorg/hidb5/internal/options"
	"github.com/acorg/hidb5/virusname"
)

const (
	maxAnnotations = 3
	maxLabIDs      = 5
)

// Builder accumulates antigens, sera, and tables from one or more charts and
// projects them into a single hidb5 container on Save.
type Builder struct {
	antigens *identity.Table[*arenaAntigen]
	sera     *identity.Table[*arenaSerum]
	tables   *identity.Table[*arenaTable]

	tableList []*arenaTable // insertion order; sorted at Save

	splitter       virusname.Splitter
	logger         *log.Logger
	warnOnOverflow bool
}

// New creates an empty Builder.
func New(opts ...Option) *Builder {
	b := &Builder{
		antigens: identity.NewTable[*arenaAntigen](),
		sera:     identity.NewTable[*arenaSerum](),
		tables:   identity.NewTable[*arenaTable](),
		splitter: virusname.Default(),
		logger:   log.New(os.Stderr, "", log.LstdFlags),
	}

	_ = options.Apply(b, opts...)

	return b
}

func (b *Builder) logf(format string, args ...any) {
	if b.logger != nil {
		b.logger.Printf(format, args...)
	}
}

// Add ingests one chart table: it resolves every non-distinct antigen and
// serum against the builder's dedup tables (creating new records as
// needed), attaches this table to each one's back-reference set, and
// records the table itself. Distinct-flagged antigens/sera (spec §4.2 step
// 2, GLOSSARY) are never indexed and are dropped from the table's own
// stored geometry -- the titer matrix this table keeps is correspondingly
// narrower than the chart's.
//
// Add validates everything before mutating any shared state, so a rejected
// table (duplicate identity, an unrecognized name, too many annotations or
// lab ids) leaves the builder exactly as it was (spec §7: "build-time
// errors abort the current file, no partial output").
func (b *Builder) Add(t chart.Table) error {
	tKey := tableKey(t.Virus(), t.VirusType(), t.Subset(), t.Lineage(), t.Assay(), t.Lab(), t.RBC(), t.Date())
	if _, exists := b.tables.Get(tKey); exists {
		return errs.ErrDuplicateTable
	}

	chartAntigens := t.Antigens()
	chartSera := t.Sera()

	antigenResolved := make([]*resolvedAntigen, len(chartAntigens))
	for i, ca := range chartAntigens {
		if ca.Distinct() {
			continue
		}

		r, err := b.validateAntigen(ca, t.VirusType())
		if err != nil {
			return err
		}
		antigenResolved[i] = r
	}

	serumResolved := make([]*resolvedSerum, len(chartSera))
	for i, cs := range chartSera {
		if cs.Distinct() {
			continue
		}

		r, err := b.validateSerum(cs, t.VirusType())
		if err != nil {
			return err
		}
		serumResolved[i] = r
	}

	at := &arenaTable{
		virus:     t.Virus(),
		virusType: t.VirusType(),
		subset:    t.Subset(),
		lineage:   t.Lineage(),
		assay:     t.Assay(),
		lab:       t.Lab(),
		rbc:       t.RBC(),
		date:      t.Date(),
	}

	keptAntigenPos := make([]int, 0, len(chartAntigens))
	for i, r := range antigenResolved {
		if r == nil {
			continue
		}

		antigen := b.resolveAntigen(r)
		antigen.tables[at] = struct{}{}
		at.antigenRefs = append(at.antigenRefs, antigen)
		keptAntigenPos = append(keptAntigenPos, i)
	}

	keptSerumPos := make([]int, 0, len(chartSera))
	for i, r := range serumResolved {
		if r == nil {
			continue
		}

		serum := b.resolveSerum(r)
		serum.tables[at] = struct{}{}
		at.serumRefs = append(at.serumRefs, serum)
		keptSerumPos = append(keptSerumPos, i)
	}

	at.titers = make([][]string, len(keptSerumPos))
	for row, sPos := range keptSerumPos {
		cells := make([]string, len(keptAntigenPos))
		for col, aPos := range keptAntigenPos {
			cells[col] = t.Titer(aPos, sPos)
		}
		at.titers[row] = cells
	}

	b.tables.Put(tKey, at)
	b.tableList = append(b.tableList, at)

	return nil
}

// resolvedAntigen is a validated, name-parsed chart antigen awaiting
// insertion or merge into the builder's dedup table.
type resolvedAntigen struct {
	key         string
	name        parsedName
	passage     string
	reassortant string
	annotations []string
	lineage     byte
	dates       []string
	labIDs      []string
}

func (b *Builder) validateAntigen(ca chart.Antigen, tableVirusType string) (*resolvedAntigen, error) {
	name, ok := b.parseName(ca.Name(), tableVirusType)
	if !ok {
		return nil, errs.ErrUnrecognizedName
	}

	annotations := ca.Annotations()
	if len(annotations) > maxAnnotations {
		return nil, errs.ErrTooManyAnnotations
	}

	labIDs := ca.LabIDs()
	if len(labIDs) > maxLabIDs {
		return nil, errs.ErrTooManyLabIDs
	}

	dates := ca.Dates()
	for _, d := range dates {
		if !validDate(d) {
			return nil, errs.ErrInvalidDate
		}
	}

	key := antigenKey(name.virusType, name.host, name.location, name.isolation, name.year, annotations, ca.Reassortant(), ca.Passage())

	if existing, ok := b.antigens.Get(key); ok {
		union := len(existing.labIDs)
		for _, l := range labIDs {
			if _, seen := existing.labIDs[l]; !seen {
				union++
			}
		}
		if union > maxLabIDs {
			return nil, errs.ErrTooManyLabIDs
		}
	}

	return &resolvedAntigen{
		key:         key,
		name:        name,
		passage:     ca.Passage(),
		reassortant: ca.Reassortant(),
		annotations: annotations,
		lineage:     ca.Lineage(),
		dates:       dates,
		labIDs:      labIDs,
	}, nil
}

// resolveAntigen finds or creates the arena antigen for r, unioning dates
// and lab ids into an existing record (spec §4.2 step 3: "union dates and
// lab ids across every table that references the same antigen").
func (b *Builder) resolveAntigen(r *resolvedAntigen) *arenaAntigen {
	if existing, ok := b.antigens.Get(r.key); ok {
		for _, d := range r.dates {
			existing.dates[d] = struct{}{}
		}
		for _, l := range r.labIDs {
			existing.labIDs[l] = struct{}{}
		}

		return existing
	}

	a := newArenaAntigen()
	a.virusType = r.name.virusType
	a.host = r.name.host
	a.location = r.name.location
	a.isolation = r.name.isolation
	a.year = r.name.year
	a.passage = r.passage
	a.reassortant = r.reassortant
	a.annotations = r.annotations
	a.lineage = r.lineage
	for _, d := range r.dates {
		a.dates[d] = struct{}{}
	}
	for _, l := range r.labIDs {
		a.labIDs[l] = struct{}{}
	}

	b.antigens.Put(r.key, a)

	return a
}

// resolvedSerum is a validated, name-parsed chart serum awaiting insertion
// or merge.
type resolvedSerum struct {
	key                   string
	name                  parsedName
	passage               string
	reassortant           string
	annotations           []string
	lineage               byte
	serumID               string
	serumSpecies          string
	homologousAntigenName string
}

func (b *Builder) validateSerum(cs chart.Serum, tableVirusType string) (*resolvedSerum, error) {
	name, ok := b.parseName(cs.Name(), tableVirusType)
	if !ok {
		return nil, errs.ErrUnrecognizedName
	}

	annotations := cs.Annotations()
	if len(annotations) > maxAnnotations {
		return nil, errs.ErrTooManyAnnotations
	}

	key := serumKey(name.virusType, name.host, name.location, name.isolation, name.year, annotations, cs.Reassortant(), cs.SerumID())

	return &resolvedSerum{
		key:                   key,
		name:                  name,
		passage:               cs.Passage(),
		reassortant:           cs.Reassortant(),
		annotations:           annotations,
		lineage:               cs.Lineage(),
		serumID:               cs.SerumID(),
		serumSpecies:          cs.SerumSpecies(),
		homologousAntigenName: cs.HomologousAntigenName(),
	}, nil
}

func (b *Builder) resolveSerum(r *resolvedSerum) *arenaSerum {
	if existing, ok := b.sera.Get(r.key); ok {
		if existing.homologousAntigenName == "" {
			existing.homologousAntigenName = r.homologousAntigenName
		}

		return existing
	}

	s := newArenaSerum()
	s.virusType = r.name.virusType
	s.host = r.name.host
	s.location = r.name.location
	s.isolation = r.name.isolation
	s.year = r.name.year
	s.passage = r.passage
	s.reassortant = r.reassortant
	s.annotations = r.annotations
	s.lineage = r.lineage
	s.serumID = r.serumID
	s.serumSpecies = r.serumSpecies
	s.homologousAntigenName = r.homologousAntigenName

	b.sera.Put(r.key, s)

	return s
}
