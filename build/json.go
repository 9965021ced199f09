package build

import (
	"encoding/json"
	"io"

	"github.com/acorg/hidb5/intermediate"
)

// ToIntermediate projects the builder's final, sorted, index-assigned state
// into the "hidb-v5" JSON intermediate form (spec §4.2 step 3, §6), the
// representation EncodeIntermediate turns into a binary container. Save does
// not use it: Save encodes the finalized builder records directly.
func (b *Builder) ToIntermediate() (intermediate.Root, error) {
	f, err := b.finalize()
	if err != nil {
		return intermediate.Root{}, err
	}

	root := intermediate.Root{
		Version: intermediate.Version,
		A:       make([]intermediate.Antigen, len(f.antigens)),
		S:       make([]intermediate.Serum, len(f.sera)),
		T:       make([]intermediate.Table, len(f.tables)),
	}

	for i, a := range f.antigens {
		dates := a.sortedDates()
		dateInts := make([]uint32, len(dates))
		for j, d := range dates {
			dateInts[j] = parseDateUint32(d)
		}

		root.A[i] = intermediate.Antigen{
			V:   a.virusType,
			H:   a.host,
			O:   a.location,
			I:   a.isolation,
			Y:   a.year,
			L:   a.lineage,
			P:   a.passage,
			R:   a.reassortant,
			A:   a.annotations,
			D:   dateInts,
			Lab: a.sortedLabIDs(),
			T:   a.sortedTableIndices(),
		}
	}

	for i, s := range f.sera {
		root.S[i] = intermediate.Serum{
			V:            s.virusType,
			H:            s.host,
			O:            s.location,
			I:            s.isolation,
			Y:            s.year,
			L:            s.lineage,
			P:            s.passage,
			R:            s.reassortant,
			A:            s.annotations,
			SerumID:      s.serumID,
			SerumSpecies: s.serumSpecies,
			Homologous:   s.sortedHomologous(),
			T:            s.sortedTableIndices(),
		}
	}

	for i, t := range f.tables {
		antigenIdx := make([]uint32, len(t.antigenRefs))
		for j, a := range t.antigenRefs {
			antigenIdx[j] = a.index
		}

		serumIdx := make([]uint32, len(t.serumRefs))
		for j, s := range t.serumRefs {
			serumIdx[j] = s.index
		}

		root.T[i] = intermediate.Table{
			Virus:     t.virus,
			VirusType: t.virusType,
			Assay:     t.assay,
			Date:      t.date,
			Lab:       t.lab,
			RBC:       t.rbc,
			Subset:    t.subset,
			Lineage:   t.lineage,
			Antigens:  antigenIdx,
			Sera:      serumIdx,
			Titers:    t.titers,
		}
	}

	return root, nil
}

// SaveJSON writes the builder's current state as "hidb-v5" JSON, for
// inspection or for hidb5-convert's round trip (spec §6).
func (b *Builder) SaveJSON(w io.Writer) error {
	root, err := b.ToIntermediate()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	return enc.Encode(root)
}
