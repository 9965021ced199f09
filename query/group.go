package query

import (
	"bytes"
	"sort"

	"github.com/acorg/hidb5/record"
)

// TableOrder selects the date direction table grouping sorts by (spec §4.3
// "Table grouping").
type TableOrder int

const (
	OldestFirst TableOrder = iota
	RecentFirst
)

// TableGroup is one (lab, assay, rbc) run of tables, in the order
// GroupTables produced it.
type TableGroup struct {
	Lab    string
	Assay  string
	RBC    string
	Tables []record.Table
}

// GroupTables sorts the tables named by indices by (lab, assay, rbc, date)
// -- date direction set by order -- then run-length partitions the result
// into groups keyed by (lab, assay, rbc), preserving per-group internal
// order (spec §4.3, §5 "group order = first occurrence in sorted input").
// Grouping an already-grouped sequence is idempotent (spec §8 invariant 8):
// re-running it on a flattened, already-sorted group list reproduces the
// same groups, since the sort is stable and the partition only looks at
// adjacent keys.
func (e *Engine) GroupTables(indices []uint32, order TableOrder) []TableGroup {
	sec := e.db.Tables
	tables := make([]record.Table, len(indices))
	for i, idx := range indices {
		tables[i] = sec.At(int(idx))
	}

	sort.SliceStable(tables, func(i, j int) bool {
		a, b := tables[i], tables[j]
		if c := bytes.Compare(a.Lab(), b.Lab()); c != 0 {
			return c < 0
		}
		if c := bytes.Compare(a.Assay(), b.Assay()); c != 0 {
			return c < 0
		}
		if c := bytes.Compare(a.RBC(), b.RBC()); c != 0 {
			return c < 0
		}

		da, db := parseDateUint32(string(a.Date())), parseDateUint32(string(b.Date()))
		if order == RecentFirst {
			return da > db
		}

		return da < db
	})

	var groups []TableGroup
	for _, t := range tables {
		lab, assay, rbc := string(t.Lab()), string(t.Assay()), string(t.RBC())
		if n := len(groups); n > 0 {
			g := &groups[n-1]
			if g.Lab == lab && g.Assay == assay && g.RBC == rbc {
				g.Tables = append(g.Tables, t)
				continue
			}
		}

		groups = append(groups, TableGroup{Lab: lab, Assay: assay, RBC: rbc, Tables: []record.Table{t}})
	}

	return groups
}

// MostRecentTable returns the table among indices with the latest date.
func (e *Engine) MostRecentTable(indices []uint32) (record.Table, bool) {
	return e.extremumTable(indices, RecentFirst)
}

// OldestTable returns the table among indices with the earliest date.
func (e *Engine) OldestTable(indices []uint32) (record.Table, bool) {
	return e.extremumTable(indices, OldestFirst)
}

func (e *Engine) extremumTable(indices []uint32, order TableOrder) (record.Table, bool) {
	if len(indices) == 0 {
		return record.Table{}, false
	}

	sec := e.db.Tables
	best := sec.At(int(indices[0]))
	bestKey := parseDateUint32(string(best.Date()))

	for _, idx := range indices[1:] {
		t := sec.At(int(idx))
		key := parseDateUint32(string(t.Date()))
		if (order == RecentFirst && key > bestKey) || (order == OldestFirst && key < bestKey) {
			best, bestKey = t, key
		}
	}

	return best, true
}
