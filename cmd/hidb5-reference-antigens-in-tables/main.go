// Command hidb5-reference-antigens-in-tables emits a CSV of every table's
// reference antigens: type, lab, test date, test type, virus name,
// passage, grounded on
// original_source/cc/hidb5-reference-antigens-in-tables.cc.
//
// The stored container has no per-table "is this antigen a reference
// strain" flag (that is chart-level metadata hidb5's binary format does
// not keep, see DESIGN.md); a table's reference antigens are taken to be
// exactly the antigens homologous to one of that table's sera, since a
// reference antigen is definitionally the strain a serum was raised
// against.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/acorg/hidb5/hidb"
	"github.com/acorg/hidb5/registry"
)

type entry struct {
	subtype string
	lab     string
	date    string
	assay   string
	name    string
	passage string
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("hidb5-reference-antigens-in-tables", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	start := fs.String("start", "", "only use tables on or after this date (YYYYMMDD)")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	var entries []entry
	for _, subtype := range []string{"A(H1N1)", "A(H3N2)", "B"} {
		db, err := registry.Default().Get(subtype)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", subtype, err)
			continue
		}

		entries = append(entries, scanTables(subtype, db, *start)...)
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.subtype != b.subtype {
			return subtypeRank(a.subtype) < subtypeRank(b.subtype)
		}
		if a.lab != b.lab {
			return a.lab < b.lab
		}
		if a.date != b.date {
			return a.date > b.date // most recent first
		}
		if a.name != b.name {
			return a.name < b.name
		}

		return a.passage < b.passage
	})

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"Type", "Lab", "Date", "Test type", "Virus", "Passage"}); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}

	for _, e := range entries {
		if err := w.Write([]string{e.subtype, e.lab, e.date, e.assay, e.name, e.passage}); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			return 1
		}
	}

	return 0
}

func scanTables(subtype string, db *hidb.Database, start string) []entry {
	var out []entry

	for i := 0; i < db.Tables.Count(); i++ {
		t := db.Tables.At(i)
		if start != "" && string(t.Date()) < start {
			continue
		}

		homologous := map[uint32]struct{}{}
		for _, sIdx := range t.SerumIndices() {
			if int(sIdx) >= db.Sera.Count() {
				continue
			}
			s := db.Sera.At(int(sIdx))
			for _, aIdx := range t.AntigenIndices() {
				if s.HasHomologousAntigen(aIdx) {
					homologous[aIdx] = struct{}{}
				}
			}
		}

		testType := string(t.RBC())
		if testType == "" {
			testType = string(t.Assay())
		}

		for aIdx := range homologous {
			a := db.Antigens.At(int(aIdx))
			out = append(out, entry{
				subtype: subtype,
				lab:     string(t.Lab()),
				date:    string(t.Date()),
				assay:   testType,
				name:    string(a.Host()) + "/" + string(a.Location()) + "/" + string(a.Isolation()) + "/" + a.Year(),
				passage: string(a.Passage()),
			})
		}
	}

	return out
}

func subtypeRank(subtype string) int {
	switch subtype {
	case "A(H1N1)":
		return 1
	case "A(H3N2)":
		return 2
	case "B":
		return 5
	default:
		return 0
	}
}
