// Command hidb5-find looks up antigens, sera, or tables in a hidb5
// database, grounded on original_source/cc/hidb5-find.cc: a first
// argument naming either a virus type ("B", "H3", ...) resolved through
// registry.Default, or a path to a single .bin file opened directly; one
// or more NAME arguments, or the literal "all" to list everything.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/acorg/hidb5/hidb"
	"github.com/acorg/hidb5/query"
	"github.com/acorg/hidb5/record"
	"github.com/acorg/hidb5/registry"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("hidb5-find", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	findSera := fs.Bool("s", false, "find sera instead of antigens")
	findTable := fs.Bool("t", false, "find tables instead of antigens")
	firstTable := fs.Bool("first-table", false, "report only the oldest table for -s listings")
	lab := fs.String("lab", "", "restrict serum listing to this lab")
	byLabID := fs.Bool("lab-id", false, "find antigens by lab id")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	rest := fs.Args()
	if len(rest) < 2 {
		fmt.Fprintln(os.Stderr, "usage: hidb5-find (VIRUSTYPE|FILE) (NAME...|all) [-s|-t] [--lab-id] [--lab L] [--first-table]")
		return 1
	}

	db, closeFn, err := openTarget(rest[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}
	if closeFn != nil {
		defer closeFn()
	}

	exact := query.New(db)
	fuzzy := query.New(db, query.WithFuzzy())

	names := rest[1:]

	if names[0] == "all" {
		switch {
		case *findSera:
			listAllSera(db, exact, *lab, *firstTable)
		case *findTable:
			listAllTables(db)
		default:
			listAllAntigens(db)
		}
		return 0
	}

	for _, name := range names {
		switch {
		case *findSera:
			findSerum(exact, fuzzy, name)
		case *findTable:
			fmt.Fprintln(os.Stderr, "ERROR: table lookup by name is not implemented")
			return 1
		case *byLabID:
			findAntigensByLabID(exact, name)
		default:
			findAntigen(exact, fuzzy, name)
		}
	}

	return 0
}

func openTarget(target string) (*hidb.Database, func() error, error) {
	if info, err := os.Stat(target); err == nil && info.Mode().IsRegular() {
		return hidb.OpenFile(target)
	}

	db, err := registry.Default().Get(strings.ToUpper(target))
	return db, nil, err
}

func findAntigen(exact, fuzzy *query.Engine, name string) {
	found, err := exact.FindAntigens(strings.ToUpper(name))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return
	}

	prefix := ""
	if len(found) == 0 {
		found, err = fuzzy.FindAntigens(strings.ToUpper(name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			return
		}
		prefix = "*** "
	}

	for _, a := range found {
		reportAntigen(a, prefix)
	}
}

func findAntigensByLabID(exact *query.Engine, labID string) {
	for _, a := range exact.FindLabID(strings.ToUpper(labID)) {
		reportAntigen(a, "")
	}
}

func findSerum(exact, fuzzy *query.Engine, name string) {
	found, err := exact.FindSera(strings.ToUpper(name))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return
	}

	prefix := ""
	if len(found) == 0 {
		found, err = fuzzy.FindSera(strings.ToUpper(name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			return
		}
		prefix = "*** "
	}

	for _, s := range found {
		reportSerum(s, prefix)
	}
}

func listAllAntigens(db *hidb.Database) {
	fmt.Printf("Antigens: %d\n", db.Antigens.Count())
	for i := 0; i < db.Antigens.Count(); i++ {
		reportAntigen(db.Antigens.At(i), "")
	}
}

func listAllSera(db *hidb.Database, e *query.Engine, lab string, firstTableOnly bool) {
	fmt.Printf("Sera: %d\n", db.Sera.Count())
	for i := 0; i < db.Sera.Count(); i++ {
		s := db.Sera.At(i)
		if lab != "" && !hasLab(db, s, lab) {
			continue
		}
		reportSerum(s, "")
		if firstTableOnly {
			if t, ok := e.OldestTable(s.Tables()); ok {
				fmt.Printf("    %s %s %s\n", t.Date(), t.Lab(), t.Assay())
			}
		}
	}
}

func hasLab(db *hidb.Database, s record.Serum, lab string) bool {
	for _, idx := range s.Tables() {
		if idx >= uint32(db.Tables.Count()) {
			continue
		}
		if string(db.Tables.At(int(idx)).Lab()) == lab {
			return true
		}
	}

	return false
}

func listAllTables(db *hidb.Database) {
	fmt.Printf("Tables: %d\n", db.Tables.Count())
	for i := 0; i < db.Tables.Count(); i++ {
		t := db.Tables.At(i)
		fmt.Printf("%s %s A:%d S:%d\n", t.Date(), t.Assay(), len(t.AntigenIndices()), len(t.SerumIndices()))
	}
}

func reportAntigen(a record.Antigen, prefix string) {
	fmt.Printf("%s%s/%s/%s/%s %s [%d tables]\n", prefix, a.Host(), a.Location(), a.Isolation(), a.Year(), a.Passage(), len(a.Tables()))
}

func reportSerum(s record.Serum, prefix string) {
	fmt.Printf("%s%s/%s/%s/%s %s [%d tables]\n", prefix, s.Host(), s.Location(), s.Isolation(), s.Year(), s.SerumSpecies(), len(s.Tables()))
}
