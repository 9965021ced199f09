// Command hidb5-first-table-date emits, for each subtype, one CSV per
// (subtype, lab, assay) tag listing each antigen's isolation date, the
// date of the oldest table it appears in, its country, its first lab id
// and lineage, grounded on
// original_source/cc/hidb5-first-table-date.cc.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"

	"github.com/acorg/hidb5/hidb"
	"github.com/acorg/hidb5/locationdb"
	"github.com/acorg/hidb5/query"
	"github.com/acorg/hidb5/record"
	"github.com/acorg/hidb5/registry"
)

type row struct {
	name      string
	isolation string
	tableDate string
	country   string
	labID     string
	lineage   string
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("hidb5-first-table-date", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	dbDir := fs.String("db-dir", "", "override the registry's database directory")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: hidb5-first-table-date [--db-dir D] OUTPUT-PREFIX")
		return 1
	}
	prefix := fs.Arg(0)

	if *dbDir != "" {
		registry.Setup(*dbDir)
	}

	loc := locationdb.NewStatic()
	data := map[string][]row{}

	for _, subtype := range []string{"B", "H1", "H3"} {
		db, err := registry.Default().Get(subtype)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", subtype, err)
			continue
		}

		e := query.New(db)
		scanSubtype(subtype, db, e, loc, data)
	}

	for tag, rows := range data {
		if err := writeCSV(prefix+tag+".csv", rows); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			return 1
		}
	}

	return 0
}

func scanSubtype(subtype string, db *hidb.Database, e *query.Engine, loc locationdb.DB, data map[string][]row) {
	for i := 0; i < db.Antigens.Count(); i++ {
		a := db.Antigens.At(i)
		oldest, ok := e.OldestTable(a.Tables())
		if !ok {
			continue
		}

		country, _ := loc.Country(string(a.Location()))
		labID := ""
		if ids := a.LabIDs(); len(ids) > 0 {
			labID = string(ids[0])
		}

		tag := fmt.Sprintf("%s-%s-%s", subtype, oldest.Lab(), oldest.Assay())
		data[tag] = append(data[tag], row{
			name:      string(a.Host()) + "/" + string(a.Location()) + "/" + string(a.Isolation()) + "/" + a.Year(),
			isolation: record.FormatDateISO(firstDate(a)),
			tableDate: string(oldest.Date()),
			country:   country,
			labID:     labID,
			lineage:   string(a.Lineage()),
		})
	}
}

func firstDate(a record.Antigen) uint32 {
	dates := a.Dates()
	if len(dates) == 0 {
		return 0
	}

	return dates[0]
}

func writeCSV(path string, rows []row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Name", "Isolation", "Table", "Country", "Lab Id", "Lineage"}); err != nil {
		return err
	}

	for _, r := range rows {
		if err := w.Write([]string{r.name, r.isolation, r.tableDate, r.country, r.labID, r.lineage}); err != nil {
			return err
		}
	}

	return nil
}
