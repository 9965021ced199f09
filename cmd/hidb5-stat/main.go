// Command hidb5-stat counts antigens per (virus_type, continent) and sera
// per (virus_type, lab, continent) across every registered virus type's
// database, counting only records that appear in a table dated in
// [--start, --end), grounded on original_source/cc/hidb5-stat.cc. Counts
// are not split by date: the date field of every key is "all", as is the
// lab field of every antigen key. Continent lookup uses locationdb.DB;
// this repository has no bundled location data (see DESIGN.md), so an
// unresolvable location simply counts toward continent "".
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/acorg/hidb5/hidb"
	"github.com/acorg/hidb5/locationdb"
	"github.com/acorg/hidb5/record"
	"github.com/acorg/hidb5/registry"
)

var virusTypes = []string{"A(H1N1)", "A(H3N2)", "B"}

type statKey struct {
	VirusType string
	Lab       string
	Date      string
	Continent string
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("hidb5-stat", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	start := fs.String("start", "1000-01-01", "only count tables on or after this date")
	end := fs.String("end", "3000-01-01", "only count tables before this date")
	dbDir := fs.String("db-dir", "", "override the registry's database directory")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: hidb5-stat --start D --end D OUT.json")
		return 1
	}

	if *dbDir != "" {
		registry.Setup(*dbDir)
	}

	loc := locationdb.NewStatic()

	antigens := map[statKey]int{}
	sera := map[statKey]int{}
	seraUnique := map[statKey]int{}

	for _, vt := range virusTypes {
		db, err := registry.Default().Get(vt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", vt, err)
			continue
		}

		scanAntigens(db, loc, *start, *end, antigens)
		scanSera(db, loc, *start, *end, sera, seraUnique)
	}

	out, err := os.Create(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}
	defer out.Close()

	payload := struct {
		Antigens   map[string]int `json:"antigens"`
		Sera       map[string]int `json:"sera"`
		SeraUnique map[string]int `json:"sera_unique"`
	}{
		Antigens:   flatten(antigens),
		Sera:       flatten(sera),
		SeraUnique: flatten(seraUnique),
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}

	report(antigens, "Antigens")
	report(sera, "Sera")
	report(seraUnique, "Sera unique")

	return 0
}

func tableInRange(t record.Table, start, end string) bool {
	d := string(t.Date())
	return d >= start && d < end
}

func scanAntigens(db *hidb.Database, loc locationdb.DB, start, end string, data map[statKey]int) {
	for i := 0; i < db.Antigens.Count(); i++ {
		a := db.Antigens.At(i)
		inRange := false
		for _, idx := range a.Tables() {
			if int(idx) < db.Tables.Count() && tableInRange(db.Tables.At(int(idx)), start, end) {
				inRange = true
				break
			}
		}
		if !inRange {
			continue
		}

		continent, _ := loc.Continent(string(a.Location()))
		bump(data, db.VirusType(), "", "", continent)
	}
}

func scanSera(db *hidb.Database, loc locationdb.DB, start, end string, data, unique map[statKey]int) {
	for i := 0; i < db.Sera.Count(); i++ {
		s := db.Sera.At(i)
		inRange := false
		labs := map[string]struct{}{}
		for _, idx := range s.Tables() {
			if int(idx) < db.Tables.Count() {
				t := db.Tables.At(int(idx))
				if tableInRange(t, start, end) {
					inRange = true
					labs[string(t.Lab())] = struct{}{}
				}
			}
		}
		if !inRange {
			continue
		}

		continent, _ := loc.Continent(string(s.Location()))
		for lab := range labs {
			bump(data, db.VirusType(), lab, "", continent)
		}
		if len(labs) == 1 {
			for lab := range labs {
				bump(unique, db.VirusType(), lab, "", continent)
			}
		}
	}
}

func bump(data map[statKey]int, virusType, lab, date, continent string) {
	data[statKey{VirusType: virusType, Lab: orAll(lab), Date: orAll(date), Continent: orAll(continent)}]++
	data[statKey{VirusType: virusType, Lab: "all", Date: "all", Continent: "all"}]++
}

func orAll(s string) string {
	if s == "" {
		return "all"
	}

	return s
}

func flatten(data map[statKey]int) map[string]int {
	out := make(map[string]int, len(data))
	for k, v := range data {
		out[fmt.Sprintf("%s|%s|%s|%s", k.VirusType, k.Lab, k.Date, k.Continent)] = v
	}

	return out
}

func report(data map[statKey]int, name string) {
	fmt.Printf("\n%s:\n", name)
	for _, vt := range virusTypes {
		if n, ok := data[statKey{VirusType: vt, Lab: "all", Date: "all", Continent: "all"}]; ok {
			fmt.Printf("  %-9s: %d\n", vt, n)
		}
	}
}
