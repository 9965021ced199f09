// Command hidb5-dates reports the date range covered by a database's
// antigen collection dates and a per-year histogram, grounded on
// original_source/cc/hidb5-dates.cc.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/acorg/hidb5/hidb"
	"github.com/acorg/hidb5/record"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: hidb5-dates FILE")
		return 1
	}

	db, closeFn, err := hidb.OpenFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}
	if closeFn != nil {
		defer closeFn()
	}

	var dates []string
	years := map[string]int{}

	for i := 0; i < db.Antigens.Count(); i++ {
		a := db.Antigens.At(i)
		for _, d := range a.Dates() {
			compact := record.FormatDateCompact(d)[:6]
			dates = append(dates, compact)
			years[compact[:4]]++
		}
	}

	if len(dates) == 0 {
		fmt.Println("Dates: (none)")
		return 0
	}

	sort.Strings(dates)
	fmt.Printf("Dates: %s .. %s\n", dates[0], dates[len(dates)-1])

	yearKeys := make([]string, 0, len(years))
	for y := range years {
		yearKeys = append(yearKeys, y)
	}
	sort.Strings(yearKeys)

	fmt.Print("Years: {")
	for i, y := range yearKeys {
		if i > 0 {
			fmt.Print(", ")
		}
		fmt.Printf("%s: %d", y, years[y])
	}
	fmt.Println("}")

	return 0
}
