// Command hidb-make builds a hidb5 binary container from one or more chart
// files (spec §6 "CLI surface": "hidb-make OUTFILE CHART... -- build a
// database from one or more charts; exit 0 on success, 2 on error"),
// grounded on original_source/cc/hidb-make.cc's HidbMaker (args: output
// file, then one or more chart inputs).
//
// Chart parsing itself is an external collaborator this repository does
// not own (spec §1, §6); this tool reads each input as JSON decoding
// directly into chart.SimpleTable, the reference Table implementation
// chart/simple.go ships for exactly this purpose. A production deployment
// wires its own chart format behind the same interface.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/acorg/hidb5/build"
	"github.com/acorg/hidb5/chart"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: hidb-make OUTFILE CHART...")
		return 2
	}

	outPath := args[0]
	chartPaths := args[1:]

	b := build.New()
	for _, path := range chartPaths {
		if err := addChartFile(b, path); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s: %v\n", path, err)
			return 2
		}
	}

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 2
	}
	defer out.Close()

	if err := b.Save(out); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 2
	}

	return 0
}

func addChartFile(b *build.Builder, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var tables []chart.SimpleTable
	if err := json.Unmarshal(data, &tables); err != nil {
		// Fall back to a single table per file, the common case for a
		// one-table-per-chart source.
		var single chart.SimpleTable
		if err2 := json.Unmarshal(data, &single); err2 != nil {
			return err
		}
		tables = []chart.SimpleTable{single}
	}

	for _, t := range tables {
		if err := b.Add(t); err != nil {
			return err
		}
	}

	return nil
}
