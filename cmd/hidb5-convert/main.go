// Command hidb5-convert re-serializes a "hidb-v5" JSON intermediate file as
// a binary container, grounded on original_source/cc/hidb5-convert.cc
// (load hidb5.json.xz, hidb.save(output)).
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/acorg/hidb5/build"
	"github.com/acorg/hidb5/chartio"
	"github.com/acorg/hidb5/intermediate"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hidb5-convert IN.json OUT.bin")
		return 1
	}

	data, format, err := chartio.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}
	if format != chartio.FormatJSON {
		fmt.Fprintf(os.Stderr, "ERROR: %s is not a hidb-v5 JSON intermediate file\n", args[0])
		return 1
	}

	var root intermediate.Root
	if err := json.Unmarshal(data, &root); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}

	out, err := os.Create(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}
	defer out.Close()

	if err := build.EncodeIntermediate(root, out); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}

	return 0
}
