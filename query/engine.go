// Package query implements name-parsed lookup, fuzzy fallback, lab-id
// search, date range scan, homologous-serum resolution, and table grouping
// over an opened hidb5 database (spec §4.3).
//
// mebo itself is pure storage with no query layer; this package is
// grounded on the teacher's indexMaps[T].GetByID/GetByName pattern
// (github.com/arloliu/mebo/blob/blob.go), generalized from an exact hash
// lookup to a sort.Search lower-bound lookup over a sorted section, since
// hidb5 records are identity-sorted rather than hash-indexed on disk.
package query

import (
	"log"
	"os"

	"github.com/acorg/hidb5/hidb"
	"github.com/acorg/hidb5/internal/options"
	"github.com/acorg/hidb5/locationdb"
	"github.com/acorg/hidb5/virusname"
)

// Engine performs searches and lookups against one opened database.
type Engine struct {
	db *hidb.Database

	fuzzy    bool
	locDB    locationdb.DB
	logger   *log.Logger
	splitter virusname.Splitter
}

// New creates an Engine over db.
func New(db *hidb.Database, opts ...Option) *Engine {
	e := &Engine{db: db, splitter: virusname.Default(), logger: log.New(os.Stderr, "", log.LstdFlags)}

	_ = options.Apply(e, opts...)

	return e
}

func (e *Engine) logf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Printf(format, args...)
	}
}
