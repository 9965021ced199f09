// Package registry is the process-wide, per-subtype lazy database cache
// spec §4.4 describes: a virus-type string maps to a file name under a
// configurable directory, opened (and mmap'd, via hidb.OpenFile) on first
// request and pinned for the registry's lifetime thereafter.
//
// mebo itself has no registry -- it is pure storage -- so this package is
// grounded on the teacher's lazy, once-initialized blob_set construction
// pattern (github.com/arloliu/mebo/blob/blob_set.go), generalized to a
// sync.Mutex-guarded map of independently-opened databases, per spec §4.4
// and §9's "model it as an explicit context object ... expose a
// convenience accessor that lazily binds to a default context."
package registry

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/acorg/hidb5/hidb"
	"github.com/acorg/hidb5/internal/errs"
)

// Registry lazily opens and caches one Database per normalized virus-type
// code. Setup must be called before the first Get (spec §5: "setup()
// writes configuration before any get() call"); Get itself is safe for
// concurrent use (spec §5: "get() lazily populates the map under the
// caller's synchronisation ... implementers may choose an internal
// mutex" -- this one does).
type Registry struct {
	dir string

	mu    sync.Mutex
	dbs   map[string]*hidb.Database
	close map[string]func() error
}

// New creates a Registry rooted at dir. Most callers use the package-level
// Default/Setup instead; New exists for tests and for processes that want
// more than one independently-configured registry.
func New(dir string) *Registry {
	return &Registry{dir: dir, dbs: make(map[string]*hidb.Database), close: make(map[string]func() error)}
}

// Get returns the database for virusType, opening and caching it on first
// request. virusType is normalized per spec §4.4: "A(H1N1)"/"H1" -> h1,
// "A(H3N2)"/"H3" -> h3, "B" -> b. An unrecognized virus type is a
// recoverable ErrNoHiDbForVirusType (spec §7).
func (r *Registry) Get(virusType string) (*hidb.Database, error) {
	code, ok := normalizeVirusType(virusType)
	if !ok {
		return nil, errs.ErrNoHiDbForVirusType
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if db, ok := r.dbs[code]; ok {
		return db, nil
	}

	path := filepath.Join(r.dir, fileName(code))

	db, closeFn, err := hidb.OpenFile(path)
	if err != nil {
		return nil, err
	}

	r.dbs[code] = db
	r.close[code] = closeFn

	return db, nil
}

// Close unmaps every database this registry has opened. Safe to call once
// all Database handles derived from it are no longer in use.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var first error
	for code, closeFn := range r.close {
		if err := closeFn(); err != nil && first == nil {
			first = err
		}
		delete(r.close, code)
		delete(r.dbs, code)
	}

	return first
}

// fileName is the on-disk name for a normalized virus-type code, following
// the "hidb5.<code>.bin" convention (the original source's HiDbSet used
// "hidb5.<code>.json.xz"; the binary container replaces the JSON+xz pair,
// and .xz itself is outside this module's wired codec set -- see
// DESIGN.md).
func fileName(code string) string {
	return "hidb5." + code + ".bin"
}

func normalizeVirusType(virusType string) (string, bool) {
	switch virusType {
	case "A(H1N1)", "H1":
		return "h1", true
	case "A(H3N2)", "H3":
		return "h3", true
	case "B":
		return "b", true
	default:
		return "", false
	}
}

// DefaultDir forms the default database directory, $HOME/AD/data (spec
// §6 "Environment").
func DefaultDir() string {
	return filepath.Join(os.Getenv("HOME"), "AD", "data")
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Setup configures the package-level default registry's root directory. It
// must be called (if at all) before the first Default()/Get() call (spec
// §5: one-shot configuration phase); calling it again has no effect once
// Default has already bound the instance.
func Setup(dir string) {
	defaultOnce.Do(func() { defaultReg = New(dir) })
}

// Default returns the process-wide registry, lazily binding one rooted at
// DefaultDir() if Setup was never called.
func Default() *Registry {
	defaultOnce.Do(func() { defaultReg = New(DefaultDir()) })
	return defaultReg
}
