package query

import "github.com/acorg/hidb5/record"

// AntigenIndex resolves a's section index, for callers (e.g. the vaccine
// resolver) that need to pass it to HomologousSera after locating the
// antigen by name.
func (e *Engine) AntigenIndex(a record.Antigen) (uint32, bool) {
	i, ok := e.db.Antigens.IndexOf(a)
	if !ok {
		return 0, false
	}

	return uint32(i), true //nolint:gosec
}
