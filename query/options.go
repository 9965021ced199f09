package query

import (
	"log"

	"github.com/acorg/hidb5/internal/options"
	"github.com/acorg/hidb5/locationdb"
	"github.com/acorg/hidb5/virusname"
)

// Option configures an Engine, the same generic functional-options shape
// build.Option uses (github.com/arloliu/mebo/internal/options).
type Option = options.Option[*Engine]

// WithFuzzy enables isolation-prefix fallback (spec §4.3): when an exact
// isolation filter yields no match, the engine retries treating the query
// isolation as a prefix of the stored one. Off by default -- spec's
// Non-goals exclude "fuzzy matching beyond isolation-prefix fallback", so
// this is the only fuzziness the engine ever performs, and only when asked.
func WithFuzzy() Option {
	return options.NoError[*Engine](func(e *Engine) { e.fuzzy = true })
}

// WithLocationNormalize routes the location token of every search query
// through db before searching (spec §4.3: "Callers may request location
// normalization").
func WithLocationNormalize(db locationdb.DB) Option {
	return options.NoError[*Engine](func(e *Engine) { e.locDB = db })
}

// WithLogger directs the engine's warnings (spec §4.3: "more -> warn and
// skip" on an over-long slash-split query) to logger instead of standard
// error. A nil logger discards them.
func WithLogger(logger *log.Logger) Option {
	return options.NoError[*Engine](func(e *Engine) { e.logger = logger })
}

// WithNameSplitter overrides the generic virus-name grammar tried before
// the CDC/slash-split fallbacks. Defaults to virusname.Default().
func WithNameSplitter(s virusname.Splitter) Option {
	return options.NoError[*Engine](func(e *Engine) { e.splitter = s })
}
