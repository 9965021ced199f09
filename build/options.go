package build

import (
	"log"

	"github.com/acorg/hidb5/internal/options"
	"github.com/acorg/hidb5/virusname"
)

// Option configures a Builder, following the teacher's generic functional
// options pattern (github.com/arloliu/mebo/internal/options) rather than a
// hand-rolled one-off.
type Option = options.Option[*Builder]

// WithLogger directs the builder's diagnostics (records dropped for an
// offset overflow when WithWarnOnOverflow is set, homologous antigen names
// that cannot be parsed) to logger instead of standard error. A nil logger
// discards them.
func WithLogger(logger *log.Logger) Option {
	return options.NoError[*Builder](func(b *Builder) { b.logger = logger })
}

// WithWarnOnOverflow downgrades an offset overflow (spec §7: "Fatal for
// encoder") from a fatal Save error to a logged warning that drops the
// offending record. Off by default -- overflow is fatal unless a caller
// explicitly opts into the lenient behavior.
func WithWarnOnOverflow() Option {
	return options.NoError[*Builder](func(b *Builder) { b.warnOnOverflow = true })
}

// WithNameSplitter overrides the generic chart-name grammar the builder
// tries before falling back to the CDC short forms. Defaults to
// virusname.Default().
func WithNameSplitter(s virusname.Splitter) Option {
	return options.NoError[*Builder](func(b *Builder) { b.splitter = s })
}
