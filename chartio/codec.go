package chartio

import "fmt"

// Compressor compresses a byte stream for storage or transport.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. Every built-in codec below implements it.
type Codec interface {
	Compressor
	Decompressor
}

var builtin = map[string]Codec{
	"none": NoOpCodec{},
	"zstd": ZstdCodec{},
	"s2":   S2Codec{},
	"lz4":  LZ4Codec{},
}

// Register adds (or replaces) a named codec in the built-in set, letting a
// caller plug in a format this package doesn't ship -- an `.xz` codec, for
// instance, which spec §6 names as the on-disk suffix but which no library
// in this module's dependency surface implements (see DESIGN.md).
func Register(name string, codec Codec) {
	builtin[name] = codec
}

// Get looks up a codec by name ("none", "zstd", "s2", "lz4", or any name a
// caller has Register'd).
func Get(name string) (Codec, error) {
	codec, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("chartio: unknown codec %q", name)
	}

	return codec, nil
}
