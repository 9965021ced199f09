package record

import "github.com/acorg/hidb5/internal/endian"

// littleEndianEngine is the engine used to parse section offset tables.
// hidb5 containers are always little-endian on disk (spec §6).
func littleEndianEngine() endian.Engine { return endian.Little() }
