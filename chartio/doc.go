// Package chartio is the (de)compression and file-format-detection layer
// hidb5's CLI tools sit on top of. The core packages (hidb, record, build,
// query) never import it -- compression is explicitly an external service
// (spec §1 Non-goals, §6: "the core treats (de)compression as an external
// service and operates on the decompressed byte stream") -- so chartio lives
// one layer up, alongside cmd/*, and is what a tool like hidb5-convert uses
// to go from an on-disk chart/container file to the decompressed bytes the
// core actually consumes.
//
// Grounded on the teacher's compress package (Compressor/Decompressor/Codec
// interfaces, a factory keyed by an enum, a built-in registry map) and its
// format package (the enum + String() pattern), generalized so an external
// caller can register an additional codec (e.g. for the `.xz` suffix spec §6
// names, which none of this module's wired libraries implement -- see
// DESIGN.md) without chartio itself depending on it.
package chartio
