// Package endian provides the byte-order engine used to read and write the
// hidb5 binary container.
//
// The on-disk format is little-endian only (spec: all multi-byte integers are
// little-endian), but the reader and encoder are written against the Engine
// interface rather than calling encoding/binary directly, so that a
// big-endian dump produced on an exotic build host can still be decoded by
// byte-swapping on read, per the container's design notes.
package endian

import "encoding/binary"

// Engine combines ByteOrder and AppendByteOrder from encoding/binary into a
// single interface, satisfied by both binary.LittleEndian and
// binary.BigEndian.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Little returns the little-endian engine. This is the engine hidb5 always
// uses to encode new containers.
func Little() Engine {
	return binary.LittleEndian
}

// Big returns the big-endian engine, used only when decoding a container
// built on a big-endian host.
func Big() Engine {
	return binary.BigEndian
}
