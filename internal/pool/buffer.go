// Package pool provides a pooled growable byte buffer used by the encoder's
// single forward sweep over antigens, sera, and tables (spec §4.2 step 4).
//
// Reusing one buffer across the three sections of a build avoids repeated
// large allocations when a build is run many times in a row, e.g. from the
// hidb5-convert or hidb-make command loop over several subtypes.
package pool

import "sync"

// DefaultSize is the buffer size handed out by the pool before any growth.
// A typical subtype's antigen+serum+table payload is a few hundred KiB, so
// this undershoots on purpose -- Grow handles the rest.
const DefaultSize = 1024 * 64 // 64KiB

// MaxRetained is the largest buffer capacity the pool will keep around.
// Builds of unusually large subtypes (e.g. a combined multi-year B/Victoria
// file) can grow well past this; such buffers are simply discarded instead
// of bloating the pool for every future build.
const MaxRetained = 1024 * 1024 * 16 // 16MiB

// Buffer is a growable byte buffer with pool-friendly Reset semantics.
type Buffer struct {
	B []byte
}

// New creates a Buffer with the given starting capacity.
func New(size int) *Buffer {
	return &Buffer{B: make([]byte, 0, size)}
}

// Bytes returns the buffer's contents.
func (b *Buffer) Bytes() []byte { return b.B }

// Len returns the number of bytes currently written.
func (b *Buffer) Len() int { return len(b.B) }

// Reset empties the buffer but keeps its backing array.
func (b *Buffer) Reset() { b.B = b.B[:0] }

// Grow ensures at least n more bytes can be appended without reallocating.
func (b *Buffer) Grow(n int) {
	if cap(b.B)-len(b.B) >= n {
		return
	}

	growBy := DefaultSize
	if cap(b.B) > 4*DefaultSize {
		growBy = cap(b.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	next := make([]byte, len(b.B), len(b.B)+growBy)
	copy(next, b.B)
	b.B = next
}

// Write appends data to the buffer, growing it as needed.
func (b *Buffer) Write(data []byte) (int, error) {
	b.Grow(len(data))
	b.B = append(b.B, data...)

	return len(data), nil
}

// WriteByte appends a single byte, growing the buffer if needed.
func (b *Buffer) WriteByte(c byte) error {
	b.Grow(1)
	b.B = append(b.B, c)

	return nil
}

// PadTo appends zero bytes until len(B) is a multiple of align.
func (b *Buffer) PadTo(align int) {
	rem := len(b.B) % align
	if rem == 0 {
		return
	}

	pad := align - rem
	b.Grow(pad)
	for range pad {
		b.B = append(b.B, 0)
	}
}

var bufferPool = sync.Pool{
	New: func() any { return New(DefaultSize) },
}

// Get retrieves a Buffer from the default pool.
func Get() *Buffer {
	buf, _ := bufferPool.Get().(*Buffer)
	return buf
}

// Put returns a Buffer to the default pool. Buffers that grew past
// MaxRetained are discarded rather than pooled.
func Put(buf *Buffer) {
	if buf == nil {
		return
	}

	if cap(buf.B) > MaxRetained {
		return
	}

	buf.Reset()
	bufferPool.Put(buf)
}
