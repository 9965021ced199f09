package chartio

// NoOpCodec passes data through unchanged, for already-decompressed input
// or for measuring overhead without a real algorithm in the loop.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

func (NoOpCodec) Compress(data []byte) ([]byte, error)   { return data, nil }
func (NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
