//go:build !nobuild

package chartio

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

var zstdEncoderPool = sync.Pool{
	New: func() any {
		w, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault), zstd.WithEncoderCRC(false))
		if err != nil {
			panic(fmt.Sprintf("chartio: failed to create zstd encoder: %v", err))
		}

		return w
	},
}

var zstdDecoderPool = sync.Pool{
	New: func() any {
		r, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1), zstd.WithDecoderLowmem(false))
		if err != nil {
			panic(fmt.Sprintf("chartio: failed to create zstd decoder: %v", err))
		}

		return r
	},
}

// ZstdCodec offers the best compression ratio of the built-in set, at the
// cost of speed; the default pick for cold storage of archived charts.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	enc := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(enc)

	return enc.EncodeAll(data, nil), nil
}

func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dec := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(dec)

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("chartio: zstd decompress: %w", err)
	}

	return out, nil
}
