package chartio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecsRoundTrip(t *testing.T) {
	payload := []byte("the quick brown fox jumps over the lazy dog, repeated: " +
		"the quick brown fox jumps over the lazy dog")

	for _, name := range []string{"none", "zstd", "s2", "lz4"} {
		t.Run(name, func(t *testing.T) {
			r := require.New(t)

			codec, err := Get(name)
			r.NoError(err)

			compressed, err := codec.Compress(payload)
			r.NoError(err)

			got, err := codec.Decompress(compressed)
			r.NoError(err)
			r.Equal(payload, got)
		})
	}
}

func TestCodecsEmptyInput(t *testing.T) {
	for _, name := range []string{"none", "zstd", "s2", "lz4"} {
		t.Run(name, func(t *testing.T) {
			r := require.New(t)

			codec, err := Get(name)
			r.NoError(err)

			compressed, err := codec.Compress(nil)
			r.NoError(err)

			got, err := codec.Decompress(compressed)
			r.NoError(err)
			r.Empty(got)
		})
	}
}

func TestGetUnknownCodec(t *testing.T) {
	r := require.New(t)

	_, err := Get("xz")
	r.Error(err)
}

func TestRegisterAddsCodec(t *testing.T) {
	r := require.New(t)

	Register("test-passthrough", NoOpCodec{})
	codec, err := Get("test-passthrough")
	r.NoError(err)

	out, err := codec.Compress([]byte("abc"))
	r.NoError(err)
	r.Equal([]byte("abc"), out)
}
