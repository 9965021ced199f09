package chartio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDetectsJSONThroughCodec(t *testing.T) {
	r := require.New(t)

	payload := []byte(`{"  version": "hidb-v5", "a": [], "s": [], "t": []}`)

	codec, err := Get("zstd")
	r.NoError(err)
	compressed, err := codec.Compress(payload)
	r.NoError(err)

	path := filepath.Join(t.TempDir(), "chart.zst")
	r.NoError(os.WriteFile(path, compressed, 0o644))

	data, format, err := Load(path)
	r.NoError(err)
	r.Equal(FormatJSON, format)
	r.Equal(payload, data)
}

func TestLoadUncompressedBinary(t *testing.T) {
	r := require.New(t)

	path := filepath.Join(t.TempDir(), "db.bin")
	r.NoError(os.WriteFile(path, []byte("HIDB0500padding-to-make-it-longer"), 0o644))

	data, format, err := Load(path)
	r.NoError(err)
	r.Equal(FormatBinary, format)
	r.Equal([]byte("HIDB0500padding-to-make-it-longer"), data)
}
