package chartio

import (
	"os"
	"path/filepath"
	"strings"
)

// suffixCodecs maps a recognized file-extension suffix to the codec that
// decompresses it. ".xz" is deliberately absent: no library in this
// module's dependency surface speaks that container format (see
// DESIGN.md); a caller that needs it can chartio.Register an external
// implementation under that key and this map would need to grow the same
// suffix entry to match.
var suffixCodecs = map[string]string{
	".zst":  "zstd",
	".s2":   "s2",
	".lz4":  "lz4",
	".json": "none",
	".bin":  "none",
}

// Load reads path, decompresses it using the codec implied by its
// extension, and reports which of the two on-disk shapes (binary container
// or "hidb-v5" JSON) the decompressed bytes are (spec §6 "File-version
// autodetection"). Callers that already know the shape they want can skip
// this and call hidb.Open / hidb.OpenFile or json.Unmarshal directly.
func Load(path string) ([]byte, Format, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, FormatUnknown, err
	}

	codecName, ok := suffixCodecs[strings.ToLower(filepath.Ext(path))]
	if !ok {
		codecName = "none"
	}

	codec, err := Get(codecName)
	if err != nil {
		return nil, FormatUnknown, err
	}

	data, err := codec.Decompress(raw)
	if err != nil {
		return nil, FormatUnknown, err
	}

	return data, DetectFormat(data), nil
}
