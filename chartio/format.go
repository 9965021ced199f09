package chartio

import (
	"bytes"

	"github.com/acorg/hidb5/internal/bin"
)

// Format is the on-disk shape of a decompressed hidb5 file (spec §6
// "File-version autodetection").
type Format int

const (
	FormatUnknown Format = iota
	FormatBinary
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatBinary:
		return "binary"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// jsonVersionKey and jsonVersionValue are checked independently rather than
// as one joined literal: a hand-written JSON writer puts a space after the
// colon (the form spec §6 quotes directly), while encoding/json's compact
// Encoder -- what build.SaveJSON uses -- does not. Requiring both
// substrings present, in either spacing, detects files from both.
var (
	jsonVersionKey   = []byte(`"  version"`)
	jsonVersionValue = []byte(`"hidb-v5"`)
)

// DetectFormat reports whether data is a binary container, a "hidb-v5"
// JSON intermediate file, or neither -- presence of the binary signature at
// byte 0 selects binary; presence of the JSON version marker selects JSON;
// otherwise unknown (spec §6, §7 BadFile).
func DetectFormat(data []byte) Format {
	if bin.HasSignature(data) {
		return FormatBinary
	}
	if bytes.Contains(data, jsonVersionKey) && bytes.Contains(data, jsonVersionValue) {
		return FormatJSON
	}

	return FormatUnknown
}
