package chartio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want Format
	}{
		{"binary signature", []byte("HIDB0500" + "rest of container"), FormatBinary},
		{"json with spaced marker", []byte(`{"  version": "hidb-v5", "a": []}`), FormatJSON},
		{"json with compact marker", []byte(`{"  version":"hidb-v5","a":[]}`), FormatJSON},
		{"neither", []byte(`{"foo": "bar"}`), FormatUnknown},
		{"empty", nil, FormatUnknown},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, DetectFormat(c.data))
		})
	}
}

func TestFormatString(t *testing.T) {
	r := require.New(t)
	r.Equal("binary", FormatBinary.String())
	r.Equal("json", FormatJSON.String())
	r.Equal("unknown", FormatUnknown.String())
}
