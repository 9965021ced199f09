package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/acorg/hidb5/internal/bin"
	"github.com/acorg/hidb5/internal/endian"
	"github.com/stretchr/testify/require"
)

// emptyContainer builds the smallest valid hidb5 binary container: a header
// plus three empty (zero-record) sections, enough for Registry.Get to open
// successfully without depending on the build package.
func emptyContainer(t *testing.T, virusType string) []byte {
	t.Helper()

	engine := endian.Little()
	section, _ := bin.EncodeOffsetTable(engine, nil)

	header := bin.Header{
		AntigenSectionOffset: bin.HeaderSize,
		SerumSectionOffset:   bin.HeaderSize + uint32(len(section)),
		TableSectionOffset:   bin.HeaderSize + uint32(2*len(section)),
		VirusType:            virusType,
	}

	headerBytes, err := header.Bytes()
	require.NoError(t, err)

	buf := append([]byte{}, headerBytes...)
	buf = append(buf, section...)
	buf = append(buf, section...)
	buf = append(buf, section...)

	return buf
}

func TestNormalizeVirusType(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"A(H1N1)", "h1", true},
		{"H1", "h1", true},
		{"A(H3N2)", "h3", true},
		{"H3", "h3", true},
		{"B", "b", true},
		{"A(H5N1)", "", false},
		{"", "", false},
	}

	for _, c := range cases {
		got, ok := normalizeVirusType(c.in)
		require.Equal(t, c.ok, ok, c.in)
		require.Equal(t, c.want, got, c.in)
	}
}

func TestFileName(t *testing.T) {
	require.Equal(t, "hidb5.h1.bin", fileName("h1"))
	require.Equal(t, "hidb5.h3.bin", fileName("h3"))
	require.Equal(t, "hidb5.b.bin", fileName("b"))
}

func TestRegistryGetOpensAndCaches(t *testing.T) {
	r := require.New(t)

	dir := t.TempDir()
	r.NoError(os.WriteFile(filepath.Join(dir, "hidb5.h3.bin"), emptyContainer(t, "A(H3N2)"), 0o644))

	reg := New(dir)
	defer reg.Close()

	db, err := reg.Get("A(H3N2)")
	r.NoError(err)
	r.Equal("A(H3N2)", db.VirusType())

	again, err := reg.Get("H3")
	r.NoError(err)
	r.Same(db, again)
}

func TestRegistryGetUnknownVirusType(t *testing.T) {
	r := require.New(t)

	reg := New(t.TempDir())
	_, err := reg.Get("A(H5N1)")
	r.Error(err)
}

func TestRegistryGetMissingFile(t *testing.T) {
	r := require.New(t)

	reg := New(t.TempDir())
	_, err := reg.Get("H1")
	r.Error(err)
}

func TestDefaultDirUsesHome(t *testing.T) {
	t.Setenv("HOME", "/tmp/fake-home")
	require.Equal(t, filepath.Join("/tmp/fake-home", "AD", "data"), DefaultDir())
}
