// Package hidb ties the three record sections (antigens, sera, tables)
// together into one immutable Database over a single byte buffer, the way
// the teacher package's blob_set.go ties a NumericBlob and a TextBlob
// together into one BlobSet opened from one set of related buffers
// (github.com/arloliu/mebo/blob/blob_set.go). Here there is exactly one
// buffer holding all three sections back to back, per spec §3 "Container".
package hidb

import (
	"os"

	"github.com/acorg/hidb5/internal/bin"
	"github.com/acorg/hidb5/record"
	"github.com/edsrzf/mmap-go"
)

// Database is an opened, immutable hidb5 container. It holds a shared
// reference to the underlying byte buffer; Antigen/Serum/Table handles
// returned by its views are valid for as long as the Database (and the
// buffer behind it) is alive, per spec §5 "Resource ownership".
type Database struct {
	buf       []byte
	virusType string

	Antigens record.Antigens
	Sera     record.Sera
	Tables   record.Tables
}

// Open validates the signature and parses the header and three sections out
// of data. data is retained (not copied) -- callers that mmap a file should
// keep the mapping alive for the Database's lifetime.
func Open(data []byte) (*Database, error) {
	header, err := bin.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	antigens, err := record.NewAntigens(data, int(header.AntigenSectionOffset))
	if err != nil {
		return nil, err
	}

	sera, err := record.NewSera(data, int(header.SerumSectionOffset))
	if err != nil {
		return nil, err
	}

	tables, err := record.NewTables(data, int(header.TableSectionOffset))
	if err != nil {
		return nil, err
	}

	return &Database{
		buf:       data,
		virusType: header.VirusType,
		Antigens:  antigens,
		Sera:      sera,
		Tables:    tables,
	}, nil
}

// OpenFile memory-maps path read-only and opens a Database directly over
// the mapping -- the "queried via mmap without deserialization" path spec
// §1 describes, as opposed to Open, which works from bytes already in
// memory (e.g. a test fixture or a decompressed buffer). The returned
// close func unmaps the file; callers must call it exactly once, after
// every handle derived from the Database is done with it (spec §5
// "Resource ownership").
func OpenFile(path string) (*Database, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, nil, err
	}

	db, err := Open([]byte(m))
	if err != nil {
		_ = m.Unmap()
		return nil, nil, err
	}

	return db, m.Unmap, nil
}

// VirusType returns the virus type this database was built for (e.g.
// "A(H3N2)", "A(H1N1)", "B"), computed by the builder as the most frequent
// virus-type string across all ingested antigens and sera (spec §4.2).
func (d *Database) VirusType() string { return d.virusType }

// Bytes returns the raw backing buffer. Exposed for callers that want to
// write the container back out unmodified (e.g. a compression wrapper).
func (d *Database) Bytes() []byte { return d.buf }
