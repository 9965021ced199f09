// Package errs holds the sentinel errors shared by the bin, build, query,
// and registry packages so callers can test for a specific failure kind with
// errors.Is regardless of which package raised it.
package errs

import "errors"

var (
	// ErrBadFile names the case of a byte stream that has neither the
	// binary signature nor the JSON version marker. No package in this
	// module returns it: hidb.Open reports a missing signature as
	// ErrInvalidSignature, and chartio.DetectFormat reports such bytes as
	// FormatUnknown.
	ErrBadFile = errors.New("hidb5: not a hidb file (no signature, no JSON version marker)")

	// ErrInvalidDate is returned when a date string is not YYYYMMDD or
	// YYYY-MM-DD, or the parsed integer falls outside [10000101, 30000101).
	ErrInvalidDate = errors.New("hidb5: invalid date")

	// ErrOffsetOverflow is returned during encoding when a field's byte
	// offset within a record payload would not fit in a single byte.
	ErrOffsetOverflow = errors.New("hidb5: encoded field offset exceeds 255 bytes")

	// ErrUnrecognizedName is returned when a chart antigen/serum name
	// matches neither the generic VT/HOST/LOC/ISO/YEAR grammar nor either
	// CDC short form.
	ErrUnrecognizedName = errors.New("hidb5: unrecognized antigen/serum name")

	// ErrDuplicateTable is returned when a chart's table identity tuple
	// collides with a table already added to the builder.
	ErrDuplicateTable = errors.New("hidb5: duplicate table")

	// ErrEmptyTableIndexList is returned when an antigen or serum would be
	// encoded with zero tables.
	ErrEmptyTableIndexList = errors.New("hidb5: antigen or serum has no tables")

	// ErrNoHiDbForVirusType is returned by the registry when asked for a
	// virus type it does not know how to map to a file.
	ErrNoHiDbForVirusType = errors.New("hidb5: no database configured for virus type")

	// ErrNotFound represents an absent query result. Query methods never
	// return this error directly -- they return an empty slice or an "ok"
	// bool -- but it is exposed for callers composing their own sentinels.
	ErrNotFound = errors.New("hidb5: not found")

	// ErrInvalidHeaderSize is returned when a byte slice handed to a header
	// parser is shorter than the expected fixed size (or, for the container
	// header, declares a virus type longer than 7 bytes).
	ErrInvalidHeaderSize = errors.New("hidb5: invalid header size")

	// ErrInvalidSignature is returned when the 8-byte magic at the start of
	// a binary container does not match "HIDB0500".
	ErrInvalidSignature = errors.New("hidb5: invalid signature")

	// ErrTooManyAnnotations is returned when a record would require storing
	// more than 3 annotations.
	ErrTooManyAnnotations = errors.New("hidb5: at most 3 annotations are supported")

	// ErrTooManyLabIDs is returned when an antigen would require storing
	// more than 5 lab ids.
	ErrTooManyLabIDs = errors.New("hidb5: at most 5 lab ids are supported")

	// ErrSliceTooLong is returned when a variable-length field would exceed
	// 255 bytes, the maximum a single offset byte can express.
	ErrSliceTooLong = errors.New("hidb5: field exceeds 255 bytes")
)
