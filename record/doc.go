// Package record provides zero-copy handle types over the antigen, serum,
// and table records of a hidb5 binary container.
//
// A handle is a plain (buf []byte, offset int) pair -- a borrowed view, not
// an owner -- copyable and valid for as long as the underlying buffer is
// alive, exactly as spec §3's "Lifecycles" and §9's "pointer-into-bytes
// views" describe. This plays the same role the teacher package's
// NumericBlob/TextBlob handle types play over a mebo blob's byte buffer
// (github.com/arloliu/mebo/blob/numeric_blob.go), generalized from
// one indexed section to the antigen/serum/table triple this format needs.
//
// None of the accessors here allocate for the common case: string accessors
// return sub-slices of the backing buffer, and list accessors return small
// freshly-allocated slices only where the data must be materialized (e.g.
// decoded uint32 indices).
package record
