package record

import "fmt"

// MinDate and MaxDate bound the half-open date range spec §4.3 "Date range"
// and §3's date invariant use as defaults: [10000101, 30000101).
const (
	MinDate = 10000101
	MaxDate = 30000101
)

// FormatDateISO formats a YYYYMMDD integer as "YYYY-MM-DD".
func FormatDateISO(d uint32) string {
	return fmt.Sprintf("%04d-%02d-%02d", d/10000, (d/100)%100, d%100)
}

// FormatDateCompact formats a YYYYMMDD integer as "YYYYMMDD".
func FormatDateCompact(d uint32) string {
	return fmt.Sprintf("%08d", d)
}
