package query

import "sort"

// lowerBound returns the smallest i in [0,n) for which less(i) is false
// (i.e. the first element not less than the target), the textbook
// branch-free binary search spec §4.1/§4.3 calls for over a sorted offset
// table. It is the shared primitive every range-finder below narrows with.
func lowerBound(n int, less func(i int) bool) int {
	return sort.Search(n, func(i int) bool { return !less(i) })
}

// exactRange returns the contiguous [lo,hi) run of records within [base,
// limit) for which key(i) == target, given key is non-decreasing over that
// range.
func exactRange(base, limit int, key func(i int) string, target string) (int, int) {
	lo := base + lowerBound(limit-base, func(i int) bool { return key(base+i) < target })
	hi := base + lowerBound(limit-base, func(i int) bool { return key(base+i) <= target })

	return lo, hi
}

// prefixRange returns the contiguous [lo,hi) run of records within [base,
// limit) whose key(i) has the given prefix, given key is non-decreasing
// over that range (spec §4.3: isolation-prefix fuzzy fallback).
func prefixRange(base, limit int, key func(i int) string, prefix string) (int, int) {
	lo := base + lowerBound(limit-base, func(i int) bool { return key(base+i) < prefix })
	upper := incrementString(prefix)
	hi := limit
	if upper != "" {
		hi = base + lowerBound(limit-base, func(i int) bool { return key(base+i) < upper })
	}

	return lo, hi
}

// incrementString returns the lexicographically smallest string strictly
// greater than every string having s as a prefix, by incrementing s's last
// byte (carrying into earlier bytes on overflow). Returns "" if s is empty
// or consists entirely of 0xFF bytes, meaning there is no finite upper
// bound -- callers treat that as "search to the end of the range".
func incrementString(s string) string {
	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != 0xFF {
			b[i]++
			return string(b[:i+1])
		}
	}

	return ""
}
