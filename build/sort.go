package build

import "sort"

func sortedStringSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

func sortedTableSet(set map[*arenaTable]struct{}) []uint32 {
	out := make([]uint32, 0, len(set))
	for t := range set {
		out = append(out, t.index)
	}
	sortUint32(out)

	return out
}

func sortUint32(s []uint32) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}
