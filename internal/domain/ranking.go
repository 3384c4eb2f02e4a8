package domain

import (
	"slices"
	"strings"
)

// Most play time first, ties broken by ascending UUID
func ComparePlayerRecords(a, b PlayerRecord) int {
	if a.PlayTicks != b.PlayTicks {
		if a.PlayTicks > b.PlayTicks {
			return -1
		}
		return 1
	}
	return strings.Compare(a.UUID, b.UUID)
}

// Returns a sorted copy of the records
func RankPlayerRecords(records []PlayerRecord) []PlayerRecord {
	ranked := slices.Clone(records)
	slices.SortFunc(ranked, ComparePlayerRecords)
	return ranked
}

func SelectTop(ranked []PlayerRecord, n int) []PlayerRecord {
	if n <= 0 {
		return []PlayerRecord{}
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n:n]
}
