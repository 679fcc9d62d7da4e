// Package partition groups clean records by warehouse and orders the keys
// the way they are presented: all-digit keys first by numeric value, then
// every other key lexicographically.
package partition

import (
	"sort"
	"strings"

	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/model"
)

// Build groups records by exact Warehouse equality. Each partition keeps
// the relative order of its records.
func Build(records []model.CleanRecord) *model.PartitionSet {
	groups := make(map[string][]model.CleanRecord)
	appearance := make([]string, 0)
	for _, rec := range records {
		if _, ok := groups[rec.Warehouse]; !ok {
			appearance = append(appearance, rec.Warehouse)
		}
		groups[rec.Warehouse] = append(groups[rec.Warehouse], rec)
	}

	keys := SortKeys(appearance)
	parts := make([]model.Partition, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, model.Partition{Key: k, Records: groups[k]})
	}
	return model.NewPartitionSet(parts)
}

// ListWarehouses returns the distinct warehouse keys in presentation order.
func ListWarehouses(records []model.CleanRecord) []string {
	seen := make(map[string]struct{})
	keys := make([]string, 0)
	for _, rec := range records {
		if _, ok := seen[rec.Warehouse]; ok {
			continue
		}
		seen[rec.Warehouse] = struct{}{}
		keys = append(keys, rec.Warehouse)
	}
	return SortKeys(keys)
}

// SortKeys returns a sorted copy of keys. Keys with equal numeric value
// ("7" and "007") keep their input order.
func SortKeys(keys []string) []string {
	out := make([]string, len(keys))
	copy(out, keys)
	sort.SliceStable(out, func(i, j int) bool {
		return Less(out[i], out[j])
	})
	return out
}

// Less reports whether warehouse key a sorts before b.
func Less(a, b string) bool {
	an, bn := IsNumericKey(a), IsNumericKey(b)
	switch {
	case an && bn:
		return compareDigits(a, b) < 0
	case an:
		return true
	case bn:
		return false
	default:
		return a < b
	}
}

// IsNumericKey reports whether key is non-empty and consists only of ASCII digits.
func IsNumericKey(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		if key[i] < '0' || key[i] > '9' {
			return false
		}
	}
	return true
}

// compareDigits compares two digit strings by integer value without
// parsing, so keys longer than int64 still order correctly.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
