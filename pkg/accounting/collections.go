package accounting

import (
	"fmt"
	"sort"
	"strconv"
)

// GroupBy buckets items by key.
func GroupBy[T any](items []T, key func(T) string) map[string][]T {
	out := make(map[string][]T)
	for _, item := range items {
		k := key(item)
		out[k] = append(out[k], item)
	}
	return out
}

// Order is a sort direction.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// SortByKey returns a sorted copy of rows ordered by rows[i][key]. Missing
// values go last when ascending and first when descending. Numeric values
// compare numerically, everything else as text.
func SortByKey[M ~map[string]any](rows []M, key string, order Order) []M {
	out := append([]M(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i][key], out[j][key]
		if a == nil && b == nil {
			return false
		}
		if a == nil {
			return order == Desc
		}
		if b == nil {
			return order != Desc
		}
		c := compareValues(a, b)
		if order == Desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func compareValues(a, b any) int {
	af, aok := numeric(a)
	bf, bok := numeric(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	}
	as, bs := fmt.Sprint(a), fmt.Sprint(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	}
	return 0
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}
