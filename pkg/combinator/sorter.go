package combinator

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/limaJavier/combinations/pkg/model"
)

type SortMode string

const (
	ComparatorSort SortMode = "comparator"
	QuickSort      SortMode = "quicksort"
)

type UnknownSortModeError struct {
	Mode string
}

func (err UnknownSortModeError) Error() string {
	return fmt.Sprintf("unknown sort mode \"%v\": expected \"%v\" or \"%v\"", err.Mode, ComparatorSort, QuickSort)
}

// ParseSortMode defaults to the comparator sort when value is empty
func ParseSortMode(value string) (SortMode, error) {
	switch mode := SortMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case "":
		return ComparatorSort, nil
	case ComparatorSort, QuickSort:
		return mode, nil
	}
	return "", UnknownSortModeError{Mode: value}
}

// SortByWeight orders the combinations in place by descending weight. Ties are left in no particular order
func SortByWeight(combinations []model.Combination, mode SortMode) error {
	switch mode {
	case ComparatorSort, "":
		slices.SortStableFunc(combinations, func(a, b model.Combination) int {
			return cmp.Compare(b.Weight, a.Weight)
		})
	case QuickSort:
		QuickSortFunc(
			combinations,
			func(combination model.Combination) float64 { return combination.Weight },
			func(item, pivot float64) bool { return item > pivot },
		)
	default:
		return UnknownSortModeError{Mode: string(mode)}
	}
	return nil
}

// QuickSortFunc reorders items in place using Lomuto's partition scheme with the rightmost element as pivot.
// Items whose key goes left of the pivot's key (according to goesLeft) end up before it.
// Pending ranges are kept in a work-list instead of the call stack.
// Keys that tie with the pivot all stay on one side, so inputs with many equal keys (e.g. every weight 0 when
// there are no priorities) degrade to quadratic time; the comparator sort is the one to use for large tied outputs
//
// Example:
//
//	// Ascending order
//	QuickSortFunc(numbers, func(number int) int { return number }, func(item, pivot int) bool { return item < pivot })
func QuickSortFunc[T any, K any](items []T, key func(item T) K, goesLeft func(item, pivot K) bool) {
	ranges := [][2]int{{0, len(items) - 1}}

	for len(ranges) > 0 {
		bounds := ranges[len(ranges)-1]
		ranges = ranges[:len(ranges)-1]

		left, right := bounds[0], bounds[1]
		if left >= right { // Empty and single element ranges are already sorted
			continue
		}

		pivot := partition(items, left, right, key, goesLeft)
		ranges = append(ranges, [2]int{left, pivot - 1}, [2]int{pivot + 1, right})
	}
}

func partition[T any, K any](items []T, left, right int, key func(item T) K, goesLeft func(item, pivot K) bool) int {
	pivot := key(items[right])

	store := left
	for i := left; i < right; i++ {
		if goesLeft(key(items[i]), pivot) {
			items[store], items[i] = items[i], items[store]
			store++
		}
	}
	items[store], items[right] = items[right], items[store]

	return store
}
