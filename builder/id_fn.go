package builder

import (
	"fmt"
	"slices"
	"strconv"
)

// IDFn maps a zero-based index to a node name. It must be pure: the same
// idx always yields the same name.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PrefixIDFn returns prefix + decimal index, e.g. "Stop0", "Stop1", ...
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// LetterIDFn returns spreadsheet-style column names: 0→"A", 25→"Z",
// 26→"AA". Panics if idx < 0.
func LetterIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("LetterIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	slices.Reverse(runes)

	return string(runes)
}

// WithPrefixIDs sets the ID scheme to PrefixIDFn(prefix).
func WithPrefixIDs(prefix string) BuilderOption {
	return WithIDScheme(PrefixIDFn(prefix))
}

// WithLetterIDs sets the ID scheme to LetterIDFn.
func WithLetterIDs() BuilderOption {
	return WithIDScheme(LetterIDFn)
}
