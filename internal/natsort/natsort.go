// Package natsort orders strings so that embedded numbers compare by value.
// With natural ordering "toi2" sorts before "toi10", which plain byte-wise
// comparison gets wrong.
package natsort

import (
	"slices"
	"strings"
)

// Atom is one segment of a sort key: either a run of decimal digits
// or a lowercased run of anything else.
type Atom struct {
	Text    string // lowercased text, or the digit run with leading zeros trimmed
	Numeric bool
}

// Key is the comparable form of a string. Build one with KeyOf.
type Key []Atom

// KeyOf splits s at every maximal run of ASCII digits.
// Digit runs become numeric atoms, everything else becomes lowercase text.
// Empty fragments are dropped, so KeyOf("") is an empty key.
func KeyOf(s string) Key {
	key := make(Key, 0, 4)

	start := 0
	for start < len(s) {
		end := start
		digits := isDigit(s[start])
		for end < len(s) && isDigit(s[end]) == digits {
			end++
		}

		chunk := s[start:end]
		if digits {
			key = append(key, Atom{Text: trimZeros(chunk), Numeric: true})
		} else {
			key = append(key, Atom{Text: strings.ToLower(chunk)})
		}
		start = end
	}

	return key
}

// Compare returns -1, 0 or +1 comparing a and b atom by atom.
// A key that is a strict prefix of the other sorts first.
func Compare(a, b Key) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareAtoms(a[i], b[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Less reports whether a sorts before b in natural order.
func Less(a, b string) bool {
	return Compare(KeyOf(a), KeyOf(b)) < 0
}

// Sort orders items in place by the natural order of keyFn(item).
// Keys are computed once per item and the sort is stable.
func Sort[T any](items []T, keyFn func(T) string) {
	type keyed struct {
		key  Key
		item T
	}

	tmp := make([]keyed, len(items))
	for i, it := range items {
		tmp[i] = keyed{key: KeyOf(keyFn(it)), item: it}
	}

	slices.SortStableFunc(tmp, func(a, b keyed) int {
		return Compare(a.key, b.key)
	})

	for i := range tmp {
		items[i] = tmp[i].item
	}
}

// compareAtoms orders numbers before text when the kinds differ.
func compareAtoms(a, b Atom) int {
	if a.Numeric != b.Numeric {
		if a.Numeric {
			return -1
		}
		return 1
	}

	if a.Numeric {
		// Zeros are trimmed, so a longer run is always the larger number.
		if len(a.Text) != len(b.Text) {
			if len(a.Text) < len(b.Text) {
				return -1
			}
			return 1
		}
	}

	return strings.Compare(a.Text, b.Text)
}

func trimZeros(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// isDigit matches ASCII '0'-'9' only. Other Unicode digits, such as
// fullwidth or Arabic-Indic numerals, are treated as text on purpose.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
