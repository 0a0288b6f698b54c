// Package collate implements the domain-specific ordering used throughout
// praxis-go: a codepoint-level comparison that ignores case and accent, so
// that strings differing only by accent (e.g. "ᾷβγ" and "αβγ") compare
// Equal.
package collate

import (
	dom "github.com/loftafi/praxis-go/internal/unicode"
)

// Ordering is the result of Order: Less, Equal or Greater.
type Ordering int

const (
	Less Ordering = iota - 1
	Equal
	Greater
)

// Order compares a and b using the domain collation key (NormaliseChar) for
// each codepoint, shorter-string-first on a prefix tie. Two strings whose
// collation keys match at every codepoint and whose lengths match are
// Equal, regardless of accent differences; callers that need a stable
// order among collation-equal strings should rely on sort.SliceStable
// preserving insertion order rather than on Order itself.
func Order(a, b string) Ordering {
	ar := []rune(a)
	br := []rune(b)

	n := len(ar)
	if len(br) < n {
		n = len(br)
	}

	for i := 0; i < n; i++ {
		ca := dom.NormaliseChar(ar[i])
		cb := dom.NormaliseChar(br[i])
		if ca != cb {
			if ca < cb {
				return Less
			}
			return Greater
		}
	}

	if len(ar) != len(br) {
		if len(ar) < len(br) {
			return Less
		}
		return Greater
	}

	return Equal
}

// LessThan reports whether Order(a, b) == Less — a convenience for
// sort.Slice callers that want a plain bool comparator.
func LessThan(a, b string) bool {
	return Order(a, b) == Less
}
