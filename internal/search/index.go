// Package search implements the multi-tier prefix search index: a
// keyword-to-result map partitioned into exact-accented, exact-unaccented
// and partial-prefix buckets, sorted by a caller-supplied comparator.
package search

import (
	"sort"

	"github.com/loftafi/praxis-go/internal/collate"
	"github.com/loftafi/praxis-go/internal/normalize"
)

// Entity is anything a SearchIndex can hold a non-owning reference to.
type Entity interface {
	UID32() uint32
}

// Comparator orders two entities within a single SearchResult bucket.
// hint is the bucket's own keyword, used to break ties in favour of an
// entity whose natural key equals the bucket it is stored under.
type Comparator[T Entity] func(a, b T, hint string) int

// Result is the bucket of entities found under one normalized keyword.
type Result[T Entity] struct {
	Keyword         string
	ExactAccented   []T
	ExactUnaccented []T
	PartialMatch    []T
}

// Index maps a normalized keyword to a Result bucket. It owns the keyword
// strings and Result records, but holds only non-owning references to the
// entities themselves.
type Index[T Entity] struct {
	buckets   map[string]*Result[T]
	cmp       Comparator[T]
	stopwords map[string]bool
	sorted    bool
}

// NewIndex constructs an empty Index. stopwords, if non-nil, lists the
// lowercase keywords that must never be populated as partial-match
// entries (common short words that would otherwise dominate every
// autocomplete result).
func NewIndex[T Entity](cmp Comparator[T], stopwords map[string]bool) *Index[T] {
	return &Index[T]{
		buckets:   make(map[string]*Result[T]),
		cmp:       cmp,
		stopwords: stopwords,
	}
}

func (ix *Index[T]) bucket(keyword string) *Result[T] {
	b, ok := ix.buckets[keyword]
	if !ok {
		b = &Result[T]{Keyword: keyword}
		ix.buckets[keyword] = b
	}
	return b
}

// Add normalizes word via the package's keyword algorithm and inserts
// entity into the accented bucket, the unaccented bucket (if distinct),
// and every non-stopword prefix's partial-match bucket.
func (ix *Index[T]) Add(word string, entity T) error {
	kw, err := normalize.Keywords(word)
	if err != nil {
		return err
	}
	ix.sorted = false

	b := ix.bucket(kw.Accented)
	b.ExactAccented = append(b.ExactAccented, entity)

	if kw.Accented != kw.Unaccented {
		ub := ix.bucket(kw.Unaccented)
		ub.ExactUnaccented = append(ub.ExactUnaccented, entity)
	}

	for _, substr := range kw.Keywords {
		if ix.stopwords != nil && ix.stopwords[substr] {
			continue
		}
		pb := ix.bucket(substr)
		pb.PartialMatch = append(pb.PartialMatch, entity)
	}
	return nil
}

// RestoreBucket installs a fully-formed bucket for keyword without
// re-deriving membership through Add's normalize-and-scatter pipeline:
// the given lists are stored verbatim as the accented, unaccented and
// partial-match lists for keyword. Used to rebuild an Index from a
// previously serialized layout (binary import) where each entity must
// land back in the exact bucket and list it was exported from, rather
// than be rescattered across every prefix Add would normally populate.
func (ix *Index[T]) RestoreBucket(keyword string, exactAccented, exactUnaccented, partialMatch []T) {
	ix.buckets[keyword] = &Result[T]{
		Keyword:         keyword,
		ExactAccented:   exactAccented,
		ExactUnaccented: exactUnaccented,
		PartialMatch:    partialMatch,
	}
}

// MarkSorted declares the index's current bucket contents already in
// final order, skipping a redundant Sort call after a bulk RestoreBucket
// pass whose on-disk order already reflects a prior Sort's output.
func (ix *Index[T]) MarkSorted() { ix.sorted = true }

// Lookup normalizes query and returns the bucket for its accented form,
// falling back to the unaccented form. Returns (nil, false) if the query
// is invalid or neither form has a bucket.
func (ix *Index[T]) Lookup(query string) (*Result[T], bool) {
	n, err := normalize.Normalise(query)
	if err != nil {
		return nil, false
	}
	if b, ok := ix.buckets[n.Accented]; ok {
		return b, true
	}
	if b, ok := ix.buckets[n.Unaccented]; ok {
		return b, true
	}
	return nil, false
}

// Get returns the bucket stored under the exact keyword k, with no
// normalization or fallback.
func (ix *Index[T]) Get(k string) (*Result[T], bool) {
	b, ok := ix.buckets[k]
	return b, ok
}

// Len returns the number of distinct keywords in the index.
func (ix *Index[T]) Len() int { return len(ix.buckets) }

// Keywords returns every keyword in the index, in domain sort order, the
// order the binary codec requires for reproducible output. Keywords the
// collator ranks equal (accent-only variants) are ordered bytewise.
func (ix *Index[T]) Keywords() []string {
	out := make([]string, 0, len(ix.buckets))
	for k := range ix.buckets {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if ord := collate.Order(out[i], out[j]); ord != collate.Equal {
			return ord == collate.Less
		}
		return out[i] < out[j]
	})
	return out
}

// Sort orders every bucket's three lists using the index's comparator.
// After Sort, buckets are considered frozen: Add should not be called
// again without an explicit re-sort.
func (ix *Index[T]) Sort() {
	for k, b := range ix.buckets {
		hint := k
		sortSlice(b.ExactAccented, ix.cmp, hint)
		sortSlice(b.ExactUnaccented, ix.cmp, hint)
		sortSlice(b.PartialMatch, ix.cmp, hint)
	}
	ix.sorted = true
}

// Sorted reports whether Sort has run since the last Add.
func (ix *Index[T]) Sorted() bool { return ix.sorted }

func sortSlice[T Entity](s []T, cmp Comparator[T], hint string) {
	sort.SliceStable(s, func(i, j int) bool {
		return cmp(s[i], s[j], hint) < 0
	})
}
