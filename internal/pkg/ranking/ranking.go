// Package ranking orders scored entries into 1-based standings.
package ranking

import (
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/guregu/null.v3"
)

var ErrNotFound = errors.New("entry not found in ranking")

// Entry is a candidate to be ranked. Higher Metric ranks first; Tiebreak, when
// set on both sides of a comparison, decides between equal metrics.
type Entry[K comparable, V any] struct {
	Key      K
	Metric   float64
	Tiebreak null.Float
	Value    V
}

type Standing[K comparable, V any] struct {
	Position int
	Entry[K, V]
}

type Board[K comparable, V any] struct {
	standings []Standing[K, V]
	index     map[K]int
}

// New sorts entries descending and assigns positions 1..N. Entries that
// compare equal keep their input order.
func New[K comparable, V any](entries []Entry[K, V]) *Board[K, V] {
	sorted := make([]Entry[K, V], len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return ahead(sorted[i], sorted[j])
	})

	b := &Board[K, V]{
		standings: make([]Standing[K, V], len(sorted)),
		index:     make(map[K]int, len(sorted)),
	}
	for i, e := range sorted {
		b.standings[i] = Standing[K, V]{Position: i + 1, Entry: e}
		if _, dup := b.index[e.Key]; !dup {
			b.index[e.Key] = i
		}
	}
	return b
}

func ahead[K comparable, V any](a, b Entry[K, V]) bool {
	if a.Metric != b.Metric {
		return a.Metric > b.Metric
	}
	if a.Tiebreak.Valid && b.Tiebreak.Valid {
		return a.Tiebreak.Float64 > b.Tiebreak.Float64
	}
	return false
}

func (b *Board[K, V]) Len() int {
	return len(b.standings)
}

func (b *Board[K, V]) All() []Standing[K, V] {
	return b.standings
}

// TopN returns at most n leading standings. It never pads.
func (b *Board[K, V]) TopN(n int) []Standing[K, V] {
	if n <= 0 {
		return []Standing[K, V]{}
	}
	if n > len(b.standings) {
		n = len(b.standings)
	}
	return b.standings[:n]
}

func (b *Board[K, V]) RankOf(key K) (Standing[K, V], error) {
	i, ok := b.index[key]
	if !ok {
		return Standing[K, V]{}, ErrNotFound
	}
	return b.standings[i], nil
}
