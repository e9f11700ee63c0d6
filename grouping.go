// Package grouping provides terminal collectors that consume a sequence once
// and fold it into a map keyed by a caller-supplied function.
//
// Many languages ship the same operations with their stream libraries:
//   - Java: https://docs.oracle.com/javase/8/docs/api/java/util/stream/Collectors.html
//   - C#: https://learn.microsoft.com/en-us/dotnet/api/system.linq.enumerable.groupby
//   - Kotlin: https://kotlinlang.org/api/latest/jvm/stdlib/kotlin.collections/group-by.html
//   - Rust: https://docs.rs/itertools/latest/itertools/trait.Itertools.html#method.into_group_map_by
//
// Every collector ranges its iter.Seq exactly once on the calling goroutine
// and returns a freshly allocated map. A key is present in the result iff at
// least one item produced it. Key functions must be total; a panic inside a
// caller-supplied function propagates to the caller.
package grouping

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// GroupBy partitions items into slices keyed by key.
// Within a bucket, items keep their arrival order.
func GroupBy[T any, K comparable](seq iter.Seq[T], key func(it T) K) map[K][]T {
	res := make(map[K][]T)
	for it := range seq {
		k := key(it)
		res[k] = append(res[k], it)
	}
	return res
}

// GroupByAsSet partitions items into sets keyed by key, collapsing duplicate
// items within a bucket. The item type must be comparable since it is used as
// a map key inside Set.
func GroupByAsSet[T, K comparable](seq iter.Seq[T], key func(it T) K) map[K]Set[T] {
	res := make(map[K]Set[T])
	for it := range seq {
		k := key(it)
		s, ok := res[k]
		if !ok {
			s = make(Set[T])
			res[k] = s
		}
		s.Add(it)
	}
	return res
}

// CountBy tallies how many items map to each key.
// CountBy(seq, key)[k] equals len(GroupBy(seq, key)[k]) for every key present.
func CountBy[T any, K comparable](seq iter.Seq[T], key func(it T) K) map[K]int {
	res := make(map[K]int)
	for it := range seq {
		res[key(it)]++
	}
	return res
}

// MinBy keeps, per key, the item that compares least among the items sharing
// that key, then applies finish once to that item to produce the stored value.
// compare follows the cmp.Compare convention: negative when a < b, zero when
// equal, positive when a > b. On a tie the earlier item is kept.
func MinBy[T any, K comparable, O any](
	seq iter.Seq[T], key func(it T) K, compare func(a, b T) int, finish func(it T) O,
) map[K]O {
	return extremalBy(seq, key, compare, finish, -1)
}

// MaxBy keeps, per key, the item that compares greatest among the items
// sharing that key, then applies finish once to that item to produce the
// stored value. compare follows the cmp.Compare convention. On a tie the
// earlier item is kept.
func MaxBy[T any, K comparable, O any](
	seq iter.Seq[T], key func(it T) K, compare func(a, b T) int, finish func(it T) O,
) map[K]O {
	return extremalBy(seq, key, compare, finish, +1)
}

// extremalBy is the fold shared by MinBy and MaxBy. The first item seen for a
// key seeds that key's winner; a later candidate replaces it only when compare
// is strictly negative (want < 0) or strictly positive (want > 0), so equal
// candidates never displace an earlier winner. finish runs after the traversal,
// once per key, on the winner only.
func extremalBy[T any, K comparable, O any](
	seq iter.Seq[T], key func(it T) K, compare func(a, b T) int, finish func(it T) O, want int,
) map[K]O {
	winners := make(map[K]T)
	for it := range seq {
		k := key(it)
		best, ok := winners[k]
		if !ok {
			winners[k] = it
			continue
		}
		c := compare(it, best)
		if (want > 0 && c > 0) || (want < 0 && c < 0) {
			winners[k] = it
		}
	}
	res := make(map[K]O, len(winners))
	for k, w := range winners {
		res[k] = finish(w)
	}
	return res
}

// Summable covers the types SumBy can accumulate with the + operator.
type Summable interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// SumBy accumulates, per key, the values derived from the items mapping to
// that key. Accumulation is left to right in sequence order, starting from the
// zero value; a key with no items is absent rather than stored as zero.
func SumBy[T any, K comparable, V Summable](
	seq iter.Seq[T], key func(it T) K, value func(it T) V,
) map[K]V {
	res := make(map[K]V)
	for it := range seq {
		res[key(it)] += value(it)
	}
	return res
}
