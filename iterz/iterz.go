// Package iterz provides adapters between iter.Seq and common value sources.
package iterz

import "iter"

// FromSlice yields the elements of in, in order.
func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, it := range in {
			if !yield(it) {
				return
			}
		}
	}
}

// Of yields the given items in order.
func Of[T any](items ...T) iter.Seq[T] {
	return FromSlice(items)
}

// FromChan yields the values received from in until it is closed.
func FromChan[T any](in <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := range in {
			if !yield(it) {
				return
			}
		}
	}
}

// Collect materializes seq into a slice.
func Collect[T any](seq iter.Seq[T]) []T {
	var res []T
	for it := range seq {
		res = append(res, it)
	}
	return res
}
