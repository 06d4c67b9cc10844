package compare

import (
	"sort"

	"golang.org/x/exp/constraints"
)

type Order int

const (
	Smaller Order = -1
	Equal   Order = 0
	Greater Order = 1
)

type Compare[T any] func(t1, t2 T) Order

func Ordered[T constraints.Ordered](t1, t2 T) Order {
	if t1 < t2 {
		return Smaller
	}
	if t1 == t2 {
		return Equal
	}
	return Greater
}

// By compares values by a key.
func By[T any, K constraints.Ordered](key func(T) K) Compare[T] {
	return func(t1, t2 T) Order {
		return Ordered(key(t1), key(t2))
	}
}

func Sort[T any](ts []T, cmp Compare[T]) {
	sort.SliceStable(ts, func(i, j int) bool {
		return cmp(ts[i], ts[j]) == Smaller
	})
}
