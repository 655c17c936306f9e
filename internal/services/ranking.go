package services

import (
	"campus-route-service/internal/domain"
	"math"
)

// SortStrategy selects the comparison sort used to rank routes. Both
// strategies order by a total comparator, so their output is identical.
type SortStrategy int

const (
	MergeSort SortStrategy = iota
	QuickSort
)

// Efficiency is distance per minute of walking; lower is better.
func Efficiency(r *domain.Route) float64 {
	return r.Distance / math.Max(r.Minutes, 0.1)
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// routeComparator orders routes by criterion. Unknown criteria use the
// composite ordering.
func routeComparator(by domain.SortCriterion) func(a, b *domain.Route) int {
	switch by {
	case domain.SortByDistance:
		return func(a, b *domain.Route) int { return compareFloat(a.Distance, b.Distance) }
	case domain.SortByTime:
		return func(a, b *domain.Route) int { return compareFloat(a.Minutes, b.Minutes) }
	case domain.SortByEfficiency:
		return func(a, b *domain.Route) int { return compareFloat(Efficiency(a), Efficiency(b)) }
	}
	return func(a, b *domain.Route) int {
		if c := compareFloat(a.Distance, b.Distance); c != 0 {
			return c
		}
		return compareFloat(a.Minutes, b.Minutes)
	}
}

type ranked[T any] struct {
	v   T
	pos int
}

// sortTotal sorts items by cmp with input position as the final tie-break,
// which makes the result stable whichever algorithm runs.
func sortTotal[T any](items []T, cmp func(a, b T) int, strategy SortStrategy) []T {
	tagged := make([]ranked[T], len(items))
	for i, it := range items {
		tagged[i] = ranked[T]{v: it, pos: i}
	}

	less := func(a, b ranked[T]) bool {
		if c := cmp(a.v, b.v); c != 0 {
			return c < 0
		}
		return a.pos < b.pos
	}

	if strategy == QuickSort {
		quickSort(tagged, less)
	} else {
		tagged = mergeSort(tagged, less)
	}

	out := make([]T, len(tagged))
	for i, t := range tagged {
		out[i] = t.v
	}
	return out
}

func quickSort[T any](a []T, less func(x, y T) bool) {
	for len(a) > 1 {
		p := partition(a, less)
		// Recurse into the smaller side to bound stack depth.
		if p < len(a)-p-1 {
			quickSort(a[:p], less)
			a = a[p+1:]
		} else {
			quickSort(a[p+1:], less)
			a = a[:p]
		}
	}
}

func partition[T any](a []T, less func(x, y T) bool) int {
	mid := len(a) / 2
	last := len(a) - 1
	a[mid], a[last] = a[last], a[mid]

	store := 0
	for i := 0; i < last; i++ {
		if less(a[i], a[last]) {
			a[i], a[store] = a[store], a[i]
			store++
		}
	}
	a[store], a[last] = a[last], a[store]
	return store
}

func mergeSort[T any](a []T, less func(x, y T) bool) []T {
	if len(a) <= 1 {
		return a
	}
	mid := len(a) / 2
	left := mergeSort(append([]T(nil), a[:mid]...), less)
	right := mergeSort(append([]T(nil), a[mid:]...), less)

	out := make([]T, 0, len(a))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if less(right[j], left[i]) {
			out = append(out, right[j])
			j++
		} else {
			out = append(out, left[i])
			i++
		}
	}
	out = append(out, left[i:]...)
	return append(out, right[j:]...)
}

// SortRoutes returns a new slice ordered by the criterion. ascending=false
// reverses the key order while keeping ties in input order.
func SortRoutes(routes []*domain.Route, by domain.SortCriterion, ascending bool, strategy SortStrategy) []*domain.Route {
	cmp := routeComparator(by)
	if !ascending {
		base := cmp
		cmp = func(a, b *domain.Route) int { return base(b, a) }
	}
	return sortTotal(routes, cmp, strategy)
}

// TopRoutes ranks ascending and keeps at most n routes.
func TopRoutes(routes []*domain.Route, by domain.SortCriterion, n int) []*domain.Route {
	if n <= 0 {
		return []*domain.Route{}
	}
	sorted := SortRoutes(routes, by, true, MergeSort)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// DedupRoutes keeps the first route for each rendered path.
func DedupRoutes(routes []*domain.Route) []*domain.Route {
	seen := make(map[string]struct{}, len(routes))
	out := make([]*domain.Route, 0, len(routes))
	for _, r := range routes {
		if r == nil {
			continue
		}
		key := r.Path()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}
