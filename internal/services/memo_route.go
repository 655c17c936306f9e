package services

import (
	"campus-route-service/internal/domain"
	"fmt"
	"math"
)

// visitSet is an immutable bitset of graph indexes. with returns a copy.
type visitSet []uint64

func newVisitSet(n int) visitSet { return make(visitSet, (n+63)/64) }

func (s visitSet) has(i int) bool { return s[i/64]&(1<<(uint(i)%64)) != 0 }

func (s visitSet) with(i int) visitSet {
	out := make(visitSet, len(s))
	copy(out, s)
	out[i/64] |= 1 << (uint(i) % 64)
	return out
}

type memoKey struct{ from, to int }

type memoBuilder struct {
	g    *domain.CampusGraph
	t    Tuning
	memo map[memoKey]Path
}

// MemoizedRoute explores short intermediate hops recursively, caching the
// best route found for each (current, goal) pair.
//
// Only the first MemoCandidates locations are tried as intermediates, each
// hop must be shorter than MemoHopLimit, and recursion stops at
// MemoMaxDepth. A direct edge competes as a candidate at every level.
func MemoizedRoute(g *domain.CampusGraph, start, end int, t Tuning) (Path, error) {
	if !inRange(g, start) || !inRange(g, end) {
		return Path{}, fmt.Errorf("memoized route: %w", domain.ErrUnknownLocation)
	}

	b := &memoBuilder{g: g, t: t, memo: make(map[memoKey]Path)}
	p, ok := b.best(start, end, newVisitSet(g.Len()), 0)
	if !ok {
		return Path{}, fmt.Errorf("memoized route: %q -> %q: %w", g.Name(start), g.Name(end), domain.ErrNoPath)
	}
	return p, nil
}

func (b *memoBuilder) best(cur, goal int, visited visitSet, depth int) (Path, bool) {
	key := memoKey{cur, goal}
	if p, ok := b.memo[key]; ok {
		return p, true
	}

	var best Path
	bestTotal := math.Inf(1)

	if d, ok := b.g.Edge(cur, goal); ok {
		best, bestTotal = Path{Stops: []int{cur, goal}, Segments: []float64{d}}, d
	}

	if depth < b.t.MemoMaxDepth {
		seen := visited.with(cur)
		limit := min(b.g.Len(), b.t.MemoCandidates)

		for i := 0; i < limit; i++ {
			if i == cur || i == goal || seen.has(i) {
				continue
			}
			leg, ok := b.g.Edge(cur, i)
			if !ok || leg >= b.t.MemoHopLimit {
				continue
			}

			rest, ok := b.best(i, goal, seen, depth+1)
			if !ok || revisits(rest, seen) {
				continue
			}

			if total := leg + rest.Distance(); total < bestTotal {
				bestTotal = total
				best = Path{
					Stops:    append([]int{cur}, rest.Stops...),
					Segments: append([]float64{leg}, rest.Segments...),
				}
			}
		}
	}

	if math.IsInf(bestTotal, 1) {
		return Path{}, false
	}
	b.memo[key] = best
	return best, true
}

// revisits reports whether a cached sub-route passes through a stop the
// current branch has already used.
func revisits(p Path, seen visitSet) bool {
	for _, v := range p.Stops {
		if seen.has(v) {
			return true
		}
	}
	return false
}
