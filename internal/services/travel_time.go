package services

import (
	"campus-route-service/internal/domain"
	"math"
)

// Path is an engine result in graph indexes: Stops[0] is the start and
// Segments[i] is the leg Stops[i] -> Stops[i+1].
type Path struct {
	Stops    []int
	Segments []float64
}

func (p Path) Distance() float64 {
	total := 0.0
	for _, d := range p.Segments {
		total += d
	}
	return total
}

// CorrectSegment dampens an implausibly long single hop and clamps it to
// MaxSegment. Shorter hops pass through untouched.
func (t Tuning) CorrectSegment(d float64) float64 {
	if !t.CorrectSegments || d <= t.MaxSegment {
		return d
	}
	return math.Min(d*t.Dampening, t.MaxSegment)
}

// TravelTime converts a total distance into rounded walking minutes.
//
// Under one minute rounds to the nearest 0.1 with a 0.5 floor, under five
// minutes to the nearest 0.5, otherwise to the nearest whole minute.
func (t Tuning) TravelTime(distance float64) float64 {
	if distance <= 0 {
		return 0
	}

	minutes := distance / t.WalkingSpeed * 60
	switch {
	case minutes < 1:
		return math.Max(0.5, math.Round(minutes*10)/10)
	case minutes < 5:
		return math.Round(minutes*2) / 2
	default:
		return math.Round(minutes)
	}
}

// Totals applies per-segment correction and returns the corrected legs,
// their sum and the derived time.
func (t Tuning) Totals(segments []domain.Segment) ([]domain.Segment, float64, float64) {
	out := make([]domain.Segment, len(segments))
	total := 0.0
	for i, s := range segments {
		d := t.CorrectSegment(s.Distance)
		out[i] = domain.Segment{To: s.To, Distance: d}
		total += d
	}
	return out, total, t.TravelTime(total)
}

// buildRoute turns an index path into a display Route.
func (t Tuning) buildRoute(g *domain.CampusGraph, alg domain.Algorithm, p Path) *domain.Route {
	stops := make([]string, len(p.Stops))
	for i, v := range p.Stops {
		stops[i] = g.DisplayName(v)
	}

	raw := make([]domain.Segment, 0, len(p.Segments))
	for i, d := range p.Segments {
		raw = append(raw, domain.Segment{To: stops[i+1], Distance: d})
	}

	segments, distance, minutes := t.Totals(raw)
	return &domain.Route{
		Stops:     stops,
		Segments:  segments,
		Distance:  distance,
		Minutes:   minutes,
		Algorithm: alg,
	}
}
