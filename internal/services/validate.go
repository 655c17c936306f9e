package services

import (
	"campus-route-service/internal/domain"
)

type EdgeIssue struct {
	From     string
	To       string
	Distance float64
	Minutes  float64
	Reason   string
}

// SuspiciousEdges flags direct edges that are implausible for a campus walk:
// longer than MaxSegment, or taking more than an hour at WalkingSpeed.
func SuspiciousEdges(g *domain.CampusGraph, t Tuning) []EdgeIssue {
	out := []EdgeIssue{}
	for i := 0; i < g.Len(); i++ {
		for j := 0; j < g.Len(); j++ {
			d, ok := g.Edge(i, j)
			if !ok {
				continue
			}
			minutes := d / t.WalkingSpeed * 60

			reason := ""
			switch {
			case d > t.MaxSegment:
				reason = "exceeds max segment"
			case minutes > 60:
				reason = "over an hour on foot"
			default:
				continue
			}

			out = append(out, EdgeIssue{
				From:     g.Name(i),
				To:       g.Name(j),
				Distance: d,
				Minutes:  minutes,
				Reason:   reason,
			})
		}
	}
	return out
}
