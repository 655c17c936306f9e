package services

import (
	"campus-route-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTravelTime(t *testing.T) {
	tu := DefaultTuning()

	tests := []struct {
		km   float64
		want float64
	}{
		{0, 0},
		{-1, 0},
		{0.01, 0.5},
		{0.07, 0.8},
		{0.25, 3},
		{0.3, 3.5},
		{0.45, 5},
		{1, 12},
		{2, 24},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tu.TravelTime(tt.km), "TravelTime(%v)", tt.km)
	}
}

func TestTravelTimeMonotonic(t *testing.T) {
	tu := DefaultTuning()

	prev := 0.0
	for i := 0; i <= 3000; i++ {
		got := tu.TravelTime(float64(i) / 1000)
		if got < prev {
			t.Fatalf("TravelTime(%v) = %v, below previous %v", float64(i)/1000, got, prev)
		}
		prev = got
	}
}

func TestCorrectSegment(t *testing.T) {
	tu := DefaultTuning()
	assert.Equal(t, 8.0, tu.CorrectSegment(8), "off unless enabled")

	tu.CorrectSegments = true
	assert.Equal(t, 3.0, tu.CorrectSegment(3))
	assert.Equal(t, 5.0, tu.CorrectSegment(5))
	assert.Equal(t, 4.0, tu.CorrectSegment(8), "dampened")
	assert.Equal(t, 5.0, tu.CorrectSegment(12), "clamped")

	tu.CorrectSegments = false
	assert.Equal(t, 8.0, tu.CorrectSegment(8))
}

func TestTotals(t *testing.T) {
	tu := DefaultTuning()
	tu.CorrectSegments = true

	segments, total, minutes := tu.Totals([]domain.Segment{
		{To: "B", Distance: 1},
		{To: "C", Distance: 8},
	})

	assert.Equal(t, []domain.Segment{{To: "B", Distance: 1}, {To: "C", Distance: 4}}, segments)
	assert.Equal(t, 5.0, total)
	assert.Equal(t, 60.0, minutes)
}
