package services

// Tuning holds the empirical constants of the planning engine. The defaults
// match the campus dataset the service was built for; deployments may
// override them from a YAML file.
type Tuning struct {
	WalkingSpeed    float64 `yaml:"walking_speed" validate:"gt=0"`
	CorrectSegments bool    `yaml:"correct_segments"`
	MaxSegment      float64 `yaml:"max_segment" validate:"gt=0"`
	Dampening       float64 `yaml:"dampening" validate:"gt=0,lte=1"`
	SegmentFallback float64 `yaml:"segment_fallback" validate:"gt=0"`

	DirectThreshold float64 `yaml:"direct_threshold" validate:"gte=0"`
	LegWeight       float64 `yaml:"leg_weight" validate:"gt=0,lte=1"`
	DetourFactor    float64 `yaml:"detour_factor" validate:"gt=0"`

	GreedyRemainingWeight float64 `yaml:"greedy_remaining_weight" validate:"gt=0"`
	GreedyMaxHops         int     `yaml:"greedy_max_hops" validate:"gte=1"`

	MemoHopLimit   float64 `yaml:"memo_hop_limit" validate:"gt=0"`
	MemoCandidates int     `yaml:"memo_candidates" validate:"gte=1"`
	MemoMaxDepth   int     `yaml:"memo_max_depth" validate:"gte=1,lte=8"`

	LandmarkLimit int `yaml:"landmark_limit" validate:"gte=1"`
}

func DefaultTuning() Tuning {
	return Tuning{
		WalkingSpeed:          5.0,
		CorrectSegments:       false,
		MaxSegment:            5.0,
		Dampening:             0.5,
		SegmentFallback:       0.1,
		DirectThreshold:       0.3,
		LegWeight:             0.7,
		DetourFactor:          3.0,
		GreedyRemainingWeight: 0.8,
		GreedyMaxHops:         10,
		MemoHopLimit:          2.0,
		MemoCandidates:        20,
		MemoMaxDepth:          4,
		LandmarkLimit:         3,
	}
}
