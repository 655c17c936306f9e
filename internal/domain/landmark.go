package domain

import "strings"

// LandmarkCategory groups the words a caller may use for a kind of place
// (Triggers) with the substrings that identify such places by name (Keywords).
type LandmarkCategory struct {
	Name     string
	Triggers []string
	Keywords []string
}

// Triggered reports whether the caller's term selects this category.
func (c LandmarkCategory) Triggered(term string) bool {
	t := strings.ToLower(strings.TrimSpace(term))
	if t == "" {
		return false
	}
	for _, trig := range c.Triggers {
		if strings.Contains(t, trig) {
			return true
		}
	}
	return false
}

// Describes reports whether a location name belongs to the category.
func (c LandmarkCategory) Describes(locationName string) bool {
	name := strings.ToLower(locationName)
	for _, kw := range c.Keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
