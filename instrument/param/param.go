// Package param defines the instrument's host-automatable parameters.
//
// Every parameter is a normalized float in [0, 1] as seen by the host; the
// instrument interprets it through [Set] (the control values) and renders
// it for display through [Set.Display].
package param

import (
	"fmt"
	"math"
)

// ID identifies a host parameter. The set is closed.
type ID int

const (
	GrainSize ID = iota
	GrainStart
	PitchMode
	SampleSelect

	// Count is the number of parameters.
	Count = int(SampleSelect) + 1
)

const (
	// MaxGrainStart is the upper bound of the grain start parameter.
	MaxGrainStart = 0.99

	// PitchModeThreshold is the value at and above which pitch mode is on.
	PitchModeThreshold = 0.5

	grainSizeDisplayScaleMs  = 130.0
	grainSizeDisplayOffsetMs = 20.0
)

// Info is the static description of a parameter.
type Info struct {
	ID      ID
	Name    string
	Label   string
	Min     float64
	Max     float64
	Default float64
}

var infos = [Count]Info{
	GrainSize:    {ID: GrainSize, Name: "Grain Size", Label: "ms", Min: 0, Max: 1, Default: 0.5},
	GrainStart:   {ID: GrainStart, Name: "Grain Start", Label: "%", Min: 0, Max: MaxGrainStart, Default: 0},
	PitchMode:    {ID: PitchMode, Name: "Pitch Mode", Min: 0, Max: 1, Default: 0},
	SampleSelect: {ID: SampleSelect, Name: "Sample", Min: 0, Max: 1, Default: 0},
}

// Valid reports whether id names a known parameter.
func (id ID) Valid() bool {
	return id >= 0 && int(id) < Count
}

// Info returns the static description of id.
func (id ID) Info() Info {
	if !id.Valid() {
		return Info{ID: id, Name: fmt.Sprintf("param(%d)", int(id))}
	}
	return infos[id]
}

// String returns the parameter name.
func (id ID) String() string {
	return id.Info().Name
}

// All returns every parameter ID in host order.
func All() []ID {
	ids := make([]ID, Count)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// Set holds the current normalized value of every parameter.
type Set struct {
	values [Count]float64
}

// Defaults returns a Set initialised to each parameter's default.
func Defaults() Set {
	var s Set
	for _, id := range All() {
		s.values[id] = infos[id].Default
	}
	return s
}

// Get returns the stored value of id, or 0 for an unknown id.
func (s *Set) Get(id ID) float64 {
	if !id.Valid() {
		return 0
	}
	return s.values[id]
}

// Update stores value for id clamped to the parameter's range and reports
// whether the stored value changed. Unknown ids and NaN are ignored.
func (s *Set) Update(id ID, value float64) bool {
	if !id.Valid() || math.IsNaN(value) {
		return false
	}
	info := infos[id]
	value = math.Max(info.Min, math.Min(info.Max, value))
	if s.values[id] == value {
		return false
	}
	s.values[id] = value
	return true
}

// GrainSize returns the grain size fraction in [0, 1].
func (s *Set) GrainSize() float64 { return s.values[GrainSize] }

// GrainStart returns the grain start fraction in [0, MaxGrainStart].
func (s *Set) GrainStart() float64 { return s.values[GrainStart] }

// PitchMode reports whether re-pitching to the played note is enabled.
func (s *Set) PitchMode() bool { return s.values[PitchMode] >= PitchModeThreshold }

// SampleSelect returns the raw sample selector value.
func (s *Set) SampleSelect() float64 { return s.values[SampleSelect] }

// SampleIndex discretizes the sample selector over n choices.
// It returns -1 when n is not positive.
func (s *Set) SampleIndex(n int) int {
	return SampleIndex(s.values[SampleSelect], n)
}

// SampleIndex maps a selector value in [0, 1] onto one of n choices.
func SampleIndex(value float64, n int) int {
	if n <= 0 {
		return -1
	}
	idx := int(math.Floor(value * float64(n)))
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

// Display renders the value of id for the host. names lists the selectable
// sample file names.
func (s *Set) Display(id ID, names []string) string {
	v := s.Get(id)
	switch id {
	case GrainSize:
		return fmt.Sprintf("%.0f", v*grainSizeDisplayScaleMs+grainSizeDisplayOffsetMs)
	case GrainStart:
		return fmt.Sprintf("%.0f", v*100)
	case PitchMode:
		if s.PitchMode() {
			return "On"
		}
		return "Off"
	case SampleSelect:
		idx := SampleIndex(v, len(names))
		if idx < 0 {
			return ""
		}
		return names[idx]
	}
	return ""
}
