package domain

// Level names for the banded presentation of a dimension average.
const (
	LevelHigh = "High"
	LevelMid  = "Mid"
	LevelLow  = "Low"
)

// Levels holds the cut points that band an average into Low / Mid / High.
type Levels struct {
	High float64 `yaml:"high,omitempty" json:"high,omitempty"`
	Low  float64 `yaml:"low,omitempty"  json:"low,omitempty"`
}

// DefaultLevels returns the instrument's standard cut points.
func DefaultLevels() Levels {
	return Levels{High: 4.0, Low: 2.5}
}

// IsZero reports whether no cut points were configured.
func (l Levels) IsZero() bool {
	return l.High == 0 && l.Low == 0
}

// For bands an average score into a level name.
func (l Levels) For(avg float64) string {
	switch {
	case avg >= l.High:
		return LevelHigh
	case avg <= l.Low:
		return LevelLow
	default:
		return LevelMid
	}
}
