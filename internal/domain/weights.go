package domain

// PillarPosition identifies one of the four temporal units of a chart.
type PillarPosition int

const (
	PositionYear PillarPosition = iota
	PositionMonth
	PositionDay
	PositionHour
)

var positionNames = [4]string{"year", "month", "day", "hour"}

// String returns the lowercase position name.
func (p PillarPosition) String() string {
	if p < PositionYear || p > PositionHour {
		return "unknown"
	}
	return positionNames[p]
}

// PositionWeight carries the fixed analytical weights of one pillar position.
// VisibleStem scales the pillar's visible stem; HiddenStems scales the
// branch's hidden-stem fractions as a group.
type PositionWeight struct {
	VisibleStem float64
	HiddenStems float64
}

// PositionWeights is the calibration table shared by the Ten Gods analyzer
// and the Day Master strength engine. The month pillar is weighted heaviest
// because the birth month governs seasonal strength; hidden stems in the
// month and day branches carry full weight while the year and hour branches
// contribute only residually. These are calibration constants, not classical
// invariants — different BaZi schools tune them differently.
var PositionWeights = map[PillarPosition]PositionWeight{
	PositionYear:  {VisibleStem: 1.0, HiddenStems: 0.3},
	PositionMonth: {VisibleStem: 1.2, HiddenStems: 1.0},
	PositionDay:   {VisibleStem: 0.0, HiddenStems: 1.0}, // day stem is the Day Master itself
	PositionHour:  {VisibleStem: 1.0, HiddenStems: 0.3},
}

// TotalWeightBudget is the sum of all position weights, the upper bound on
// any weighted distribution total (hidden-stem fractions sum to 1.0 per
// branch, so each HiddenStems weight contributes at most its full value).
const TotalWeightBudget = 1.0 + 0.3 + 1.2 + 1.0 + 0.0 + 1.0 + 1.0 + 0.3
