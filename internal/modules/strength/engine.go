// Package strength scores the Day Master's relative strength and derives
// the favorable/unfavorable element preferences from it.
package strength

import (
	"fmt"

	"github.com/aristath/meridian/internal/domain"
	"github.com/aristath/meridian/internal/modules/pillars"
	"github.com/rs/zerolog"
)

// DayMasterStrength is the ordinal strength category of a chart.
type DayMasterStrength int

const (
	ExtremelyWeak DayMasterStrength = iota
	Weak
	Balanced
	Strong
	ExtremelyStrong
)

var strengthNames = [5]string{"extremely_weak", "weak", "balanced", "strong", "extremely_strong"}

// String returns the snake_case category name used in API payloads.
func (s DayMasterStrength) String() string {
	if s < ExtremelyWeak || s > ExtremelyStrong {
		return fmt.Sprintf("DayMasterStrength(%d)", int(s))
	}
	return strengthNames[s]
}

// Score thresholds mapping the support−drain balance to categories.
// The weighted budget is 5.8 (domain.TotalWeightBudget), so the raw score
// ranges over roughly ±5.8. Calibration constants, not classical law;
// only the monotonic ordering is an invariant.
const (
	extremelyStrongThreshold = 3.0
	strongThreshold          = 1.0
	weakThreshold            = -1.0
	extremelyWeakThreshold   = -3.0
)

// Result carries the raw score alongside the category for diagnostics.
type Result struct {
	Score    float64           `json:"score"`
	Category DayMasterStrength `json:"category"`
}

// Engine scores Day Master strength from the chart's weighted elements.
type Engine struct {
	log zerolog.Logger
}

// NewEngine creates a new strength engine.
func NewEngine(log zerolog.Logger) *Engine {
	return &Engine{
		log: log.With().Str("engine", "strength").Logger(),
	}
}

// Evaluate classifies every contributing position's element against the
// Day Master element: same-element and generating positions support,
// everything else (being drained, being controlled, controlling) drains.
// Positions use the shared weight table (visible stems at position weight,
// hidden stems at branch fraction × hidden weight; the Day Master's own
// visible stem is excluded).
func (e *Engine) Evaluate(fp pillars.FourPillars, hidden pillars.HiddenStems, dayMasterElement domain.Element) Result {
	if !dayMasterElement.Valid() {
		panic(fmt.Sprintf("strength: invalid day master element %d", int(dayMasterElement)))
	}

	score := 0.0
	add := func(el domain.Element, weight float64) {
		if domain.RelationTo(dayMasterElement, el).Supports() {
			score += weight
		} else {
			score -= weight
		}
	}

	for _, pos := range []domain.PillarPosition{
		domain.PositionYear, domain.PositionMonth, domain.PositionDay, domain.PositionHour,
	} {
		weights := domain.PositionWeights[pos]

		if pos != domain.PositionDay {
			add(fp.Pillar(pos).Stem.Element(), weights.VisibleStem)
		}
		for _, hs := range hidden[pos] {
			add(hs.Stem.Element(), hs.Weight*weights.HiddenStems)
		}
	}

	result := Result{Score: score, Category: categorize(score)}

	e.log.Debug().
		Str("day_master_element", dayMasterElement.String()).
		Float64("score", score).
		Str("category", result.Category.String()).
		Msg("Evaluated day master strength")

	return result
}

// categorize maps a score to the five ordinal categories. Thresholds are
// monotonic: a higher score never yields a lower category.
func categorize(score float64) DayMasterStrength {
	switch {
	case score >= extremelyStrongThreshold:
		return ExtremelyStrong
	case score >= strongThreshold:
		return Strong
	case score > weakThreshold:
		return Balanced
	case score > extremelyWeakThreshold:
		return Weak
	default:
		return ExtremelyWeak
	}
}

// ElementPreferences are the recommendation element sets derived from
// strength. The two sets are always disjoint.
type ElementPreferences struct {
	Favorable   []domain.Element `json:"favorable"`
	Unfavorable []domain.Element `json:"unfavorable"`
}

// Preferences derives the favorable/unfavorable sets. A weak or balanced
// Day Master wants support: its own element and its generator. A strong
// one is already over-supported, so its entire generation line — peers,
// the element feeding it and the element it feeds — aggravates the
// imbalance; only the controlling axis (what it controls and what controls
// it) restores balance. The sets partition the five elements, so they can
// never overlap.
func Preferences(category DayMasterStrength, dayMasterElement domain.Element) ElementPreferences {
	if !dayMasterElement.Valid() {
		panic(fmt.Sprintf("strength: invalid day master element %d", int(dayMasterElement)))
	}

	if category >= Strong {
		return ElementPreferences{
			Favorable: []domain.Element{
				dayMasterElement.Controls(),
				dayMasterElement.ControlledBy(),
			},
			Unfavorable: []domain.Element{
				dayMasterElement,
				dayMasterElement.GeneratedBy(),
				dayMasterElement.Generates(),
			},
		}
	}
	return ElementPreferences{
		Favorable: []domain.Element{
			dayMasterElement,
			dayMasterElement.GeneratedBy(),
		},
		Unfavorable: []domain.Element{
			dayMasterElement.Generates(),
			dayMasterElement.Controls(),
			dayMasterElement.ControlledBy(),
		},
	}
}
