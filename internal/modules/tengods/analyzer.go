// Package tengods computes the weighted Ten Gods distribution of a chart
// relative to its Day Master.
package tengods

import (
	"github.com/aristath/meridian/internal/domain"
	"github.com/aristath/meridian/internal/modules/pillars"
	"github.com/rs/zerolog"
)

// Analysis is the weighted Ten Gods breakdown of a chart.
type Analysis struct {
	// Distribution always carries all ten labels, zero-valued when absent.
	Distribution map[domain.TenGod]float64 `json:"distribution"`
	// Dominant is the highest-scoring label, nil when every score is zero
	// (a degenerate chart is not an error).
	Dominant *domain.TenGod `json:"dominant,omitempty"`
	// Missing lists labels with a zero score, in canonical order.
	Missing []domain.TenGod `json:"missing"`
}

// Analyzer accumulates Ten God scores over the chart's stem positions.
type Analyzer struct {
	log zerolog.Logger
}

// NewAnalyzer creates a new Ten Gods analyzer.
func NewAnalyzer(log zerolog.Logger) *Analyzer {
	return &Analyzer{
		log: log.With().Str("analyzer", "tengods").Logger(),
	}
}

// Analyze scores every stem position except the Day Master's own visible
// stem: the year, month and hour visible stems at their position weight,
// and every hidden stem in all four branches at its branch fraction scaled
// by the position's hidden weight (domain.PositionWeights). Hidden stems in
// the day branch count even when they repeat the Day Master's stem — the
// exclusion covers only the Day Master's own visible position, since a
// hidden stem is a distinct influence in classical theory.
func (a *Analyzer) Analyze(fp pillars.FourPillars, hidden pillars.HiddenStems, dayMaster domain.Stem) Analysis {
	scores := make(map[domain.TenGod]float64, domain.TenGodCount)
	for _, god := range domain.TenGods {
		scores[god] = 0
	}

	for _, pos := range []domain.PillarPosition{
		domain.PositionYear, domain.PositionMonth, domain.PositionDay, domain.PositionHour,
	} {
		weights := domain.PositionWeights[pos]

		if pos != domain.PositionDay {
			stem := fp.Pillar(pos).Stem
			scores[domain.TenGodOf(dayMaster, stem)] += weights.VisibleStem
		}

		for _, hs := range hidden[pos] {
			scores[domain.TenGodOf(dayMaster, hs.Stem)] += hs.Weight * weights.HiddenStems
		}
	}

	analysis := Analysis{
		Distribution: scores,
		Missing:      missingOf(scores),
	}
	if dominant, ok := dominantOf(scores); ok {
		analysis.Dominant = &dominant
	}

	a.log.Debug().
		Str("day_master", dayMaster.String()).
		Int("missing", len(analysis.Missing)).
		Msg("Analyzed ten gods")

	return analysis
}

// dominantOf returns the argmax label with a positive score. Ties break in
// canonical label order so results are stable across runs.
func dominantOf(scores map[domain.TenGod]float64) (domain.TenGod, bool) {
	var best domain.TenGod
	bestScore := 0.0
	found := false
	for _, god := range domain.TenGods {
		if scores[god] > bestScore {
			best = god
			bestScore = scores[god]
			found = true
		}
	}
	return best, found
}

func missingOf(scores map[domain.TenGod]float64) []domain.TenGod {
	missing := make([]domain.TenGod, 0)
	for _, god := range domain.TenGods {
		if scores[god] == 0 {
			missing = append(missing, god)
		}
	}
	return missing
}
