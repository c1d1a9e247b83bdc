package wuxing

import (
	"testing"

	"github.com/aristath/meridian/internal/domain"
	"github.com/aristath/meridian/internal/modules/calendar"
	"github.com/aristath/meridian/internal/modules/pillars"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chartFor(t *testing.T, resolved calendar.Resolved, hour int) pillars.Chart {
	t.Helper()
	chart, err := pillars.NewCalculator(zerolog.Nop()).Calculate(resolved, hour)
	require.NoError(t, err)
	return chart
}

func TestDistributionSumsToExactlyOneHundred(t *testing.T) {
	resolver := calendar.NewSexagenaryResolver()

	// Sweep a spread of dates and hours; the invariant holds for all charts
	dates := []struct{ y, m, d int }{
		{1984, 2, 4},
		{1990, 7, 15},
		{2000, 1, 1},
		{2008, 8, 8},
		{2023, 12, 31},
	}
	for _, date := range dates {
		resolved, err := resolver.Resolve(date.y, date.m, date.d)
		require.NoError(t, err)

		for hour := 0; hour < 24; hour++ {
			chart := chartFor(t, resolved, hour)
			dist := Calculate(chart.FourPillars, chart.HiddenStems)

			require.Len(t, dist, 5)
			total := 0
			for _, pct := range dist {
				assert.GreaterOrEqual(t, pct, 0)
				total += pct
			}
			assert.Equal(t, 100, total, "date %v hour %d", date, hour)
		}
	}
}

func TestDistributionAllKeysPresent(t *testing.T) {
	resolved, err := calendar.NewSexagenaryResolver().Resolve(1995, 5, 20)
	require.NoError(t, err)
	chart := chartFor(t, resolved, 9)

	dist := Calculate(chart.FourPillars, chart.HiddenStems)
	for _, e := range domain.Elements {
		_, ok := dist[e]
		assert.True(t, ok, "element %s should always be present", e)
	}
}

func TestDistributionWeighsHiddenStems(t *testing.T) {
	// All four visible stems Wood, all branches 卯 (hides only 乙, Wood):
	// the distribution must be 100% Wood.
	fp := pillars.FourPillars{
		Year:  pillars.Pillar{Stem: domain.StemJia, Branch: domain.BranchMao},
		Month: pillars.Pillar{Stem: domain.StemYi, Branch: domain.BranchMao},
		Day:   pillars.Pillar{Stem: domain.StemJia, Branch: domain.BranchMao},
		Hour:  pillars.Pillar{Stem: domain.StemYi, Branch: domain.BranchMao},
	}
	hidden := pillars.HiddenStems{
		domain.PositionYear:  domain.BranchMao.HiddenStems(),
		domain.PositionMonth: domain.BranchMao.HiddenStems(),
		domain.PositionDay:   domain.BranchMao.HiddenStems(),
		domain.PositionHour:  domain.BranchMao.HiddenStems(),
	}

	dist := Calculate(fp, hidden)
	assert.Equal(t, 100, dist[domain.Wood])
	assert.Equal(t, []domain.Element{domain.Fire, domain.Earth, domain.Metal, domain.Water}, dist.Missing())
	assert.Equal(t, domain.Wood, dist.Dominant())
}

func TestDistributionFractionalWeights(t *testing.T) {
	// 丑 hides 己 0.6, 癸 0.3, 辛 0.1 — Earth/Water/Metal should reflect
	// the fractional split on top of the visible stems.
	fp := pillars.FourPillars{
		Year:  pillars.Pillar{Stem: domain.StemJia, Branch: domain.BranchChou},
		Month: pillars.Pillar{Stem: domain.StemBing, Branch: domain.BranchChou},
		Day:   pillars.Pillar{Stem: domain.StemWu, Branch: domain.BranchChou},
		Hour:  pillars.Pillar{Stem: domain.StemGeng, Branch: domain.BranchChou},
	}
	hidden := pillars.HiddenStems{
		domain.PositionYear:  domain.BranchChou.HiddenStems(),
		domain.PositionMonth: domain.BranchChou.HiddenStems(),
		domain.PositionDay:   domain.BranchChou.HiddenStems(),
		domain.PositionHour:  domain.BranchChou.HiddenStems(),
	}

	dist := Calculate(fp, hidden)

	// Totals: visible Wood 1, Fire 1, Earth 1, Metal 1 + hidden per branch
	// (Earth 0.6, Water 0.3, Metal 0.1) × 4 → Earth 3.4, Metal 1.4,
	// Water 1.2, Wood 1, Fire 1 of 8.0 total.
	total := 0
	for _, pct := range dist {
		total += pct
	}
	assert.Equal(t, 100, total)
	assert.Equal(t, domain.Earth, dist.Dominant())
	assert.InDelta(t, 42, dist[domain.Earth], 1) // 3.4/8 = 42.5%
	assert.InDelta(t, 15, dist[domain.Water], 1) // 1.2/8 = 15%
	assert.Empty(t, dist.Missing())
}
