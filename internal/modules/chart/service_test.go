package chart

import (
	"testing"

	"github.com/aristath/meridian/internal/domain"
	"github.com/aristath/meridian/internal/modules/calendar"
	"github.com/aristath/meridian/internal/modules/fusion"
	"github.com/aristath/meridian/internal/modules/pillars"
	"github.com/aristath/meridian/internal/modules/quotes"
	"github.com/aristath/meridian/internal/modules/strength"
	"github.com/aristath/meridian/internal/modules/tengods"
	"github.com/aristath/meridian/internal/modules/western"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	log := zerolog.Nop()
	return NewService(
		calendar.NewSexagenaryResolver(),
		pillars.NewCalculator(log),
		tengods.NewAnalyzer(log),
		strength.NewEngine(log),
		fusion.NewEngine(quotes.NewSelector(log), log),
		log,
	)
}

func TestComputeReadingFullPipeline(t *testing.T) {
	service := newTestService()

	// 2000-01-01 05:00: day pillar 戊午, still in the 己卯 sexagenary year
	// (before start of spring), 丙子 month, 乙卯 hour.
	reading, err := service.ComputeReading(BirthInput{Year: 2000, Month: 1, Day: 1, Hour: 5})
	require.NoError(t, err)

	fp := reading.Chart.FourPillars
	assert.Equal(t, "己卯", fp.Year.String())
	assert.Equal(t, "丙子", fp.Month.String())
	assert.Equal(t, "戊午", fp.Day.String())
	assert.Equal(t, "乙卯", fp.Hour.String())

	// An Earth day master born under Capricorn is the identical-concept pair.
	assert.Equal(t, western.Capricorn, reading.SunSign)
	assert.Equal(t, 100, reading.Fusion.ElementHarmony)

	total := 0
	for _, e := range domain.Elements {
		total += reading.Elements[e]
	}
	assert.Equal(t, 100, total)

	assert.Len(t, reading.TenGods.Distribution, domain.TenGodCount)
	assert.False(t, reading.ComputedAt.IsZero())
}

func TestComputeReadingPreferencesAreDisjoint(t *testing.T) {
	service := newTestService()

	reading, err := service.ComputeReading(BirthInput{Year: 1984, Month: 6, Day: 15, Hour: 12})
	require.NoError(t, err)

	seen := map[domain.Element]bool{}
	for _, el := range reading.Preferences.Favorable {
		seen[el] = true
	}
	for _, el := range reading.Preferences.Unfavorable {
		assert.False(t, seen[el], "element %s in both preference sets", el)
	}
}

func TestComputeReadingIsDeterministic(t *testing.T) {
	service := newTestService()
	input := BirthInput{Year: 1990, Month: 10, Day: 3, Hour: 21}

	first, err := service.ComputeReading(input)
	require.NoError(t, err)
	second, err := service.ComputeReading(input)
	require.NoError(t, err)

	// ComputedAt is the only field allowed to differ.
	second.ComputedAt = first.ComputedAt
	assert.Equal(t, first, second)
}

func TestComputeReadingRejectsInvalidInput(t *testing.T) {
	service := newTestService()

	cases := []BirthInput{
		{Year: 2000, Month: 13, Day: 1, Hour: 0},
		{Year: 2000, Month: 2, Day: 30, Hour: 0},
		{Year: 2000, Month: 6, Day: 15, Hour: 24},
		{Year: 2000, Month: 6, Day: 15, Hour: -1},
	}
	for _, input := range cases {
		_, err := service.ComputeReading(input)
		require.Error(t, err, "%+v", input)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestComputePillarsSkipsAnalysis(t *testing.T) {
	service := newTestService()

	chart, err := service.ComputePillars(BirthInput{Year: 2000, Month: 1, Day: 1, Hour: 5})
	require.NoError(t, err)
	assert.Equal(t, "戊午", chart.FourPillars.Day.String())
	assert.Len(t, chart.HiddenStems, 4)
}

func TestHarmonyMatrixCoversAllPairs(t *testing.T) {
	matrix := newTestService().HarmonyMatrix()

	require.Len(t, matrix, 20)
	for _, entry := range matrix {
		assert.GreaterOrEqual(t, entry.Score, 40)
		assert.LessOrEqual(t, entry.Score, 100)
	}
	assert.Equal(t, HarmonyMatrixEntry{Eastern: "Fire", Western: "Fire", Score: 100}, matrix[4])
}
