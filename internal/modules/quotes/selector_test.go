package quotes

import (
	"testing"

	"github.com/aristath/meridian/internal/domain"
	"github.com/aristath/meridian/internal/modules/strength"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stemPtr(s domain.Stem) *domain.Stem                              { return &s }
func elementPtr(e domain.Element) *domain.Element                     { return &e }
func tenGodPtr(g domain.TenGod) *domain.TenGod                        { return &g }
func strengthPtr(s strength.DayMasterStrength) *strength.DayMasterStrength { return &s }
func seasonPtr(s domain.Season) *domain.Season                        { return &s }

func newSelector() *Selector {
	return NewSelector(zerolog.Nop())
}

func TestSelectDayMasterMatchRanksFirst(t *testing.T) {
	results := newSelector().Select(Criteria{
		DayMaster: stemPtr(domain.StemJia),
		Element:   elementPtr(domain.Wood),
		Season:    seasonPtr(domain.Spring),
		MaxQuotes: 3,
	})

	require.NotEmpty(t, results)
	// 甲-tagged quote matches day master (50) + element (30) + season (15)
	assert.Equal(t, "ditiansui-wood-spring", results[0].Quote.ID)
	assert.Equal(t, pointsDayMaster+pointsElement+pointsSeason, results[0].Score)
}

func TestSelectRespectsMaxQuotes(t *testing.T) {
	results := newSelector().Select(Criteria{
		Element:   elementPtr(domain.Wood),
		MaxQuotes: 1,
	})
	assert.Len(t, results, 1)

	results = newSelector().Select(Criteria{
		Element:   elementPtr(domain.Wood),
		MaxQuotes: 100,
	})
	assert.LessOrEqual(t, len(results), len(Corpus()))
}

func TestSelectZeroMaxQuotesReturnsNothing(t *testing.T) {
	results := newSelector().Select(Criteria{
		Element:   elementPtr(domain.Fire),
		MaxQuotes: 0,
	})
	assert.Empty(t, results)
}

func TestSelectFallbackToGeneralCategory(t *testing.T) {
	// Criteria that match no tagged quote: only general-category quotes
	// (which carry the baseline score) come back
	results := newSelector().Select(Criteria{
		MaxQuotes: 2,
	})

	require.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), 2)
	for _, r := range results {
		assert.Equal(t, CategoryGeneral, r.Quote.Category)
	}
}

func TestSelectStrengthCriterion(t *testing.T) {
	results := newSelector().Select(Criteria{
		Strength:  strengthPtr(strength.ExtremelyStrong),
		TenGod:    tenGodPtr(domain.DirectWealth),
		MaxQuotes: 5,
	})

	require.NotEmpty(t, results)
	// Wealth quote matches both ten god (25) and strength (20)
	assert.Equal(t, "sanmingtonghui-wealth", results[0].Quote.ID)
	assert.Equal(t, pointsTenGod+pointsStrength, results[0].Score)
}

func TestSelectDeterministicOrdering(t *testing.T) {
	criteria := Criteria{
		Element:   elementPtr(domain.Water),
		Season:    seasonPtr(domain.Winter),
		MaxQuotes: 10,
	}

	first := newSelector().Select(criteria)
	second := newSelector().Select(criteria)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Quote.ID, second[i].Quote.ID)
		assert.Equal(t, first[i].Score, second[i].Score)
	}
}

func TestSelectTiesKeepCorpusOrder(t *testing.T) {
	// Two general quotes tie at the baseline score; corpus order decides
	results := newSelector().Select(Criteria{MaxQuotes: 3})

	require.GreaterOrEqual(t, len(results), 2)
	assert.Equal(t, "general-dao", results[0].Quote.ID)
	assert.Equal(t, "general-virtue", results[1].Quote.ID)
}

func TestRelevanceCategoryPoints(t *testing.T) {
	q := Quote{Category: "season", Seasons: []domain.Season{domain.Summer}}

	score := relevance(q, Criteria{
		Season:   seasonPtr(domain.Summer),
		Category: "season",
	})
	assert.Equal(t, pointsSeason+pointsCategory, score)
}

func TestCorpusReturnsCopy(t *testing.T) {
	first := Corpus()
	first[0].Text = "mutated"

	second := Corpus()
	assert.NotEqual(t, "mutated", second[0].Text)
}
