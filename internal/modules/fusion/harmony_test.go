package fusion

import (
	"testing"

	"github.com/aristath/meridian/internal/domain"
	"github.com/aristath/meridian/internal/modules/western"
	"github.com/stretchr/testify/assert"
)

func TestHarmonyScoreStaysInBounds(t *testing.T) {
	for _, eastern := range domain.Elements {
		for _, w := range western.WesternElements {
			score := HarmonyScore(eastern, w)
			assert.GreaterOrEqual(t, score, 0, "%s × %s", eastern, w)
			assert.LessOrEqual(t, score, 100, "%s × %s", eastern, w)
		}
	}
}

func TestSameConceptPairsScoreExactly100(t *testing.T) {
	assert.Equal(t, 100, HarmonyScore(domain.Fire, western.ElementFire))
	assert.Equal(t, 100, HarmonyScore(domain.Earth, western.ElementEarth))
	assert.Equal(t, 100, HarmonyScore(domain.Water, western.ElementWater))
}

func TestHarmonyScoreTiers(t *testing.T) {
	cases := []struct {
		eastern domain.Element
		w       western.Element
		score   int
	}{
		{domain.Wood, western.ElementAir, 75},
		{domain.Wood, western.ElementWater, 75},
		{domain.Metal, western.ElementAir, 75},
		{domain.Metal, western.ElementEarth, 75},
		{domain.Fire, western.ElementAir, 60},
		{domain.Earth, western.ElementWater, 50},
		{domain.Water, western.ElementEarth, 50},
		{domain.Wood, western.ElementFire, 40},
		{domain.Metal, western.ElementWater, 40},
		{domain.Fire, western.ElementWater, 40},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.score, HarmonyScore(tc.eastern, tc.w), "%s × %s", tc.eastern, tc.w)
	}
}

func TestHarmonyScoreNeverBelowFloor(t *testing.T) {
	for _, eastern := range domain.Elements {
		for _, w := range western.WesternElements {
			assert.GreaterOrEqual(t, HarmonyScore(eastern, w), scoreNeutral)
		}
	}
}

func TestHarmonyScorePanicsOnInvalidInput(t *testing.T) {
	assert.Panics(t, func() { HarmonyScore(domain.Element(7), western.ElementFire) })
	assert.Panics(t, func() { HarmonyScore(domain.Wood, western.Element(-1)) })
}

func TestKindForScore(t *testing.T) {
	assert.Equal(t, KindHarmony, kindForScore(100))
	assert.Equal(t, KindComplement, kindForScore(75))
	assert.Equal(t, KindComplement, kindForScore(60))
	assert.Equal(t, KindNeutral, kindForScore(50))
	assert.Equal(t, KindTension, kindForScore(40))
}

func TestHarmonyDescriptionCoversEveryTier(t *testing.T) {
	seen := map[string]bool{}
	for _, score := range []int{100, 75, 60, 50, 40} {
		desc := harmonyDescription(score)
		assert.NotEmpty(t, desc)
		assert.False(t, seen[desc], "tiers must not share a description")
		seen[desc] = true
	}
}

func TestEveryElementSignPairHasAnInsight(t *testing.T) {
	for _, eastern := range domain.Elements {
		for _, sign := range western.Signs {
			assert.NotEmpty(t, insightFor(eastern, sign), "%s × %s", eastern, sign)
		}
	}
}

func TestInsightForPanicsOnMissingEntry(t *testing.T) {
	assert.Panics(t, func() { insightFor(domain.Element(9), western.Aries) })
	assert.Panics(t, func() { insightFor(domain.Wood, western.Sign(12)) })
}
