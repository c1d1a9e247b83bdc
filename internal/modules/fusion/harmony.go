// Package fusion scores the correspondence between a chart's Eastern
// (Wu Xing) element and a Western sun sign's classical element, and builds
// the combined cross-system analysis.
//
// The score tiers are a symbolic/archetypal heuristic carried over for
// continuity, not an astronomical or classical-text fact.
package fusion

import (
	"fmt"

	"github.com/aristath/meridian/internal/domain"
	"github.com/aristath/meridian/internal/modules/western"
)

// Score tiers of the correspondence table.
const (
	scoreIdentical  = 100 // same concept in both systems
	scorePartial    = 75  // listed partial correspondence
	scoreFireAir    = 60  // complementary: air feeds fire
	scoreEarthWater = 50  // complementary: water shapes earth
	scoreNeutral    = 40  // neutral floor
)

// harmonyTable is the full 5×4 correspondence grid. Fire, Earth and Water
// exist as concepts in both systems and match themselves at 100. Wood
// corresponds partially to Air (growth/breath) and Water (nourishment);
// Metal to Air (clarity) and Earth (ore). Fire↔Air and Earth↔Water are
// the listed complementary pairs; everything else sits at the neutral
// floor.
var harmonyTable = map[domain.Element]map[western.Element]int{
	domain.Wood: {
		western.ElementFire:  scoreNeutral,
		western.ElementEarth: scoreNeutral,
		western.ElementAir:   scorePartial,
		western.ElementWater: scorePartial,
	},
	domain.Fire: {
		western.ElementFire:  scoreIdentical,
		western.ElementEarth: scoreNeutral,
		western.ElementAir:   scoreFireAir,
		western.ElementWater: scoreNeutral,
	},
	domain.Earth: {
		western.ElementFire:  scoreNeutral,
		western.ElementEarth: scoreIdentical,
		western.ElementAir:   scoreNeutral,
		western.ElementWater: scoreEarthWater,
	},
	domain.Metal: {
		western.ElementFire:  scoreNeutral,
		western.ElementEarth: scorePartial,
		western.ElementAir:   scorePartial,
		western.ElementWater: scoreNeutral,
	},
	domain.Water: {
		western.ElementFire:  scoreNeutral,
		western.ElementEarth: scoreEarthWater,
		western.ElementAir:   scoreNeutral,
		western.ElementWater: scoreIdentical,
	},
}

// HarmonyScore returns the 0-100 correspondence score between an Eastern
// and a Western element. Panics on out-of-enum values: a corrupt element
// must not resolve to a silently wrong score.
func HarmonyScore(eastern domain.Element, w western.Element) int {
	if !eastern.Valid() {
		panic(fmt.Sprintf("fusion: invalid eastern element %d", int(eastern)))
	}
	if !w.Valid() {
		panic(fmt.Sprintf("fusion: invalid western element %d", int(w)))
	}
	return harmonyTable[eastern][w]
}

// InsightKind tags an insight by the quality of the correspondence.
type InsightKind string

const (
	KindHarmony    InsightKind = "harmony"
	KindComplement InsightKind = "complement"
	KindNeutral    InsightKind = "neutral"
	KindTension    InsightKind = "tension"
)

// kindForScore maps score tiers to insight tags: identical-concept pairs
// are harmony, the 60-75 band complements, 50 is workable neutrality and
// the 40 floor reads as mild tension.
func kindForScore(score int) InsightKind {
	switch {
	case score >= scoreIdentical:
		return KindHarmony
	case score >= scoreFireAir:
		return KindComplement
	case score >= scoreEarthWater:
		return KindNeutral
	default:
		return KindTension
	}
}

// harmonyDescription renders the score tier as a short human-readable line.
func harmonyDescription(score int) string {
	switch {
	case score >= scoreIdentical:
		return "Your Eastern and Western elements speak the same language; their energies reinforce each other effortlessly."
	case score >= scorePartial:
		return "Your elements share deep affinities; with small adjustments their currents flow together."
	case score >= scoreFireAir:
		return "Your elements feed one another; the pairing rewards conscious collaboration."
	case score >= scoreEarthWater:
		return "Your elements coexist steadily; neither dominates, and balance is yours to shape."
	default:
		return "Your elements pull in different directions; awareness of the contrast becomes its own strength."
	}
}
