// Package wuxing computes the five-element percentage distribution of a
// Four Pillars chart.
package wuxing

import (
	"sort"

	"github.com/aristath/meridian/internal/domain"
	"github.com/aristath/meridian/internal/modules/pillars"
)

// Distribution is the chart's element makeup as integer percentages.
// The five values always sum to exactly 100.
type Distribution map[domain.Element]int

// Calculate weighs every visible stem at 1.0 and every hidden stem at its
// branch fraction, then normalizes to integer percentages. Largest-remainder
// rounding guarantees the exact-100 total: integer floors are assigned
// first and the leftover points go to the buckets with the largest
// fractional remainders (ties broken in canonical element order).
func Calculate(fp pillars.FourPillars, hidden pillars.HiddenStems) Distribution {
	raw := make(map[domain.Element]float64, len(domain.Elements))

	for _, p := range []pillars.Pillar{fp.Year, fp.Month, fp.Day, fp.Hour} {
		raw[p.Stem.Element()] += 1.0
	}
	for _, stems := range hidden {
		for _, hs := range stems {
			raw[hs.Stem.Element()] += hs.Weight
		}
	}

	total := 0.0
	for _, v := range raw {
		total += v
	}

	dist := make(Distribution, len(domain.Elements))
	if total == 0 {
		// Unreachable for a valid chart (four visible stems always
		// contribute), but a zero total must not divide below.
		for _, e := range domain.Elements {
			dist[e] = 0
		}
		return dist
	}

	type remainder struct {
		element domain.Element
		frac    float64
	}

	assigned := 0
	remainders := make([]remainder, 0, len(domain.Elements))
	for _, e := range domain.Elements {
		exact := raw[e] / total * 100
		floor := int(exact)
		dist[e] = floor
		assigned += floor
		remainders = append(remainders, remainder{element: e, frac: exact - float64(floor)})
	}

	sort.SliceStable(remainders, func(i, j int) bool {
		return remainders[i].frac > remainders[j].frac
	})

	for i := 0; i < 100-assigned; i++ {
		dist[remainders[i%len(remainders)].element]++
	}

	return dist
}

// Dominant returns the element with the largest share, ties broken in
// canonical element order.
func (d Distribution) Dominant() domain.Element {
	best := domain.Wood
	for _, e := range domain.Elements {
		if d[e] > d[best] {
			best = e
		}
	}
	return best
}

// Missing returns the elements with a zero share, in canonical order.
func (d Distribution) Missing() []domain.Element {
	missing := make([]domain.Element, 0)
	for _, e := range domain.Elements {
		if d[e] == 0 {
			missing = append(missing, e)
		}
	}
	return missing
}
