// Package pillars assembles the Four Pillars chart from resolved calendar
// terms and the birth hour.
package pillars

import (
	"fmt"

	"github.com/aristath/meridian/internal/domain"
	"github.com/aristath/meridian/internal/modules/calendar"
	"github.com/rs/zerolog"
)

// Pillar is one stem-branch pair of a chart.
type Pillar struct {
	Stem   domain.Stem   `json:"stem"`
	Branch domain.Branch `json:"branch"`
}

// String renders the pillar as its two traditional characters.
func (p Pillar) String() string {
	return p.Stem.String() + p.Branch.String()
}

// FourPillars is a complete chart: all four positions are always present.
type FourPillars struct {
	Year  Pillar `json:"year"`
	Month Pillar `json:"month"`
	Day   Pillar `json:"day"`
	Hour  Pillar `json:"hour"`
}

// DayMaster returns the Day pillar's stem, the reference point for all
// relational analysis.
func (fp FourPillars) DayMaster() domain.Stem {
	return fp.Day.Stem
}

// Pillar returns the pillar at the given position.
func (fp FourPillars) Pillar(pos domain.PillarPosition) Pillar {
	switch pos {
	case domain.PositionYear:
		return fp.Year
	case domain.PositionMonth:
		return fp.Month
	case domain.PositionDay:
		return fp.Day
	case domain.PositionHour:
		return fp.Hour
	default:
		panic(fmt.Sprintf("pillars: unknown position %d", int(pos)))
	}
}

// HiddenStems maps each pillar position to its branch's hidden stems.
type HiddenStems map[domain.PillarPosition][]domain.HiddenStem

// Chart bundles the pillars with their hidden stems.
type Chart struct {
	FourPillars FourPillars `json:"four_pillars"`
	HiddenStems HiddenStems `json:"hidden_stems"`
}

// Calculator derives Four Pillars charts. It is stateless and pure:
// identical inputs always yield identical output.
type Calculator struct {
	log zerolog.Logger
}

// NewCalculator creates a new Four Pillars calculator.
func NewCalculator(log zerolog.Logger) *Calculator {
	return &Calculator{
		log: log.With().Str("calculator", "pillars").Logger(),
	}
}

// Calculate assembles the chart from resolved calendar terms and the birth
// hour (0-23). The resolved terms are trusted verbatim; only the hour
// pillar is derived here. Fails with domain.ErrInvalidInput for an
// out-of-range hour or invalid resolved symbols — never clamps.
func (c *Calculator) Calculate(resolved calendar.Resolved, hour int) (Chart, error) {
	if hour < 0 || hour > 23 {
		return Chart{}, fmt.Errorf("%w: hour %d out of range [0,23]", domain.ErrInvalidInput, hour)
	}
	if err := validateResolved(resolved); err != nil {
		return Chart{}, err
	}

	hourBranch := HourBranch(hour)
	hourStem := HourStem(resolved.DayStem, hourBranch)

	fp := FourPillars{
		Year:  Pillar{Stem: resolved.YearStem, Branch: resolved.YearBranch},
		Month: Pillar{Stem: resolved.MonthStem, Branch: resolved.MonthBranch},
		Day:   Pillar{Stem: resolved.DayStem, Branch: resolved.DayBranch},
		Hour:  Pillar{Stem: hourStem, Branch: hourBranch},
	}

	hidden := HiddenStems{
		domain.PositionYear:  fp.Year.Branch.HiddenStems(),
		domain.PositionMonth: fp.Month.Branch.HiddenStems(),
		domain.PositionDay:   fp.Day.Branch.HiddenStems(),
		domain.PositionHour:  fp.Hour.Branch.HiddenStems(),
	}

	c.log.Debug().
		Str("year", fp.Year.String()).
		Str("month", fp.Month.String()).
		Str("day", fp.Day.String()).
		Str("hour", fp.Hour.String()).
		Msg("Calculated four pillars")

	return Chart{FourPillars: fp, HiddenStems: hidden}, nil
}

// validateResolved rejects resolved calendar terms carrying out-of-enum
// symbols. A corrupt resolution must fail loudly rather than feed a
// silently wrong chart downstream.
func validateResolved(r calendar.Resolved) error {
	stems := []domain.Stem{r.YearStem, r.MonthStem, r.DayStem}
	for _, s := range stems {
		if !s.Valid() {
			return fmt.Errorf("%w: resolved calendar contains invalid stem %d", domain.ErrInvalidInput, int(s))
		}
	}
	branches := []domain.Branch{r.YearBranch, r.MonthBranch, r.DayBranch}
	for _, b := range branches {
		if !b.Valid() {
			return fmt.Errorf("%w: resolved calendar contains invalid branch %d", domain.ErrInvalidInput, int(b))
		}
	}
	return nil
}

// HourBranch maps a civil hour to its two-hour branch block. The 子 block
// starts at 23:00: hours 23 and 0 are 子, 1-2 are 丑, 3-4 are 寅, and so
// on. Late-zi convention: 23:00 keeps the current civil day's day pillar;
// only the hour branch rolls into 子.
func HourBranch(hour int) domain.Branch {
	if hour < 0 || hour > 23 {
		panic(fmt.Sprintf("pillars: hour %d out of range", hour))
	}
	return domain.Branch(((hour + 1) / 2) % domain.BranchCount)
}

// HourStem applies the five-rats rule (五鼠遁): the day stem fixes the stem
// of the 子 hour, and stems cycle forward one per branch slot.
// 甲/己 days start at 甲, 乙/庚 at 丙, 丙/辛 at 戊, 丁/壬 at 庚, 戊/癸 at 壬.
func HourStem(dayStem domain.Stem, hourBranch domain.Branch) domain.Stem {
	if !dayStem.Valid() {
		panic(fmt.Sprintf("pillars: invalid day stem %d", int(dayStem)))
	}
	if !hourBranch.Valid() {
		panic(fmt.Sprintf("pillars: invalid hour branch %d", int(hourBranch)))
	}
	ziHourStem := (int(dayStem) % 5) * 2
	return domain.Stem((ziHourStem + int(hourBranch)) % domain.StemCount)
}
