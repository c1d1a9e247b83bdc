// Package calendar resolves Gregorian dates into sexagenary (stem-branch)
// calendar terms. The Four Pillars calculator consumes this output verbatim
// and never derives calendar boundaries itself.
package calendar

import (
	"fmt"
	"time"

	"github.com/aristath/meridian/internal/domain"
)

// Resolved holds the stem-branch terms for the year, month and day of a
// date, aligned to the traditional calendar's boundaries.
type Resolved struct {
	YearStem    domain.Stem   `json:"year_stem"`
	YearBranch  domain.Branch `json:"year_branch"`
	MonthStem   domain.Stem   `json:"month_stem"`
	MonthBranch domain.Branch `json:"month_branch"`
	DayStem     domain.Stem   `json:"day_stem"`
	DayBranch   domain.Branch `json:"day_branch"`
}

// Resolver converts a Gregorian date to sexagenary terms. Implementations
// must be deterministic; callers treat the output as ground truth.
type Resolver interface {
	Resolve(year, month, day int) (Resolved, error)
}

// dayCycleAnchor is 1899-12-22, a 甲子 day. The day cycle has run
// unbroken for millennia, so any documented anchor date fixes the whole
// sequence. Cross-checks: 1900-01-01 is 甲戌 (index 10) and 2000-01-01 is
// 戊午 (index 54), both widely published reference values.
var dayCycleAnchor = time.Date(1899, time.December, 22, 0, 0, 0, 0, time.UTC)

// solarTermStartDay approximates the day-of-month on which each sexagenary
// month begins (the "節" solar terms). Index 0 is February (start of 寅,
// the first month). True solar-term instants drift by up to two days
// around these values year to year; an astronomical ephemeris would be
// needed for exact cutovers. Charts within a day of a term boundary
// should be treated as approximate.
var solarTermStartDay = [12]int{
	4, // Feb: 立春 start of 寅
	6, // Mar: 驚蟄 start of 卯
	5, // Apr: 清明 start of 辰
	6, // May: 立夏 start of 巳
	6, // Jun: 芒種 start of 午
	7, // Jul: 小暑 start of 未
	8, // Aug: 立秋 start of 申
	8, // Sep: 白露 start of 酉
	8, // Oct: 寒露 start of 戌
	7, // Nov: 立冬 start of 亥
	7, // Dec: 大雪 start of 子
	6, // Jan: 小寒 start of 丑
}

// SexagenaryResolver is the built-in Resolver. It derives the day pillar
// from the continuous day cycle, the year pillar from the Gregorian year
// with the customary start-of-spring boundary, and the month pillar from
// the approximate solar-term table plus the five-tigers (五虎遁) rule.
type SexagenaryResolver struct{}

// NewSexagenaryResolver creates the built-in resolver.
func NewSexagenaryResolver() *SexagenaryResolver {
	return &SexagenaryResolver{}
}

// Resolve converts a Gregorian date to sexagenary terms.
// Returns domain.ErrInvalidInput for impossible dates (month 13, Feb 30).
func (r *SexagenaryResolver) Resolve(year, month, day int) (Resolved, error) {
	date, err := validateDate(year, month, day)
	if err != nil {
		return Resolved{}, err
	}

	dayStem, dayBranch := dayPillar(date)

	// The sexagenary year begins at start of spring (approx Feb 4),
	// not January 1. Dates before the boundary belong to the prior year.
	sexYear := year
	if month < 2 || (month == 2 && day < solarTermStartDay[0]) {
		sexYear--
	}
	yearStem, yearBranch := yearPillar(sexYear)

	monthIdx := monthIndex(month, day)
	monthStem, monthBranch := monthPillar(yearStem, monthIdx)

	return Resolved{
		YearStem:    yearStem,
		YearBranch:  yearBranch,
		MonthStem:   monthStem,
		MonthBranch: monthBranch,
		DayStem:     dayStem,
		DayBranch:   dayBranch,
	}, nil
}

// validateDate rejects impossible calendar dates by round-tripping through
// time.Date, which normalizes overflow (Feb 30 becomes Mar 1/2).
func validateDate(year, month, day int) (time.Time, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: date %04d-%02d-%02d out of range", domain.ErrInvalidInput, year, month, day)
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, fmt.Errorf("%w: date %04d-%02d-%02d does not exist", domain.ErrInvalidInput, year, month, day)
	}
	return date, nil
}

// dayPillar returns the day's stem and branch from the continuous 60-day cycle.
func dayPillar(date time.Time) (domain.Stem, domain.Branch) {
	days := int(date.Sub(dayCycleAnchor).Hours() / 24)
	idx := ((days % 60) + 60) % 60
	return domain.Stem(idx % domain.StemCount), domain.Branch(idx % domain.BranchCount)
}

// yearPillar returns the stem and branch of a sexagenary year.
// 1984 is 甲子, so (year − 4) indexes both cycles directly.
func yearPillar(year int) (domain.Stem, domain.Branch) {
	n := year - 4
	stem := ((n % domain.StemCount) + domain.StemCount) % domain.StemCount
	branch := ((n % domain.BranchCount) + domain.BranchCount) % domain.BranchCount
	return domain.Stem(stem), domain.Branch(branch)
}

// monthIndex returns the zero-based sexagenary month (0 = 寅月 starting
// early February) for a Gregorian month/day.
func monthIndex(month, day int) int {
	// Position relative to February
	idx := month - 2
	if idx < 0 {
		idx += 12
	}
	if day < solarTermStartDay[idx] {
		idx--
		if idx < 0 {
			idx += 12
		}
	}
	return idx
}

// monthPillar applies the five-tigers rule (五虎遁): the year stem fixes the
// stem of the first month (寅), and stems cycle forward one per month.
// 甲/己 years start at 丙, 乙/庚 at 戊, 丙/辛 at 庚, 丁/壬 at 壬, 戊/癸 at 甲.
func monthPillar(yearStem domain.Stem, monthIdx int) (domain.Stem, domain.Branch) {
	firstMonthStem := (int(yearStem)%5)*2 + 2
	stem := domain.Stem((firstMonthStem + monthIdx) % domain.StemCount)
	// Month branches run 寅卯辰... so offset by two from the branch cycle
	branch := domain.Branch((monthIdx + 2) % domain.BranchCount)
	return stem, branch
}
