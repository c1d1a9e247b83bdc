// Package chart orchestrates the full reading pipeline: calendar
// resolution, Four Pillars, Wu Xing, Ten Gods, strength, literature and
// the East-West fusion analysis.
package chart

import (
	"fmt"
	"time"

	"github.com/aristath/meridian/internal/domain"
	"github.com/aristath/meridian/internal/modules/calendar"
	"github.com/aristath/meridian/internal/modules/fusion"
	"github.com/aristath/meridian/internal/modules/pillars"
	"github.com/aristath/meridian/internal/modules/strength"
	"github.com/aristath/meridian/internal/modules/tengods"
	"github.com/aristath/meridian/internal/modules/western"
	"github.com/aristath/meridian/internal/modules/wuxing"
	"github.com/rs/zerolog"
)

// BirthInput is the birth data a reading is computed from.
type BirthInput struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
	Hour  int `json:"hour"`
	// MaxQuotes bounds the literature selection; zero means the default.
	MaxQuotes int `json:"max_quotes,omitempty"`
}

// Reading is the complete computed result for one birth input. It is
// assembled once and never mutated; callers may share it freely.
type Reading struct {
	Birth       BirthInput                  `json:"birth"`
	Chart       pillars.Chart               `json:"chart"`
	Elements    wuxing.Distribution         `json:"elements"`
	TenGods     tengods.Analysis            `json:"ten_gods"`
	Strength    strength.Result             `json:"strength"`
	Preferences strength.ElementPreferences `json:"preferences"`
	SunSign     western.Sign                `json:"sun_sign"`
	Fusion      fusion.Analysis             `json:"fusion"`
	ComputedAt  time.Time                   `json:"computed_at"`
}

// Service runs the reading pipeline. All stages except ComputedAt are
// deterministic for identical input.
type Service struct {
	resolver   calendar.Resolver
	calculator *pillars.Calculator
	analyzer   *tengods.Analyzer
	strength   *strength.Engine
	fusion     *fusion.Engine
	log        zerolog.Logger
}

// NewService creates a chart service over the given pipeline stages.
func NewService(
	resolver calendar.Resolver,
	calculator *pillars.Calculator,
	analyzer *tengods.Analyzer,
	strengthEngine *strength.Engine,
	fusionEngine *fusion.Engine,
	log zerolog.Logger,
) *Service {
	return &Service{
		resolver:   resolver,
		calculator: calculator,
		analyzer:   analyzer,
		strength:   strengthEngine,
		fusion:     fusionEngine,
		log:        log.With().Str("service", "chart").Logger(),
	}
}

// ComputeReading runs the full pipeline for one birth input. Invalid
// dates or hours surface as domain.ErrInvalidInput from the stage that
// rejected them.
func (s *Service) ComputeReading(input BirthInput) (Reading, error) {
	chart, err := s.computeChart(input)
	if err != nil {
		return Reading{}, err
	}

	dayMaster := chart.FourPillars.DayMaster()
	dayMasterElement := dayMaster.Element()

	elements := wuxing.Calculate(chart.FourPillars, chart.HiddenStems)
	gods := s.analyzer.Analyze(chart.FourPillars, chart.HiddenStems, dayMaster)
	result := s.strength.Evaluate(chart.FourPillars, chart.HiddenStems, dayMasterElement)
	prefs := strength.Preferences(result.Category, dayMasterElement)

	sunSign, err := western.SunSign(input.Month, input.Day)
	if err != nil {
		return Reading{}, fmt.Errorf("resolving sun sign: %w", err)
	}

	analysis := s.fusion.Analyze(fusion.Input{
		DayMaster:   dayMaster,
		Strength:    result,
		Preferences: prefs,
		SunSign:     sunSign,
		Season:      chart.FourPillars.Month.Branch.Season(),
		MaxQuotes:   input.MaxQuotes,
	})

	reading := Reading{
		Birth:       input,
		Chart:       chart,
		Elements:    elements,
		TenGods:     gods,
		Strength:    result,
		Preferences: prefs,
		SunSign:     sunSign,
		Fusion:      analysis,
		ComputedAt:  time.Now().UTC(),
	}

	s.log.Info().
		Str("day_master", dayMaster.String()).
		Str("sun_sign", sunSign.String()).
		Str("strength", result.Category.String()).
		Msg("Computed reading")

	return reading, nil
}

// ComputePillars runs only the calendar and pillars stages, for callers
// that want the raw chart without the analysis layers.
func (s *Service) ComputePillars(input BirthInput) (pillars.Chart, error) {
	return s.computeChart(input)
}

func (s *Service) computeChart(input BirthInput) (pillars.Chart, error) {
	resolved, err := s.resolver.Resolve(input.Year, input.Month, input.Day)
	if err != nil {
		return pillars.Chart{}, fmt.Errorf("resolving calendar: %w", err)
	}
	chart, err := s.calculator.Calculate(resolved, input.Hour)
	if err != nil {
		return pillars.Chart{}, fmt.Errorf("calculating pillars: %w", err)
	}
	return chart, nil
}

// HarmonyMatrixEntry is one cell of the element correspondence matrix.
type HarmonyMatrixEntry struct {
	Eastern string `json:"eastern"`
	Western string `json:"western"`
	Score   int    `json:"score"`
}

// HarmonyMatrix returns the full 5×4 element correspondence grid in
// canonical order.
func (s *Service) HarmonyMatrix() []HarmonyMatrixEntry {
	matrix := make([]HarmonyMatrixEntry, 0, len(domain.Elements)*len(western.WesternElements))
	for _, eastern := range domain.Elements {
		for _, w := range western.WesternElements {
			matrix = append(matrix, HarmonyMatrixEntry{
				Eastern: eastern.String(),
				Western: w.String(),
				Score:   fusion.HarmonyScore(eastern, w),
			})
		}
	}
	return matrix
}
