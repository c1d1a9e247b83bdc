package fusion

import (
	"fmt"

	"github.com/aristath/meridian/internal/domain"
	"github.com/aristath/meridian/internal/modules/quotes"
	"github.com/aristath/meridian/internal/modules/strength"
	"github.com/aristath/meridian/internal/modules/western"
	"github.com/rs/zerolog"
)

// EasternSummary describes the chart side of a fusion analysis.
type EasternSummary struct {
	DayMaster string                     `json:"day_master"`
	Element   string                     `json:"element"`
	Polarity  string                     `json:"polarity"`
	Strength  strength.DayMasterStrength `json:"strength"`
}

// WesternSummary describes the zodiac side of a fusion analysis. The moon
// sign comes from an external ephemeris when available; nil means unknown.
type WesternSummary struct {
	SunSign    western.Sign  `json:"sun_sign"`
	SunElement string        `json:"sun_element"`
	MoonSign   *western.Sign `json:"moon_sign,omitempty"`
}

// Recommendations carries the reading's actionable string lists.
type Recommendations struct {
	Favorable []string `json:"favorable"`
	Caution   []string `json:"caution"`
	Timing    []string `json:"timing"`
}

// Analysis is the complete cross-system reading. It is computed fresh per
// request and never mutated after construction.
type Analysis struct {
	Eastern            EasternSummary       `json:"eastern"`
	Western            WesternSummary       `json:"western"`
	Insights           []Insight            `json:"insights"`
	ElementHarmony     int                  `json:"element_harmony"`
	HarmonyDescription string               `json:"harmony_description"`
	Recommendations    Recommendations      `json:"recommendations"`
	Quotes             []quotes.ScoredQuote `json:"quotes"`
}

// Input bundles the upstream pipeline results the engine fuses.
type Input struct {
	DayMaster   domain.Stem
	Strength    strength.Result
	Preferences strength.ElementPreferences
	SunSign     western.Sign
	MoonSign    *western.Sign
	Season      domain.Season
	MaxQuotes   int
}

// Engine fuses the Eastern pipeline output with the Western zodiac reading.
type Engine struct {
	selector *quotes.Selector
	log      zerolog.Logger
}

// NewEngine creates a fusion engine.
func NewEngine(selector *quotes.Selector, log zerolog.Logger) *Engine {
	return &Engine{
		selector: selector,
		log:      log.With().Str("engine", "fusion").Logger(),
	}
}

// Analyze builds the full fusion analysis. Pure given its input; the
// caller owns upstream validation, and an invalid stem or sign here
// panics rather than producing a wrong reading.
func (e *Engine) Analyze(input Input) Analysis {
	element := input.DayMaster.Element()
	sunElement := input.SunSign.Element()
	score := HarmonyScore(element, sunElement)

	analysis := Analysis{
		Eastern: EasternSummary{
			DayMaster: input.DayMaster.String(),
			Element:   element.String(),
			Polarity:  input.DayMaster.Polarity().String(),
			Strength:  input.Strength.Category,
		},
		Western: WesternSummary{
			SunSign:    input.SunSign,
			SunElement: sunElement.String(),
			MoonSign:   input.MoonSign,
		},
		Insights:           e.buildInsights(input, element, score),
		ElementHarmony:     score,
		HarmonyDescription: harmonyDescription(score),
		Recommendations:    buildRecommendations(input.Preferences),
		Quotes:             e.selectQuotes(input, element),
	}

	e.log.Debug().
		Str("day_master", input.DayMaster.String()).
		Str("sun_sign", input.SunSign.String()).
		Int("harmony", score).
		Msg("Fusion analysis complete")

	return analysis
}

// buildInsights assembles the ordered insight list: the element × sign
// correspondence first, then the strength reading, then the moon note
// when a moon sign is known.
func (e *Engine) buildInsights(input Input, element domain.Element, score int) []Insight {
	insights := []Insight{
		{
			Kind:        kindForScore(score),
			Title:       fmt.Sprintf("%s day master, %s sun", element, input.SunSign),
			Description: insightFor(element, input.SunSign),
			Advice:      harmonyAdvice(kindForScore(score)),
		},
		strengthInsight(input.Strength, element, input.Preferences),
	}

	if input.MoonSign != nil {
		moonElement := input.MoonSign.Element()
		moonScore := HarmonyScore(element, moonElement)
		insights = append(insights, Insight{
			Kind:  kindForScore(moonScore),
			Title: fmt.Sprintf("Moon in %s", *input.MoonSign),
			Description: fmt.Sprintf(
				"Your inner world moves through %s, a %s current beside your %s day master.",
				*input.MoonSign, moonElement, element),
		})
	}

	return insights
}

func harmonyAdvice(kind InsightKind) string {
	switch kind {
	case KindHarmony:
		return "Lean into what comes naturally; your systems agree."
	case KindComplement:
		return "Pair your instincts deliberately; each side covers the other's blind spot."
	case KindNeutral:
		return "Neither force leads by default; choose which to foreground per situation."
	default:
		return "Treat friction as information; the tension marks where growth lives."
	}
}

// strengthInsight renders the strength category as an insight with advice
// drawn from the element preferences.
func strengthInsight(result strength.Result, element domain.Element, prefs strength.ElementPreferences) Insight {
	var kind InsightKind
	var desc string

	switch result.Category {
	case strength.ExtremelyStrong, strength.Strong:
		kind = KindTension
		desc = fmt.Sprintf("Your %s day master is strongly supported; its excess wants an outlet.", element)
	case strength.Balanced:
		kind = KindHarmony
		desc = fmt.Sprintf("Your %s day master sits in balance, neither starved nor flooded.", element)
	default:
		kind = KindComplement
		desc = fmt.Sprintf("Your %s day master runs lean; it gains from every source of support.", element)
	}

	advice := ""
	if len(prefs.Favorable) > 0 {
		advice = fmt.Sprintf("Seek the %s influences around you.", elementListString(prefs.Favorable))
	}

	return Insight{
		Kind:        kind,
		Title:       "Day master strength",
		Description: desc,
		Advice:      advice,
	}
}

// elementSeasons maps each element to its season of peak influence,
// used for timing recommendations. Earth governs the transition month at
// the end of each season rather than a season of its own.
var elementSeasons = map[domain.Element]string{
	domain.Wood:  "spring",
	domain.Fire:  "summer",
	domain.Earth: "the transitions between seasons",
	domain.Metal: "autumn",
	domain.Water: "winter",
}

func buildRecommendations(prefs strength.ElementPreferences) Recommendations {
	rec := Recommendations{
		Favorable: make([]string, 0, len(prefs.Favorable)),
		Caution:   make([]string, 0, len(prefs.Unfavorable)),
		Timing:    make([]string, 0, len(prefs.Favorable)),
	}

	for _, el := range prefs.Favorable {
		rec.Favorable = append(rec.Favorable,
			fmt.Sprintf("Surround yourself with %s energy (%s).", el, el.Hanzi()))
		rec.Timing = append(rec.Timing,
			fmt.Sprintf("Favor %s, when %s is ascendant.", elementSeasons[el], el))
	}
	for _, el := range prefs.Unfavorable {
		rec.Caution = append(rec.Caution,
			fmt.Sprintf("Go lightly where %s dominates.", el))
	}

	return rec
}

func (e *Engine) selectQuotes(input Input, element domain.Element) []quotes.ScoredQuote {
	maxQuotes := input.MaxQuotes
	if maxQuotes <= 0 {
		maxQuotes = 3
	}
	return e.selector.Select(quotes.Criteria{
		DayMaster: &input.DayMaster,
		Element:   &element,
		Strength:  &input.Strength.Category,
		Season:    &input.Season,
		MaxQuotes: maxQuotes,
	})
}

func elementListString(elements []domain.Element) string {
	out := ""
	for i, el := range elements {
		if i > 0 {
			out += " and "
		}
		out += el.String()
	}
	return out
}
