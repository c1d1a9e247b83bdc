package quotes

import (
	"sort"

	"github.com/aristath/meridian/internal/domain"
	"github.com/aristath/meridian/internal/modules/strength"
	"github.com/rs/zerolog"
)

// Relevance point values per matching criterion. The day master is the
// most specific signal and scores highest; general-category quotes carry
// a small baseline so a reading never renders without literature.
const (
	pointsDayMaster = 50
	pointsElement   = 30
	pointsTenGod    = 25
	pointsStrength  = 20
	pointsSeason    = 15
	pointsCategory  = 10
	pointsGeneral   = 5
)

// Criteria describes what the caller wants quotes about. Nil fields are
// ignored. MaxQuotes bounds the result; zero or negative means no quotes.
type Criteria struct {
	DayMaster *domain.Stem
	Element   *domain.Element
	TenGod    *domain.TenGod
	Strength  *strength.DayMasterStrength
	Season    *domain.Season
	Category  string
	MaxQuotes int
}

// ScoredQuote pairs a quote with its relevance score, exposed so callers
// can surface why a quote was chosen.
type ScoredQuote struct {
	Quote Quote `json:"quote"`
	Score int   `json:"score"`
}

// Selector ranks the fixed corpus against chart criteria.
type Selector struct {
	corpus []Quote
	log    zerolog.Logger
}

// NewSelector creates a selector over the built-in corpus.
func NewSelector(log zerolog.Logger) *Selector {
	return &Selector{
		corpus: Corpus(),
		log:    log.With().Str("selector", "quotes").Logger(),
	}
}

// Select scores every corpus quote, sorts descending (ties keep corpus
// order), drops zero scores and truncates to MaxQuotes. When nothing
// scores, it falls back to general-category quotes so a reading never
// renders without literature. Deterministic for identical criteria.
func (s *Selector) Select(criteria Criteria) []ScoredQuote {
	if criteria.MaxQuotes <= 0 {
		return []ScoredQuote{}
	}

	scored := make([]ScoredQuote, 0, len(s.corpus))
	for _, q := range s.corpus {
		if score := relevance(q, criteria); score > 0 {
			scored = append(scored, ScoredQuote{Quote: q, Score: score})
		}
	}

	if len(scored) == 0 {
		s.log.Debug().Msg("No quotes matched criteria, falling back to general category")
		return s.generalFallback(criteria.MaxQuotes)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > criteria.MaxQuotes {
		scored = scored[:criteria.MaxQuotes]
	}
	return scored
}

// relevance sums the fixed point values for each criterion matching the
// quote's tags.
func relevance(q Quote, c Criteria) int {
	score := 0

	if c.DayMaster != nil && containsStem(q.DayMasters, *c.DayMaster) {
		score += pointsDayMaster
	}
	if c.Element != nil && containsElement(q.Elements, *c.Element) {
		score += pointsElement
	}
	if c.TenGod != nil && containsTenGod(q.TenGods, *c.TenGod) {
		score += pointsTenGod
	}
	if c.Strength != nil && containsStrength(q.Strengths, *c.Strength) {
		score += pointsStrength
	}
	if c.Season != nil && containsSeason(q.Seasons, *c.Season) {
		score += pointsSeason
	}
	if c.Category != "" && q.Category == c.Category {
		score += pointsCategory
	}
	if q.Category == CategoryGeneral {
		score += pointsGeneral
	}

	return score
}

func (s *Selector) generalFallback(maxQuotes int) []ScoredQuote {
	fallback := make([]ScoredQuote, 0, maxQuotes)
	for _, q := range s.corpus {
		if q.Category != CategoryGeneral {
			continue
		}
		fallback = append(fallback, ScoredQuote{Quote: q, Score: pointsGeneral})
		if len(fallback) == maxQuotes {
			break
		}
	}
	return fallback
}

func containsStem(list []domain.Stem, v domain.Stem) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsElement(list []domain.Element, v domain.Element) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsTenGod(list []domain.TenGod, v domain.TenGod) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsStrength(list []strength.DayMasterStrength, v strength.DayMasterStrength) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsSeason(list []domain.Season, v domain.Season) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
