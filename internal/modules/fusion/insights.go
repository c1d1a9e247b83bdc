package fusion

import (
	"fmt"

	"github.com/aristath/meridian/internal/domain"
	"github.com/aristath/meridian/internal/modules/western"
)

// Insight is one tagged cross-system observation in a fusion analysis.
type Insight struct {
	Kind        InsightKind `json:"kind"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Advice      string      `json:"advice,omitempty"`
}

// insightTable keys a canned description by Eastern element × Western sun
// sign. All 60 combinations are present; insightFor fails loudly if a
// lookup ever misses, because an empty insight must never reach a reading.
var insightTable = map[domain.Element]map[western.Sign]string{
	domain.Wood: {
		western.Aries:       "Wood's steady growth gives Aries' impulsive spark something lasting to build toward.",
		western.Taurus:      "Wood roots deeply in Taurus' patient soil; ambitions here mature slowly but surely.",
		western.Gemini:      "Wood branches in every direction under Gemini's curious breeze, thriving on variety.",
		western.Cancer:      "Cancer's nurturing waters feed Wood's growth; home becomes the trellis of ambition.",
		western.Leo:         "Wood fuels Leo's radiant fire, though the blaze must not consume the forest that feeds it.",
		western.Virgo:       "Virgo prunes Wood's wild growth into an orchard; discipline turns vitality into harvest.",
		western.Libra:       "Wood bends gracefully in Libra's winds, growing toward harmony rather than height alone.",
		western.Scorpio:     "Scorpio's deep waters reach Wood's oldest roots; transformation here starts underground.",
		western.Sagittarius: "Wood and Sagittarius both reach for the sky; growth and adventure share one direction.",
		western.Capricorn:   "Capricorn's mountain soil is thin but Wood that grows there grows strongest of all.",
		western.Aquarius:    "Aquarius' currents scatter Wood's seeds far from the grove; originality takes root.",
		western.Pisces:      "Pisces' boundless waters swell Wood's sap; imagination and growth entwine.",
	},
	domain.Fire: {
		western.Aries:       "Double fire: Aries' charge and the Fire day master burn as one flame, bright and fearless.",
		western.Taurus:      "Fire warms Taurus' earth into a hearth; passion learns the value of endurance.",
		western.Gemini:      "Gemini's air fans Fire into dancing light; ideas ignite faster than they can be spoken.",
		western.Cancer:      "Fire meets Cancer's tide; steam rises, and feeling and passion must learn each other's rhythm.",
		western.Leo:         "Fire within and Leo without: a sun that does not ask permission to shine.",
		western.Virgo:       "Virgo banks Fire's blaze into a craftsman's forge; heat becomes precision.",
		western.Libra:       "Libra's breeze steadies Fire into candlelight, warmth made graceful and shared.",
		western.Scorpio:     "Fire plunged into Scorpio's depths becomes volcanic, quiet surfaces over molten will.",
		western.Sagittarius: "Fire rides Sagittarius' arrow; enthusiasm travels further than planning ever could.",
		western.Capricorn:   "Capricorn banks Fire for the long winter; ambition burns slow, hot and unhurried.",
		western.Aquarius:    "Aquarius' wind makes Fire leap unpredictably; brilliance arrives in flashes.",
		western.Pisces:      "Fire flickers on Pisces' waters, a lighthouse flame: softer, but visible from far away.",
	},
	domain.Earth: {
		western.Aries:       "Aries' spark strikes Earth's flint; impatience and steadiness grind toward momentum.",
		western.Taurus:      "Earth upon Taurus' earth: few foundations anywhere are laid this deep.",
		western.Gemini:      "Gemini's winds carry dust from Earth's fields; stability learns to travel light.",
		western.Cancer:      "Cancer's rains soften Earth into fertile ground; care makes everything grow here.",
		western.Leo:         "Leo's sun bakes Earth into brick; pride and patience build monuments together.",
		western.Virgo:       "Earth matched with Virgo's earth: the quiet mastery of things done properly.",
		western.Libra:       "Libra landscapes Earth's raw ground into gardens; beauty needs a foundation.",
		western.Scorpio:     "Scorpio's waters carve canyons through Earth; depth is excavated, not given.",
		western.Sagittarius: "Sagittarius gallops across Earth's plains; the steady ground makes the far horizon reachable.",
		western.Capricorn:   "Earth meets Capricorn's summit stone; endurance compounds into authority.",
		western.Aquarius:    "Aquarius' lightning strikes Earth and leaves glass; convention melts into invention.",
		western.Pisces:      "Pisces' tide meets Earth's shore, each wave reshaping the coastline a little.",
	},
	domain.Metal: {
		western.Aries:       "Aries hammers Metal white-hot; conflict here is a forge, not a failure.",
		western.Taurus:      "Metal veins run through Taurus' hills; worth accumulates out of sight before it shines.",
		western.Gemini:      "Gemini gives Metal its ring; sharp words, bright ideas, a mind like struck silver.",
		western.Cancer:      "Cancer wraps Metal's blade in cloth; protection and precision take turns leading.",
		western.Leo:         "Leo gilds Metal into regalia; excellence wants an audience and earns one.",
		western.Virgo:       "Virgo hones Metal to a surgeon's edge; no detail survives unexamined.",
		western.Libra:       "Libra balances Metal's scales perfectly; judgment becomes an art form.",
		western.Scorpio:     "Scorpio tempers Metal in dark water; resolve emerges unbendable.",
		western.Sagittarius: "Sagittarius fletches Metal into arrowheads; conviction flies straight and far.",
		western.Capricorn:   "Capricorn mines Metal patiently from the mountain; mastery is extracted, year by year.",
		western.Aquarius:    "Aquarius conducts through Metal; invention finds its perfect medium.",
		western.Pisces:      "Pisces salts Metal with mist; intuition softens certainty just enough to keep it honest.",
	},
	domain.Water: {
		western.Aries:       "Aries' heat meets Water's calm; bursts of steam power real engines when channeled.",
		western.Taurus:      "Water settles into Taurus' valley as a lake: still, deep and quietly essential.",
		western.Gemini:      "Gemini ripples Water's surface into a thousand reflections; thought flows everywhere at once.",
		western.Cancer:      "Water joined to Cancer's tide: feeling runs as deep as any ocean trench.",
		western.Leo:         "Leo's sun turns Water to shimmer; charisma flows rather than blazes.",
		western.Virgo:       "Virgo channels Water into aqueducts; sensitivity becomes service.",
		western.Libra:       "Libra stills Water into a mirror; understanding reflects both sides truly.",
		western.Scorpio:     "Water descends into Scorpio's depths, where the strongest currents never show on the surface.",
		western.Sagittarius: "Water runs beside Sagittarius' road as a river; wisdom travels as far as the wanderer.",
		western.Capricorn:   "Water freezes on Capricorn's peak into a glacier: slow, patient, irresistible.",
		western.Aquarius:    "Aquarius pours Water for everyone; insight insists on being shared.",
		western.Pisces:      "Water returns to Pisces' sea; boundaries dissolve and intuition becomes a sense organ.",
	},
}

// insightFor returns the canned description for an element × sign pair.
func insightFor(eastern domain.Element, sign western.Sign) string {
	if !eastern.Valid() {
		panic(fmt.Sprintf("fusion: invalid eastern element %d", int(eastern)))
	}
	if !sign.Valid() {
		panic(fmt.Sprintf("fusion: invalid sign %d", int(sign)))
	}
	desc := insightTable[eastern][sign]
	if desc == "" {
		panic(fmt.Sprintf("fusion: missing insight for %s × %s", eastern, sign))
	}
	return desc
}
