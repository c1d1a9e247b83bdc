package domain

import "fmt"

// TenGod is one of the ten relational labels (十神) a stem can carry
// relative to the Day Master. The label is a pure function of the
// element-cycle relation between the two stems and whether their
// polarities match.
type TenGod int

const (
	FriendGod        TenGod = iota // 比肩 same element, same polarity
	RobWealthGod                   // 劫财 same element, different polarity
	EatingGod                      // 食神 Day Master generates, same polarity
	HurtingOfficer                 // 伤官 Day Master generates, different polarity
	IndirectWealth                 // 偏财 Day Master controls, same polarity
	DirectWealth                   // 正财 Day Master controls, different polarity
	SevenKillings                  // 七杀 controls Day Master, same polarity
	DirectOfficer                  // 正官 controls Day Master, different polarity
	IndirectResource               // 偏印 generates Day Master, same polarity
	DirectResource                 // 正印 generates Day Master, different polarity
)

// TenGodCount is the number of Ten God labels.
const TenGodCount = 10

// TenGods lists all ten labels in canonical order.
var TenGods = []TenGod{
	FriendGod, RobWealthGod,
	EatingGod, HurtingOfficer,
	IndirectWealth, DirectWealth,
	SevenKillings, DirectOfficer,
	IndirectResource, DirectResource,
}

var tenGodHanzi = [TenGodCount]string{"比肩", "劫财", "食神", "伤官", "偏财", "正财", "七杀", "正官", "偏印", "正印"}
var tenGodNames = [TenGodCount]string{
	"Friend", "Rob Wealth",
	"Eating God", "Hurting Officer",
	"Indirect Wealth", "Direct Wealth",
	"Seven Killings", "Direct Officer",
	"Indirect Resource", "Direct Resource",
}

// TenGodCategory groups the ten labels into the five classical categories.
type TenGodCategory int

const (
	CategoryParallel TenGodCategory = iota // 比劫 peers of the Day Master
	CategoryOutput                         // 食伤 what the Day Master produces
	CategoryWealth                         // 财 what the Day Master controls
	CategoryPower                          // 官杀 what controls the Day Master
	CategoryResource                       // 印 what generates the Day Master
)

var categoryNames = [5]string{"Parallel", "Output", "Wealth", "Power", "Resource"}

// String returns the English category name.
func (c TenGodCategory) String() string {
	if c < CategoryParallel || c > CategoryResource {
		return fmt.Sprintf("TenGodCategory(%d)", int(c))
	}
	return categoryNames[c]
}

// Valid reports whether g is one of the ten defined labels.
func (g TenGod) Valid() bool {
	return g >= FriendGod && g <= DirectResource
}

// String returns the traditional two-character label.
func (g TenGod) String() string {
	if !g.Valid() {
		return fmt.Sprintf("TenGod(%d)", int(g))
	}
	return tenGodHanzi[g]
}

// EnglishName returns the conventional English rendering of the label.
func (g TenGod) EnglishName() string {
	if !g.Valid() {
		return fmt.Sprintf("TenGod(%d)", int(g))
	}
	return tenGodNames[g]
}

// Category returns the label's classical category. Labels pair up two per
// category in declaration order.
func (g TenGod) Category() TenGodCategory {
	if !g.Valid() {
		panic(fmt.Sprintf("domain: category lookup on invalid ten god %d", int(g)))
	}
	return TenGodCategory(g / 2)
}

// TenGodOf returns the label other carries relative to the Day Master.
// The determination collapses the full 10×10 stem grid to relation + polarity:
//
//	same element        → 比肩 (same polarity) / 劫财 (different)
//	DM generates other  → 食神 / 伤官
//	DM controls other   → 偏财 / 正财
//	other controls DM   → 七杀 / 正官
//	other generates DM  → 偏印 / 正印
func TenGodOf(dayMaster, other Stem) TenGod {
	if !dayMaster.Valid() || !other.Valid() {
		panic(fmt.Sprintf("domain: ten god lookup on invalid stems %d, %d", int(dayMaster), int(other)))
	}

	samePolarity := dayMaster.Polarity() == other.Polarity()

	pick := func(same, different TenGod) TenGod {
		if samePolarity {
			return same
		}
		return different
	}

	switch RelationTo(dayMaster.Element(), other.Element()) {
	case RelationSame:
		return pick(FriendGod, RobWealthGod)
	case RelationGeneratedByRef:
		return pick(EatingGod, HurtingOfficer)
	case RelationControlledByRef:
		return pick(IndirectWealth, DirectWealth)
	case RelationControlsRef:
		return pick(SevenKillings, DirectOfficer)
	default: // RelationGeneratesRef
		return pick(IndirectResource, DirectResource)
	}
}
