// Package quotes selects classical-text quotes relevant to a chart.
package quotes

import (
	"github.com/aristath/meridian/internal/domain"
	"github.com/aristath/meridian/internal/modules/strength"
)

// Quote is one classical-text passage with the applicability tags the
// selector scores against. Empty tag slices mean "no opinion" for that
// criterion, not "matches everything".
type Quote struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Source   string `json:"source"`
	Category string `json:"category"`

	DayMasters []domain.Stem                `json:"-"`
	Elements   []domain.Element             `json:"-"`
	TenGods    []domain.TenGod              `json:"-"`
	Strengths  []strength.DayMasterStrength `json:"-"`
	Seasons    []domain.Season              `json:"-"`
}

// CategoryGeneral is the fallback category returned when nothing scores.
const CategoryGeneral = "general"

// corpus is the fixed quote collection. Order matters: ties in relevance
// score break on corpus position.
var corpus = []Quote{
	{
		ID:       "ditiansui-wood-spring",
		Text:     "甲木参天，脱胎要火。春不容金，秋不容土。",
		Source:   "滴天髓",
		Category: "element",
		DayMasters: []domain.Stem{domain.StemJia},
		Elements:  []domain.Element{domain.Wood},
		Seasons:   []domain.Season{domain.Spring},
	},
	{
		ID:       "ditiansui-yi-wood",
		Text:     "乙木虽柔，刲羊解牛。怀丁抱丙，跨凤乘猴。",
		Source:   "滴天髓",
		Category: "element",
		DayMasters: []domain.Stem{domain.StemYi},
		Elements:  []domain.Element{domain.Wood},
	},
	{
		ID:       "ditiansui-bing-fire",
		Text:     "丙火猛烈，欺霜侮雪。能煅庚金，逢辛反怯。",
		Source:   "滴天髓",
		Category: "element",
		DayMasters: []domain.Stem{domain.StemBing},
		Elements:  []domain.Element{domain.Fire},
	},
	{
		ID:       "ditiansui-wu-earth",
		Text:     "戊土固重，既中且正。静翕动辟，万物司命。",
		Source:   "滴天髓",
		Category: "element",
		DayMasters: []domain.Stem{domain.StemWu},
		Elements:  []domain.Element{domain.Earth},
	},
	{
		ID:       "ditiansui-geng-metal",
		Text:     "庚金带煞，刚健为最。得水而清，得火而锐。",
		Source:   "滴天髓",
		Category: "element",
		DayMasters: []domain.Stem{domain.StemGeng},
		Elements:  []domain.Element{domain.Metal},
	},
	{
		ID:       "ditiansui-ren-water",
		Text:     "壬水通河，能泄金气。刚中之德，周流不滞。",
		Source:   "滴天髓",
		Category: "element",
		DayMasters: []domain.Stem{domain.StemRen},
		Elements:  []domain.Element{domain.Water},
	},
	{
		ID:       "zipingzhenquan-officer",
		Text:     "正官者，分所当尊，如在国有君，在家有亲。",
		Source:   "子平真诠",
		Category: "tengod",
		TenGods:  []domain.TenGod{domain.DirectOfficer},
	},
	{
		ID:       "zipingzhenquan-seven-killings",
		Text:     "七杀者，两雄不并立，有制则化为权。",
		Source:   "子平真诠",
		Category: "tengod",
		TenGods:  []domain.TenGod{domain.SevenKillings},
	},
	{
		ID:       "sanmingtonghui-wealth",
		Text:     "财为养命之源，身旺财旺，富贵双全。",
		Source:   "三命通会",
		Category: "tengod",
		TenGods:  []domain.TenGod{domain.DirectWealth, domain.IndirectWealth},
		Strengths: []strength.DayMasterStrength{strength.Strong, strength.ExtremelyStrong},
	},
	{
		ID:       "sanmingtonghui-resource",
		Text:     "印绶者，生我之神，主聪明多智，身弱喜之。",
		Source:   "三命通会",
		Category: "tengod",
		TenGods:  []domain.TenGod{domain.DirectResource, domain.IndirectResource},
		Strengths: []strength.DayMasterStrength{strength.ExtremelyWeak, strength.Weak},
	},
	{
		ID:       "qiongtongbaojian-summer-fire",
		Text:     "夏月之火，秉令乘权，逢金必作良工。",
		Source:   "穷通宝鉴",
		Category: "season",
		Elements: []domain.Element{domain.Fire},
		Seasons:  []domain.Season{domain.Summer},
	},
	{
		ID:       "qiongtongbaojian-winter-water",
		Text:     "冬月之水，司令当权，遇火则增暖除寒。",
		Source:   "穷通宝鉴",
		Category: "season",
		Elements: []domain.Element{domain.Water},
		Seasons:  []domain.Season{domain.Winter},
	},
	{
		ID:       "yuanhaiziping-balance",
		Text:     "中和为贵，偏枯为贱。五行贵在流通。",
		Source:   "渊海子平",
		Category: "strength",
		Strengths: []strength.DayMasterStrength{strength.Balanced},
	},
	{
		ID:       "yuanhaiziping-strong",
		Text:     "身强当泄，旺极宜克，木盛金伐之。",
		Source:   "渊海子平",
		Category: "strength",
		Strengths: []strength.DayMasterStrength{strength.Strong, strength.ExtremelyStrong},
	},
	{
		ID:       "general-dao",
		Text:     "一阴一阳之谓道，继之者善也，成之者性也。",
		Source:   "易经·系辞",
		Category: CategoryGeneral,
	},
	{
		ID:       "general-virtue",
		Text:     "天行健，君子以自强不息。地势坤，君子以厚德载物。",
		Source:   "易经",
		Category: CategoryGeneral,
	},
	{
		ID:       "general-timing",
		Text:     "君子藏器于身，待时而动。",
		Source:   "易经·系辞",
		Category: CategoryGeneral,
	},
}

// Corpus returns a copy of the full quote corpus in canonical order.
func Corpus() []Quote {
	out := make([]Quote, len(corpus))
	copy(out, corpus)
	return out
}
