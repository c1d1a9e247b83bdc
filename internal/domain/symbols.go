// Package domain defines the symbolic vocabulary of the Four Pillars system:
// the ten Heavenly Stems, twelve Earthly Branches, five elements (Wu Xing),
// their polarities and the static relation tables between them.
//
// Everything in this package is immutable lookup data. Illegal states are
// unrepresentable: all symbols are typed values with validity checks, and
// lookups on out-of-range values fail loudly instead of producing a silently
// wrong chart.
package domain

import "fmt"

// Element is one of the five Wu Xing elements.
type Element int

// The five elements in traditional generation-cycle order.
const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

// Elements lists all five elements in canonical order.
var Elements = []Element{Wood, Fire, Earth, Metal, Water}

var elementNames = [5]string{"Wood", "Fire", "Earth", "Metal", "Water"}
var elementHanzi = [5]string{"木", "火", "土", "金", "水"}

// Valid reports whether e is one of the five defined elements.
func (e Element) Valid() bool {
	return e >= Wood && e <= Water
}

// String returns the English element name, or a diagnostic for invalid values.
func (e Element) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Element(%d)", int(e))
	}
	return elementNames[e]
}

// Hanzi returns the traditional character for the element.
func (e Element) Hanzi() string {
	if !e.Valid() {
		return "?"
	}
	return elementHanzi[e]
}

// Polarity is the yin/yang quality of a stem.
type Polarity int

const (
	// Yang is the active polarity (odd stems in the traditional ordering are yin).
	Yang Polarity = iota
	// Yin is the receptive polarity.
	Yin
)

// String returns "Yang" or "Yin".
func (p Polarity) String() string {
	if p == Yang {
		return "Yang"
	}
	return "Yin"
}

// Stem is one of the ten Heavenly Stems (天干).
type Stem int

// The ten Heavenly Stems in cycle order. Stems alternate polarity and
// pair up on elements: Jia/Yi are Wood, Bing/Ding are Fire, and so on.
const (
	StemJia Stem = iota // 甲 Yang Wood
	StemYi              // 乙 Yin Wood
	StemBing            // 丙 Yang Fire
	StemDing            // 丁 Yin Fire
	StemWu              // 戊 Yang Earth
	StemJi              // 己 Yin Earth
	StemGeng            // 庚 Yang Metal
	StemXin             // 辛 Yin Metal
	StemRen             // 壬 Yang Water
	StemGui             // 癸 Yin Water
)

// StemCount is the length of the Heavenly Stem cycle.
const StemCount = 10

var stemHanzi = [StemCount]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
var stemPinyin = [StemCount]string{"Jia", "Yi", "Bing", "Ding", "Wu", "Ji", "Geng", "Xin", "Ren", "Gui"}

// stemElements maps each stem to its fixed element (two stems per element).
var stemElements = [StemCount]Element{
	Wood, Wood, // 甲 乙
	Fire, Fire, // 丙 丁
	Earth, Earth, // 戊 己
	Metal, Metal, // 庚 辛
	Water, Water, // 壬 癸
}

// Valid reports whether s is one of the ten defined stems.
func (s Stem) Valid() bool {
	return s >= StemJia && s <= StemGui
}

// String returns the traditional character for the stem.
func (s Stem) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Stem(%d)", int(s))
	}
	return stemHanzi[s]
}

// Pinyin returns the romanized stem name.
func (s Stem) Pinyin() string {
	if !s.Valid() {
		return fmt.Sprintf("Stem(%d)", int(s))
	}
	return stemPinyin[s]
}

// Element returns the stem's fixed element.
func (s Stem) Element() Element {
	if !s.Valid() {
		panic(fmt.Sprintf("domain: element lookup on invalid stem %d", int(s)))
	}
	return stemElements[s]
}

// Polarity returns the stem's yin/yang quality. Even-indexed stems are Yang.
func (s Stem) Polarity() Polarity {
	if !s.Valid() {
		panic(fmt.Sprintf("domain: polarity lookup on invalid stem %d", int(s)))
	}
	if s%2 == 0 {
		return Yang
	}
	return Yin
}

// Branch is one of the twelve Earthly Branches (地支).
type Branch int

// The twelve Earthly Branches in cycle order, starting with Zi (子).
const (
	BranchZi   Branch = iota // 子 Rat, Water
	BranchChou               // 丑 Ox, Earth
	BranchYin                // 寅 Tiger, Wood
	BranchMao                // 卯 Rabbit, Wood
	BranchChen               // 辰 Dragon, Earth
	BranchSi                 // 巳 Snake, Fire
	BranchWu                 // 午 Horse, Fire
	BranchWei                // 未 Goat, Earth
	BranchShen               // 申 Monkey, Metal
	BranchYou                // 酉 Rooster, Metal
	BranchXu                 // 戌 Dog, Earth
	BranchHai                // 亥 Pig, Water
)

// BranchCount is the length of the Earthly Branch cycle.
const BranchCount = 12

var branchHanzi = [BranchCount]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}
var branchPinyin = [BranchCount]string{"Zi", "Chou", "Yin", "Mao", "Chen", "Si", "Wu", "Wei", "Shen", "You", "Xu", "Hai"}
var branchAnimals = [BranchCount]string{"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake", "Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig"}

var branchElements = [BranchCount]Element{
	Water, Earth, // 子 丑
	Wood, Wood, // 寅 卯
	Earth, Fire, // 辰 巳
	Fire, Earth, // 午 未
	Metal, Metal, // 申 酉
	Earth, Water, // 戌 亥
}

// Valid reports whether b is one of the twelve defined branches.
func (b Branch) Valid() bool {
	return b >= BranchZi && b <= BranchHai
}

// String returns the traditional character for the branch.
func (b Branch) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Branch(%d)", int(b))
	}
	return branchHanzi[b]
}

// Pinyin returns the romanized branch name.
func (b Branch) Pinyin() string {
	if !b.Valid() {
		return fmt.Sprintf("Branch(%d)", int(b))
	}
	return branchPinyin[b]
}

// Animal returns the zodiac animal associated with the branch.
func (b Branch) Animal() string {
	if !b.Valid() {
		return fmt.Sprintf("Branch(%d)", int(b))
	}
	return branchAnimals[b]
}

// Element returns the branch's fixed element.
func (b Branch) Element() Element {
	if !b.Valid() {
		panic(fmt.Sprintf("domain: element lookup on invalid branch %d", int(b)))
	}
	return branchElements[b]
}

// HiddenStem is a stem contained within an Earthly Branch, carrying the
// fractional influence classical theory assigns it. Weights within a branch
// sum to 1.0 and decay by rank (main > middle > residual).
type HiddenStem struct {
	Stem   Stem    `json:"stem"`
	Weight float64 `json:"weight"`
}

// hiddenStemTable lists the hidden stems per branch in rank order.
// Weights follow the common 0.6/0.3/0.1 split for three-stem branches and
// 0.7/0.3 for two-stem branches; single-stem branches carry the full 1.0.
var hiddenStemTable = [BranchCount][]HiddenStem{
	BranchZi:   {{StemGui, 1.0}},
	BranchChou: {{StemJi, 0.6}, {StemGui, 0.3}, {StemXin, 0.1}},
	BranchYin:  {{StemJia, 0.6}, {StemBing, 0.3}, {StemWu, 0.1}},
	BranchMao:  {{StemYi, 1.0}},
	BranchChen: {{StemWu, 0.6}, {StemYi, 0.3}, {StemGui, 0.1}},
	BranchSi:   {{StemBing, 0.6}, {StemGeng, 0.3}, {StemWu, 0.1}},
	BranchWu:   {{StemDing, 0.7}, {StemJi, 0.3}},
	BranchWei:  {{StemJi, 0.6}, {StemDing, 0.3}, {StemYi, 0.1}},
	BranchShen: {{StemGeng, 0.6}, {StemRen, 0.3}, {StemWu, 0.1}},
	BranchYou:  {{StemXin, 1.0}},
	BranchXu:   {{StemWu, 0.6}, {StemXin, 0.3}, {StemDing, 0.1}},
	BranchHai:  {{StemRen, 0.7}, {StemJia, 0.3}},
}

// HiddenStems returns the branch's hidden stems in rank order (main first).
// The returned slice is a copy; callers may not mutate the table through it.
func (b Branch) HiddenStems() []HiddenStem {
	if !b.Valid() {
		panic(fmt.Sprintf("domain: hidden stem lookup on invalid branch %d", int(b)))
	}
	entries := hiddenStemTable[b]
	out := make([]HiddenStem, len(entries))
	copy(out, entries)
	return out
}

// MainHiddenStem returns the branch's principal hidden stem.
func (b Branch) MainHiddenStem() Stem {
	return b.HiddenStems()[0].Stem
}

// Season is the quarter of the traditional year a month branch belongs to.
type Season int

const (
	Spring Season = iota // 寅卯辰
	Summer               // 巳午未
	Autumn               // 申酉戌
	Winter               // 亥子丑
)

var seasonNames = [4]string{"Spring", "Summer", "Autumn", "Winter"}

// String returns the English season name.
func (s Season) String() string {
	if s < Spring || s > Winter {
		return fmt.Sprintf("Season(%d)", int(s))
	}
	return seasonNames[s]
}

// Season returns the season the branch belongs to when used as a month branch.
func (b Branch) Season() Season {
	if !b.Valid() {
		panic(fmt.Sprintf("domain: season lookup on invalid branch %d", int(b)))
	}
	switch b {
	case BranchYin, BranchMao, BranchChen:
		return Spring
	case BranchSi, BranchWu, BranchWei:
		return Summer
	case BranchShen, BranchYou, BranchXu:
		return Autumn
	default: // 亥 子 丑
		return Winter
	}
}
