// Package western computes the tropical Sun sign and its classical element.
package western

import (
	"fmt"

	"github.com/aristath/meridian/internal/domain"
)

// Sign is one of the twelve tropical zodiac signs.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// SignCount is the number of zodiac signs.
const SignCount = 12

// Signs lists all twelve signs in zodiacal order.
var Signs = []Sign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

var signNames = [SignCount]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Valid reports whether s is one of the twelve signs.
func (s Sign) Valid() bool {
	return s >= Aries && s <= Pisces
}

// String returns the sign name.
func (s Sign) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s]
}

// Element is one of the four classical Western elements.
type Element int

const (
	ElementFire Element = iota
	ElementEarth
	ElementAir
	ElementWater
)

// WesternElements lists the four classical elements.
var WesternElements = []Element{ElementFire, ElementEarth, ElementAir, ElementWater}

var westernElementNames = [4]string{"Fire", "Earth", "Air", "Water"}

// Valid reports whether e is one of the four classical elements.
func (e Element) Valid() bool {
	return e >= ElementFire && e <= ElementWater
}

// String returns the element name.
func (e Element) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Element(%d)", int(e))
	}
	return westernElementNames[e]
}

// Signs cycle through the elements in fixed triplicities:
// Fire (Aries, Leo, Sagittarius), Earth (Taurus, Virgo, Capricorn),
// Air (Gemini, Libra, Aquarius), Water (Cancer, Scorpio, Pisces).
var signElements = [SignCount]Element{
	ElementFire, ElementEarth, ElementAir, ElementWater,
	ElementFire, ElementEarth, ElementAir, ElementWater,
	ElementFire, ElementEarth, ElementAir, ElementWater,
}

// Element returns the sign's classical element.
func (s Sign) Element() Element {
	if !s.Valid() {
		panic(fmt.Sprintf("western: element lookup on invalid sign %d", int(s)))
	}
	return signElements[s]
}

// signBoundaries lists sign start dates in calendar order. Tropical
// boundary dates wobble by a day with the leap cycle; these are the
// customary published dates.
var signBoundaries = [SignCount]struct {
	month, day int
	sign       Sign
}{
	{1, 20, Aquarius},
	{2, 19, Pisces},
	{3, 21, Aries},
	{4, 20, Taurus},
	{5, 21, Gemini},
	{6, 21, Cancer},
	{7, 23, Leo},
	{8, 23, Virgo},
	{9, 23, Libra},
	{10, 23, Scorpio},
	{11, 22, Sagittarius},
	{12, 22, Capricorn},
}

// SunSign returns the tropical Sun sign for a birth month and day.
// Fails with domain.ErrInvalidInput for impossible month/day values.
func SunSign(month, day int) (Sign, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return Aries, fmt.Errorf("%w: month %d day %d out of range", domain.ErrInvalidInput, month, day)
	}

	// The sign is the last boundary on or before the date; dates before
	// Jan 20 still sit in the Capricorn arc that started in December.
	sign := Capricorn
	for _, b := range signBoundaries {
		if month > b.month || (month == b.month && day >= b.day) {
			sign = b.sign
		}
	}
	return sign, nil
}
