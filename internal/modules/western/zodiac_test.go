package western

import (
	"testing"

	"github.com/aristath/meridian/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSunSignBoundaries(t *testing.T) {
	cases := []struct {
		month, day int
		sign       Sign
	}{
		{3, 21, Aries},
		{4, 19, Aries},
		{4, 20, Taurus},
		{6, 21, Cancer},
		{7, 22, Cancer},
		{7, 23, Leo},
		{8, 17, Leo},
		{11, 22, Sagittarius},
		{12, 21, Sagittarius},
		{12, 22, Capricorn},
		{12, 31, Capricorn},
		{1, 1, Capricorn},
		{1, 19, Capricorn},
		{1, 20, Aquarius},
		{2, 18, Aquarius},
		{2, 19, Pisces},
		{3, 20, Pisces},
	}

	for _, tc := range cases {
		sign, err := SunSign(tc.month, tc.day)
		require.NoError(t, err)
		assert.Equal(t, tc.sign, sign, "%d/%d", tc.month, tc.day)
	}
}

func TestSunSignRejectsInvalidDates(t *testing.T) {
	for _, tc := range []struct{ month, day int }{
		{0, 10}, {13, 1}, {5, 0}, {5, 32},
	} {
		_, err := SunSign(tc.month, tc.day)
		require.Error(t, err, "%d/%d", tc.month, tc.day)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestSignElementsFollowTriplicities(t *testing.T) {
	assert.Equal(t, ElementFire, Aries.Element())
	assert.Equal(t, ElementFire, Leo.Element())
	assert.Equal(t, ElementFire, Sagittarius.Element())
	assert.Equal(t, ElementEarth, Taurus.Element())
	assert.Equal(t, ElementEarth, Virgo.Element())
	assert.Equal(t, ElementEarth, Capricorn.Element())
	assert.Equal(t, ElementAir, Gemini.Element())
	assert.Equal(t, ElementAir, Libra.Element())
	assert.Equal(t, ElementAir, Aquarius.Element())
	assert.Equal(t, ElementWater, Cancer.Element())
	assert.Equal(t, ElementWater, Scorpio.Element())
	assert.Equal(t, ElementWater, Pisces.Element())
}

func TestEveryDayOfYearResolvesToASign(t *testing.T) {
	daysInMonth := [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	for month := 1; month <= 12; month++ {
		for day := 1; day <= daysInMonth[month-1]; day++ {
			sign, err := SunSign(month, day)
			require.NoError(t, err)
			assert.True(t, sign.Valid(), "%d/%d", month, day)
		}
	}
}
