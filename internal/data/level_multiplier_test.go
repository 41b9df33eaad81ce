package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelMultipliers(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(int) float64
		level int
		want  float64
	}{
		{name: "player lvl 90", fn: PlayerLevelMultiplier, level: 90, want: 1446.8535},
		{name: "player lvl 1", fn: PlayerLevelMultiplier, level: 1, want: 17.165605545043945},
		{name: "player below range", fn: PlayerLevelMultiplier, level: -5, want: 17.165605545043945},
		{name: "player above range", fn: PlayerLevelMultiplier, level: 500, want: 3585.207},
		{name: "environment lvl 90", fn: EnvironmentLevelMultiplier, level: 90, want: 1202.8137},
		{name: "environment lvl 0", fn: EnvironmentLevelMultiplier, level: 0, want: 17.165606},
		{name: "environment last", fn: EnvironmentLevelMultiplier, level: 200, want: 2957.796},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.level))
		})
	}
}

func TestLevelMultipliers_Monotonic(t *testing.T) {
	for level := 2; level < levelTableSize; level++ {
		require.GreaterOrEqual(t, PlayerLevelMultiplier(level), PlayerLevelMultiplier(level-1), "player level %d", level)
		require.GreaterOrEqual(t, EnvironmentLevelMultiplier(level), EnvironmentLevelMultiplier(level-1), "environment level %d", level)
	}
}

func TestBaseStatLevelMultiplier(t *testing.T) {
	tests := []struct {
		level   int
		quality Quality
		want    float64
	}{
		{level: 1, quality: FourStars, want: 1},
		{level: 1, quality: FiveStars, want: 1},
		{level: 20, quality: FourStars, want: 2.569},
		{level: 20, quality: FiveStars, want: 2.594},
		{level: 90, quality: FourStars, want: 8.349},
		{level: 90, quality: FiveStars, want: 8.739},
	}

	for _, tt := range tests {
		t.Run(tt.quality.String(), func(t *testing.T) {
			assert.InDelta(t, tt.want, BaseStatLevelMultiplier(tt.level, tt.quality), 1e-9, "level %d", tt.level)
		})
	}
}

func TestAscensionMultipliers(t *testing.T) {
	tests := []struct {
		asc   AscensionLevel
		base  float64
		bonus float64
	}{
		{asc: AscensionNone, base: 0, bonus: 0},
		{asc: AscensionFirst, base: 38.0 / 182, bonus: 0},
		{asc: AscensionSecond, base: 65.0 / 182, bonus: 1},
		{asc: AscensionThird, base: 101.0 / 182, bonus: 2},
		{asc: AscensionFourth, base: 128.0 / 182, bonus: 2},
		{asc: AscensionFifth, base: 155.0 / 182, bonus: 3},
		{asc: AscensionSixth, base: 1, bonus: 4},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.base, BaseStatAscensionMultiplier(tt.asc), 1e-12, "asc %d", tt.asc)
		assert.Equal(t, tt.bonus, BonusStatAscensionMultiplier(tt.asc), "asc %d", tt.asc)
	}
}

func TestBonusStatBaseValue(t *testing.T) {
	assert.Equal(t, 7.5, BonusStatBaseValue(FourStars, AscensionDEF))
	assert.Equal(t, 6.0, BonusStatBaseValue(FourStars, AscensionPyroDMGBonus))
	assert.Equal(t, 24.0, BonusStatBaseValue(FourStars, AscensionElementalMastery))
	assert.Equal(t, 9.6, BonusStatBaseValue(FiveStars, AscensionCRITDamage))
	assert.Equal(t, 28.8, BonusStatBaseValue(FiveStars, AscensionElementalMastery))

	// every stat is known to the 5-star table
	for s := range AscensionStatCount {
		assert.NotPanics(t, func() { BonusStatBaseValue(FiveStars, AscensionStat(s)) }, AscensionStat(s).String())
	}

	assert.Panics(t, func() { BonusStatBaseValue(FourStars, AscensionCRITRate) })
	assert.Panics(t, func() { BonusStatBaseValue(FiveStars, AscensionStat(200)) })
}

func TestParseAscensionStat(t *testing.T) {
	s, err := ParseAscensionStat("CRIT_RATE")
	require.NoError(t, err)
	assert.Equal(t, AscensionCRITRate, s)

	_, err = ParseAscensionStat("luck")
	assert.Error(t, err)
}

func TestSanitizeLevel(t *testing.T) {
	assert.Equal(t, 1, SanitizeLevel(-3))
	assert.Equal(t, 1, SanitizeLevel(0))
	assert.Equal(t, 42, SanitizeLevel(42))
	assert.Equal(t, 90, SanitizeLevel(120))
}

func TestSanitizeAscension(t *testing.T) {
	tests := []struct {
		asc   AscensionLevel
		level int
		want  AscensionLevel
	}{
		{asc: AscensionSixth, level: 1, want: AscensionFirst},
		{asc: AscensionNone, level: 20, want: AscensionNone},
		{asc: AscensionNone, level: 30, want: AscensionFirst},
		{asc: AscensionFifth, level: 45, want: AscensionThird},
		{asc: AscensionFourth, level: 60, want: AscensionFourth},
		{asc: AscensionNone, level: 70, want: AscensionFourth},
		{asc: AscensionSixth, level: 80, want: AscensionSixth},
		{asc: AscensionNone, level: 90, want: AscensionSixth},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeAscension(tt.asc, tt.level), "asc %d level %d", tt.asc, tt.level)
	}
}
