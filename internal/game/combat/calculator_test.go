package combat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/elemental/internal/attribute"
	"github.com/udisondev/elemental/internal/element"
	"github.com/udisondev/elemental/internal/game/reaction"
	"github.com/udisondev/elemental/internal/rng"
)

type testAttacker struct {
	name     string
	level    int
	playable bool
}

func (a testAttacker) Name() string     { return a.name }
func (a testAttacker) Level() int       { return a.level }
func (a testAttacker) IsPlayable() bool { return a.playable }

type testTarget struct {
	attrs *attribute.Set
	auras map[element.AuraType]bool
}

func newTestTarget(auras ...element.AuraType) *testTarget {
	t := &testTarget{attrs: attribute.NewSet(100000, 100, 500), auras: make(map[element.AuraType]bool)}
	t.attrs.RES.ApplyToAll(func(p *attribute.PercentAttribute) { p.SetBaseValue(10) })
	for _, a := range auras {
		t.auras[a] = true
	}
	return t
}

func (t *testTarget) Attributes() *attribute.Set      { return t.attrs }
func (t *testTarget) HasAura(a element.AuraType) bool { return t.auras[a] }

func basicHit(elem element.ElementType, units float64) Hit {
	return Hit{
		Name:       "Strike",
		AttackType: element.Normal,
		Element:    elem,
		Scaling:    ScaleATK,
		Multiplier: 100,
		Units:      units,
	}
}

func newAttacker() (testAttacker, *attribute.Set) {
	return testAttacker{name: "Attacker", level: 90, playable: true}, attribute.NewSet(10000, 1000, 500)
}

func TestCalculateDamage_BasicHit(t *testing.T) {
	attacker, stats := newAttacker()
	calc := NewCalculator(rng.Fixed{})

	dmg := calc.CalculateDamage(basicHit(element.Physical, 0), attacker, stats.Snapshot(), newTestTarget())

	want := 1000 * (1 - 500.0/1450.0) * 0.9
	assert.InDelta(t, want, dmg.Amount, 1e-9)
	assert.InDelta(t, 589.7, dmg.Amount, 0.05)
	assert.False(t, dmg.Critical)
	assert.True(t, dmg.Resolved)
	assert.Nil(t, dmg.Reaction)
	assert.Equal(t, "Strike", dmg.Name)
}

func TestCalculateDamage_CritBimodal(t *testing.T) {
	attacker, stats := newAttacker()
	stats.CRIT.Rate.SetBaseValue(60)
	stats.CRIT.DMG.SetBaseValue(120)
	snap := stats.Snapshot()
	target := newTestTarget()

	noCrit := NewCalculator(rng.Fixed{}).CalculateDamage(basicHit(element.Physical, 0), attacker, snap, target).Amount
	critAmount := noCrit * attribute.Percent(120).Multiplier()

	calc := NewCalculator(rng.New(2024))
	var crits int
	for range 2000 {
		dmg := calc.CalculateDamage(basicHit(element.Physical, 0), attacker, snap, target)
		if dmg.Critical {
			crits++
			require.InDelta(t, critAmount, dmg.Amount, 1e-9)
		} else {
			require.Equal(t, noCrit, dmg.Amount)
		}
	}
	assert.InDelta(t, 0.6, float64(crits)/2000, 0.05)
}

func TestCalculateDamage_Vaporize(t *testing.T) {
	attacker, stats := newAttacker()
	snap := stats.Snapshot()
	calc := NewCalculator(rng.Fixed{})

	plain := calc.CalculateDamage(basicHit(element.Pyro, 1), attacker, snap, newTestTarget())
	vape := calc.CalculateDamage(basicHit(element.Pyro, 1), attacker, snap, newTestTarget(element.AuraHydro))

	require.NotNil(t, vape.Reaction)
	assert.Equal(t, element.VaporizePtH, vape.Reaction.Type)
	assert.InDelta(t, 1.5, vape.Amount/plain.Amount, 1e-12)
}

func TestCalculateDamage_TransformativeSkipsCrit(t *testing.T) {
	attacker, stats := newAttacker()
	snap := stats.Snapshot()
	target := newTestTarget(element.AuraPyro)
	calc := NewCalculator(rng.Fixed{Crit: true})

	dmg := calc.CalculateDamage(basicHit(element.Electro, 1), attacker, snap, target)

	require.NotNil(t, dmg.Reaction)
	assert.Equal(t, element.Overloaded, dmg.Reaction.Type)
	assert.False(t, dmg.Critical)

	def := 1 - 500.0/1450.0
	want := (1000 + dmg.Reaction.AdditionalDamage) * def * 0.9
	assert.InDelta(t, want, dmg.Amount, 1e-6)
}

func TestCalculateDamage_ICDStripsUnits(t *testing.T) {
	attacker, stats := newAttacker()
	snap := stats.Snapshot()
	target := newTestTarget(element.AuraHydro)
	calc := NewCalculator(rng.Fixed{})

	icd := element.NewInternalCooldown(2500*time.Millisecond, []bool{true, false, false}, true, "Strike")
	hit := basicHit(element.Pyro, 1)
	hit.ICD = icd

	first := calc.CalculateDamage(hit, attacker, snap, target)
	second := calc.CalculateDamage(hit, attacker, snap, target)

	assert.Equal(t, 1.0, first.Element.Units)
	require.NotNil(t, first.Reaction)

	assert.Equal(t, 0.0, second.Element.Units, "closed ICD strips units")
	assert.Nil(t, second.Reaction, "no reaction without units")
	assert.Positive(t, second.Amount, "hit still deals damage")
	assert.InDelta(t, first.Amount/1.5, second.Amount, 1e-9)

	icd.Update(2500 * time.Millisecond)
	third := calc.CalculateDamage(hit, attacker, snap, target)
	assert.Equal(t, 1.0, third.Element.Units)
}

func TestCalculateDamage_BonusesAndScaling(t *testing.T) {
	attacker, stats := newAttacker()
	stats.DEF.SetBaseValue(2000)
	stats.ElementalDMG.At(element.Hydro).Bonus.SetBaseValue(50)
	snap := stats.Snapshot()
	target := newTestTarget()
	target.attrs.RES.At(element.Hydro).SetBaseValue(-20)

	hit := basicHit(element.Hydro, 0)
	hit.Scaling = ScaleDEF
	hit.Multiplier = 50

	dmg := NewCalculator(rng.Fixed{}).CalculateDamage(hit, attacker, snap, target)
	want := 2000 * 0.5 * 1.5 * (1 - 500.0/1450.0) * 1.1
	assert.InDelta(t, want, dmg.Amount, 1e-9)
}

func TestScaling(t *testing.T) {
	s := attribute.NewSet(15000, 800, 700)
	s.ElementalMastery.SetBaseValue(300)

	assert.Equal(t, attribute.FlatValue(800), ScaleATK.Value(s))
	assert.Equal(t, attribute.FlatValue(700), ScaleDEF.Value(s))
	assert.Equal(t, attribute.FlatValue(15000), ScaleMaxHP.Value(s))
	assert.Equal(t, attribute.FlatValue(300), ScaleEM.Value(s))
	assert.Panics(t, func() { Scaling(9).Value(s) })

	got, err := ParseScaling("MAX_HP")
	require.NoError(t, err)
	assert.Equal(t, ScaleMaxHP, got)
	_, err = ParseScaling("luck")
	assert.Error(t, err)
}

func TestNewRawDMG(t *testing.T) {
	attacker, stats := newAttacker()
	d := NewRawDMG(attacker, stats, "Projectile", 1234, ElementalInstance{Element: element.Cryo, Units: 1}, 20, true)

	assert.False(t, d.Resolved)
	assert.Equal(t, 1234.0, d.Amount)
	assert.Equal(t, 0.0, d.WithoutElement().Element.Units)
	assert.Equal(t, 1.0, d.Element.Units)
}

var _ reaction.Target = (*testTarget)(nil)
