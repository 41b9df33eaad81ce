package sim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/elemental/internal/attribute"
	"github.com/udisondev/elemental/internal/config"
	"github.com/udisondev/elemental/internal/element"
	"github.com/udisondev/elemental/internal/model"
	"github.com/udisondev/elemental/internal/rng"
)

func oneEnemy() config.Simulator {
	cfg := config.DefaultSimulator()
	cfg.Enemies = []config.Enemy{{Name: "Dummy", Level: 90, HP: 1e9, DEF: 500}}
	cfg.Rotation = nil
	return cfg
}

func strikes(s *Scenario) []model.DamageEvent {
	var out []model.DamageEvent
	for _, ev := range s.Arena().Events() {
		if ev.Hit == "Strike" {
			out = append(out, ev)
		}
	}
	return out
}

func TestBuild_Enemies(t *testing.T) {
	cfg := oneEnemy()
	cfg.Enemies = append(cfg.Enemies, config.Enemy{
		Name:  "Ruin Guard",
		HP:    1000,
		X:     4,
		RES:   map[string]float64{"physical": 70},
		Auras: []config.Aura{{Element: "cryo", Units: 2}},
	})

	sc, err := Build(cfg, rng.Fixed{})
	require.NoError(t, err)
	require.Len(t, sc.Enemies(), 2)

	guard := sc.Enemies()[1]
	assert.Equal(t, 1, guard.Level())
	assert.Equal(t, model.NewLocation(4, 0), guard.Location())
	assert.Equal(t, attribute.Percent(70), guard.Attributes().RES.At(element.Physical).Value())
	assert.Equal(t, attribute.Percent(10), guard.Attributes().RES.At(element.Pyro).Value())
	assert.InDelta(t, 1.6, guard.Aura(element.AuraCryo).Units(), 1e-12)
}

func TestBuild_AttackerGear(t *testing.T) {
	cfg := oneEnemy()
	cfg.Attacker.EM = 120

	sc, err := Build(cfg, rng.Fixed{})
	require.NoError(t, err)

	attrs := sc.Attacker().Attributes()
	assert.Equal(t, attribute.FlatValue(2000), attrs.ATK.Value())
	assert.Equal(t, attribute.FlatValue(120), attrs.ElementalMastery.Value())
	assert.Equal(t, attribute.Percent(60), attrs.CRIT.Rate.Value())
	assert.Equal(t, attribute.Percent(120), attrs.CRIT.DMG.Value())
	assert.Empty(t, sc.Arena().Members())
}

func TestBuild_PlayableAttacker(t *testing.T) {
	cfg := oneEnemy()
	cfg.Attacker.Template = &config.Template{
		Quality:       5,
		Ascension:     6,
		Element:       "pyro",
		WeaponType:    "claymore",
		AscensionStat: "crit_rate",
		BaseHP:        1011,
		BaseATK:       26,
		BaseDEF:       61,
		MaxAscHP:      2926,
		MaxAscATK:     75,
		MaxAscDEF:     177,
	}
	cfg.Attacker.Weapon = &config.Weapon{Name: "Wolf's Gravestone", Type: "claymore", ATK: 608, Secondary: "atk", SecondaryValue: 49.6}

	sc, err := Build(cfg, rng.Fixed{})
	require.NoError(t, err)

	members := sc.Arena().Members()
	require.Len(t, members, 1)
	p := members[0]
	assert.Same(t, p.Lifeform, sc.Attacker())
	require.NotNil(t, p.Weapon())
	assert.Equal(t, "Wolf's Gravestone", p.Weapon().Name)
	assert.Greater(t, float64(p.Attributes().ATK.Value()), 608.0)
	assert.Greater(t, float64(p.Attributes().CRIT.Rate.Value()), 60.0)
}

func TestBuild_Errors(t *testing.T) {
	template := func() *config.Template {
		return &config.Template{Quality: 5, Element: "pyro", WeaponType: "claymore", AscensionStat: "atk"}
	}
	tests := []struct {
		name   string
		mutate func(*config.Simulator)
		target error
	}{
		{"aura of anemo", func(c *config.Simulator) { c.Enemies[0].Auras = []config.Aura{{Element: "anemo", Units: 1}} }, nil},
		{"unknown res", func(c *config.Simulator) { c.Enemies[0].RES = map[string]float64{"light": 1} }, element.ErrUnknownName},
		{"unknown scaling", func(c *config.Simulator) {
			c.Rotation = []config.Action{{Element: "pyro", AttackType: "normal", Scaling: "luck"}}
		}, nil},
		{"rotation target", func(c *config.Simulator) {
			c.Rotation = []config.Action{{Element: "pyro", AttackType: "normal", Target: 2}}
		}, nil},
		{"unknown buff stat", func(c *config.Simulator) { c.Buffs = []config.Buff{{Stat: "luck"}} }, attribute.ErrUnknownStat},
		{"bad quality", func(c *config.Simulator) {
			c.Attacker.Template = template()
			c.Attacker.Template.Quality = 3
		}, nil},
		{"four star crit", func(c *config.Simulator) {
			c.Attacker.Template = template()
			c.Attacker.Template.Quality = 4
			c.Attacker.Template.AscensionStat = "crit_rate"
		}, nil},
		{"wrong weapon", func(c *config.Simulator) {
			c.Attacker.Template = template()
			c.Attacker.Weapon = &config.Weapon{Name: "Dull Blade", Type: "sword"}
		}, model.ErrWeaponType},
		{"unknown weapon type", func(c *config.Simulator) {
			c.Attacker.Template = template()
			c.Attacker.Template.WeaponType = "whip"
		}, model.ErrUnknownWeaponType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := oneEnemy()
			tt.mutate(&cfg)

			_, err := Build(cfg, rng.Fixed{})
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestScenario_RotationTiming(t *testing.T) {
	cfg := oneEnemy()
	cfg.Rotation = []config.Action{
		{Name: "Strike", Every: time.Second, AttackType: "normal", Element: "physical", Multiplier: 100},
		{Name: "Opener", At: 500 * time.Millisecond, AttackType: "skill", Element: "physical", Multiplier: 100},
	}

	sc, err := Build(cfg, rng.Fixed{})
	require.NoError(t, err)
	_, err = sc.Run(context.Background(), 3*time.Second, 100*time.Millisecond)
	require.NoError(t, err)

	got := strikes(sc)
	require.Len(t, got, 3)
	assert.Equal(t, []time.Duration{0, time.Second, 2 * time.Second}, []time.Duration{got[0].At, got[1].At, got[2].At})

	events := sc.Arena().Events()
	require.Len(t, events, 4)
	assert.Equal(t, "Opener", events[1].Hit)
	assert.Equal(t, 500*time.Millisecond, events[1].At)
}

func TestScenario_ICDGatesReactions(t *testing.T) {
	tests := []struct {
		name      string
		icd       config.ICD
		reactions int
	}{
		{"no icd", config.ICD{}, 4},
		{"standard icd", config.ICD{Tag: "normal"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := oneEnemy()
			cfg.Enemies[0].Auras = []config.Aura{{Element: "hydro", Units: 4}}
			cfg.Rotation = []config.Action{{
				Name:       "Strike",
				Every:      300 * time.Millisecond,
				AttackType: "normal",
				Element:    "pyro",
				Multiplier: 100,
				Units:      1,
				ICD:        tt.icd,
			}}

			sc, err := Build(cfg, rng.Fixed{})
			require.NoError(t, err)
			res, err := sc.Run(context.Background(), time.Second, 100*time.Millisecond)
			require.NoError(t, err)

			assert.Equal(t, 4, res.Hits)
			assert.Equal(t, tt.reactions, res.Reactions[element.VaporizePtH])
		})
	}
}

func TestScenario_ICDIsPerTarget(t *testing.T) {
	cfg := oneEnemy()
	cfg.Enemies = append(cfg.Enemies, config.Enemy{Name: "Second", HP: 1e9})
	sc, err := Build(cfg, rng.Fixed{})
	require.NoError(t, err)

	icd := &config.ICD{Tag: "normal", Window: standardICDWindow, Sequence: standardICDSequence, Repeating: true}
	first := sc.icdFor(sc.Enemies()[0], icd)
	assert.Same(t, first, sc.icdFor(sc.Enemies()[0], icd))
	assert.NotSame(t, first, sc.icdFor(sc.Enemies()[1], icd))
	assert.Nil(t, sc.icdFor(sc.Enemies()[0], nil))
}

func TestScenario_AoE(t *testing.T) {
	cfg := oneEnemy()
	cfg.Enemies = append(cfg.Enemies, config.Enemy{Name: "Second", Level: 90, HP: 1e9, DEF: 500, X: 10})
	cfg.Rotation = []config.Action{{Name: "Strike", AoE: true, AttackType: "burst", Element: "physical", Multiplier: 300}}

	sc, err := Build(cfg, rng.Fixed{})
	require.NoError(t, err)
	sc.Step(100 * time.Millisecond)

	got := strikes(sc)
	require.Len(t, got, 2)
	assert.Equal(t, "Dummy", got[0].Target)
	assert.Equal(t, "Second", got[1].Target)
	assert.InDelta(t, got[0].Amount, got[1].Amount, 1e-9)
}

func TestScenario_BuffExpires(t *testing.T) {
	cfg := oneEnemy()
	cfg.Buffs = []config.Buff{{Name: "Fantastic Voyage", Stat: "atk", Flat: 1000, Duration: time.Second}}

	sc, err := Build(cfg, rng.Fixed{})
	require.NoError(t, err)
	atk := sc.Attacker().Attributes().ATK

	sc.Step(100 * time.Millisecond)
	assert.Equal(t, attribute.FlatValue(3000), atk.Value())

	for range 10 {
		sc.Step(100 * time.Millisecond)
	}
	assert.Equal(t, attribute.FlatValue(2000), atk.Value())
	assert.Zero(t, sc.Attacker().Effects().Len())
}

func TestRun_DeterministicAcrossWorkers(t *testing.T) {
	cfg := config.DefaultSimulator()
	cfg.Trials = 40

	cfg.Workers = 1
	serial, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	cfg.Workers = 8
	parallel, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
	assert.Equal(t, 40, serial.Trials)
	assert.LessOrEqual(t, serial.Min, serial.Mean)
	assert.LessOrEqual(t, serial.Mean, serial.Max)
	assert.GreaterOrEqual(t, serial.Reactions[element.VaporizePtH], serial.Trials)
}

func TestRun_CritRateConverges(t *testing.T) {
	cfg := config.DefaultSimulator()
	cfg.Trials = 200

	report, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, 200*5, report.Hits)
	assert.InDelta(t, 0.6, report.CritRate(), 0.06)
	assert.InDelta(t, report.Mean/10, report.DPS(), 1e-9)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, config.DefaultSimulator())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := config.DefaultSimulator()
	cfg.Trials = 0

	_, err := Run(context.Background(), cfg)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestAggregate(t *testing.T) {
	r := aggregate([]Result{
		{Total: 100, Hits: 2, Crits: 1, Reactions: map[element.ReactionType]int{element.Overloaded: 1}},
		{Total: 300, Hits: 4, Crits: 3, Reactions: map[element.ReactionType]int{element.Overloaded: 2, element.MeltPtC: 1}},
	})

	assert.Equal(t, 2, r.Trials)
	assert.Equal(t, 200.0, r.Mean)
	assert.Equal(t, 100.0, r.Min)
	assert.Equal(t, 300.0, r.Max)
	assert.Equal(t, 6, r.Hits)
	assert.InDelta(t, 4.0/6.0, r.CritRate(), 1e-12)
	assert.Equal(t, map[element.ReactionType]int{element.Overloaded: 3, element.MeltPtC: 1}, r.Reactions)

	empty := aggregate(nil)
	assert.Zero(t, empty.Min)
	assert.Zero(t, empty.Max)
	assert.Zero(t, empty.DPS())
}
