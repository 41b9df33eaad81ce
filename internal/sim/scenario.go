// Package sim runs combat scenarios described by config.Simulator.
package sim

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/udisondev/elemental/internal/attribute"
	"github.com/udisondev/elemental/internal/config"
	"github.com/udisondev/elemental/internal/data"
	"github.com/udisondev/elemental/internal/element"
	"github.com/udisondev/elemental/internal/game/combat"
	"github.com/udisondev/elemental/internal/game/effect"
	"github.com/udisondev/elemental/internal/model"
	"github.com/udisondev/elemental/internal/rng"
)

const standardICDWindow = 2500 * time.Millisecond

var standardICDSequence = []bool{true, false, false}

// Scenario is one built arena with its rotation and buffs.
type Scenario struct {
	arena    *model.Arena
	attacker model.Combatant
	self     *model.Lifeform
	member   bool
	enemies  []*model.Lifeform

	actions []*action
	buffs   []*buff

	// Attacker-side ICDs, one registry per target.
	icds map[*model.Lifeform]*element.CooldownManager
}

type action struct {
	hit    combat.Hit
	every  time.Duration
	target int
	aoe    bool
	icd    *config.ICD
	next   time.Duration
	done   bool
}

type buff struct {
	id      uuid.UUID
	at      time.Duration
	effect  effect.Effect
	applied bool
}

// Build creates a scenario from cfg. Crits are rolled from src.
func Build(cfg config.Simulator, src rng.Source) (*Scenario, error) {
	s := &Scenario{
		arena: model.NewArena(src),
		icds:  make(map[*model.Lifeform]*element.CooldownManager),
	}

	if err := s.buildAttacker(cfg.Attacker); err != nil {
		return nil, fmt.Errorf("attacker: %w", err)
	}
	for i, e := range cfg.Enemies {
		l, err := buildEnemy(e)
		if err != nil {
			return nil, fmt.Errorf("enemy %d: %w", i, err)
		}
		s.arena.AddEnemy(l)
		s.enemies = append(s.enemies, l)
	}
	for i, a := range cfg.Rotation {
		act, err := buildAction(a)
		if err != nil {
			return nil, fmt.Errorf("rotation %d: %w", i, err)
		}
		if act.target >= len(s.enemies) {
			return nil, fmt.Errorf("rotation %d: no enemy %d", i, act.target)
		}
		s.actions = append(s.actions, act)
	}
	for i, b := range cfg.Buffs {
		bf, err := buildBuff(b)
		if err != nil {
			return nil, fmt.Errorf("buff %d: %w", i, err)
		}
		s.buffs = append(s.buffs, bf)
	}
	return s, nil
}

func (s *Scenario) buildAttacker(a config.Attacker) error {
	if a.Template == nil {
		s.self = model.NewLifeform(a.Name, a.Level, attribute.FlatValue(a.HP), attribute.FlatValue(a.ATK), attribute.FlatValue(a.DEF))
		s.attacker = s.self
	} else {
		p, err := buildPlayable(a.Name, a.Level, *a.Template)
		if err != nil {
			return err
		}
		if a.Weapon != nil {
			w, err := buildWeapon(*a.Weapon)
			if err != nil {
				return err
			}
			if err := p.Equip(w); err != nil {
				return err
			}
		}
		s.arena.AddMember(p)
		s.self, s.attacker, s.member = p.Lifeform, p, true
	}

	attrs := s.self.Attributes()
	gear := attribute.NewModifierID()
	attrs.ElementalMastery.Add(gear, attribute.FlatModifier(attribute.FlatValue(a.EM)))
	attrs.CRIT.Rate.Add(gear, attribute.PercentModifier(attribute.Percent(a.CritRate)))
	attrs.CRIT.DMG.Add(gear, attribute.PercentModifier(attribute.Percent(a.CritDMG)))
	return nil
}

func buildPlayable(name string, level int, t config.Template) (*model.Playable, error) {
	q := data.Quality(t.Quality)
	if q != data.FourStars && q != data.FiveStars {
		return nil, fmt.Errorf("quality must be 4 or 5, got %d", t.Quality)
	}
	elem, err := element.ParseElement(t.Element)
	if err != nil {
		return nil, err
	}
	wt, err := model.ParseWeaponType(t.WeaponType)
	if err != nil {
		return nil, err
	}
	stat, err := data.ParseAscensionStat(t.AscensionStat)
	if err != nil {
		return nil, err
	}
	if q == data.FourStars && (stat == data.AscensionCRITRate || stat == data.AscensionCRITDamage || stat == data.AscensionHealingBonus) {
		return nil, fmt.Errorf("4-star characters cannot ascend %s", stat)
	}

	return model.NewPlayable(model.PlayableTemplate{
		Name:            name,
		Quality:         q,
		Element:         elem,
		WeaponType:      wt,
		AscensionStat:   stat,
		BaseHP:          attribute.FlatValue(t.BaseHP),
		BaseATK:         attribute.FlatValue(t.BaseATK),
		BaseDEF:         attribute.FlatValue(t.BaseDEF),
		MaxAscensionHP:  attribute.FlatValue(t.MaxAscHP),
		MaxAscensionATK: attribute.FlatValue(t.MaxAscATK),
		MaxAscensionDEF: attribute.FlatValue(t.MaxAscDEF),
	}, level, data.AscensionLevel(t.Ascension)), nil
}

func buildWeapon(w config.Weapon) (*model.Weapon, error) {
	wt, err := model.ParseWeaponType(w.Type)
	if err != nil {
		return nil, err
	}
	var secondary *model.SecondaryStat
	if w.Secondary != "" {
		st, err := model.ParseSecondaryStatType(w.Secondary)
		if err != nil {
			return nil, err
		}
		secondary = model.NewSecondaryStat(st, w.SecondaryValue)
	}
	return model.NewWeapon(w.Name, wt, attribute.FlatValue(w.ATK), secondary, nil), nil
}

func buildEnemy(e config.Enemy) (*model.Lifeform, error) {
	l := model.NewLifeform(e.Name, e.Level, attribute.FlatValue(e.HP), attribute.FlatValue(e.ATK), attribute.FlatValue(e.DEF))
	l.MoveTo(model.NewLocation(e.X, e.Y))

	for name, v := range e.RES {
		elem, err := element.ParseElement(name)
		if err != nil {
			return nil, err
		}
		l.Attributes().RES.At(elem).SetBaseValue(attribute.Percent(v))
	}
	for _, a := range e.Auras {
		elem, err := element.ParseElement(a.Element)
		if err != nil {
			return nil, err
		}
		t, ok := elem.AuraType()
		if !ok {
			return nil, fmt.Errorf("%s leaves no aura", elem)
		}
		l.Aura(t).Apply(a.Units)
	}
	return l, nil
}

func buildAction(a config.Action) (*action, error) {
	elem, err := element.ParseElement(a.Element)
	if err != nil {
		return nil, err
	}
	at, err := element.ParseAttack(a.AttackType)
	if err != nil {
		return nil, err
	}
	scaling, err := combat.ParseScaling(a.Scaling)
	if err != nil {
		return nil, err
	}

	act := &action{
		hit: combat.Hit{
			Name:       a.Name,
			AttackType: at,
			Element:    elem,
			Scaling:    scaling,
			Multiplier: attribute.Percent(a.Multiplier),
			Units:      a.Units,
			Poise:      a.Poise,
			Blunt:      a.Blunt,
		},
		every:  a.Every,
		target: a.Target,
		aoe:    a.AoE,
		next:   a.At,
	}
	if a.ICD.Tag != "" {
		icd := a.ICD
		if icd.Window <= 0 {
			icd.Window = standardICDWindow
		}
		if len(icd.Sequence) == 0 {
			icd.Sequence, icd.Repeating = standardICDSequence, true
		}
		act.icd = &icd
	}
	return act, nil
}

func buildBuff(b config.Buff) (*buff, error) {
	sel, err := effect.SelectStat(b.Stat)
	if err != nil {
		return nil, err
	}
	mod := attribute.FlatModifier(attribute.FlatValue(b.Flat))
	if b.Percent != 0 {
		mod = attribute.PercentModifier(attribute.Percent(b.Percent))
	}
	return &buff{
		id:     uuid.New(),
		at:     b.At,
		effect: effect.NewTimedEffect(effect.NewStatEffect(b.Name, sel, mod), b.Duration),
	}, nil
}

func (s *Scenario) Arena() *model.Arena        { return s.arena }
func (s *Scenario) Attacker() *model.Lifeform  { return s.self }
func (s *Scenario) Enemies() []*model.Lifeform { return s.enemies }

// Step fires everything due at the current time and then advances the
// clock by elapsed.
func (s *Scenario) Step(elapsed time.Duration) {
	now := s.arena.Elapsed()

	for _, b := range s.buffs {
		if !b.applied && b.at <= now {
			b.applied = true
			s.self.AddEffect(b.id, b.effect)
		}
	}

	for _, a := range s.actions {
		for !a.done && a.next <= now {
			s.fire(a)
			if a.every <= 0 {
				a.done = true
			} else {
				a.next += a.every
			}
		}
	}

	for _, m := range s.icds {
		m.Update(elapsed)
	}
	if !s.member {
		s.self.Update(elapsed)
	}
	s.arena.Update(elapsed)
}

func (s *Scenario) fire(a *action) {
	targets := []*model.Lifeform{s.enemies[a.target]}
	if a.aoe {
		targets = s.enemies
	}
	for _, t := range targets {
		if !t.IsAlive() {
			continue
		}
		hit := a.hit
		hit.ICD = s.icdFor(t, a.icd)
		s.arena.Attack(s.attacker, hit, t)
	}
}

func (s *Scenario) icdFor(target *model.Lifeform, cfg *config.ICD) *element.InternalCooldown {
	if cfg == nil {
		return nil
	}
	m, ok := s.icds[target]
	if !ok {
		m = element.NewCooldownManager()
		s.icds[target] = m
	}
	if c, ok := m.Get(cfg.Tag, cfg.Window); ok {
		return c
	}
	c := element.NewInternalCooldown(cfg.Window, cfg.Sequence, cfg.Repeating, cfg.Tag)
	m.Add(c)
	slog.Debug("icd created", "tag", cfg.Tag, "target", target.Name())
	return c
}
