package model

import (
	"log/slog"
	"time"

	"github.com/udisondev/elemental/internal/cooldown"
	"github.com/udisondev/elemental/internal/element"
	"github.com/udisondev/elemental/internal/game/combat"
	"github.com/udisondev/elemental/internal/game/effect"
)

const (
	electroChargedInterval = time.Second
	electroChargedDrain    = 0.4
	electroChargedChain    = 3.0

	// A tick this close is still delivered when an aura runs out.
	electroChargedGrace = 500 * time.Millisecond
)

// ElectroChargedEffect is the Electro-Charged damage over time.
//
// It ticks on install and then every second. Each tick hits the carrier
// and drains both Hydro and Electro by 0.4 units; ticks after the first also
// arc to the nearest other enemy within 3 that carries Hydro. It ends as
// soon as either aura is gone.
type ElectroChargedEffect struct {
	carrier *Lifeform
	dmg     combat.DMG
	ticker  *cooldown.Cooldown
	active  bool
}

// NewElectroChargedEffect creates the effect for carrier with the tick hit.
func NewElectroChargedEffect(carrier *Lifeform, dmg combat.DMG) *ElectroChargedEffect {
	return &ElectroChargedEffect{
		carrier: carrier,
		dmg:     dmg,
		ticker:  cooldown.New(electroChargedInterval),
	}
}

// Refresh replaces the tick hit. The last applier wins.
func (e *ElectroChargedEffect) Refresh(dmg combat.DMG) {
	e.dmg = dmg
	slog.Debug("electro-charged refreshed", "target", e.carrier.Name(), "source", dmg.Source.Name())
}

func (e *ElectroChargedEffect) Apply(effect.Host) {
	e.active = true
	e.tick(true)
	e.ticker.Trigger()
}

func (e *ElectroChargedEffect) Remove(effect.Host) {
	e.active = false
}

func (e *ElectroChargedEffect) Active() bool { return e.active }

func (e *ElectroChargedEffect) Update(elapsed time.Duration) {
	if !e.active {
		return
	}
	e.ticker.Update(elapsed)

	if !e.carrier.HasAura(element.AuraHydro) || !e.carrier.HasAura(element.AuraElectro) {
		if e.ticker.Remaining() < electroChargedGrace {
			e.tick(false)
		}
		e.active = false
		return
	}

	if e.ticker.TryTrigger() {
		e.tick(false)
	}
}

func (e *ElectroChargedEffect) tick(first bool) {
	e.carrier.ReceiveDamage(e.dmg)
	e.carrier.Aura(element.AuraHydro).Reduce(electroChargedDrain)
	e.carrier.Aura(element.AuraElectro).Reduce(electroChargedDrain)

	if first || e.carrier.arena == nil {
		return
	}
	next, ok := e.carrier.arena.ClosestEnemyWith(e.carrier.loc, electroChargedChain, element.AuraHydro, e.carrier)
	if !ok {
		return
	}
	next.ReceiveDamage(e.dmg.WithoutElement())
}
