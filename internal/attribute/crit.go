package attribute

// Crit is a critical hit chance and the damage bonus applied on a hit,
// on top of the fixed +100% baseline.
type Crit struct {
	Rate *PercentAttribute
	DMG  *PercentAttribute
}

// NewCrit creates a Crit pair with the given base values.
func NewCrit(rate, dmg Percent) Crit {
	return Crit{
		Rate: NewPercentAttribute(rate),
		DMG:  NewPercentAttribute(dmg),
	}
}

// Snapshot copies both values.
func (c Crit) Snapshot() Crit {
	return Crit{Rate: c.Rate.Snapshot(), DMG: c.DMG.Snapshot()}
}

// DmgBonus is a flat damage increase (added before multipliers) and a
// percentage bonus (applied as a multiplier).
type DmgBonus struct {
	Increase *Attribute
	Bonus    *PercentAttribute
}

// NewDmgBonus creates a zeroed bonus pair.
func NewDmgBonus() DmgBonus {
	return DmgBonus{
		Increase: NewAttribute(0),
		Bonus:    NewPercentAttribute(0),
	}
}

// Snapshot copies both values.
func (b DmgBonus) Snapshot() DmgBonus {
	return DmgBonus{Increase: b.Increase.Snapshot(), Bonus: b.Bonus.Snapshot()}
}
