package attribute

// Percent is a signed percentage: Percent(15) means +15%.
// Percents compose additively; Multiplier converts one into a factor.
type Percent float64

// PercentFromFraction converts a ratio (0.15) into a Percent (15).
func PercentFromFraction(f float64) Percent { return Percent(f * 100) }

func (p Percent) Add(o Percent) Percent { return p + o }
func (p Percent) Sub(o Percent) Percent { return p - o }
func (p Percent) Neg() Percent          { return -p }

// Fraction returns p/100.
func (p Percent) Fraction() float64 { return float64(p) / 100 }

// Multiplier returns 1 + p/100. Percent(0) is the identity factor.
func (p Percent) Multiplier() float64 { return 1 + float64(p)/100 }

// FlatValue is a signed scalar stat value (ATK, DEF, EM, flat damage).
type FlatValue float64

func (v FlatValue) Add(o FlatValue) FlatValue { return v + o }
func (v FlatValue) Sub(o FlatValue) FlatValue { return v - o }
func (v FlatValue) Mul(f float64) FlatValue   { return FlatValue(float64(v) * f) }

// MulPercent scales v by p as a multiplier: 100 * Percent(20) = 120.
func (v FlatValue) MulPercent(p Percent) FlatValue {
	return FlatValue(float64(v) * p.Multiplier())
}

// Div divides v by o. Returns ErrDivideByZero when o is zero.
func (v FlatValue) Div(o FlatValue) (FlatValue, error) {
	if o == 0 {
		return 0, ErrDivideByZero
	}
	return v / o, nil
}
