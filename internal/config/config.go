package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/elemental/internal/attribute"
	"github.com/udisondev/elemental/internal/element"
	"github.com/udisondev/elemental/internal/logger"
)

// EnvPath overrides the config file location.
const EnvPath = "COMBATSIM_CONFIG"

// DefaultPath is used when EnvPath is not set.
const DefaultPath = "config/combatsim.yaml"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Simulator holds all configuration for the combat simulator.
type Simulator struct {
	Log logger.Config `yaml:"log"`

	// Monte-Carlo
	Seed    uint64 `yaml:"seed"`
	Trials  int    `yaml:"trials"`
	Workers int    `yaml:"workers"`

	// Combat clock
	Duration time.Duration `yaml:"duration"`
	Step     time.Duration `yaml:"step"`

	Attacker Attacker `yaml:"attacker"`
	Enemies  []Enemy  `yaml:"enemies"`
	Rotation []Action `yaml:"rotation"`
	Buffs    []Buff   `yaml:"buffs"`
}

// Attacker is the character dealing damage. When Template is set the stats
// come from the character tables and HP/ATK/DEF are ignored.
type Attacker struct {
	Name  string  `yaml:"name"`
	Level int     `yaml:"level"`
	HP    float64 `yaml:"hp"`
	ATK   float64 `yaml:"atk"`
	DEF   float64 `yaml:"def"`

	// Gear stats added on top of the character: flat EM and percentage
	// points over the 5% / 50% crit baseline.
	EM       float64 `yaml:"em"`
	CritRate float64 `yaml:"crit_rate"`
	CritDMG  float64 `yaml:"crit_dmg"`

	Template *Template `yaml:"template"`
	Weapon   *Weapon   `yaml:"weapon"`
}

// Template describes a playable character.
type Template struct {
	Quality       int     `yaml:"quality"` // 4 or 5
	Ascension     int     `yaml:"ascension"`
	Element       string  `yaml:"element"`
	WeaponType    string  `yaml:"weapon_type"`
	AscensionStat string  `yaml:"ascension_stat"`
	BaseHP        float64 `yaml:"base_hp"`
	BaseATK       float64 `yaml:"base_atk"`
	BaseDEF       float64 `yaml:"base_def"`
	MaxAscHP      float64 `yaml:"max_ascension_hp"`
	MaxAscATK     float64 `yaml:"max_ascension_atk"`
	MaxAscDEF     float64 `yaml:"max_ascension_def"`
}

// Weapon is the attacker's weapon. Secondary may be empty.
type Weapon struct {
	Name           string  `yaml:"name"`
	Type           string  `yaml:"type"`
	ATK            float64 `yaml:"atk"`
	Secondary      string  `yaml:"secondary"`
	SecondaryValue float64 `yaml:"secondary_value"`
}

// Enemy is one target dummy.
type Enemy struct {
	Name  string  `yaml:"name"`
	Level int     `yaml:"level"`
	HP    float64 `yaml:"hp"`
	ATK   float64 `yaml:"atk"`
	DEF   float64 `yaml:"def"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`

	// RES overrides by element name, in percent.
	RES   map[string]float64 `yaml:"res"`
	Auras []Aura             `yaml:"auras"`
}

// Aura is an element applied to an enemy before combat starts.
type Aura struct {
	Element string  `yaml:"element"`
	Units   float64 `yaml:"units"`
}

// Action is one rotation entry. It fires at At and then every Every
// (0 means once) against Target, or against every enemy when AoE is set.
type Action struct {
	Name       string        `yaml:"name"`
	At         time.Duration `yaml:"at"`
	Every      time.Duration `yaml:"every"`
	Target     int           `yaml:"target"`
	AoE        bool          `yaml:"aoe"`
	AttackType string        `yaml:"attack_type"`
	Element    string        `yaml:"element"`
	Scaling    string        `yaml:"scaling"`
	Multiplier float64       `yaml:"multiplier"` // percent
	Units      float64       `yaml:"units"`
	Poise      float64       `yaml:"poise"`
	Blunt      bool          `yaml:"blunt"`

	// ICD gates element application per target. An empty tag disables it.
	ICD ICD `yaml:"icd"`
}

// ICD configures an internal cooldown. A zero window and an empty sequence
// fall back to the standard rule: every third hit within 2.5s, repeating.
type ICD struct {
	Tag       string        `yaml:"tag"`
	Window    time.Duration `yaml:"window"`
	Sequence  []bool        `yaml:"sequence"`
	Repeating bool          `yaml:"repeating"`
}

// Buff is a timed stat modifier on the attacker.
type Buff struct {
	Name     string        `yaml:"name"`
	Stat     string        `yaml:"stat"`
	Flat     float64       `yaml:"flat"`
	Percent  float64       `yaml:"percent"`
	At       time.Duration `yaml:"at"`
	Duration time.Duration `yaml:"duration"`
}

// DefaultSimulator returns a one-enemy Vaporize scenario.
func DefaultSimulator() Simulator {
	return Simulator{
		Log:      logger.DefaultConfig(),
		Seed:     1,
		Trials:   1000,
		Workers:  4,
		Duration: 10 * time.Second,
		Step:     100 * time.Millisecond,
		Attacker: Attacker{
			Name:     "Traveler",
			Level:    90,
			HP:       15000,
			ATK:      2000,
			DEF:      800,
			CritRate: 55,
			CritDMG:  70,
		},
		Enemies: []Enemy{
			{
				Name:  "Hilichurl",
				Level: 90,
				HP:    1_000_000,
				ATK:   100,
				DEF:   500,
				Auras: []Aura{{Element: "hydro", Units: 1}},
			},
		},
		Rotation: []Action{
			{
				Name:       "Pyro Strike",
				Every:      2 * time.Second,
				AttackType: "skill",
				Element:    "pyro",
				Scaling:    "atk",
				Multiplier: 200,
				Units:      1,
			},
		},
	}
}

// LoadSimulator loads simulator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSimulator(path string) (Simulator, error) {
	cfg := DefaultSimulator()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Path returns the config path from the environment or the default.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Validate checks ranges and resolves every name in the scenario.
func (c Simulator) Validate() error {
	switch {
	case c.Trials < 1:
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalid, c.Trials)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalid, c.Workers)
	case c.Step <= 0:
		return fmt.Errorf("%w: step must be positive, got %s", ErrInvalid, c.Step)
	case c.Duration < c.Step:
		return fmt.Errorf("%w: duration %s shorter than step %s", ErrInvalid, c.Duration, c.Step)
	case len(c.Enemies) == 0:
		return fmt.Errorf("%w: no enemies", ErrInvalid)
	}

	for i, e := range c.Enemies {
		for name := range e.RES {
			if _, err := element.ParseElement(name); err != nil {
				return fmt.Errorf("%w: enemy %d res: %w", ErrInvalid, i, err)
			}
		}
		for _, a := range e.Auras {
			if _, err := element.ParseElement(a.Element); err != nil {
				return fmt.Errorf("%w: enemy %d aura: %w", ErrInvalid, i, err)
			}
		}
	}

	for i, a := range c.Rotation {
		if a.Target < 0 || a.Target >= len(c.Enemies) {
			return fmt.Errorf("%w: rotation %d targets enemy %d of %d", ErrInvalid, i, a.Target, len(c.Enemies))
		}
		if _, err := element.ParseElement(a.Element); err != nil {
			return fmt.Errorf("%w: rotation %d: %w", ErrInvalid, i, err)
		}
		if _, err := element.ParseAttack(a.AttackType); err != nil {
			return fmt.Errorf("%w: rotation %d: %w", ErrInvalid, i, err)
		}
	}

	probe := attribute.NewSet(1, 1, 1)
	for i, b := range c.Buffs {
		if _, err := probe.Stat(b.Stat); err != nil {
			return fmt.Errorf("%w: buff %d: %w", ErrInvalid, i, err)
		}
		if b.Duration <= 0 {
			return fmt.Errorf("%w: buff %d duration must be positive", ErrInvalid, i)
		}
	}
	return nil
}
