package pet

import "math"

type NeedKey string

const (
	NeedHunger  NeedKey = "hunger"
	NeedThirst  NeedKey = "thirst"
	NeedFun     NeedKey = "fun"
	NeedHygiene NeedKey = "hygiene"
)

func NeedKeys() []NeedKey {
	return []NeedKey{NeedHunger, NeedThirst, NeedFun, NeedHygiene}
}

// Baseline decay per simulated hour, before breed and growth
// multipliers.
var baseHourlyDecay = map[NeedKey]float64{
	NeedHunger:  5,
	NeedThirst:  7,
	NeedFun:     4,
	NeedHygiene: 3,
}

type CareAction string

const (
	CareFeed        CareAction = "feed"
	CareWater       CareAction = "water"
	CarePlay        CareAction = "play"
	CareCleanLitter CareAction = "cleanLitter"
)

var careDeltas = map[CareAction]struct {
	key    NeedKey
	amount float64
}{
	CareFeed:        {key: NeedHunger, amount: 40},
	CareWater:       {key: NeedThirst, amount: 45},
	CarePlay:        {key: NeedFun, amount: 35},
	CareCleanLitter: {key: NeedHygiene, amount: 30},
}

// Needs holds the four well-being values. Internally fractional so that
// per-frame decay accumulates; every exposure clamps to [0,100].
type Needs struct {
	Hunger  float64 `json:"hunger"`
	Thirst  float64 `json:"thirst"`
	Fun     float64 `json:"fun"`
	Hygiene float64 `json:"hygiene"`
}

// Levels is the integer-rounded snapshot handed to collaborators and
// the save file.
type Levels struct {
	Hunger  int `json:"hunger"`
	Thirst  int `json:"thirst"`
	Fun     int `json:"fun"`
	Hygiene int `json:"hygiene"`
}

func NewNeeds(levels Levels) Needs {
	return Needs{
		Hunger:  clampNeed(float64(levels.Hunger)),
		Thirst:  clampNeed(float64(levels.Thirst)),
		Fun:     clampNeed(float64(levels.Fun)),
		Hygiene: clampNeed(float64(levels.Hygiene)),
	}
}

func (n Needs) Levels() Levels {
	return Levels{
		Hunger:  roundNeed(n.Hunger),
		Thirst:  roundNeed(n.Thirst),
		Fun:     roundNeed(n.Fun),
		Hygiene: roundNeed(n.Hygiene),
	}
}

func (n Needs) get(key NeedKey) float64 {
	switch key {
	case NeedHunger:
		return n.Hunger
	case NeedThirst:
		return n.Thirst
	case NeedFun:
		return n.Fun
	default:
		return n.Hygiene
	}
}

func (n *Needs) set(key NeedKey, value float64) {
	value = clampNeed(value)
	switch key {
	case NeedHunger:
		n.Hunger = value
	case NeedThirst:
		n.Thirst = value
	case NeedFun:
		n.Fun = value
	default:
		n.Hygiene = value
	}
}

// Tick decays every need for the elapsed simulated minutes, scaled by
// the breed's per-need multiplier and the growth-stage multiplier.
// Returns the updated snapshot; decay never increases a value.
func (n Needs) Tick(deltaMinutes float64, breed Breed, growthMultiplier float64) Needs {
	if deltaMinutes < 0 {
		deltaMinutes = 0
	}
	if growthMultiplier <= 0 {
		growthMultiplier = 1
	}
	hours := deltaMinutes / 60
	next := n
	for _, key := range NeedKeys() {
		decay := baseHourlyDecay[key] * breed.DecayMultiplierFor(key) * growthMultiplier * hours
		next.set(key, next.get(key)-decay)
	}
	return next
}

// Apply restores the need targeted by a care action. Unknown actions
// are no-ops.
func (n Needs) Apply(action CareAction) Needs {
	delta, ok := careDeltas[action]
	if !ok {
		return n
	}
	next := n
	next.set(delta.key, next.get(delta.key)+delta.amount)
	return next
}

func clampNeed(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func roundNeed(v float64) int {
	return int(math.Round(clampNeed(v)))
}
