package progress

// Bond tier thresholds. Tier is always recomputed from the value so the
// two can never desync.
var bondTiers = [4]int{0, 30, 70, 120}

type Bond struct {
	Value int `json:"value"`
}

func (b Bond) Tier() int {
	return BondTierFor(b.Value)
}

func BondTierFor(value int) int {
	switch {
	case value >= bondTiers[3]:
		return 3
	case value >= bondTiers[2]:
		return 2
	case value >= bondTiers[1]:
		return 1
	default:
		return 0
	}
}

// Add accumulates bond, floored at zero, and reports whether the tier
// increased.
func (b *Bond) Add(amount int) bool {
	previous := b.Tier()
	b.Value += amount
	if b.Value < 0 {
		b.Value = 0
	}
	return b.Tier() > previous
}
