package pet

// Stage is the coarse age category derived from accumulated in-game
// days.
type Stage string

const (
	StageKitten Stage = "kitten"
	StageAdult  Stage = "adult"
)

const adultAgeDays = 14

func StageForAge(ageDays int) Stage {
	if ageDays >= adultAgeDays {
		return StageAdult
	}
	return StageKitten
}

// GrowthNeedMultiplier scales needs decay: kittens run down faster.
func GrowthNeedMultiplier(stage Stage) float64 {
	if stage == StageKitten {
		return 1.2
	}
	return 1
}
