package cat

// Behavior tuning. Speeds are px/s, durations and cooldowns seconds.
const (
	FollowSpeed       = 130.0
	WanderSpeed       = 90.0
	ReactionMoveSpeed = 120.0

	FollowStopDistance   = 44.0
	FollowResumeDistance = 62.0
	WanderArriveDistance = 5.0
	ReactionArriveRadius = 10.0

	IdleDwellMin   = 1.4
	IdleDwellMax   = 2.4
	WanderDwellMin = 1.2
	WanderDwellMax = 2.8

	DefaultHappyDuration = 1.6

	PlayOrbitRadius       = 70.0
	PlayOrbitRadiusSwing  = 26.0
	PlayOrbitAngularSpeed = 2.4
	PlayOrbitRadiusFreq   = 1.7

	PlayHopCooldownMin = 1.5
	PlayHopCooldownMax = 3.5
	EatHopCooldownMin  = 0.8
	EatHopCooldownMax  = 1.6

	EatDuration   = 4.6
	DrinkDuration = 3.8
	SleepDuration = 5.2

	wanderBoundsInset = 20.0
)
