package cat

import "purrhaven/internal/domain/geom"

// ReactionKind identifies a directed reaction: the cat walks to a fixed
// point and performs the matching action there for a fixed duration.
type ReactionKind string

const (
	ReactEat   ReactionKind = "eat"
	ReactDrink ReactionKind = "drink"
	ReactSleep ReactionKind = "sleep"
)

type ReactionPhase string

const (
	PhaseMoving   ReactionPhase = "moving"
	PhaseReacting ReactionPhase = "reacting"
)

type reactionBehavior struct {
	kind        ReactionKind
	target      geom.Vec2
	phase       ReactionPhase
	remaining   float64
	hopCooldown float64
}

func (r *reactionBehavior) state() State {
	if r.phase == PhaseMoving {
		return StateWandering
	}
	switch r.kind {
	case ReactDrink:
		return StateDrinking
	case ReactSleep:
		return StateSleeping
	default:
		return StateEating
	}
}

// ReactionInfo is a read-only view of the active directed reaction.
type ReactionInfo struct {
	Kind      ReactionKind
	Target    geom.Vec2
	Phase     ReactionPhase
	Remaining float64
}

// Reaction reports the active directed reaction, if any.
func (c *Cat) Reaction() (ReactionInfo, bool) {
	r, ok := c.behavior.(*reactionBehavior)
	if !ok {
		return ReactionInfo{}, false
	}
	return ReactionInfo{Kind: r.kind, Target: r.target, Phase: r.phase, Remaining: r.remaining}, true
}

func (c *Cat) GoEatAt(target geom.Vec2) {
	c.startReaction(ReactEat, target, EatDuration)
}

func (c *Cat) GoDrinkAt(target geom.Vec2) {
	c.startReaction(ReactDrink, target, DrinkDuration)
}

func (c *Cat) GoSleepAt(target geom.Vec2) {
	c.startReaction(ReactSleep, target, SleepDuration)
}

// startReaction always cancels any reaction in progress and starts
// fresh. Ordinary mode intents stay suppressed until the timer runs out.
func (c *Cat) startReaction(kind ReactionKind, target geom.Vec2, duration float64) {
	c.behavior = &reactionBehavior{
		kind:      kind,
		target:    target,
		phase:     PhaseMoving,
		remaining: duration,
	}
}

func (c *Cat) updateReaction(r *reactionBehavior, deltaSeconds float64, ev *Events) {
	if r.phase == PhaseMoving {
		toTarget := r.target.Sub(c.Position)
		if toTarget.Len() > ReactionArriveRadius {
			c.Velocity = toTarget.Normalized().Scale(ReactionMoveSpeed)
			return
		}
		r.phase = PhaseReacting
		if r.kind == ReactEat {
			r.hopCooldown = c.floatBetween(EatHopCooldownMin, EatHopCooldownMax)
		}
		c.FacingLeft = r.target.X < c.Position.X
	}

	c.Velocity = geom.Vec2{}
	r.remaining -= deltaSeconds
	if r.kind == ReactEat {
		r.hopCooldown -= deltaSeconds
		if r.hopCooldown <= 0 {
			r.hopCooldown = c.floatBetween(EatHopCooldownMin, EatHopCooldownMax)
			ev.Hopped = true
		}
	}
	if r.remaining <= 0 {
		c.toIdle()
	}
}
