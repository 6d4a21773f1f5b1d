package cat

import (
	"math"
	"math/rand"
	"time"

	"purrhaven/internal/domain/geom"
)

// State is the cat's current activity, derived from the active
// behavior variant.
type State string

const (
	StateIdle      State = "idle"
	StateWandering State = "wandering"
	StateFollowing State = "following"
	StatePlaying   State = "playing"
	StateHappy     State = "happy"
	StateEating    State = "eating"
	StateDrinking  State = "drinking"
	StateSleeping  State = "sleeping"
)

// Intent is the external mode signal, recomputed every tick by the
// orchestrator from what the player is carrying. It is ignored while a
// directed reaction is active.
type Intent string

const (
	IntentIdle   Intent = "idle"
	IntentFollow Intent = "follow"
	IntentPlay   Intent = "play"
)

// Events reports one-shot side effects of a tick that the presentation
// layer reacts to.
type Events struct {
	Hopped bool
}

// behavior is the closed sum of activity variants. A directed reaction
// is one variant like any other; it is never a side-channel field.
type behavior interface {
	state() State
}

type idleBehavior struct {
	remaining float64
}

type wanderBehavior struct {
	target    geom.Vec2
	remaining float64
}

type followBehavior struct {
	moving bool
}

type playBehavior struct {
	angle       float64
	elapsed     float64
	hopCooldown float64
}

type happyBehavior struct {
	remaining float64
}

func (idleBehavior) state() State   { return StateIdle }
func (wanderBehavior) state() State { return StateWandering }
func (followBehavior) state() State { return StateFollowing }
func (playBehavior) state() State   { return StatePlaying }
func (happyBehavior) state() State  { return StateHappy }

// Cat runs the layered behavior state machine and owns the cat's
// motion. Positions are world-space pixels.
type Cat struct {
	Position   geom.Vec2
	Velocity   geom.Vec2
	FacingLeft bool

	bounds   geom.Rect
	rng      *rand.Rand
	behavior behavior
}

func New(position geom.Vec2, bounds geom.Rect, rng *rand.Rand) *Cat {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	c := &Cat{Position: position, bounds: bounds, rng: rng}
	c.behavior = &idleBehavior{remaining: c.floatBetween(IdleDwellMin, IdleDwellMax)}
	return c
}

func (c *Cat) SetBounds(bounds geom.Rect) {
	c.bounds = bounds
}

func (c *Cat) State() State {
	return c.behavior.state()
}

func (c *Cat) Moving() bool {
	return c.Velocity.X != 0 || c.Velocity.Y != 0
}

// Update advances the state machine by deltaSeconds. A directed
// reaction in progress ignores the intent entirely.
func (c *Cat) Update(deltaSeconds float64, intent Intent, playerPos geom.Vec2) Events {
	var ev Events

	if r, ok := c.behavior.(*reactionBehavior); ok {
		c.updateReaction(r, deltaSeconds, &ev)
		c.integrate(deltaSeconds)
		return ev
	}

	switch intent {
	case IntentFollow:
		c.updateFollow(playerPos)
	case IntentPlay:
		c.updatePlay(deltaSeconds, playerPos, &ev)
	default:
		c.updateAmbient(deltaSeconds)
	}

	c.integrate(deltaSeconds)
	return ev
}

func (c *Cat) updateFollow(playerPos geom.Vec2) {
	f, ok := c.behavior.(*followBehavior)
	if !ok {
		f = &followBehavior{}
		c.behavior = f
	}

	distance := c.Position.DistanceTo(playerPos)
	// Stop-and-resume band so the cat doesn't jitter at contact range.
	if f.moving {
		if distance <= FollowStopDistance {
			f.moving = false
		}
	} else if distance > FollowResumeDistance {
		f.moving = true
	}

	if f.moving {
		c.Velocity = playerPos.Sub(c.Position).Normalized().Scale(FollowSpeed)
	} else {
		c.Velocity = geom.Vec2{}
	}
}

func (c *Cat) updatePlay(deltaSeconds float64, playerPos geom.Vec2, ev *Events) {
	p, ok := c.behavior.(*playBehavior)
	if !ok {
		p = &playBehavior{hopCooldown: c.floatBetween(PlayHopCooldownMin, PlayHopCooldownMax)}
		c.behavior = p
	}

	p.angle += PlayOrbitAngularSpeed * deltaSeconds
	p.elapsed += deltaSeconds
	radius := PlayOrbitRadius + math.Sin(p.elapsed*PlayOrbitRadiusFreq)*PlayOrbitRadiusSwing
	orbit := geom.Vec2{
		X: playerPos.X + math.Cos(p.angle)*radius,
		Y: playerPos.Y + math.Sin(p.angle)*radius*0.6,
	}
	c.Velocity = orbit.Sub(c.Position).Normalized().Scale(FollowSpeed)

	p.hopCooldown -= deltaSeconds
	if p.hopCooldown <= 0 {
		p.hopCooldown = c.floatBetween(PlayHopCooldownMin, PlayHopCooldownMax)
		ev.Hopped = true
	}
}

// updateAmbient alternates idle and wandering on randomized dwell
// timers. The wander target is re-rolled on each entry to wandering.
func (c *Cat) updateAmbient(deltaSeconds float64) {
	switch b := c.behavior.(type) {
	case *idleBehavior:
		c.Velocity = geom.Vec2{}
		b.remaining -= deltaSeconds
		if b.remaining <= 0 {
			c.behavior = &wanderBehavior{
				target:    c.pickWanderTarget(),
				remaining: c.floatBetween(WanderDwellMin, WanderDwellMax),
			}
		}
	case *wanderBehavior:
		b.remaining -= deltaSeconds
		if b.remaining <= 0 {
			c.toIdle()
			return
		}
		toTarget := b.target.Sub(c.Position)
		if toTarget.Len() > WanderArriveDistance {
			c.Velocity = toTarget.Normalized().Scale(WanderSpeed)
		} else {
			c.Velocity = geom.Vec2{}
		}
	case *happyBehavior:
		c.Velocity = geom.Vec2{}
		b.remaining -= deltaSeconds
		if b.remaining <= 0 {
			c.toIdle()
		}
	default:
		// Coming out of follow or play.
		c.toIdle()
		c.Velocity = geom.Vec2{}
	}
}

// ReactHappy plays a transient happy state, e.g. from petting. Ignored
// while a directed reaction owns the cat.
func (c *Cat) ReactHappy(duration float64) {
	if _, ok := c.behavior.(*reactionBehavior); ok {
		return
	}
	if duration <= 0 {
		duration = DefaultHappyDuration
	}
	c.behavior = &happyBehavior{remaining: duration}
	c.Velocity = geom.Vec2{}
}

func (c *Cat) toIdle() {
	c.behavior = &idleBehavior{remaining: c.floatBetween(IdleDwellMin, IdleDwellMax)}
}

func (c *Cat) pickWanderTarget() geom.Vec2 {
	return geom.Vec2{
		X: c.floatBetween(c.bounds.Left()+wanderBoundsInset, c.bounds.Right()-wanderBoundsInset),
		Y: c.floatBetween(c.bounds.Top()+wanderBoundsInset, c.bounds.Bottom()-wanderBoundsInset),
	}
}

func (c *Cat) integrate(deltaSeconds float64) {
	c.Position = c.Position.Add(c.Velocity.Scale(deltaSeconds))
	c.Position.X = geom.Clamp(c.Position.X, c.bounds.Left(), c.bounds.Right())
	c.Position.Y = geom.Clamp(c.Position.Y, c.bounds.Top(), c.bounds.Bottom())

	if c.Velocity.X < 0 {
		c.FacingLeft = true
	} else if c.Velocity.X > 0 {
		c.FacingLeft = false
	}
}

func (c *Cat) floatBetween(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + c.rng.Float64()*(hi-lo)
}
