package cat

import (
	"math/rand"
	"testing"

	"purrhaven/internal/domain/geom"
)

var testBounds = geom.Rect{X: 0, Y: 0, Width: 400, Height: 300}

func newTestCat(pos geom.Vec2) *Cat {
	return New(pos, testBounds, rand.New(rand.NewSource(1)))
}

func TestCat_FollowStopsInsideContactBand(t *testing.T) {
	c := newTestCat(geom.Vec2{X: 200, Y: 150})
	player := geom.Vec2{X: 350, Y: 150}

	for i := 0; i < 400; i++ {
		c.Update(1.0/60, IntentFollow, player)
	}

	if c.State() != StateFollowing {
		t.Fatalf("expected following state, got %v", c.State())
	}
	d := c.Position.DistanceTo(player)
	if d > FollowResumeDistance {
		t.Fatalf("cat never closed in, distance %v", d)
	}
	if c.Moving() {
		t.Fatalf("cat should rest inside the stop band, velocity %v", c.Velocity)
	}
}

func TestCat_FollowResumesOutsideBand(t *testing.T) {
	c := newTestCat(geom.Vec2{X: 200, Y: 150})
	player := geom.Vec2{X: 210, Y: 150}

	c.Update(1.0/60, IntentFollow, player)
	if c.Moving() {
		t.Fatal("cat inside stop distance should not move")
	}

	player = geom.Vec2{X: 200 + FollowResumeDistance + 5, Y: 150}
	c.Update(1.0/60, IntentFollow, player)
	if !c.Moving() {
		t.Fatal("cat past resume distance should move")
	}
}

func TestCat_WanderStaysInBounds(t *testing.T) {
	c := newTestCat(geom.Vec2{X: 200, Y: 150})

	for i := 0; i < 3000; i++ {
		c.Update(1.0/60, IntentIdle, geom.Vec2{})
		if c.Position.X < testBounds.Left() || c.Position.X > testBounds.Right() ||
			c.Position.Y < testBounds.Top() || c.Position.Y > testBounds.Bottom() {
			t.Fatalf("cat escaped bounds at %v on tick %d", c.Position, i)
		}
	}
}

func TestCat_AmbientAlternatesIdleAndWander(t *testing.T) {
	c := newTestCat(geom.Vec2{X: 200, Y: 150})

	seen := map[State]bool{}
	for i := 0; i < 1200; i++ {
		c.Update(1.0/60, IntentIdle, geom.Vec2{})
		seen[c.State()] = true
	}
	if !seen[StateIdle] || !seen[StateWandering] {
		t.Fatalf("expected both idle and wandering over 20s, saw %v", seen)
	}
}

func TestCat_ReactHappyExpiresToIdle(t *testing.T) {
	c := newTestCat(geom.Vec2{X: 200, Y: 150})

	c.ReactHappy(1.4)
	if c.State() != StateHappy {
		t.Fatalf("expected happy, got %v", c.State())
	}

	c.Update(1.0, IntentIdle, geom.Vec2{})
	if c.State() != StateHappy {
		t.Fatalf("happy ended early, state %v", c.State())
	}

	c.Update(0.5, IntentIdle, geom.Vec2{})
	if c.State() != StateIdle {
		t.Fatalf("expected idle after happy expiry, got %v", c.State())
	}
}

func TestCat_PlayIntentOrbits(t *testing.T) {
	c := newTestCat(geom.Vec2{X: 200, Y: 150})
	player := geom.Vec2{X: 200, Y: 150}

	hops := 0
	for i := 0; i < 600; i++ {
		ev := c.Update(1.0/60, IntentPlay, player)
		if ev.Hopped {
			hops++
		}
	}

	if c.State() != StatePlaying {
		t.Fatalf("expected playing, got %v", c.State())
	}
	if hops == 0 {
		t.Fatal("expected at least one hop over 10s of play")
	}
	d := c.Position.DistanceTo(player)
	if d > PlayOrbitRadius+PlayOrbitRadiusSwing+20 {
		t.Fatalf("cat drifted off the orbit, distance %v", d)
	}
}

func TestCat_IntentSwitchLeavesPlay(t *testing.T) {
	c := newTestCat(geom.Vec2{X: 200, Y: 150})

	c.Update(1.0/60, IntentPlay, geom.Vec2{X: 200, Y: 150})
	if c.State() != StatePlaying {
		t.Fatalf("expected playing, got %v", c.State())
	}

	c.Update(1.0/60, IntentIdle, geom.Vec2{})
	if c.State() != StateIdle {
		t.Fatalf("expected idle after intent dropped, got %v", c.State())
	}
}
