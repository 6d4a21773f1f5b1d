package cat

import (
	"testing"

	"purrhaven/internal/domain/geom"
)

func TestCat_DirectedReactionWalksThenReacts(t *testing.T) {
	c := newTestCat(geom.Vec2{X: 50, Y: 150})
	target := geom.Vec2{X: 250, Y: 150}

	c.GoEatAt(target)
	info, ok := c.Reaction()
	if !ok || info.Phase != PhaseMoving || info.Kind != ReactEat {
		t.Fatalf("expected moving eat reaction, got %+v ok=%v", info, ok)
	}
	if c.State() != StateWandering {
		t.Fatalf("moving phase should read as wandering, got %v", c.State())
	}

	for i := 0; i < 300; i++ {
		c.Update(1.0/60, IntentIdle, geom.Vec2{})
		if info, _ = c.Reaction(); info.Phase == PhaseReacting {
			break
		}
	}
	if info.Phase != PhaseReacting {
		t.Fatalf("cat never arrived, still %+v at %v", info, c.Position)
	}
	if c.State() != StateEating {
		t.Fatalf("expected eating at the bowl, got %v", c.State())
	}
	if c.Position.DistanceTo(target) > ReactionArriveRadius+ReactionMoveSpeed/60 {
		t.Fatalf("reacting too far from target, at %v", c.Position)
	}
}

func TestCat_ReactionIgnoresIntentAndPetting(t *testing.T) {
	c := newTestCat(geom.Vec2{X: 200, Y: 150})
	c.GoSleepAt(c.Position)

	// Arrive immediately, then run most of the sleep out under a
	// competing follow intent.
	for i := 0; i < 60*5; i++ {
		c.Update(1.0/60, IntentFollow, geom.Vec2{X: 350, Y: 150})
	}
	if c.State() != StateSleeping {
		t.Fatalf("sleep should outlast follow intent, got %v", c.State())
	}

	c.ReactHappy(1.0)
	if c.State() != StateSleeping {
		t.Fatalf("petting must not interrupt a directed reaction, got %v", c.State())
	}

	for i := 0; i < 60; i++ {
		c.Update(1.0/60, IntentIdle, geom.Vec2{})
	}
	if _, ok := c.Reaction(); ok {
		t.Fatal("reaction should have expired")
	}
	if c.State() != StateIdle {
		t.Fatalf("expected idle after sleep, got %v", c.State())
	}
}

func TestCat_NewReactionReplacesActiveOne(t *testing.T) {
	c := newTestCat(geom.Vec2{X: 200, Y: 150})

	c.GoEatAt(geom.Vec2{X: 300, Y: 150})
	c.GoDrinkAt(geom.Vec2{X: 100, Y: 150})

	info, ok := c.Reaction()
	if !ok || info.Kind != ReactDrink || info.Phase != PhaseMoving {
		t.Fatalf("expected fresh drink reaction, got %+v", info)
	}
	if info.Remaining != DrinkDuration {
		t.Fatalf("replacement must restart the timer, remaining %v", info.Remaining)
	}
}

func TestCat_EatingHopsOnCooldown(t *testing.T) {
	c := newTestCat(geom.Vec2{X: 200, Y: 150})
	c.GoEatAt(c.Position)

	hops := 0
	for i := 0; i < 60*4; i++ {
		ev := c.Update(1.0/60, IntentIdle, geom.Vec2{})
		if ev.Hopped {
			hops++
		}
	}
	if hops == 0 {
		t.Fatal("expected hop events while eating")
	}
}
