package motion

import (
	"math"
	"testing"

	"purrhaven/internal/domain/geom"
)

func TestMover_DirectInputNormalizes(t *testing.T) {
	m := NewMover(geom.Vec2{}, Config{Speed: 100, ArrivalThreshold: 6})
	m.SetDirectInput(geom.Vec2{X: 3, Y: 4})
	m.Tick(1)

	speed := m.Velocity.Len()
	if math.Abs(speed-100) > 1e-9 {
		t.Fatalf("expected speed 100, got %v", speed)
	}
	if m.Mode() != ModeDirect {
		t.Fatalf("expected direct mode, got %v", m.Mode())
	}
}

func TestMover_ZeroAxisReleasesDirect(t *testing.T) {
	m := NewMover(geom.Vec2{}, Config{Speed: 100})
	m.SetDirectInput(geom.Vec2{X: 1})
	m.SetDirectInput(geom.Vec2{})
	m.Tick(0.1)

	if m.Mode() != ModeIdle {
		t.Fatalf("expected idle after zero axis, got %v", m.Mode())
	}
	if m.Moving() {
		t.Fatalf("expected stationary, velocity %v", m.Velocity)
	}
}

func TestMover_FacingFollowsHorizontalVelocity(t *testing.T) {
	m := NewMover(geom.Vec2{}, Config{Speed: 100})

	m.SetDirectInput(geom.Vec2{X: -1})
	m.Tick(0.1)
	if !m.FacingLeft {
		t.Fatal("expected facing left while moving left")
	}

	m.SetDirectInput(geom.Vec2{X: 0, Y: 1})
	m.Tick(0.1)
	if !m.FacingLeft {
		t.Fatal("vertical movement should keep the last facing")
	}

	m.SetDirectInput(geom.Vec2{X: 1})
	m.Tick(0.1)
	if m.FacingLeft {
		t.Fatal("expected facing right while moving right")
	}
}

func TestMover_FollowPathAdvancesWaypoints(t *testing.T) {
	m := NewMover(geom.Vec2{}, Config{Speed: 100, ArrivalThreshold: 6})
	m.FollowPath([]geom.Vec2{{X: 10}, {X: 20}})

	if !m.HasActivePath() {
		t.Fatal("expected an active path")
	}
	if target, ok := m.CurrentTarget(); !ok || target != (geom.Vec2{X: 10}) {
		t.Fatalf("expected first waypoint, got %v ok=%v", target, ok)
	}

	for i := 0; i < 100 && m.HasActivePath(); i++ {
		m.Tick(0.05)
	}

	if m.HasActivePath() {
		t.Fatal("path never completed")
	}
	if m.Mode() != ModeIdle {
		t.Fatalf("expected idle after arrival, got %v", m.Mode())
	}
	if m.Position.DistanceTo(geom.Vec2{X: 20}) > 6 {
		t.Fatalf("expected to stop near the last waypoint, at %v", m.Position)
	}
}

func TestMover_DirectInputCancelsPath(t *testing.T) {
	m := NewMover(geom.Vec2{}, Config{Speed: 100})
	m.FollowPath([]geom.Vec2{{X: 50}})
	m.SetDirectInput(geom.Vec2{X: 0, Y: -1})

	if m.HasActivePath() {
		t.Fatal("direct input should drop the waypoint queue")
	}
	if m.Mode() != ModeDirect {
		t.Fatalf("expected direct mode, got %v", m.Mode())
	}
}

func TestMover_EmptyPathStops(t *testing.T) {
	m := NewMover(geom.Vec2{}, Config{Speed: 100})
	m.FollowPath([]geom.Vec2{{X: 50}})
	m.FollowPath(nil)

	if m.Mode() != ModeIdle {
		t.Fatalf("expected idle after empty path, got %v", m.Mode())
	}

	m.FollowPath([]geom.Vec2{{X: 50}})
	m.ClearPath()
	if m.Mode() != ModeIdle || m.HasActivePath() {
		t.Fatalf("expected cleared path, mode %v", m.Mode())
	}
}
