package motion

import "purrhaven/internal/domain/geom"

// Mode tells which input currently drives an agent's velocity. Direct
// input and waypoint paths are mutually exclusive.
type Mode string

const (
	ModeIdle   Mode = "idle"
	ModeDirect Mode = "direct"
	ModePath   Mode = "path"
)

type Config struct {
	Speed            float64
	ArrivalThreshold float64
}

// Mover resolves one agent's velocity each tick from either a raw
// direction vector or a queued waypoint list, and integrates position.
type Mover struct {
	cfg Config

	Position   geom.Vec2
	Velocity   geom.Vec2
	FacingLeft bool

	mode          Mode
	axis          geom.Vec2
	waypoints     []geom.Vec2
	waypointIndex int
}

func NewMover(position geom.Vec2, cfg Config) *Mover {
	if cfg.Speed <= 0 {
		cfg.Speed = 150
	}
	if cfg.ArrivalThreshold <= 0 {
		cfg.ArrivalThreshold = 6
	}
	return &Mover{cfg: cfg, Position: position, mode: ModeIdle}
}

func (m *Mover) Mode() Mode {
	return m.mode
}

// SetDirectInput switches to direct control and clears any active path.
// A zero axis releases direct control back to idle.
func (m *Mover) SetDirectInput(axis geom.Vec2) {
	if axis.X == 0 && axis.Y == 0 {
		if m.mode == ModeDirect {
			m.mode = ModeIdle
			m.axis = geom.Vec2{}
		}
		return
	}
	m.axis = axis.Normalized()
	m.mode = ModeDirect
	m.clearWaypoints()
}

// FollowPath replaces the waypoint queue wholesale and switches to path
// mode. An empty list stops the agent.
func (m *Mover) FollowPath(points []geom.Vec2) {
	m.waypoints = append(m.waypoints[:0:0], points...)
	m.waypointIndex = 0
	m.axis = geom.Vec2{}
	if len(m.waypoints) == 0 {
		m.mode = ModeIdle
		return
	}
	m.mode = ModePath
}

func (m *Mover) ClearPath() {
	m.clearWaypoints()
	if m.mode == ModePath {
		m.mode = ModeIdle
	}
}

func (m *Mover) clearWaypoints() {
	m.waypoints = nil
	m.waypointIndex = 0
}

func (m *Mover) HasActivePath() bool {
	return m.mode == ModePath && m.waypointIndex < len(m.waypoints)
}

// CurrentTarget returns the waypoint being steered toward, for callers
// chaining a follow-up action on arrival.
func (m *Mover) CurrentTarget() (geom.Vec2, bool) {
	if !m.HasActivePath() {
		return geom.Vec2{}, false
	}
	return m.waypoints[m.waypointIndex], true
}

func (m *Mover) Moving() bool {
	return m.Velocity.X != 0 || m.Velocity.Y != 0
}

// Tick resolves velocity for the elapsed interval and advances
// position. Facing flips on the horizontal velocity sign only.
func (m *Mover) Tick(deltaSeconds float64) {
	switch m.mode {
	case ModeDirect:
		m.Velocity = m.axis.Scale(m.cfg.Speed)
	case ModePath:
		m.Velocity = m.pathVelocity()
	default:
		m.Velocity = geom.Vec2{}
	}

	m.Position = m.Position.Add(m.Velocity.Scale(deltaSeconds))

	if m.Velocity.X < 0 {
		m.FacingLeft = true
	} else if m.Velocity.X > 0 {
		m.FacingLeft = false
	}
}

func (m *Mover) pathVelocity() geom.Vec2 {
	if m.waypointIndex >= len(m.waypoints) {
		m.mode = ModeIdle
		return geom.Vec2{}
	}
	waypoint := m.waypoints[m.waypointIndex]
	if m.Position.DistanceTo(waypoint) <= m.cfg.ArrivalThreshold {
		m.waypointIndex++
		if m.waypointIndex >= len(m.waypoints) {
			m.clearWaypoints()
			m.mode = ModeIdle
			return geom.Vec2{}
		}
		waypoint = m.waypoints[m.waypointIndex]
	}
	return waypoint.Sub(m.Position).Normalized().Scale(m.cfg.Speed)
}
