package gameclock

import (
	"fmt"
	"math"
	"time"
)

const (
	MinutesPerDay = 24 * 60
	// In-game minutes that pass per real second of play.
	MinutesPerRealSecond = 1.0
	// Offline catch-up is capped so a long absence cannot run the
	// simulation away.
	MaxOfflineMinutes = 12 * 60
)

// State is the in-game clock. minuteOfDay stays in [0, 1440); day
// rollover happens only inside Tick, never by direct assignment.
type State struct {
	DayCount      int       `json:"dayCount"`
	MinuteOfDay   float64   `json:"minuteOfDay"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

type TickResult struct {
	State        State
	DayRolled    bool
	DaysRolled   int
	DeltaMinutes float64
}

// Tick advances the clock by elapsed real seconds. Large deltas may
// cross several midnights in one call; every crossing increments the
// day count.
func (s State) Tick(deltaSeconds float64, now time.Time) TickResult {
	deltaMinutes := math.Max(0, deltaSeconds) * MinutesPerRealSecond

	minuteOfDay := s.MinuteOfDay + deltaMinutes
	daysRolled := 0
	for minuteOfDay >= MinutesPerDay {
		minuteOfDay -= MinutesPerDay
		s.DayCount++
		daysRolled++
	}

	s.MinuteOfDay = minuteOfDay
	s.LastUpdatedAt = now

	return TickResult{
		State:        s,
		DayRolled:    daysRolled > 0,
		DaysRolled:   daysRolled,
		DeltaMinutes: deltaMinutes,
	}
}

// FormatClock renders a 12-hour wall clock with AM/PM suffix.
func FormatClock(minuteOfDay float64) string {
	whole := int(math.Floor(minuteOfDay))
	hours24 := (whole / 60) % 24
	minutes := whole % 60
	suffix := "AM"
	if hours24 >= 12 {
		suffix = "PM"
	}
	h := hours24 % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, minutes, suffix)
}

// OfflineMinutes computes the capped catch-up budget for time elapsed
// while the game was closed.
func OfflineMinutes(lastSavedAt, now time.Time) float64 {
	if lastSavedAt.IsZero() || !now.After(lastSavedAt) {
		return 0
	}
	minutes := math.Floor(now.Sub(lastSavedAt).Minutes())
	return math.Min(minutes, MaxOfflineMinutes)
}
