package session

import (
	"context"

	"purrhaven/internal/app/ports"
	"purrhaven/internal/domain/cat"
	"purrhaven/internal/domain/gameclock"
	"purrhaven/internal/domain/house"
	"purrhaven/internal/domain/pet"
	"purrhaven/internal/domain/progress"
)

// Advance steps the whole simulation by deltaSeconds of real time.
// The ordering is fixed: movement resolves before interaction checks,
// interaction completion before behavior, behavior before the clock
// and needs, and the midnight rollover last so a new day starts from
// fully settled state.
func (s *Session) Advance(deltaSeconds float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.player.Tick(deltaSeconds)
	s.updateObjectRanges()
	s.resolvePending()

	ev := s.cat.Update(deltaSeconds, s.catIntent(), s.player.Position)
	if ev.Hopped {
		s.publish(ports.EventCatHopped, nil)
	}

	tick := s.state.Time.Tick(deltaSeconds, s.now())
	s.state.Time = tick.State

	if tick.DeltaMinutes > 0 {
		breed := pet.BreedByID(s.state.CatProfile.BreedID)
		growth := pet.GrowthNeedMultiplier(s.state.CatProfile.GrowthStage)
		s.needs = s.needs.Tick(tick.DeltaMinutes, breed, growth)
		s.state.Needs = s.needs.Levels()
	}

	if tick.DayRolled {
		s.rollDays(tick.DaysRolled)
	}

	s.tickLitter(deltaSeconds)

	s.sinceSave += deltaSeconds
	if s.sinceSave >= autosaveInterval {
		s.sinceSave = 0
		// Best effort; a conflict or outage surfaces on the next save.
		_ = s.persistLocked(context.Background())
	}
}

// rollDays handles one or more midnight crossings: fresh task board,
// cat aging, growth stage, and streak achievements. This is the only
// place the day number moves.
func (s *Session) rollDays(days int) {
	s.recordMilestone("day.completed", map[string]any{
		"dayCount":         s.state.Time.DayCount - days,
		"allTasksComplete": s.state.Tasks.AllComplete(),
	})

	for i := 0; i < days; i++ {
		s.state.Tasks.StartNextDay()
	}
	s.state.CatProfile.AgeDays += days
	s.state.CatProfile.GrowthStage = pet.StageForAge(s.state.CatProfile.AgeDays)

	if s.state.Time.DayCount >= weekStreakDay {
		s.unlockAchievement(progress.AchievementWeekStreak)
	}

	s.publish(ports.EventTaskUpdated, s.state.Tasks)
	s.publish(ports.EventTimeUpdated, map[string]any{
		"dayCount": s.state.Time.DayCount,
		"clock":    gameclock.FormatClock(s.state.Time.MinuteOfDay),
	})
}

// catIntent derives the cat's behavior mode from what the player holds.
func (s *Session) catIntent() cat.Intent {
	switch s.carrying {
	case house.CarryToy:
		return cat.IntentPlay
	case house.CarryFood, house.CarryWater:
		return cat.IntentFollow
	default:
		return cat.IntentIdle
	}
}

// resolvePending completes a queued interaction once the walk finishes.
// The target may have moved or become invalid in the meantime, so reach
// is re-checked at arrival instead of trusted from queue time.
func (s *Session) resolvePending() {
	if s.pending == pendingNone || s.player.HasActivePath() || s.player.Moving() {
		return
	}

	switch s.pending {
	case pendingObject:
		obj := s.pendingObj
		s.pending = pendingNone
		s.pendingObj = nil
		if obj != nil && s.inTriggerRange(obj) {
			obj.Interact(s)
		}
	case pendingPet:
		s.pending = pendingNone
		if s.player.Position.DistanceTo(s.cat.Position) <= petReachRadius {
			s.petCat()
		} else {
			s.toast("The cat wandered off")
		}
	}
}

func (s *Session) updateObjectRanges() {
	for _, obj := range s.objects {
		in := s.inTriggerRange(obj)
		was := s.inRange[obj.ID()]
		if in == was {
			continue
		}
		s.inRange[obj.ID()] = in
		payload := map[string]string{"id": obj.ID(), "hint": obj.Hint()}
		if in {
			s.publish(ports.EventInteractionEnter, payload)
		} else {
			s.publish(ports.EventInteractionExit, payload)
		}
	}
}

func (s *Session) tickLitter(deltaSeconds float64) {
	for _, obj := range s.objects {
		if box, ok := obj.(*house.LitterBox); ok {
			box.IncreaseDirt(litterDirtPerSec * deltaSeconds)
		}
	}
}
