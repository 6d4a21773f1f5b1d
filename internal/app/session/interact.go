package session

import (
	"fmt"
	"strings"

	"purrhaven/internal/app/ports"
	"purrhaven/internal/domain/geom"
	"purrhaven/internal/domain/house"
	"purrhaven/internal/domain/nav"
	"purrhaven/internal/domain/progress"
)

// HandleAxis feeds direct movement input. Any nonzero axis takes over
// from pointer navigation and abandons whatever was queued behind it.
func (s *Session) HandleAxis(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if x != 0 || y != 0 {
		s.pending = pendingNone
		s.pendingObj = nil
	}
	s.player.SetDirectInput(geom.Vec2{X: x, Y: y})
}

// HandlePointer resolves a tap: cat first, then objects, then ground.
// Out-of-range targets queue a pending interaction behind a walk.
func (s *Session) HandlePointer(p geom.Vec2) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.DistanceTo(s.cat.Position) <= catHitRadius {
		if s.player.Position.DistanceTo(s.cat.Position) <= petReachRadius {
			s.petCat()
			return
		}
		s.pending = pendingPet
		s.pendingObj = nil
		approach := geom.Vec2{X: s.cat.Position.X, Y: s.cat.Position.Y + catPetApproachDY}
		s.walkTo(approach)
		return
	}

	for _, obj := range s.objects {
		if p.DistanceTo(obj.Position()) > objectHitRadius {
			continue
		}
		if s.inTriggerRange(obj) {
			s.pending = pendingNone
			s.pendingObj = nil
			obj.Interact(s)
			return
		}
		s.pending = pendingObject
		s.pendingObj = obj
		s.walkTo(obj.InteractionPoint())
		return
	}

	s.pending = pendingNone
	s.pendingObj = nil
	s.walkTo(p)
}

// HandleHUD dispatches a button action from the overlay: "interact",
// "cancel", "fillWater", "pet", or "buy:<itemID>".
func (s *Session) HandleHUD(action string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := strings.CutPrefix(action, "buy:"); ok {
		s.buyDecor(id)
		return
	}

	switch action {
	case "interact":
		s.interactNearest()
	case "cancel":
		s.pending = pendingNone
		s.pendingObj = nil
		s.player.ClearPath()
	case "fillWater":
		s.fillWater()
	case "pet":
		if s.player.Position.DistanceTo(s.cat.Position) <= petReachRadius {
			s.petCat()
		} else {
			s.toast("Get closer to pet the cat")
		}
	}
}

func (s *Session) interactNearest() {
	var nearest house.Object
	best := 0.0
	for _, obj := range s.objects {
		d := s.player.Position.DistanceTo(obj.Position())
		if d > obj.TriggerRadius() {
			continue
		}
		if nearest == nil || d < best {
			nearest = obj
			best = d
		}
	}
	if nearest != nil {
		nearest.Interact(s)
	}
}

// fillWater is the sink shortcut: it hands the player a water carry
// without walking anywhere, mirroring the tap-and-hold HUD button.
func (s *Session) fillWater() {
	s.carrying = house.CarryWater
	s.toast("Filled fresh water")
}

func (s *Session) petCat() {
	if s.metrics != nil {
		s.metrics.RecordAction("pet")
	}
	s.cat.ReactHappy(1.4)
	s.addBond(petBondReward)
	s.toast(fmt.Sprintf("%s purrs happily", s.state.CatProfile.Name))
}

func (s *Session) buyDecor(id string) {
	item, ok := progress.DecorItemByID(id)
	if !ok {
		s.toast("Unknown item")
		return
	}
	if s.state.Economy.Owns(id) {
		switch item.Kind {
		case progress.DecorTheme:
			s.state.Decor.ActiveTheme = item.ThemeColor
			s.publish(ports.EventDecorUpdated, s.state.Decor)
			s.toast(fmt.Sprintf("%s applied", item.Label))
		case progress.DecorFurniture:
			s.toast(fmt.Sprintf("%s already placed", item.Label))
		}
		return
	}
	if !s.state.Economy.PurchaseDecor(id) {
		s.toast("Not enough coins")
		return
	}
	s.recordMilestone("decor.purchased", map[string]any{"id": id, "cost": item.Cost})
	s.unlockAchievement(progress.AchievementFirstShop)
	s.publish(ports.EventCoinsUpdated, s.state.Economy.Coins)
	switch item.Kind {
	case progress.DecorTheme:
		s.state.Decor.ActiveTheme = item.ThemeColor
		s.publish(ports.EventDecorUpdated, s.state.Decor)
	case progress.DecorFurniture:
		s.spawnFurniture(id)
		s.publish(ports.EventDecorUpdated, s.state.Decor)
	}
	s.toast(fmt.Sprintf("Purchased %s", item.Label))
}

func (s *Session) inTriggerRange(obj house.Object) bool {
	return s.player.Position.DistanceTo(obj.Position()) <= obj.TriggerRadius()
}

// walkTo searches the tile grid and hands the mover a waypoint queue.
// An unreachable target is reported once and leaves movement untouched.
func (s *Session) walkTo(target geom.Vec2) {
	start := s.grid.WorldToTile(s.player.Position)
	goal := s.grid.WorldToTile(target)

	s.requester.Request(start, goal, func(path []nav.Tile, token uint64) {
		if token != s.requester.Current() {
			return
		}
		if path == nil {
			s.pending = pendingNone
			s.pendingObj = nil
			s.publish(ports.EventPathBlocked, map[string]float64{"x": target.X, "y": target.Y})
			if s.metrics != nil {
				s.metrics.RecordPathBlocked()
			}
			return
		}
		points := make([]geom.Vec2, len(path))
		for i, tile := range path {
			points[i] = s.grid.TileToWorld(tile)
		}
		if len(points) > 0 {
			points[len(points)-1] = target
		}
		s.player.FollowPath(points)
	})
}
