package session

import (
	"purrhaven/internal/domain/cat"
	"purrhaven/internal/domain/gameclock"
	"purrhaven/internal/domain/gamestate"
	"purrhaven/internal/domain/geom"
	"purrhaven/internal/domain/house"
	"purrhaven/internal/domain/pet"
	"purrhaven/internal/domain/progress"
)

// Snapshot is the full read model handed to clients. It is a value
// copy assembled under the session lock, safe to serialize afterwards.
type Snapshot struct {
	SessionID string         `json:"sessionId"`
	Player    PlayerSnapshot `json:"player"`
	Cat       CatSnapshot    `json:"cat"`

	Needs        pet.Levels                  `json:"needs"`
	Tasks        progress.TaskBoard          `json:"tasks"`
	DayCount     int                         `json:"dayCount"`
	Clock        string                      `json:"clock"`
	Bond         BondSnapshot                `json:"bond"`
	Coins        int                         `json:"coins"`
	Achievements []progress.AchievementEntry `json:"achievements"`
	Season       gamestate.Season            `json:"season"`
	Decor        gamestate.HouseDecor        `json:"decor"`
	Objects      []ObjectSnapshot            `json:"objects"`
}

type PlayerSnapshot struct {
	Name       string    `json:"name"`
	Position   geom.Vec2 `json:"position"`
	FacingLeft bool      `json:"facingLeft"`
	Moving     bool      `json:"moving"`
	Carrying   string    `json:"carrying"`
}

type CatSnapshot struct {
	Name        string       `json:"name"`
	BreedID     string       `json:"breedId"`
	GrowthStage pet.Stage    `json:"growthStage"`
	Position    geom.Vec2    `json:"position"`
	FacingLeft  bool         `json:"facingLeft"`
	State       cat.State    `json:"state"`
	Anim        cat.AnimKind `json:"anim"`
}

type BondSnapshot struct {
	Value int `json:"value"`
	Tier  int `json:"tier"`
}

type ObjectSnapshot struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Hint     string    `json:"hint"`
	Position geom.Vec2 `json:"position"`
	InRange  bool      `json:"inRange"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	objects := make([]ObjectSnapshot, 0, len(s.objects))
	for _, obj := range s.objects {
		objects = append(objects, ObjectSnapshot{
			ID:       obj.ID(),
			Label:    obj.Label(),
			Hint:     obj.Hint(),
			Position: obj.Position(),
			InRange:  s.inRange[obj.ID()],
		})
	}

	entries := make([]progress.AchievementEntry, len(s.state.Achievements.Entries))
	copy(entries, s.state.Achievements.Entries)

	return Snapshot{
		SessionID: s.id,
		Player: PlayerSnapshot{
			Name:       s.state.PlayerProfile.Name,
			Position:   s.player.Position,
			FacingLeft: s.player.FacingLeft,
			Moving:     s.player.Moving(),
			Carrying:   string(s.carrying),
		},
		Cat: CatSnapshot{
			Name:        s.state.CatProfile.Name,
			BreedID:     s.state.CatProfile.BreedID,
			GrowthStage: s.state.CatProfile.GrowthStage,
			Position:    s.cat.Position,
			FacingLeft:  s.cat.FacingLeft,
			State:       s.cat.State(),
			Anim:        cat.AnimKindFor(s.cat),
		},
		Needs:        s.needs.Levels(),
		Tasks:        s.state.Tasks,
		DayCount:     s.state.Time.DayCount,
		Clock:        gameclock.FormatClock(s.state.Time.MinuteOfDay),
		Bond:         BondSnapshot{Value: s.state.Bond.Value, Tier: s.state.Bond.Tier()},
		Coins:        s.state.Economy.Coins,
		Achievements: entries,
		Season:       s.state.Season,
		Decor:        s.state.Decor,
		Objects:      objects,
	}
}

// Catalog exposes the decor shop inventory together with ownership.
type CatalogItem struct {
	progress.DecorItem
	Owned bool `json:"owned"`
}

func (s *Session) Catalog() []CatalogItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := progress.DecorCatalog()
	out := make([]CatalogItem, 0, len(items))
	for _, item := range items {
		out = append(out, CatalogItem{DecorItem: item, Owned: s.state.Economy.Owns(item.ID)})
	}
	return out
}

var _ house.World = (*Session)(nil)
