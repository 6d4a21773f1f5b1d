package gamestate

import (
	"time"

	"purrhaven/internal/domain/gameclock"
	"purrhaven/internal/domain/pet"
	"purrhaven/internal/domain/progress"
)

const (
	DefaultPlayerName = "Alex"
	DefaultCatName    = "Mochi"
)

type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderNeutral Gender = "neutral"
)

// PlayerProfile stores the cosmetic choices as indices into the
// presentation layer's palette tables.
type PlayerProfile struct {
	Name        string `json:"name"`
	Pronouns    string `json:"pronouns"`
	SkinTone    int    `json:"skinTone"`
	HairStyle   int    `json:"hairStyle"`
	HairColor   int    `json:"hairColor"`
	EyeColor    int    `json:"eyeColor"`
	OutfitType  int    `json:"outfitType"`
	OutfitColor int    `json:"outfitColor"`
	Gender      Gender `json:"gender"`
}

type CatProfile struct {
	BreedID     string    `json:"breedId"`
	Name        string    `json:"name"`
	AgeDays     int       `json:"ageDays"`
	GrowthStage pet.Stage `json:"growthStage"`
}

type HouseDecor struct {
	ActiveTheme string `json:"activeTheme"`
}

// GameState aggregates every persisted simulation state. It is owned by
// the session orchestrator; systems receive only the slice they need.
type GameState struct {
	PlayerProfile PlayerProfile         `json:"playerProfile"`
	CatProfile    CatProfile            `json:"catProfile"`
	Needs         pet.Levels            `json:"needsState"`
	Tasks         progress.TaskBoard    `json:"taskState"`
	Time          gameclock.State       `json:"timeState"`
	Bond          progress.Bond         `json:"bondState"`
	Achievements  progress.Achievements `json:"achievementState"`
	Economy       progress.Economy      `json:"economyState"`
	Season        Season                `json:"seasonState"`
	Decor         HouseDecor            `json:"houseDecorState"`
}

func InitialState(now time.Time) GameState {
	return GameState{
		PlayerProfile: PlayerProfile{
			Name:      DefaultPlayerName,
			Pronouns:  "they/them",
			SkinTone:  2,
			HairColor: 1,
			Gender:    GenderNeutral,
		},
		CatProfile: CatProfile{
			BreedID:     pet.DefaultBreed().ID,
			Name:        DefaultCatName,
			AgeDays:     1,
			GrowthStage: pet.StageKitten,
		},
		Needs: pet.Levels{Hunger: 80, Thirst: 80, Fun: 80, Hygiene: 80},
		Tasks: progress.NewTaskBoard(1),
		Time: gameclock.State{
			DayCount:      1,
			MinuteOfDay:   8 * 60,
			LastUpdatedAt: now,
		},
		Bond:         progress.Bond{},
		Achievements: progress.DefaultAchievements(),
		Economy:      progress.Economy{Coins: 0, PurchasedDecorIDs: []string{"default"}},
		Season:       SeasonForDate(now),
		Decor:        HouseDecor{ActiveTheme: "#2F5DAA"},
	}
}
