package session

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"purrhaven/internal/app/ports"
	"purrhaven/internal/app/saveload"
	"purrhaven/internal/domain/cat"
	"purrhaven/internal/domain/gamestate"
	"purrhaven/internal/domain/geom"
	"purrhaven/internal/domain/house"
	"purrhaven/internal/domain/motion"
	"purrhaven/internal/domain/nav"
	"purrhaven/internal/domain/pet"
	"purrhaven/internal/domain/progress"
)

const (
	playerSpeed      = 150.0
	arrivalThreshold = 6.0

	petReachRadius   = 96.0
	catHitRadius     = 36.0
	objectHitRadius  = 44.0
	catPetApproachDY = 24.0

	careBondReward   = 4
	petBondReward    = 2
	allTasksCoins    = 15
	weekStreakDay    = 7
	bondAchieveTier  = 2
	litterDirtPerSec = 0.2

	autosaveInterval = 60.0
)

var careTaskKeys = map[pet.CareAction]progress.TaskKey{
	pet.CareFeed:        progress.TaskFeed,
	pet.CareWater:       progress.TaskWater,
	pet.CarePlay:        progress.TaskPlay,
	pet.CareCleanLitter: progress.TaskCleanLitter,
}

type Config struct {
	PlayerID string
	Repo     ports.SaveRepository
	Tx       ports.TxManager
	Journal  ports.MilestoneJournal
	Notifier ports.Notifier
	Metrics  ports.SessionMetrics
	Now      func() time.Time
	Rng      *rand.Rand
}

type pendingKind int

const (
	pendingNone pendingKind = iota
	pendingObject
	pendingPet
)

// Session owns all mutable game state for one player and serializes
// every read and write on its mutex: input resolution, movement,
// behavior, simulation ticks, and progression side effects all happen
// on one logical update thread.
type Session struct {
	mu sync.Mutex

	id       string
	playerID string

	saver    saveload.UseCase
	tx       ports.TxManager
	journal  ports.MilestoneJournal
	notifier ports.Notifier
	metrics  ports.SessionMetrics
	now      func() time.Time
	rng      *rand.Rand

	milestones []ports.MilestoneRecord

	state   gamestate.GameState
	needs   pet.Needs
	version int64

	grid       *nav.Grid
	pathfinder *nav.Pathfinder
	requester  *nav.Requester

	player *motion.Mover
	cat    *cat.Cat

	objects  []house.Object
	inRange  map[string]bool
	carrying house.CarryItem

	pending    pendingKind
	pendingObj house.Object

	sinceSave float64
}

// New restores the player's save (or starts fresh), applies the
// one-time offline needs catch-up, and assembles the house scene.
func New(ctx context.Context, cfg Config) (*Session, error) {
	nowFn := cfg.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	rng := cfg.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(nowFn().UnixNano()))
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}

	saver := saveload.UseCase{Repo: cfg.Repo, Now: nowFn}

	var loaded saveload.LoadResult
	err := runInTx(ctx, cfg.Tx, func(ctx context.Context) error {
		var loadErr error
		loaded, loadErr = saver.Load(ctx, cfg.PlayerID)
		return loadErr
	})
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:       uuid.NewString(),
		playerID: cfg.PlayerID,
		saver:    saver,
		tx:       cfg.Tx,
		journal:  cfg.Journal,
		notifier: notifier,
		metrics:  cfg.Metrics,
		now:      nowFn,
		rng:      rng,
		state:    loaded.State,
		needs:    pet.NewNeeds(loaded.State.Needs),
		version:  loaded.Version,
		inRange:  make(map[string]bool),
	}

	if loaded.OfflineMinutes > 0 {
		breed := pet.BreedByID(s.state.CatProfile.BreedID)
		growth := pet.GrowthNeedMultiplier(s.state.CatProfile.GrowthStage)
		s.needs = s.needs.Tick(loaded.OfflineMinutes, breed, growth)
		s.state.Needs = s.needs.Levels()
	}

	s.grid = house.BuildGrid()
	s.pathfinder = nav.NewPathfinder()
	s.pathfinder.SetGrid(s.grid)
	s.requester = nav.NewRequester(s.pathfinder)

	s.player = motion.NewMover(house.PlayerSpawn, motion.Config{
		Speed:            playerSpeed,
		ArrivalThreshold: arrivalThreshold,
	})
	s.cat = cat.New(house.CatSpawn, house.CatBounds(), rng)

	s.objects = house.DefaultObjects()
	for _, id := range s.state.Economy.PurchasedDecorIDs {
		s.spawnFurniture(id)
	}

	return s, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) PlayerID() string {
	return s.playerID
}

func (s *Session) spawnFurniture(id string) {
	for _, obj := range s.objects {
		if obj.ID() == id {
			return
		}
	}
	if obj := house.FurnitureByID(id); obj != nil {
		s.objects = append(s.objects, obj)
	}
}

func (s *Session) objectByID(id string) house.Object {
	for _, obj := range s.objects {
		if obj.ID() == id {
			return obj
		}
	}
	return nil
}

// Persist writes the current state under the next storage version.
func (s *Session) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked(ctx)
}

// persistLocked writes the save slot and flushes buffered milestones
// in one transaction, so the journal never records progress a rolled
// back save would lose.
func (s *Session) persistLocked(ctx context.Context) error {
	s.state.Needs = s.needs.Levels()
	err := runInTx(ctx, s.tx, func(ctx context.Context) error {
		version, saveErr := s.saver.Save(ctx, s.playerID, s.state, s.version)
		if saveErr != nil {
			return saveErr
		}
		if s.journal != nil {
			if jErr := s.journal.Append(ctx, s.playerID, s.milestones); jErr != nil {
				return jErr
			}
		}
		s.version = version
		return nil
	})
	if s.metrics != nil {
		s.metrics.RecordPersist(err == nil)
	}
	if err != nil {
		return err
	}
	s.milestones = nil
	return nil
}

func runInTx(ctx context.Context, tx ports.TxManager, fn func(ctx context.Context) error) error {
	if tx == nil {
		return fn(ctx)
	}
	return tx.RunInTx(ctx, fn)
}

func (s *Session) recordMilestone(kind string, payload map[string]any) {
	s.milestones = append(s.milestones, ports.MilestoneRecord{
		Type:       kind,
		OccurredAt: s.now(),
		Payload:    payload,
	})
}

func (s *Session) publish(eventType ports.EventType, payload any) {
	s.notifier.Publish(ports.Event{Type: eventType, Payload: payload})
}

func (s *Session) toast(message string) {
	s.publish(ports.EventToast, map[string]any{
		"message":    message,
		"durationMs": 1700,
	})
}

// --- house.World -----------------------------------------------------
// Object effects see the session only through this narrow surface.

func (s *Session) Carrying() house.CarryItem {
	return s.carrying
}

func (s *Session) SetCarrying(item house.CarryItem) {
	s.carrying = item
}

func (s *Session) CatEatAt(target geom.Vec2) {
	s.cat.GoEatAt(target)
}

func (s *Session) CatDrinkAt(target geom.Vec2) {
	s.cat.GoDrinkAt(target)
}

func (s *Session) CatSleepAt(target geom.Vec2) {
	s.cat.GoSleepAt(target)
}

func (s *Session) Toast(message string) {
	s.toast(message)
}

// Care runs the progression chain for a completed care action: restore
// the need, tick the task board, accrue bond, and pay out the daily
// bonus when the checklist fills up. Completing all tasks never
// advances the day; midnight is the sole rollover authority.
func (s *Session) Care(action pet.CareAction) {
	if s.metrics != nil {
		s.metrics.RecordAction(string(action))
	}

	s.needs = s.needs.Apply(action)
	s.state.Needs = s.needs.Levels()
	s.publish(ports.EventNeedsUpdated, s.state.Needs)

	justCompleted := false
	if taskKey, ok := careTaskKeys[action]; ok {
		wasComplete := s.state.Tasks.AllComplete()
		nowComplete := s.state.Tasks.MarkCompleted(taskKey)
		justCompleted = !wasComplete && nowComplete
		s.publish(ports.EventTaskUpdated, s.state.Tasks)
	}

	s.addBond(careBondReward)

	if justCompleted {
		s.state.Economy.AwardCoins(allTasksCoins)
		s.toast("All tasks complete! +15 coins")
		s.publish(ports.EventCoinsUpdated, s.state.Economy.Coins)
		s.unlockAchievement(progress.AchievementFirstDay)
	}
}

func (s *Session) addBond(amount int) {
	tierIncreased := s.state.Bond.Add(amount)
	if tierIncreased {
		s.toast(fmt.Sprintf("Bond tier %d reached", s.state.Bond.Tier()))
		if s.state.Bond.Tier() >= bondAchieveTier {
			s.unlockAchievement(progress.AchievementBondTier2)
		}
	}
	s.publish(ports.EventBondUpdated, map[string]int{
		"value": s.state.Bond.Value,
		"tier":  s.state.Bond.Tier(),
	})
}

func (s *Session) unlockAchievement(id string) {
	if entry := s.state.Achievements.Unlock(id, s.now()); entry != nil {
		s.recordMilestone("achievement.unlocked", map[string]any{"id": id})
		s.publish(ports.EventAchievementUnlocked, *entry)
	}
}
