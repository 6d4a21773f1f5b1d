package progress

import "time"

const (
	AchievementFirstDay   = "first_day"
	AchievementWeekStreak = "week_streak"
	AchievementBondTier2  = "bond_2"
	AchievementFirstShop  = "first_shop"
)

type AchievementEntry struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlockedAt,omitempty"`
}

// Achievements is the monotonic unlock ledger: entries only ever go
// from locked to unlocked.
type Achievements struct {
	Entries []AchievementEntry `json:"entries"`
}

func DefaultAchievements() Achievements {
	return Achievements{Entries: []AchievementEntry{
		{ID: AchievementFirstDay, Title: "First Day Survived"},
		{ID: AchievementWeekStreak, Title: "7 Day Streak"},
		{ID: AchievementBondTier2, Title: "Trusted Companion"},
		{ID: AchievementFirstShop, Title: "Interior Designer"},
	}}
}

// Unlock flips an entry to unlocked and returns it, but only on the
// locked-to-unlocked transition. Repeated calls and unknown ids return
// nil.
func (a *Achievements) Unlock(id string, now time.Time) *AchievementEntry {
	for i := range a.Entries {
		entry := &a.Entries[i]
		if entry.ID != id {
			continue
		}
		if entry.Unlocked {
			return nil
		}
		entry.Unlocked = true
		at := now
		entry.UnlockedAt = &at
		result := *entry
		return &result
	}
	return nil
}
