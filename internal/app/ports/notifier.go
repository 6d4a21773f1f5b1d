package ports

// EventType names the fire-and-forget notifications the core emits for
// the presentation layer. None of them expects a reply.
type EventType string

const (
	EventNeedsUpdated        EventType = "needs.updated"
	EventTaskUpdated         EventType = "tasks.updated"
	EventTimeUpdated         EventType = "time.updated"
	EventPathBlocked         EventType = "path.blocked"
	EventToast               EventType = "ui.toast"
	EventInteractionEnter    EventType = "interaction.enter"
	EventInteractionExit     EventType = "interaction.exit"
	EventCoinsUpdated        EventType = "coins.updated"
	EventBondUpdated         EventType = "bond.updated"
	EventAchievementUnlocked EventType = "achievement.unlocked"
	EventDecorUpdated        EventType = "decor.updated"
	EventCatHopped           EventType = "cat.hopped"
)

type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload,omitempty"`
}

type Notifier interface {
	Publish(event Event)
}

// NopNotifier drops every event; used when no client is attached.
type NopNotifier struct{}

func (NopNotifier) Publish(Event) {}
