package progress

type TaskKey string

const (
	TaskFeed        TaskKey = "feed"
	TaskWater       TaskKey = "water"
	TaskPlay        TaskKey = "play"
	TaskCleanLitter TaskKey = "cleanLitter"
)

func TaskKeys() []TaskKey {
	return []TaskKey{TaskFeed, TaskWater, TaskPlay, TaskCleanLitter}
}

// TaskBoard tracks the current day's care checklist.
type TaskBoard struct {
	Day       int              `json:"day"`
	Completed map[TaskKey]bool `json:"completed"`
}

func NewTaskBoard(day int) TaskBoard {
	if day < 1 {
		day = 1
	}
	return TaskBoard{Day: day, Completed: emptyCompletion()}
}

func emptyCompletion() map[TaskKey]bool {
	out := make(map[TaskKey]bool, 4)
	for _, key := range TaskKeys() {
		out[key] = false
	}
	return out
}

// MarkCompleted flags the task done (idempotent) and reports whether
// every task is now complete.
func (t *TaskBoard) MarkCompleted(key TaskKey) bool {
	if t.Completed == nil {
		t.Completed = emptyCompletion()
	}
	if _, known := t.Completed[key]; known {
		t.Completed[key] = true
	}
	return t.AllComplete()
}

func (t *TaskBoard) IsComplete(key TaskKey) bool {
	return t.Completed[key]
}

func (t *TaskBoard) AllComplete() bool {
	for _, key := range TaskKeys() {
		if !t.Completed[key] {
			return false
		}
	}
	return true
}

// StartNextDay increments the day and resets every flag.
func (t *TaskBoard) StartNextDay() {
	t.Day++
	t.Completed = emptyCompletion()
}
