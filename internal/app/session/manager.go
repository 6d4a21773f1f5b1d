package session

import (
	"context"
	"log"
	"sync"
	"time"

	"purrhaven/internal/app/ports"
)

const tickInterval = 100 * time.Millisecond

// Manager owns the live sessions, one per player, and drives each with
// a fixed-rate ticker until Close.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*managed

	deps Deps
	now  func() time.Time
}

// Deps is the port bundle every session is wired with. NotifierFor
// scopes event delivery to one player's subscribers; nil means events
// are dropped.
type Deps struct {
	Repo        ports.SaveRepository
	Tx          ports.TxManager
	Journal     ports.MilestoneJournal
	NotifierFor func(playerID string) ports.Notifier
	Metrics     ports.SessionMetrics
}

type managed struct {
	session *Session
	stop    chan struct{}
}

func NewManager(deps Deps) *Manager {
	return &Manager{
		sessions: make(map[string]*managed),
		deps:     deps,
		now:      time.Now,
	}
}

// GetOrCreate returns the player's live session, starting one from the
// save store on first access.
func (m *Manager) GetOrCreate(ctx context.Context, playerID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry, ok := m.sessions[playerID]; ok {
		return entry.session, nil
	}

	var notifier ports.Notifier
	if m.deps.NotifierFor != nil {
		notifier = m.deps.NotifierFor(playerID)
	}

	s, err := New(ctx, Config{
		PlayerID: playerID,
		Repo:     m.deps.Repo,
		Tx:       m.deps.Tx,
		Journal:  m.deps.Journal,
		Notifier: notifier,
		Metrics:  m.deps.Metrics,
		Now:      m.now,
	})
	if err != nil {
		return nil, err
	}

	entry := &managed{session: s, stop: make(chan struct{})}
	m.sessions[playerID] = entry
	go m.run(entry)
	return s, nil
}

func (m *Manager) Get(playerID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.sessions[playerID]
	if !ok {
		return nil, false
	}
	return entry.session, true
}

func (m *Manager) run(entry *managed) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	last := m.now()
	for {
		select {
		case <-entry.stop:
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			entry.session.Advance(dt)
		}
	}
}

// Close stops every tick loop and flushes final saves.
func (m *Manager) Close(ctx context.Context) {
	m.mu.Lock()
	entries := make([]*managed, 0, len(m.sessions))
	for _, entry := range m.sessions {
		entries = append(entries, entry)
	}
	m.sessions = make(map[string]*managed)
	m.mu.Unlock()

	for _, entry := range entries {
		close(entry.stop)
		if err := entry.session.Persist(ctx); err != nil {
			log.Printf("final save for %s failed: %v", entry.session.PlayerID(), err)
		}
	}
}
