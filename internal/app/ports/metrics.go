package ports

// SessionMetrics counts gameplay outcomes for the ops endpoint.
type SessionMetrics interface {
	RecordAction(kind string)
	RecordPathBlocked()
	RecordPersist(success bool)
}
