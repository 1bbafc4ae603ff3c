package game

// ScoreStore is the minimal persistent byte store the session consumes:
// one int32 high score per process lifetime. Load happens once at
// session construction, SetHighScore on every new high (write-through,
// no batching), and ResetHighScore is an explicit maintenance operation.
// Implementations may fail; the session logs and continues.
type ScoreStore interface {
	// HighScore returns the persisted value and whether one exists.
	HighScore() (int32, bool, error)

	// SetHighScore persists a new value, replacing any previous one.
	SetHighScore(score int32) error

	// ResetHighScore deletes the persisted value.
	ResetHighScore() error
}
