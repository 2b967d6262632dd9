package upload

import (
	"sync"
	"time"

	"github.com/ashokumar06/large-file-recever/tool"
)

// Store is the upload session registry. Production uses MemoryStore; tests can
// substitute a fake, and eviction policies layer on top via Remove.
type Store interface {
	// Create inserts a fresh session and provisions its staging area. An
	// existing session with the same id is overwritten.
	Create(id, filename string, totalSize int64, totalChunks int) error
	// Get returns an immutable snapshot, or ErrSessionNotFound.
	Get(id string) (Snapshot, error)
	// RecordChunk marks one chunk received and adds its bytes to the running
	// total. Duplicate indices are a no-op.
	RecordChunk(id string, chunkIndex int, byteLength int64) error
	// IsComplete reports whether every declared chunk has been received.
	IsComplete(id string) (bool, error)
	// MarkCompleted transitions the session to StatusCompleted.
	MarkCompleted(id string) error
	// Remove deletes the session record. Staging cleanup is the caller's job.
	Remove(id string) error
	// Count returns the number of live sessions.
	Count() int
}

// MemoryStore keeps sessions in a process-wide map. The map mutex is held only
// for lookups and inserts; counter mutation happens under the per-session lock,
// so unrelated uploads never serialize on each other.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
	staging  Staging
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(staging Staging) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*session),
		staging:  staging,
	}
}

func (m *MemoryStore) Create(id, filename string, totalSize int64, totalChunks int) error {
	if err := m.staging.Provision(id); err != nil {
		return err
	}
	m.mu.Lock()
	if _, exists := m.sessions[id]; exists {
		tool.DefaultLogger.Warnf("Overwriting existing upload session: %s", id)
	}
	m.sessions[id] = newSession(id, filename, totalSize, totalChunks)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) lookup(id string) (*session, error) {
	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (m *MemoryStore) Get(id string) (Snapshot, error) {
	sess, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	return sess.snapshot(), nil
}

func (m *MemoryStore) RecordChunk(id string, chunkIndex int, byteLength int64) error {
	sess, err := m.lookup(id)
	if err != nil {
		return err
	}
	return sess.recordChunk(chunkIndex, byteLength)
}

func (m *MemoryStore) IsComplete(id string) (bool, error) {
	sess, err := m.lookup(id)
	if err != nil {
		return false, err
	}
	return sess.isComplete(), nil
}

func (m *MemoryStore) MarkCompleted(id string) error {
	sess, err := m.lookup(id)
	if err != nil {
		return err
	}
	sess.markCompleted()
	return nil
}

func (m *MemoryStore) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *MemoryStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// InactiveSince returns ids whose last activity is before the cutoff. Used by
// the sweeper; not part of the Store interface.
func (m *MemoryStore) InactiveSince(cutoff time.Time) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var ids []string
	for id, sess := range m.sessions {
		if sess.snapshot().LastActivity.Before(cutoff) {
			ids = append(ids, id)
		}
	}
	return ids
}
