package upload

import (
	"sync"
	"time"
)

// Status is the lifecycle state of an upload session. The only transition is
// uploading -> completed.
type Status string

const (
	StatusUploading Status = "uploading"
	StatusCompleted Status = "completed"
)

// session is the mutable per-upload record. Everything below mu is guarded by
// it, so two chunks arriving on independent connections both land without
// losing an update while unrelated sessions stay untouched.
type session struct {
	mu sync.Mutex

	id          string
	filename    string
	totalSize   int64
	totalChunks int

	received      map[int]struct{}
	uploadedBytes int64
	startTime     time.Time
	lastActivity  time.Time
	status        Status
}

func newSession(id, filename string, totalSize int64, totalChunks int) *session {
	now := time.Now()
	return &session{
		id:           id,
		filename:     filename,
		totalSize:    totalSize,
		totalChunks:  totalChunks,
		received:     make(map[int]struct{}),
		startTime:    now,
		lastActivity: now,
		status:       StatusUploading,
	}
}

// Snapshot is an immutable copy of a session's state at one instant. Callers
// hold no lock while reading it, so progress polling never serializes chunk
// recording.
type Snapshot struct {
	ID             string
	Filename       string
	TotalSize      int64
	TotalChunks    int
	ReceivedChunks int
	UploadedBytes  int64
	StartTime      time.Time
	LastActivity   time.Time
	Status         Status
}

func (s *session) snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		ID:             s.id,
		Filename:       s.filename,
		TotalSize:      s.totalSize,
		TotalChunks:    s.totalChunks,
		ReceivedChunks: len(s.received),
		UploadedBytes:  s.uploadedBytes,
		StartTime:      s.startTime,
		LastActivity:   s.lastActivity,
		Status:         s.status,
	}
}

// recordChunk adds one chunk to the session. A duplicate index is a no-op so
// re-delivered chunks never double-count uploadedBytes.
func (s *session) recordChunk(index int, byteLength int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= s.totalChunks {
		return ErrChunkOutOfRange
	}
	if _, dup := s.received[index]; dup {
		return nil
	}
	s.received[index] = struct{}{}
	s.uploadedBytes += byteLength
	s.lastActivity = time.Now()
	return nil
}

func (s *session) isComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.received) == s.totalChunks
}

func (s *session) markCompleted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusCompleted
}
