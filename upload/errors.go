package upload

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound is returned for any operation against an unknown upload id.
	ErrSessionNotFound = errors.New("upload session not found")

	// ErrChunkOutOfRange is returned when a chunk index falls outside [0, totalChunks).
	ErrChunkOutOfRange = errors.New("chunk index out of range")

	// ErrIncompleteUpload is returned when completion is requested before every
	// chunk has been received.
	ErrIncompleteUpload = errors.New("upload incomplete - missing chunks")
)

// MissingChunkError reports a staged chunk artifact that disappeared between the
// completeness check and reassembly.
type MissingChunkError struct {
	Index int
}

func (e *MissingChunkError) Error() string {
	return fmt.Sprintf("missing chunk %d", e.Index)
}

// StagingWriteError wraps a durable-write failure while accepting a chunk. The
// session counters are left untouched when this is returned.
type StagingWriteError struct {
	Err error
}

func (e *StagingWriteError) Error() string {
	return fmt.Sprintf("staging write failed: %v", e.Err)
}

func (e *StagingWriteError) Unwrap() error { return e.Err }

// ReassemblyError wraps any failure during final-file construction. The
// underlying cause is preserved so callers can still match MissingChunkError.
type ReassemblyError struct {
	Err error
}

func (e *ReassemblyError) Error() string {
	return fmt.Sprintf("upload completion failed: %v", e.Err)
}

func (e *ReassemblyError) Unwrap() error { return e.Err }
