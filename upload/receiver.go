package upload

import (
	"io"
	"os"
)

// Receiver stages chunk payloads and records their arrival against the session.
type Receiver struct {
	store   Store
	staging Staging
}

func NewReceiver(store Store, staging Staging) *Receiver {
	return &Receiver{
		store:   store,
		staging: staging,
	}
}

// SaveChunk persists one chunk payload to the session's staging area and then
// records it. The counter update happens only after the staged write succeeds,
// so a failed or cancelled write never corrupts the session. Re-delivery of an
// index overwrites the artifact; the store's duplicate check keeps the byte
// counter honest.
func (r *Receiver) SaveChunk(id string, chunkIndex int, payload io.Reader) (int64, error) {
	snap, err := r.store.Get(id)
	if err != nil {
		return 0, err
	}
	if chunkIndex < 0 || chunkIndex >= snap.TotalChunks {
		return 0, ErrChunkOutOfRange
	}

	path := r.staging.ChunkPath(id, chunkIndex)
	f, err := os.Create(path)
	if err != nil {
		return 0, &StagingWriteError{Err: err}
	}
	written, err := io.Copy(f, payload)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return 0, &StagingWriteError{Err: err}
	}

	if err := r.store.RecordChunk(id, chunkIndex, written); err != nil {
		return written, err
	}
	return written, nil
}
