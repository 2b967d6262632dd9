package upload

import (
	"fmt"
	"os"
	"path/filepath"
)

// Staging addresses the scratch area holding chunk artifacts until reassembly.
// Layout: one subdirectory per upload id, one artifact per chunk index.
type Staging struct {
	root string
}

func NewStaging(root string) Staging {
	return Staging{root: root}
}

func (s Staging) Root() string {
	return s.root
}

// SessionDir returns the staging subdirectory for one upload id.
func (s Staging) SessionDir(id string) string {
	return filepath.Join(s.root, id)
}

// ChunkPath returns the artifact path for one (id, index) pair. The zero-padded
// name keeps artifacts in index order when the directory is enumerated.
func (s Staging) ChunkPath(id string, index int) string {
	return filepath.Join(s.SessionDir(id), fmt.Sprintf("chunk_%06d", index))
}

// Provision creates the staging subdirectory for an upload id.
func (s Staging) Provision(id string) error {
	return os.MkdirAll(s.SessionDir(id), 0o755)
}

// Remove deletes the staging subdirectory and everything in it.
func (s Staging) Remove(id string) error {
	return os.RemoveAll(s.SessionDir(id))
}
