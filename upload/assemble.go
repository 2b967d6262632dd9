package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ashokumar06/large-file-recever/tool"
)

// Assembler concatenates staged chunks into the final output file once a
// session is complete.
type Assembler struct {
	store     Store
	staging   Staging
	outputDir string
}

func NewAssembler(store Store, staging Staging, outputDir string) *Assembler {
	return &Assembler{
		store:     store,
		staging:   staging,
		outputDir: outputDir,
	}
}

// Result describes a finalized upload. Size is measured from the written file,
// not echoed back from the client's declaration.
type Result struct {
	Filename string
	Size     int64
	Location string
}

// Assemble builds the final file for a complete session. The chunks are
// streamed in ascending index order into a temporary file that is renamed into
// place only on full success, so a failed reassembly never leaves a file that
// looks finished. Staging cleanup is best effort on both paths and never masks
// the primary error.
func (a *Assembler) Assemble(id string) (Result, error) {
	snap, err := a.store.Get(id)
	if err != nil {
		return Result{}, err
	}
	complete, err := a.store.IsComplete(id)
	if err != nil {
		return Result{}, err
	}
	if !complete {
		return Result{}, ErrIncompleteUpload
	}

	finalPath := tool.NextAvailablePath(a.outputDir, snap.Filename)
	res, err := a.concatenate(id, snap.TotalChunks, finalPath)
	if err != nil {
		a.cleanupStaging(id)
		return Result{}, &ReassemblyError{Err: err}
	}

	a.cleanupStaging(id)
	if err := a.store.MarkCompleted(id); err != nil {
		return Result{}, err
	}

	tool.DefaultLogger.Infof("Upload completed: %s (%s)", res.Filename, tool.FormatBytes(res.Size))
	return res, nil
}

func (a *Assembler) concatenate(id string, totalChunks int, finalPath string) (Result, error) {
	// Temp file lives in the output dir so the rename stays on one filesystem.
	tmpPath := filepath.Join(a.outputDir, fmt.Sprintf(".upload-%s.part", uuid.New().String()))
	out, err := os.Create(tmpPath)
	if err != nil {
		return Result{}, err
	}

	var written int64
	for index := 0; index < totalChunks; index++ {
		chunk, err := os.Open(a.staging.ChunkPath(id, index))
		if err != nil {
			out.Close()
			_ = os.Remove(tmpPath)
			if os.IsNotExist(err) {
				return Result{}, &MissingChunkError{Index: index}
			}
			return Result{}, err
		}
		n, err := io.Copy(out, chunk)
		chunk.Close()
		if err != nil {
			out.Close()
			_ = os.Remove(tmpPath)
			return Result{}, err
		}
		written += n
	}

	if err := out.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return Result{}, err
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return Result{}, err
	}

	info, err := os.Stat(finalPath)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Filename: filepath.Base(finalPath),
		Size:     info.Size(),
		Location: finalPath,
	}, nil
}

func (a *Assembler) cleanupStaging(id string) {
	if err := a.staging.Remove(id); err != nil {
		tool.DefaultLogger.Warnf("Failed to clean up staging area for %s: %v", id, err)
	}
}
