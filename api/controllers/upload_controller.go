package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"

	"github.com/ashokumar06/large-file-recever/tool"
	"github.com/ashokumar06/large-file-recever/types"
	"github.com/ashokumar06/large-file-recever/upload"
)

type UploadController struct {
	store     upload.Store
	receiver  *upload.Receiver
	assembler *upload.Assembler
	cfg       *types.AppConfig
}

func NewUploadController(store upload.Store, receiver *upload.Receiver, assembler *upload.Assembler, cfg *types.AppConfig) *UploadController {
	return &UploadController{
		store:     store,
		receiver:  receiver,
		assembler: assembler,
		cfg:       cfg,
	}
}

// HandleStartUpload initializes a new upload session.
func (ctrl *UploadController) HandleStartUpload(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		tool.DefaultLogger.Errorf("Failed to read start-upload request body: %v", err)
		c.JSON(http.StatusBadRequest, tool.FastReturnError("Failed to read request body"))
		return
	}

	var request types.StartUploadRequest
	if err := sonic.Unmarshal(body, &request); err != nil {
		tool.DefaultLogger.Errorf("Failed to parse start-upload request: %v", err)
		c.JSON(http.StatusBadRequest, tool.FastReturnError("Invalid request body"))
		return
	}
	if request.UploadID == "" || request.TotalChunks <= 0 || request.TotalSize < 0 {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("Missing or invalid upload parameters"))
		return
	}
	if request.TotalSize > ctrl.cfg.MaxFileSize {
		c.JSON(http.StatusRequestEntityTooLarge, tool.FastReturnError(
			fmt.Sprintf("File too large. Maximum size is %d GB", ctrl.cfg.MaxFileSize/(1024*1024*1024))))
		return
	}

	safeName := tool.SanitizeFilename(request.Filename)
	if safeName == "" {
		safeName = fmt.Sprintf("video_%d", time.Now().Unix())
	}

	if err := ctrl.store.Create(request.UploadID, safeName, request.TotalSize, request.TotalChunks); err != nil {
		tool.DefaultLogger.Errorf("Failed to create upload session %s: %v", request.UploadID, err)
		c.JSON(http.StatusInternalServerError, tool.FastReturnError("Failed to start upload session"))
		return
	}

	tool.DefaultLogger.Infof("[StartUpload] Session %s started: %s (%s, %d chunks)",
		request.UploadID, safeName, tool.FormatBytes(request.TotalSize), request.TotalChunks)

	c.JSON(http.StatusOK, types.StartUploadResponse{
		Status:    "upload_started",
		UploadID:  request.UploadID,
		Filename:  safeName,
		ChunkSize: ctrl.cfg.ChunkSize,
	})
}

// HandleUploadChunk receives and stages one chunk of an upload.
func (ctrl *UploadController) HandleUploadChunk(c *gin.Context) {
	uploadID := c.Param("upload_id")

	chunkIndex, err := strconv.Atoi(c.PostForm("chunk_index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("Invalid chunk_index"))
		return
	}

	fileHeader, err := c.FormFile("chunk")
	if err != nil {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("Missing chunk payload"))
		return
	}
	payload, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, tool.FastReturnError("Failed to read chunk payload"))
		return
	}
	defer payload.Close()

	written, err := ctrl.receiver.SaveChunk(uploadID, chunkIndex, payload)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, tool.FastReturnError("Upload session not found"))
		case errors.Is(err, upload.ErrChunkOutOfRange):
			c.JSON(http.StatusBadRequest, tool.FastReturnError("Chunk index out of range"))
		default:
			tool.DefaultLogger.Errorf("[UploadChunk] Failed to store chunk %d of %s: %v", chunkIndex, uploadID, err)
			c.JSON(http.StatusInternalServerError, tool.FastReturnError(fmt.Sprintf("Chunk upload failed: %v", err)))
		}
		return
	}

	c.JSON(http.StatusOK, types.ChunkReceivedResponse{
		Status:     "chunk_received",
		ChunkIndex: chunkIndex,
		ChunkSize:  written,
	})
}

// HandleCompleteUpload combines all staged chunks into the final file.
func (ctrl *UploadController) HandleCompleteUpload(c *gin.Context) {
	uploadID := c.Param("upload_id")

	result, err := ctrl.assembler.Assemble(uploadID)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, tool.FastReturnError("Upload session not found"))
		case errors.Is(err, upload.ErrIncompleteUpload):
			c.JSON(http.StatusBadRequest, tool.FastReturnError("Upload incomplete - missing chunks"))
		default:
			tool.DefaultLogger.Errorf("[CompleteUpload] Reassembly failed for %s: %v", uploadID, err)
			c.JSON(http.StatusInternalServerError, tool.FastReturnError(fmt.Sprintf("Upload completion failed: %v", err)))
		}
		return
	}

	c.JSON(http.StatusOK, types.CompleteUploadResponse{
		Status:   "upload_completed",
		Filename: result.Filename,
		FileSize: result.Size,
		Location: result.Location,
	})
}
