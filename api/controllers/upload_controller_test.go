package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashokumar06/large-file-recever/types"
	"github.com/ashokumar06/large-file-recever/upload"
)

// setupRouter wires the upload endpoints against temp directories.
func setupRouter(t *testing.T) (*gin.Engine, *types.AppConfig) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &types.AppConfig{
		Port:        8000,
		UploadDir:   t.TempDir(),
		StagingDir:  t.TempDir(),
		MaxFileSize: 500 * 1024 * 1024 * 1024,
		ChunkSize:   128 * 1024 * 1024,
	}
	staging := upload.NewStaging(cfg.StagingDir)
	store := upload.NewMemoryStore(staging)
	receiver := upload.NewReceiver(store, staging)
	assembler := upload.NewAssembler(store, staging, cfg.UploadDir)

	uploadCtrl := NewUploadController(store, receiver, assembler, cfg)
	progressCtrl := NewProgressController(store)
	uploadsCtrl := NewUploadsController(cfg.UploadDir)

	router := gin.New()
	router.POST("/start-upload", uploadCtrl.HandleStartUpload)
	router.POST("/upload-chunk/:upload_id", uploadCtrl.HandleUploadChunk)
	router.POST("/complete-upload/:upload_id", uploadCtrl.HandleCompleteUpload)
	router.GET("/progress/:upload_id", progressCtrl.HandleProgress)
	router.GET("/uploads", uploadsCtrl.HandleListUploads)
	return router, cfg
}

func startUpload(t *testing.T, router *gin.Engine, req types.StartUploadRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)
	httpReq, _ := http.NewRequest(http.MethodPost, "/start-upload", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httpReq)
	return w
}

func sendChunk(t *testing.T, router *gin.Engine, uploadID string, index int, payload string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("chunk", "blob")
	require.NoError(t, err)
	_, err = part.Write([]byte(payload))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("chunk_index", strconv.Itoa(index)))
	require.NoError(t, mw.WriteField("total_chunks", "3"))
	require.NoError(t, mw.Close())

	httpReq, _ := http.NewRequest(http.MethodPost, "/upload-chunk/"+uploadID, &buf)
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httpReq)
	return w
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	httpReq, _ := http.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httpReq)
	return w
}

func TestStartUpload(t *testing.T) {
	router, _ := setupRouter(t)

	w := startUpload(t, router, types.StartUploadRequest{
		UploadID:    "abc",
		Filename:    "clip.mp4",
		TotalSize:   300,
		TotalChunks: 3,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.StartUploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "upload_started", resp.Status)
	assert.Equal(t, "abc", resp.UploadID)
	assert.Equal(t, "clip.mp4", resp.Filename)
	assert.Equal(t, int64(128*1024*1024), resp.ChunkSize)
}

func TestStartUploadTooLarge(t *testing.T) {
	router, cfg := setupRouter(t)

	w := startUpload(t, router, types.StartUploadRequest{
		UploadID:    "abc",
		Filename:    "huge.mp4",
		TotalSize:   cfg.MaxFileSize + 1,
		TotalChunks: 10,
	})
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "File too large")
}

func TestStartUploadSanitizesFilename(t *testing.T) {
	router, _ := setupRouter(t)

	w := startUpload(t, router, types.StartUploadRequest{
		UploadID:    "abc",
		Filename:    "my<>video?.mp4",
		TotalSize:   100,
		TotalChunks: 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.StartUploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "myvideo.mp4", resp.Filename)
}

func TestStartUploadFilenameFallback(t *testing.T) {
	router, _ := setupRouter(t)

	w := startUpload(t, router, types.StartUploadRequest{
		UploadID:    "abc",
		Filename:    "???",
		TotalSize:   100,
		TotalChunks: 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.StartUploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.Filename, "video_"))
}

func TestStartUploadInvalidBody(t *testing.T) {
	router, _ := setupRouter(t)

	httpReq, _ := http.NewRequest(http.MethodPost, "/start-upload", strings.NewReader("not json"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httpReq)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadChunkUnknownSession(t *testing.T) {
	router, _ := setupRouter(t)

	w := sendChunk(t, router, "missing", 0, "data")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadChunkIndexOutOfRange(t *testing.T) {
	router, _ := setupRouter(t)
	require.Equal(t, http.StatusOK, startUpload(t, router, types.StartUploadRequest{
		UploadID: "abc", Filename: "clip.mp4", TotalSize: 300, TotalChunks: 3,
	}).Code)

	w := sendChunk(t, router, "abc", 7, "data")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompleteUploadUnknownSession(t *testing.T) {
	router, _ := setupRouter(t)

	httpReq, _ := http.NewRequest(http.MethodPost, "/complete-upload/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httpReq)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCompleteUploadIncomplete(t *testing.T) {
	router, _ := setupRouter(t)
	require.Equal(t, http.StatusOK, startUpload(t, router, types.StartUploadRequest{
		UploadID: "abc", Filename: "clip.mp4", TotalSize: 400, TotalChunks: 4,
	}).Code)
	for _, index := range []int{0, 1, 3} {
		require.Equal(t, http.StatusOK, sendChunk(t, router, "abc", index, "aaaa").Code)
	}

	httpReq, _ := http.NewRequest(http.MethodPost, "/complete-upload/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httpReq)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "incomplete")

	// Session is still accepting chunks.
	progress := get(router, "/progress/abc")
	require.Equal(t, http.StatusOK, progress.Code)
	var report upload.Report
	require.NoError(t, json.Unmarshal(progress.Body.Bytes(), &report))
	assert.Equal(t, upload.StatusUploading, report.Status)
}

func TestProgressUnknownSession(t *testing.T) {
	router, _ := setupRouter(t)
	assert.Equal(t, http.StatusNotFound, get(router, "/progress/missing").Code)
}

func TestEndToEndUploadFlow(t *testing.T) {
	router, cfg := setupRouter(t)

	require.Equal(t, http.StatusOK, startUpload(t, router, types.StartUploadRequest{
		UploadID: "abc", Filename: "clip.mp4", TotalSize: 300, TotalChunks: 3,
	}).Code)

	chunk0 := strings.Repeat("0", 100)
	chunk1 := strings.Repeat("1", 100)
	chunk2 := strings.Repeat("2", 100)

	// Chunk 1 first, then check progress.
	w := sendChunk(t, router, "abc", 1, chunk1)
	require.Equal(t, http.StatusOK, w.Code)
	var chunkResp types.ChunkReceivedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &chunkResp))
	assert.Equal(t, "chunk_received", chunkResp.Status)
	assert.Equal(t, 1, chunkResp.ChunkIndex)
	assert.Equal(t, int64(100), chunkResp.ChunkSize)

	progress := get(router, "/progress/abc")
	require.Equal(t, http.StatusOK, progress.Code)
	var report upload.Report
	require.NoError(t, json.Unmarshal(progress.Body.Bytes(), &report))
	assert.Equal(t, int64(100), report.UploadedSize)
	assert.Equal(t, 1, report.ReceivedChunks)
	assert.Equal(t, 3, report.TotalChunks)

	require.Equal(t, http.StatusOK, sendChunk(t, router, "abc", 0, chunk0).Code)
	require.Equal(t, http.StatusOK, sendChunk(t, router, "abc", 2, chunk2).Code)

	httpReq, _ := http.NewRequest(http.MethodPost, "/complete-upload/abc", nil)
	complete := httptest.NewRecorder()
	router.ServeHTTP(complete, httpReq)
	require.Equal(t, http.StatusOK, complete.Code)

	var completeResp types.CompleteUploadResponse
	require.NoError(t, json.Unmarshal(complete.Body.Bytes(), &completeResp))
	assert.Equal(t, "upload_completed", completeResp.Status)
	assert.Equal(t, "clip.mp4", completeResp.Filename)
	assert.Equal(t, int64(300), completeResp.FileSize)

	data, err := os.ReadFile(filepath.Join(cfg.UploadDir, "clip.mp4"))
	require.NoError(t, err)
	assert.Equal(t, chunk0+chunk1+chunk2, string(data))

	// The finalized file shows up in the listing.
	uploads := get(router, "/uploads")
	require.Equal(t, http.StatusOK, uploads.Code)
	var listing types.UploadsResponse
	require.NoError(t, json.Unmarshal(uploads.Body.Bytes(), &listing))
	require.Equal(t, 1, listing.TotalFiles)
	assert.Equal(t, "clip.mp4", listing.Uploads[0].Filename)
	assert.Equal(t, int64(300), listing.Uploads[0].Size)
}
