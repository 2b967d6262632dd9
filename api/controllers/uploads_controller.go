package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"time"

	ttlworker "github.com/FloatTech/ttl"
	"github.com/gin-gonic/gin"

	"github.com/ashokumar06/large-file-recever/tool"
	"github.com/ashokumar06/large-file-recever/types"
)

// listingCacheTTL keeps repeated /uploads polls from rescanning the output
// directory on every request.
const listingCacheTTL = 2 * time.Second

const listingCacheKey = "uploads"

type UploadsController struct {
	uploadDir string
	cache     *ttlworker.Cache[string, *types.UploadsResponse]
}

func NewUploadsController(uploadDir string) *UploadsController {
	return &UploadsController{
		uploadDir: uploadDir,
		cache:     ttlworker.NewCache[string, *types.UploadsResponse](listingCacheTTL),
	}
}

// HandleListUploads lists finalized files, newest first.
func (ctrl *UploadsController) HandleListUploads(c *gin.Context) {
	if cached := ctrl.cache.Get(listingCacheKey); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	listing, err := ctrl.buildListing()
	if err != nil {
		tool.DefaultLogger.Errorf("Failed to list uploads: %v", err)
		c.JSON(http.StatusInternalServerError, tool.FastReturnError("Failed to list uploads"))
		return
	}

	ctrl.cache.Set(listingCacheKey, listing)
	c.JSON(http.StatusOK, listing)
}

func (ctrl *UploadsController) buildListing() (*types.UploadsResponse, error) {
	entries, err := os.ReadDir(ctrl.uploadDir)
	if err != nil {
		if os.IsNotExist(err) {
			return &types.UploadsResponse{Uploads: []types.UploadedFile{}}, nil
		}
		return nil, err
	}

	type fileWithTime struct {
		file    types.UploadedFile
		modTime time.Time
	}
	files := make([]fileWithTime, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		// Skip in-progress reassembly temp files.
		if filepath.Ext(entry.Name()) == ".part" {
			continue
		}
		files = append(files, fileWithTime{
			file: types.UploadedFile{
				Filename:      entry.Name(),
				Size:          info.Size(),
				SizeFormatted: tool.FormatBytes(info.Size()),
				Modified:      info.ModTime().Format("2006-01-02 15:04:05"),
			},
			modTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime.After(files[j].modTime)
	})

	listing := &types.UploadsResponse{
		Uploads:    make([]types.UploadedFile, 0, len(files)),
		TotalFiles: len(files),
	}
	for _, f := range files {
		listing.Uploads = append(listing.Uploads, f.file)
	}
	return listing, nil
}
