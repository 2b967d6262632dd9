package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/disk"
	"github.com/shirou/gopsutil/mem"

	"github.com/ashokumar06/large-file-recever/tool"
	"github.com/ashokumar06/large-file-recever/types"
	"github.com/ashokumar06/large-file-recever/upload"
)

type StatsController struct {
	store     upload.Store
	uploadDir string
}

func NewStatsController(store upload.Store, uploadDir string) *StatsController {
	return &StatsController{
		store:     store,
		uploadDir: uploadDir,
	}
}

// HandleServerStats reports host resource usage plus upload totals.
func (ctrl *StatsController) HandleServerStats(c *gin.Context) {
	hostname, _ := os.Hostname()
	absUploadDir, err := filepath.Abs(ctrl.uploadDir)
	if err != nil {
		absUploadDir = ctrl.uploadDir
	}

	stats := types.SystemStats{}
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		stats.CPUUsage = fmt.Sprintf("%.1f%%", percents[0])
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		stats.MemoryUsage = fmt.Sprintf("%.1f%%", vm.UsedPercent)
		stats.MemoryAvailable = fmt.Sprintf("%.1f GB", float64(vm.Available)/(1024*1024*1024))
	}
	if du, err := disk.Usage(absUploadDir); err == nil {
		stats.DiskFree = fmt.Sprintf("%.1f GB", float64(du.Free)/(1024*1024*1024))
		stats.DiskUsed = fmt.Sprintf("%.1f GB", float64(du.Used)/(1024*1024*1024))
	}

	totalFiles, totalSize := ctrl.uploadTotals()

	c.JSON(http.StatusOK, types.ServerStatsResponse{
		ServerInfo: types.ServerInfo{
			Hostname:        hostname,
			LocalIP:         tool.FirstLocalIPv4(),
			UploadDirectory: absUploadDir,
		},
		SystemStats: stats,
		UploadStats: types.UploadStats{
			TotalFiles:    totalFiles,
			TotalSize:     fmt.Sprintf("%.2f GB", float64(totalSize)/(1024*1024*1024)),
			ActiveUploads: ctrl.store.Count(),
		},
	})
}

func (ctrl *StatsController) uploadTotals() (int, int64) {
	entries, err := os.ReadDir(ctrl.uploadDir)
	if err != nil {
		return 0, 0
	}
	var count int
	var size int64
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		count++
		size += info.Size()
	}
	return count, size
}
