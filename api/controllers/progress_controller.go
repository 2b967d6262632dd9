package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ashokumar06/large-file-recever/tool"
	"github.com/ashokumar06/large-file-recever/upload"
)

type ProgressController struct {
	store upload.Store
}

func NewProgressController(store upload.Store) *ProgressController {
	return &ProgressController{store: store}
}

// HandleProgress reports real-time throughput, percent complete and ETA for
// one upload session.
func (ctrl *ProgressController) HandleProgress(c *gin.Context) {
	snap, err := ctrl.store.Get(c.Param("upload_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, tool.FastReturnError("Upload not found"))
		return
	}
	c.JSON(http.StatusOK, upload.ProgressAt(snap, time.Now()))
}
