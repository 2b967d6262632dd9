package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/ashokumar06/large-file-recever/tool"
	"github.com/ashokumar06/large-file-recever/upload"
)

var progressUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS is already wide open for the upload API
	},
}

// progressPushInterval caps how often a report is pushed to one client.
const progressPushInterval = 200 * time.Millisecond

// HandleProgressWS upgrades the request to WebSocket and streams progress
// reports until the upload completes or the client goes away.
func HandleProgressWS(store upload.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		uploadID := c.Param("upload_id")
		if _, err := store.Get(uploadID); err != nil {
			c.JSON(http.StatusNotFound, tool.FastReturnError("Upload not found"))
			return
		}

		conn, err := progressUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		limiter := rate.NewLimiter(rate.Every(progressPushInterval), 1)
		ctx := c.Request.Context()
		for {
			if err := limiter.Wait(ctx); err != nil {
				return
			}
			snap, err := store.Get(uploadID)
			if err != nil {
				// Session evicted mid-watch.
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "session removed"),
					time.Now().Add(time.Second))
				return
			}
			report := upload.ProgressAt(snap, time.Now())
			if err := conn.WriteJSON(report); err != nil {
				return
			}
			if report.Status == upload.StatusCompleted {
				return
			}
		}
	}
}
