package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"github.com/ashokumar06/large-file-recever/tool"
)

const (
	defaultQRSize = 200
	maxQRSize     = 512
)

type QRCodeController struct {
	port int
}

func NewQRCodeController(port int) *QRCodeController {
	return &QRCodeController{port: port}
}

// HandleQRCode returns a PNG QR code. Without a data parameter it encodes this
// server's network access URL so other devices can open the uploader directly.
// GET ?size=200x200&data=<url-encoded-content>
func (ctrl *QRCodeController) HandleQRCode(c *gin.Context) {
	data := c.Query("data")
	if data == "" {
		ip := tool.FirstLocalIPv4()
		if ip == "" {
			c.JSON(http.StatusServiceUnavailable, tool.FastReturnError("No network address available"))
			return
		}
		data = "http://" + ip + ":" + strconv.Itoa(ctrl.port)
	}

	size := parseQRSize(c.Query("size"))
	if size <= 0 {
		size = defaultQRSize
	}
	if size > maxQRSize {
		size = maxQRSize
	}

	png, err := qrcode.Encode(data, qrcode.Medium, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, tool.FastReturnError("Failed to encode QR code: "+err.Error()))
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// parseQRSize parses size from "200x200" or "200" and returns the pixel dimension.
func parseQRSize(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if idx := strings.Index(s, "x"); idx > 0 {
		s = strings.TrimSpace(s[:idx])
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
