package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/ashokumar06/large-file-recever/api/controllers"
	"github.com/ashokumar06/large-file-recever/api/middlewares"
	"github.com/ashokumar06/large-file-recever/tool"
	"github.com/ashokumar06/large-file-recever/types"
	"github.com/ashokumar06/large-file-recever/upload"
)

// Server is the HTTP API server receiving chunked uploads.
type Server struct {
	cfg       *types.AppConfig
	store     upload.Store
	receiver  *upload.Receiver
	assembler *upload.Assembler
	server    *http.Server
}

func NewServer(cfg *types.AppConfig, store upload.Store, receiver *upload.Receiver, assembler *upload.Assembler) *Server {
	return &Server{
		cfg:       cfg,
		store:     store,
		receiver:  receiver,
		assembler: assembler,
	}
}

func (s *Server) setupRoutes() *gin.Engine {
	if tool.DefaultLogger.GetLevel() == log.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.Default()
	engine.Use(middlewares.AllowAllCORS())
	engine.Use(gin.Recovery())

	uploadCtrl := controllers.NewUploadController(s.store, s.receiver, s.assembler, s.cfg)
	progressCtrl := controllers.NewProgressController(s.store)
	uploadsCtrl := controllers.NewUploadsController(s.cfg.UploadDir)
	statsCtrl := controllers.NewStatsController(s.store, s.cfg.UploadDir)
	qrCtrl := controllers.NewQRCodeController(s.cfg.Port)

	engine.POST("/start-upload", uploadCtrl.HandleStartUpload)
	engine.POST("/upload-chunk/:upload_id", uploadCtrl.HandleUploadChunk)
	engine.POST("/complete-upload/:upload_id", uploadCtrl.HandleCompleteUpload)
	engine.GET("/progress/:upload_id", progressCtrl.HandleProgress)
	engine.GET("/ws/progress/:upload_id", HandleProgressWS(s.store))
	engine.GET("/uploads", uploadsCtrl.HandleListUploads)
	engine.GET("/server-stats", statsCtrl.HandleServerStats)
	engine.GET("/qr", qrCtrl.HandleQRCode)

	return engine
}

// Start blocks serving HTTP until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	engine := s.setupRoutes()
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.Port),
		Handler: engine,
	}
	err := s.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
