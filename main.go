package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/ashokumar06/large-file-recever/api"
	"github.com/ashokumar06/large-file-recever/tool"
	"github.com/ashokumar06/large-file-recever/upload"
)

func main() {
	_ = godotenv.Load()
	cfg := tool.SetFlags()
	appCfg, err := tool.LoadConfig(cfg.UseConfigPath)
	if err != nil {
		tool.DefaultLogger.Fatalf("%v", err)
	}
	if cfg.UsePort > 0 {
		appCfg.Port = cfg.UsePort
	}
	if cfg.UseUploadDir != "" {
		appCfg.UploadDir = cfg.UseUploadDir
	}
	if cfg.UseStagingDir != "" {
		appCfg.StagingDir = cfg.UseStagingDir
	}
	if cfg.UseMaxIdleSweep > 0 {
		appCfg.MaxIdleMinutes = cfg.UseMaxIdleSweep
	}
	if cfg.UseSweepInterval > 0 {
		appCfg.SweepIntervalMinutes = cfg.UseSweepInterval
	}

	tool.InitLogger()
	switch strings.ToLower(cfg.Log) {
	case "", "dev":
		tool.DefaultLogger.SetLevel(log.DebugLevel)
	case "prod":
		tool.DefaultLogger.SetLevel(log.InfoLevel)
	case "none":
		tool.DefaultLogger.SetLevel(log.FatalLevel)
	default:
		tool.DefaultLogger.Warnf("Unknown log mode %q, using debug level", cfg.Log)
		tool.DefaultLogger.SetLevel(log.DebugLevel)
	}

	if err := os.MkdirAll(appCfg.UploadDir, 0o755); err != nil {
		tool.DefaultLogger.Fatalf("Failed to create upload directory: %v", err)
	}
	if err := os.MkdirAll(appCfg.StagingDir, 0o755); err != nil {
		tool.DefaultLogger.Fatalf("Failed to create staging directory: %v", err)
	}

	staging := upload.NewStaging(appCfg.StagingDir)
	store := upload.NewMemoryStore(staging)
	receiver := upload.NewReceiver(store, staging)
	assembler := upload.NewAssembler(store, staging, appCfg.UploadDir)

	if appCfg.MaxIdleMinutes > 0 {
		if appCfg.SweepIntervalMinutes <= 0 {
			appCfg.SweepIntervalMinutes = 10
		}
		sweeper := upload.NewSweeper(store, staging,
			time.Duration(appCfg.MaxIdleMinutes)*time.Minute,
			time.Duration(appCfg.SweepIntervalMinutes)*time.Minute)
		go sweeper.Run(context.Background())
		tool.DefaultLogger.Infof("Session sweeper enabled: evicting after %d minutes idle", appCfg.MaxIdleMinutes)
	}

	tool.DefaultLogger.Infof("Upload directory: %s", appCfg.UploadDir)
	tool.DefaultLogger.Infof("Staging directory: %s", appCfg.StagingDir)
	tool.DefaultLogger.Infof("Max file size: %s, chunk size hint: %s",
		tool.FormatBytes(appCfg.MaxFileSize), tool.FormatBytes(appCfg.ChunkSize))
	tool.DefaultLogger.Infof("Local: http://localhost:%d", appCfg.Port)
	if ip := tool.FirstLocalIPv4(); ip != "" {
		tool.DefaultLogger.Infof("Network: http://%s:%d (QR at /qr)", ip, appCfg.Port)
	}

	server := api.NewServer(&appCfg, store, receiver, assembler)
	if err := server.Start(); err != nil {
		tool.DefaultLogger.Fatalf("API server startup failed: %v", err)
	}
}
