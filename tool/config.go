package tool

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/ashokumar06/large-file-recever/types"
)

var (
	ConfigPath    = "config.yaml" // be aware that it can be changed, default to ./config.yaml
	CurrentConfig types.AppConfig
)

func defaultConfig() types.AppConfig {
	return types.AppConfig{
		Port:                 8000,
		UploadDir:            "uploaded_videos",
		StagingDir:           "temp_chunks",
		MaxFileSize:          500 * 1024 * 1024 * 1024, // 500 GiB
		ChunkSize:            128 * 1024 * 1024,        // hint returned to clients
		MaxIdleMinutes:       0,                        // sessions live for the process lifetime
		SweepIntervalMinutes: 10,
	}
}

// LoadConfig reads the YAML config file (writing a default one if absent) and
// applies UPLOAD_* environment overrides on top.
func LoadConfig(path string) (types.AppConfig, error) {
	if path == "" {
		path = ConfigPath
	}
	cfg := defaultConfig()

	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		if writeErr := writeDefaultConfig(path, cfg); writeErr != nil {
			DefaultLogger.Warnf("Failed to write default config file: %v", writeErr)
		}
	case err != nil:
		return cfg, fmt.Errorf("failed to read config file: %v", err)
	case info.IsDir():
		return cfg, fmt.Errorf("config file path is a directory: %s", path)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %v", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %v", err)
		}
	}

	if err := envconfig.Process("upload", &cfg); err != nil {
		return cfg, fmt.Errorf("failed to apply environment overrides: %v", err)
	}

	CurrentConfig = cfg
	return cfg, nil
}

func writeDefaultConfig(path string, cfg types.AppConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
