package types

// AppConfig represents the application configuration loaded from the config
// file, overridable by UPLOAD_* environment variables and CLI flags.
type AppConfig struct {
	Port                 int    `yaml:"port" envconfig:"PORT"`
	UploadDir            string `yaml:"uploadDir" envconfig:"UPLOAD_DIR"`
	StagingDir           string `yaml:"stagingDir" envconfig:"STAGING_DIR"`
	MaxFileSize          int64  `yaml:"maxFileSize" envconfig:"MAX_FILE_SIZE"`
	ChunkSize            int64  `yaml:"chunkSize" envconfig:"CHUNK_SIZE"`
	MaxIdleMinutes       int    `yaml:"maxIdleMinutes" envconfig:"MAX_IDLE_MINUTES"`
	SweepIntervalMinutes int    `yaml:"sweepIntervalMinutes" envconfig:"SWEEP_INTERVAL_MINUTES"`
}
