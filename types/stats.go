package types

// ServerStatsResponse is the GET /server-stats payload.
type ServerStatsResponse struct {
	ServerInfo  ServerInfo  `json:"server_info"`
	SystemStats SystemStats `json:"system_stats"`
	UploadStats UploadStats `json:"upload_stats"`
}

type ServerInfo struct {
	Hostname        string `json:"hostname"`
	LocalIP         string `json:"local_ip"`
	UploadDirectory string `json:"upload_directory"`
}

type SystemStats struct {
	CPUUsage        string `json:"cpu_usage"`
	MemoryUsage     string `json:"memory_usage"`
	MemoryAvailable string `json:"memory_available"`
	DiskFree        string `json:"disk_free"`
	DiskUsed        string `json:"disk_used"`
}

type UploadStats struct {
	TotalFiles    int    `json:"total_files"`
	TotalSize     string `json:"total_size"`
	ActiveUploads int    `json:"active_uploads"`
}
