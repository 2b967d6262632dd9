package upload

import (
	"math"
	"time"
)

// Report is the progress payload served to pollers. Field names mirror the
// wire format of the progress endpoint.
type Report struct {
	Filename        string  `json:"filename"`
	ProgressPercent float64 `json:"progress_percent"`
	UploadedSize    int64   `json:"uploaded_size"`
	TotalSize       int64   `json:"total_size"`
	SpeedMbps       float64 `json:"speed_mbps"`
	SpeedMBs        float64 `json:"speed_mb_s"`
	ElapsedTime     float64 `json:"elapsed_time"`
	EtaSeconds      float64 `json:"eta_seconds"`
	ReceivedChunks  int     `json:"received_chunks"`
	TotalChunks     int     `json:"total_chunks"`
	Status          Status  `json:"status"`
}

// ProgressAt derives throughput, percent complete and ETA from a session
// snapshot at the given time. Pure function; all divisions are guarded so a
// just-created session or a zero-size declaration never divides by zero.
func ProgressAt(snap Snapshot, now time.Time) Report {
	elapsed := now.Sub(snap.StartTime).Seconds()

	var speed float64 // bytes per second
	if elapsed > 0 {
		speed = float64(snap.UploadedBytes) / elapsed
	}

	var percent float64
	if snap.TotalSize > 0 {
		percent = float64(snap.UploadedBytes) / float64(snap.TotalSize) * 100
	}

	var eta float64
	if speed > 0 && snap.UploadedBytes < snap.TotalSize {
		eta = float64(snap.TotalSize-snap.UploadedBytes) / speed
	}

	return Report{
		Filename:        snap.Filename,
		ProgressPercent: round2(percent),
		UploadedSize:    snap.UploadedBytes,
		TotalSize:       snap.TotalSize,
		SpeedMbps:       round2(speed * 8 / (1024 * 1024)),
		SpeedMBs:        round2(speed / (1024 * 1024)),
		ElapsedTime:     round2(elapsed),
		EtaSeconds:      round2(eta),
		ReceivedChunks:  snap.ReceivedChunks,
		TotalChunks:     snap.TotalChunks,
		Status:          snap.Status,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
