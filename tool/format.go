package tool

import "fmt"

// FormatBytes renders a byte count for display: GB above one GiB, MB below.
func FormatBytes(n int64) string {
	const (
		mib = 1024 * 1024
		gib = 1024 * mib
	)
	if n > gib {
		return fmt.Sprintf("%.2f GB", float64(n)/float64(gib))
	}
	return fmt.Sprintf("%.2f MB", float64(n)/float64(mib))
}
