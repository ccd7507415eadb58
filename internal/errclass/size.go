package errclass

import "fmt"

// FormatFileSize formats a byte count as a human-readable string
// (e.g. "500 B", "1.5 MB"). Zero and negative sizes format as "0 B".
func FormatFileSize(sizeBytes int64) string {
	if sizeBytes <= 0 {
		return "0 B"
	}
	if sizeBytes < 1024 {
		return fmt.Sprintf("%d B", sizeBytes)
	}

	size := float64(sizeBytes)
	for _, unit := range []string{"KB", "MB", "GB"} {
		size /= 1024
		if size < 1024 || unit == "GB" {
			return fmt.Sprintf("%.1f %s", size, unit)
		}
	}
	return fmt.Sprintf("%.1f GB", size)
}
