package pipeline

import (
	"fmt"
	"os"
)

// Log helpers write to stderr; stdout is reserved for the saved-file paths
// so the harvester stays pipe-friendly.

// warnf writes "WARN: ..." to stderr.
func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "WARN: "+format+"\n", args...)
}

// infof writes "INFO: ..." to stderr.
func infof(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "INFO: "+format+"\n", args...)
}

// truncateString truncates s to maxLen runes, appending "..." when cut.
// Multibyte text is handled correctly.
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
