package utils

import (
	"fmt"
	"time"
)

const NoActivityLabel = "No activity today"

// TimeAgo renders how long ago updated was relative to now, as shown on the
// family leaderboard.
func TimeAgo(updated, now time.Time) string {
	diff := now.Sub(updated)
	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%d mins ago", int(diff/time.Minute))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(diff/time.Hour))
	default:
		return "Yesterday"
	}
}
