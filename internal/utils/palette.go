package utils

// AvatarPalette colors leaderboard rows by position, not by member identity.
var AvatarPalette = []string{"#10B981", "#8B5CF6", "#F59E0B", "#EF4444", "#3B82F6", "#EC4899"}

func AvatarColor(position int) string {
	if position < 0 {
		position = -position
	}
	return AvatarPalette[position%len(AvatarPalette)]
}
