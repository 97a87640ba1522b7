package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInviteCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateInviteCode(8)
		require.NoError(t, err)
		assert.Len(t, code, 8)
		assert.Equal(t, strings.ToLower(code), code)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(inviteAlphabet, r), "unexpected rune %q", r)
		}
		seen[code] = true
	}
	assert.Greater(t, len(seen), 45)
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		updated time.Time
		want    string
	}{
		{"seconds", now.Add(-30 * time.Second), "Just now"},
		{"future clock skew", now.Add(10 * time.Second), "Just now"},
		{"minutes", now.Add(-24 * time.Minute), "24 mins ago"},
		{"one hour", now.Add(-60 * time.Minute), "1 hours ago"},
		{"hours", now.Add(-3*time.Hour - 10*time.Minute), "3 hours ago"},
		{"a day", now.Add(-24 * time.Hour), "Yesterday"},
		{"days", now.Add(-72 * time.Hour), "Yesterday"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeAgo(tt.updated, now))
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-02-29 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2024-02-29", FormatDate(d))

	_, err = ParseDate("29/02/2024")
	assert.Error(t, err)
}

func TestDateOfKeepsLocalDay(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	late := time.Date(2024, 5, 1, 23, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), DateOf(late))
}

func TestAvatarColorCycles(t *testing.T) {
	assert.Equal(t, "#10B981", AvatarColor(0))
	assert.Equal(t, "#8B5CF6", AvatarColor(1))
	assert.Equal(t, AvatarColor(0), AvatarColor(len(AvatarPalette)))
}
