package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "42s", FormatDuration(42*time.Second))
	assert.Equal(t, "5m 3s", FormatDuration(5*time.Minute+3*time.Second))
	assert.Equal(t, "2h 5m", FormatDuration(2*time.Hour+5*time.Minute+59*time.Second))
	assert.Equal(t, "1s", FormatDuration(-time.Second))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "AAPL", Truncate("AAPL", 10))
	assert.Equal(t, "*AAP...", Truncate("*AAPL*", 4))
	assert.Equal(t, "🟩🟥...", Truncate("🟩🟥🟩", 2))
	assert.Equal(t, "abc", Truncate("abc", 0))
}
