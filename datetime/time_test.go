package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayBounds(t *testing.T) {
	start := StartOfDay(fixedNow)
	end := EndOfDay(fixedNow)

	assert.Equal(t, "2024-06-15 00:00:00", FormatTime(start))
	assert.Equal(t, "2024-06-15 23:59:59", FormatTime(end))
	assert.Equal(t, shanghai, start.Location())
	assert.Equal(t, time.Duration(24*time.Hour-time.Nanosecond), end.Sub(start))
}

func TestParseDateIn(t *testing.T) {
	d, err := ParseDateIn("2024-06-15", shanghai)
	require.NoError(t, err)
	assert.Equal(t, StartOfDay(fixedNow).Unix(), d.Unix())

	dt, err := ParseDateTimeIn("2024-06-15 14:30:00", shanghai)
	require.NoError(t, err)
	assert.True(t, dt.Equal(fixedNow))

	utc, err := ParseDateIn("2024-06-15", nil)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, utc.Location())

	_, err = ParseDateIn("15/06/2024", shanghai)
	assert.Error(t, err)
}

func TestIsHoliday(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2024-01-01", true},  // 元旦，周一
		{"2024-02-04", false}, // 补班，周日
		{"2024-06-15", true},  // 周六
		{"2024-06-17", false}, // 周一
	}
	for _, tt := range tests {
		d, err := ParseDateIn(tt.date, shanghai)
		require.NoError(t, err)
		assert.Equal(t, tt.want, IsHoliday(d), tt.date)
	}
}
