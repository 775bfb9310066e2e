package datetime

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayStart(t *testing.T) {
	c := newTestCalendar(fixedNow)
	midnight := func(y int, m time.Month, d int) int64 {
		return time.Date(y, m, d, 0, 0, 0, 0, shanghai).Unix()
	}

	tests := []struct {
		ref  string
		want int64
	}{
		{RefToday, midnight(2024, 6, 15)},
		{RefYesterday, midnight(2024, 6, 15) - 86400},
		{RefTomorrow, midnight(2024, 6, 15) + 86400},
		{RefMonthFirst, midnight(2024, 6, 1)},
		{RefYearFirst, midnight(2024, 1, 1)},
		{"2024-01-07 15:00", midnight(2024, 1, 7)},
		{"-3 days", midnight(2024, 6, 12)},
		{"1718433000", midnight(2024, 6, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := c.DayStart(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDayStartYearFirstFormatsAsJanuaryFirst(t *testing.T) {
	for _, at := range []time.Time{
		fixedNow,
		time.Date(2025, 1, 1, 0, 0, 0, 0, shanghai),
		time.Date(2025, 12, 31, 23, 59, 59, 0, shanghai),
	} {
		c := newTestCalendar(at)
		got, err := c.DayStart(RefYearFirst)
		require.NoError(t, err)
		assert.Equal(t, time.Unix(got, 0).In(shanghai).Format("2006-01-02 15:04:05"),
			at.Format("2006")+"-01-01 00:00:00")
	}
}

func TestDayStartMatchesParseKeywords(t *testing.T) {
	c := newTestCalendar(fixedNow)
	for _, ref := range []string{RefToday, RefYesterday, RefTomorrow} {
		want, err := c.Parse(ref)
		require.NoError(t, err)
		got, err := c.DayStart(ref)
		require.NoError(t, err)
		assert.Equal(t, want, got, ref)
	}
}

func TestDayStartInvalid(t *testing.T) {
	c := newTestCalendar(fixedNow)
	_, err := c.DayStart("not a day")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTime))
}
