package datetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayName(t *testing.T) {
	c := newTestCalendar(fixedNow)

	assert.Equal(t, "星期日", c.WeekdayName("2024-01-07", LangCN))
	assert.Equal(t, "Sunday", c.WeekdayName("2024-01-07", LangEN))
	assert.Equal(t, "Sunday", c.WeekdayName("2024-01-07", Lang("jp")))
	assert.Equal(t, "星期六", c.WeekdayName(fixedNow.Unix(), LangCN))
	assert.Equal(t, "星期五", c.WeekdayName("yesterday", LangCN))
	// 1970-01-01 08:00 (UTC+8) 为周四
	assert.Equal(t, "星期四", c.WeekdayName(int64(0), LangCN))
	assert.Empty(t, c.WeekdayName("no such day", LangCN))
}

func TestMonthName(t *testing.T) {
	c := newTestCalendar(fixedNow)

	assert.Equal(t, "Mar.", c.MonthName("2024-03-15", LangEN))
	assert.Equal(t, "3月", c.MonthName("2024-03-15", LangCN))
	assert.Equal(t, "Sept.", c.MonthName("2024-09-01", LangEN))
	assert.Equal(t, "May.", c.MonthName("2024-05-01", "de"))
	assert.Equal(t, "12月", c.MonthName("2024-12-31 23:59:59", LangCN))
	assert.Equal(t, "6月", c.MonthName(fixedNow.Unix(), LangCN))
	assert.Empty(t, c.MonthName(nil, LangCN))
}

func TestMonthNameTables(t *testing.T) {
	for i, want := range []string{"Jan.", "Feb.", "Mar.", "Apr.", "May.", "Jun.", "Jul.", "Aug.", "Sept.", "Oct.", "Nov.", "Dec."} {
		assert.Equal(t, want, enMonths[i])
	}
	assert.Equal(t, "10月", cnMonths[9])
}
