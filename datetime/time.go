package datetime

import "time"

const (
	// DateTimeLayout 标准日期时间格式 "YYYY-MM-DD HH:MM:SS"。
	DateTimeLayout = "2006-01-02 15:04:05"
	// DateLayout 标准日期格式 "YYYY-MM-DD"。
	DateLayout = "2006-01-02"
	// ClockLayout 24 小时制时分 "HH:MM"。
	ClockLayout = "15:04"
)

// FormatTime 将时间格式化为标准字符串 "YYYY-MM-DD HH:MM:SS"。
// t: 待格式化的时间对象，按其自身时区输出。
// 返回格式化后的时间字符串。
func FormatTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// FormatDate 将时间格式化为标准日期字符串 "YYYY-MM-DD"。
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDateTimeIn 在指定时区内解析 "YYYY-MM-DD HH:MM:SS"。
// loc 为 nil 时按 UTC 解析。
func ParseDateTimeIn(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateTimeLayout, s, loc)
}

// ParseDateIn 在指定时区内解析 "YYYY-MM-DD"，结果为当地零点。
func ParseDateIn(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout, s, loc)
}

// StartOfDay 获取给定时间 t 所在天的开始时间（即当天00:00:00），保留 t 的时区。
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay 获取给定时间 t 所在天的结束时间（即当天23:59:59.999999999）。
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

var (
	// customHolidays 维护了特定年份的法定节假日列表 (格式: YYYY-MM-DD)。
	customHolidays = map[string]bool{
		"2024-01-01": true, "2024-02-10": true, "2024-05-01": true,
	}
	// customWorkdays 维护了因节假日调休而需要补班的特殊工作日。
	customWorkdays = map[string]bool{
		"2024-02-04": true, "2024-02-18": true,
	}
)

// IsHoliday 判断给定日期是否为节假日。
// 综合考虑法定节假日配置与补班调休逻辑，日期按 t 自身的时区取值。
func IsHoliday(t time.Time) bool {
	dateStr := FormatDate(t)

	if customHolidays[dateStr] {
		return true
	}

	if customWorkdays[dateStr] {
		return false
	}

	weekday := t.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}
