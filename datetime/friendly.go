package datetime

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
)

const (
	justNowSeconds     int64 = 10
	showTimeWithinDays int64 = 30
)

// FriendlyDate 将时间渲染为相对当前时间的友好描述，例如 "刚刚"、"3分钟前"、"昨天14:30"。
//
// 判定顺序（diff = 当前时间 - 目标时间，单位秒）：
//   - 未来时间按 floor(diff/86400) 归类：-2 为后天，-1 为明天，其余输出完整日期。
//     负数向下取整，因此未来 1 秒也归为 "明天"；
//   - 0~10 秒为刚刚，60 秒内按秒，1 小时内按分钟；
//   - 今天零点之后按小时，昨天零点之后为昨天；
//   - 前天以 "当前时间 - 48 小时" 为界，不对齐零点；
//   - 同年 30 天内输出月日时分，否则月日；跨年输出年月日。
//
// 空值（nil、""、"0"、数值 0）或无法解析的输入返回空字符串。
func (c *Calendar) FriendlyDate(value any, lang Lang) string {
	if isEmptyValue(value) {
		return ""
	}
	t, err := c.ParseTime(value)
	if err != nil {
		c.logger.Debug("datetime: friendly date skipped unparseable input", "value", value, "error", err)
		return ""
	}
	return friendly(t, c.Now(), Locale(lang))
}

func friendly(t, current time.Time, table LocaleTable) string {
	ts := t.Unix()
	diff := current.Unix() - ts
	clock := t.Format(ClockLayout)

	if diff < 0 {
		switch floorDiv(diff, secondsPerDay) {
		case -2:
			return fmt.Sprintf(table[KeyDayAfterTomorrow], clock)
		case -1:
			return fmt.Sprintf(table[KeyTomorrow], clock)
		default:
			return t.Format(table[KeyYearMonthDay])
		}
	}

	if diff <= justNowSeconds {
		return table[KeyJustNow]
	}
	if diff < 60 {
		return fmt.Sprintf(table[KeySecondsAgo], diff)
	}
	if diff < 3600 {
		return fmt.Sprintf(table[KeyMinutesAgo], diff/60)
	}

	todayStart := StartOfDay(current)
	if !t.Before(todayStart) {
		return fmt.Sprintf(table[KeyHoursAgo], diff/3600)
	}

	yesterdayStart := StartOfDay(current.AddDate(0, 0, -1))
	if !t.Before(yesterdayStart) {
		return fmt.Sprintf(table[KeyYesterday], clock)
	}

	if ts >= current.Unix()-2*secondsPerDay {
		return fmt.Sprintf(table[KeyDayBeforeYesterday], clock)
	}

	if t.Year() == current.Year() {
		if diff < showTimeWithinDays*secondsPerDay {
			return t.Format(table[KeyMonthDayTime])
		}
		return t.Format(table[KeyMonthDay])
	}

	return t.Format(table[KeyYearMonthDay])
}

// floorDiv 向下取整的整数除法，b 必须为正。
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// isEmptyValue 判定 "空" 输入：nil、空串、"0"、false、零时间与数值 0。
func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == "" || v == "0"
	case bool:
		return !v
	case time.Time:
		return v.IsZero()
	case *time.Time:
		return v == nil || v.IsZero()
	}
	f, err := cast.ToFloat64E(value)
	return err == nil && f == 0
}
