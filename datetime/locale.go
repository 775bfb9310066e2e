package datetime

import "time"

// Lang 语言标识。
type Lang string

const (
	LangCN Lang = "cn"
	LangEN Lang = "en"
)

// LocaleKey 友好时间模板的键。
type LocaleKey string

const (
	KeyJustNow            LocaleKey = "just_now"
	KeySecondsAgo         LocaleKey = "seconds_ago"
	KeyMinutesAgo         LocaleKey = "minutes_ago"
	KeyHoursAgo           LocaleKey = "hours_ago"
	KeyYesterday          LocaleKey = "yesterday"
	KeyDayBeforeYesterday LocaleKey = "day_before_yesterday"
	KeyTomorrow           LocaleKey = "tomorrow"
	KeyDayAfterTomorrow   LocaleKey = "day_after_tomorrow"
	KeyMonthDay           LocaleKey = "month_day"
	KeyMonthDayTime       LocaleKey = "month_day_time"
	KeyYearMonthDay       LocaleKey = "year_month_day"
)

// LocaleTable 模板表。计数类模板含一个 %d，时刻类模板含一个 %s（HH:MM），
// 日期类模板为 Go 的时间布局。
type LocaleTable map[LocaleKey]string

var (
	cnLocale = LocaleTable{
		KeyJustNow:            "刚刚",
		KeySecondsAgo:         "%d秒前",
		KeyMinutesAgo:         "%d分钟前",
		KeyHoursAgo:           "%d小时前",
		KeyYesterday:          "昨天%s",
		KeyDayBeforeYesterday: "前天%s",
		KeyTomorrow:           "明天%s",
		KeyDayAfterTomorrow:   "后天%s",
		KeyMonthDay:           "01月02日",
		KeyMonthDayTime:       "01月02日 15:04",
		KeyYearMonthDay:       "2006年01月02日",
	}

	enLocale = LocaleTable{
		KeyJustNow:            "just now",
		KeySecondsAgo:         "%d seconds ago",
		KeyMinutesAgo:         "%d minutes ago",
		KeyHoursAgo:           "%d hours ago",
		KeyYesterday:          "yesterday %s",
		KeyDayBeforeYesterday: "the day before yesterday %s",
		KeyTomorrow:           "tomorrow %s",
		KeyDayAfterTomorrow:   "the day after tomorrow %s",
		KeyMonthDay:           "01-02",
		KeyMonthDayTime:       "01-02 15:04",
		KeyYearMonthDay:       "2006-01-02",
	}

	cnWeekdays = [7]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"}

	cnMonths = [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"}
	enMonths = [12]string{"Jan.", "Feb.", "Mar.", "Apr.", "May.", "Jun.", "Jul.", "Aug.", "Sept.", "Oct.", "Nov.", "Dec."}
)

// Locale 返回语言对应的模板表，未知语言回落到中文。
// 返回的表为共享只读数据，调用方不得修改。
func Locale(lang Lang) LocaleTable {
	switch lang {
	case LangEN:
		return enLocale
	default:
		return cnLocale
	}
}

// weekdayLabel 中文使用 "星期X"，其余语言一律使用英文全称。
func weekdayLabel(w time.Weekday, lang Lang) string {
	if lang == LangCN {
		return cnWeekdays[w]
	}
	return w.String()
}

// monthLabel 中文使用 "N月"，其余语言一律使用英文缩写。
func monthLabel(m time.Month, lang Lang) string {
	if lang == LangCN {
		return cnMonths[m-1]
	}
	return enMonths[m-1]
}
