package datetime

import "time"

// DayRange 连续日历日的三组平行序列，下标 i 在三组中描述同一天。
type DayRange struct {
	Timestamps []int64  `json:"date"`  // 当天零点时间戳；今天取当前时间
	Weeks      []string `json:"weeks"` // 星期标签
	Days       []string `json:"day"`   // YYYY-MM-DD
}

// Len 返回覆盖的天数。
func (r DayRange) Len() int {
	return len(r.Timestamps)
}

// LastDays 返回最近 n 天（含今天）的日期列表，n 通常取 7。
//
// n > 0 时从今天往前第 n-1 天的零点开始；n <= 0 时从今天零点偏移 n 天开始。
// 以 86400 秒步进直到当前时间（不含），今天那一项的时间戳替换为当前时间，
// 星期与日期字符串始终取自零点。lang 缺省为中文。
func (c *Calendar) LastDays(n int, lang ...Lang) DayRange {
	l := LangCN
	if len(lang) > 0 {
		l = lang[0]
	}

	current := c.Now()
	today := StartOfDay(current)
	offset := n
	if n > 0 {
		offset = -(n - 1)
	}
	begin := StartOfDay(today.AddDate(0, 0, offset)).Unix()
	nowUnix := current.Unix()
	todayUnix := today.Unix()

	r := DayRange{
		Timestamps: []int64{},
		Weeks:      []string{},
		Days:       []string{},
	}
	for i := begin; i < nowUnix; i += secondsPerDay {
		ts := i
		if i == todayUnix {
			ts = nowUnix
		}
		day := time.Unix(i, 0).In(c.loc)
		r.Timestamps = append(r.Timestamps, ts)
		r.Weeks = append(r.Weeks, weekdayLabel(day.Weekday(), l))
		r.Days = append(r.Days, FormatDate(day))
	}
	return r
}
