package datetime

// DayStart 支持的引用关键字。
const (
	RefToday      = "today"
	RefYesterday  = "yesterday"
	RefTomorrow   = "tomorrow"
	RefMonthFirst = "month_first"
	RefYearFirst  = "year_first"
)

// DayStart 返回某天零点的时间戳。
//
// today、month_first、year_first 分别取今天、本月 1 日、本年 1 月 1 日的当地零点；
// yesterday、tomorrow 为今天零点 ∓ 86400 秒（固定日长）。
// 其余输入按日期表达式解析后取其所在日零点，解析失败返回错误，由调用方处理。
func (c *Calendar) DayStart(ref string) (int64, error) {
	current := c.Now()
	today := StartOfDay(current).Unix()

	switch ref {
	case RefToday:
		return today, nil
	case RefYesterday:
		return today - secondsPerDay, nil
	case RefTomorrow:
		return today + secondsPerDay, nil
	case RefMonthFirst:
		return c.calendarNow(current).BeginningOfMonth().Unix(), nil
	case RefYearFirst:
		return c.calendarNow(current).BeginningOfYear().Unix(), nil
	}

	t, err := c.ParseTime(ref)
	if err != nil {
		return 0, err
	}
	return StartOfDay(t).Unix(), nil
}
