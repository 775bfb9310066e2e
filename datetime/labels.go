package datetime

// WeekdayName 返回时间对应的星期名称：cn 为 "星期日".."星期六"，其余语言为英文全称。
// 无法解析时返回空字符串。
func (c *Calendar) WeekdayName(value any, lang Lang) string {
	t, err := c.ParseTime(value)
	if err != nil {
		c.logger.Debug("datetime: weekday name skipped unparseable input", "value", value, "error", err)
		return ""
	}
	return weekdayLabel(t.Weekday(), lang)
}

// MonthName 返回时间对应的月份名称：cn 为 "1月".."12月"，其余语言为 "Jan.".."Dec."。
func (c *Calendar) MonthName(value any, lang Lang) string {
	t, err := c.ParseTime(value)
	if err != nil {
		c.logger.Debug("datetime: month name skipped unparseable input", "value", value, "error", err)
		return ""
	}
	return monthLabel(t.Month(), lang)
}
