package datetime

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/now"
	"github.com/spf13/cast"

	"github.com/wyfcoding/dateutil/xerrors"
)

var (
	// ErrEmptyTime 输入为空（nil 或空白字符串）。
	ErrEmptyTime = xerrors.ErrTimeEmpty
	// ErrInvalidTime 输入既不是时间戳也不是可识别的日期表达式。
	ErrInvalidTime = xerrors.ErrTimeUnparseable
)

// timeFormats 在 jinzhu/now 默认格式的基础上补充斜杠与中文日期写法。
var timeFormats = append(append([]string{}, now.TimeFormats...),
	"2006/1/2",
	"2006/1/2 15:4",
	"2006/1/2 15:4:5",
	"2006年1月2日",
	"2006年1月2日 15:4",
	"2006年1月2日 15:4:5",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
)

var (
	relativeKeywordRe = regexp.MustCompile(`^(now|today|midnight|noon|yesterday|tomorrow)\b`)
	relativeOffsetRe  = regexp.MustCompile(`([+-]*)\s*(\d+)\s*(secs?|seconds?|mins?|minutes?|hours?|days?|weeks?|fortnights?|months?|years?)\b(\s+ago\b)?`)
)

// Parse 将时间戳、数字字符串或日期表达式统一转换为 epoch 秒。
//
// 数字（含数字字符串与 "@<秒>"）直接视为时间戳，不做日历解释；
// 其余字符串依次尝试相对表达式（today、yesterday、-2 days、3 hours ago 等）
// 与绝对日期（2024-01-07、2024-01-07 10:00、15:04、RFC3339 等），均按业务时区解释。
func (c *Calendar) Parse(value any) (int64, error) {
	t, err := c.ParseTime(value)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

// ParseTime 与 Parse 相同，返回业务时区下的 time.Time。
func (c *Calendar) ParseTime(value any) (time.Time, error) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, invalidTime(value, ErrEmptyTime)
	case time.Time:
		return v.In(c.loc), nil
	case *time.Time:
		if v == nil {
			return time.Time{}, invalidTime(value, ErrEmptyTime)
		}
		return v.In(c.loc), nil
	case string:
		return c.parseString(v)
	case []byte:
		return c.parseString(string(v))
	}

	sec, err := cast.ToInt64E(value)
	if err != nil {
		return time.Time{}, invalidTime(value, ErrInvalidTime)
	}
	return time.Unix(sec, 0).In(c.loc), nil
}

func (c *Calendar) parseString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, invalidTime(s, ErrEmptyTime)
	}

	if sec, ok := parseNumeric(s); ok {
		return time.Unix(sec, 0).In(c.loc), nil
	}
	if rest, found := strings.CutPrefix(s, "@"); found {
		sec, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return time.Time{}, invalidTime(s, ErrInvalidTime)
		}
		return time.Unix(sec, 0).In(c.loc), nil
	}

	current := c.Now()
	if t, ok := parseRelative(strings.ToLower(s), current); ok {
		return t, nil
	}

	t, err := c.calendarNow(current).Parse(s)
	if err != nil {
		return time.Time{}, invalidTime(s, ErrInvalidTime)
	}
	return t.In(c.loc), nil
}

// parseNumeric 识别十进制整数或小数字符串，小数部分截断。
func parseNumeric(s string) (int64, bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, true
	}
	// strconv.ParseFloat 还接受 Inf、NaN 与十六进制，这里只放行十进制写法。
	if strings.Trim(s, "0123456789+-.eE") != "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int64(f), true
}

// parseRelative 解析 "关键字 + 偏移" 形式的相对表达式。
// 关键字缺省时以 current 为基准，此时至少需要一个偏移项。
func parseRelative(expr string, current time.Time) (time.Time, bool) {
	base := current
	rest := expr
	hasKeyword := false
	if kw := relativeKeywordRe.FindString(rest); kw != "" {
		hasKeyword = true
		base = applyKeyword(kw, current)
		rest = rest[len(kw):]
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return base, hasKeyword
	}

	matches := relativeOffsetRe.FindAllStringSubmatchIndex(rest, -1)
	if len(matches) == 0 {
		return time.Time{}, false
	}

	t := base
	pos := 0
	for _, m := range matches {
		// 偏移项之间只允许空白
		if strings.TrimSpace(rest[pos:m[0]]) != "" {
			return time.Time{}, false
		}
		pos = m[1]

		n, err := strconv.Atoi(rest[m[4]:m[5]])
		if err != nil {
			return time.Time{}, false
		}
		if strings.Count(rest[m[2]:m[3]], "-")%2 == 1 {
			n = -n
		}
		if m[8] >= 0 {
			n = -n
		}
		t = shift(t, rest[m[6]:m[7]], n)
	}
	if strings.TrimSpace(rest[pos:]) != "" {
		return time.Time{}, false
	}
	return t, true
}

func applyKeyword(kw string, current time.Time) time.Time {
	y, m, d := current.Date()
	loc := current.Location()
	switch kw {
	case "today", "midnight":
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	case "noon":
		return time.Date(y, m, d, 12, 0, 0, 0, loc)
	case "yesterday":
		return time.Date(y, m, d-1, 0, 0, 0, 0, loc)
	case "tomorrow":
		return time.Date(y, m, d+1, 0, 0, 0, 0, loc)
	default:
		return current
	}
}

func shift(t time.Time, unit string, n int) time.Time {
	switch strings.TrimSuffix(unit, "s") {
	case "sec", "second":
		return t.Add(time.Duration(n) * time.Second)
	case "min", "minute":
		return t.Add(time.Duration(n) * time.Minute)
	case "hour":
		return t.Add(time.Duration(n) * time.Hour)
	case "day":
		return t.AddDate(0, 0, n)
	case "week":
		return t.AddDate(0, 0, 7*n)
	case "fortnight":
		return t.AddDate(0, 0, 14*n)
	case "month":
		return t.AddDate(0, n, 0)
	case "year":
		return t.AddDate(n, 0, 0)
	}
	return t
}

func invalidTime(value any, sentinel *xerrors.Error) error {
	return xerrors.Wrap(sentinel, xerrors.ErrInvalidArg, sentinel.Message).WithContext("value", value)
}
