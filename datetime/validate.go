package datetime

import (
	"strings"
	"time"

	"github.com/spf13/cast"
)

// roundTripLayout 校验时间戳所用的固定格式 "MM-DD-YYYY HH:MM:SS"。
const roundTripLayout = "01-02-2006 15:04:05"

// IsTimestamp 判断 value 是否为 "真实" 时间戳：按业务时区格式化为固定格式后再解析回来，
// 结果与原值一致时返回 (原值, true)，否则返回 (0, false)。
// 这不是范围或类型检查，年份超出 0000~9999 的值无法完成往返。
func (c *Calendar) IsTimestamp(value any) (int64, bool) {
	v, ok := toInt64(value)
	if !ok {
		return 0, false
	}

	formatted := time.Unix(v, 0).In(c.loc).Format(roundTripLayout)
	parsed, err := time.ParseInLocation(roundTripLayout, formatted, c.loc)
	if err != nil || parsed.Unix() != v {
		return 0, false
	}
	return v, true
}

func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case string:
		return parseNumeric(strings.TrimSpace(v))
	}
	i, err := cast.ToInt64E(value)
	if err != nil {
		return 0, false
	}
	return i, true
}
