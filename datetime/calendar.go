// Package datetime 提供业务时区下的日期时间工具：日边界时间戳、友好时间、
// 近 N 日列表、星期/月份名称以及时间戳校验。
//
// 所有日历运算都在 Calendar 持有的单一时区内完成，"当前时间" 取自 Calendar 的时钟。
// 包级函数委托给进程级默认 Calendar，默认时区为 Asia/Shanghai，可在启动时通过 Init 指定。
package datetime

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
	_ "time/tzdata" // 保证无系统时区库的环境也能加载业务时区

	"github.com/jinzhu/now"

	"github.com/wyfcoding/dateutil/xerrors"
)

const (
	// DefaultTimezone 默认业务时区。
	DefaultTimezone = "Asia/Shanghai"

	// secondsPerDay 固定日长。昨天/明天等偏移按此计算，不感知夏令时。
	secondsPerDay int64 = 86400
)

// Calendar 绑定时区、时钟与日志器，构造后不可变，可并发使用。
type Calendar struct {
	loc    *time.Location
	clock  func() time.Time
	logger *slog.Logger
}

// Option 定义 Calendar 的构造选项。
type Option func(*Calendar)

// WithLocation 指定业务时区，nil 被忽略。
func WithLocation(loc *time.Location) Option {
	return func(c *Calendar) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// WithTimezone 按 IANA 名称指定业务时区，加载失败时保留原时区并记录告警。
func WithTimezone(tz string) Option {
	return func(c *Calendar) {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			c.logger.Warn("datetime: load timezone failed, keep current", "timezone", tz, "current", c.loc.String(), "error", err)
			return
		}
		c.loc = loc
	}
}

// WithClock 替换时钟，测试中用于固定 "当前时间"。
func WithClock(clock func() time.Time) Option {
	return func(c *Calendar) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLogger 指定日志器。
func WithLogger(logger *slog.Logger) Option {
	return func(c *Calendar) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New 创建 Calendar，默认使用 Asia/Shanghai 时区与系统时钟。
func New(opts ...Option) *Calendar {
	c := &Calendar{
		loc:    defaultLocation(),
		clock:  time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func defaultLocation() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Location 返回业务时区。
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Now 返回业务时区下的当前时间。
func (c *Calendar) Now() time.Time {
	return c.clock().In(c.loc)
}

// calendarNow 返回 jinzhu/now 的包装，供日期表达式解析与月/年边界计算使用。
func (c *Calendar) calendarNow(t time.Time) *now.Now {
	cfg := &now.Config{
		WeekStartDay: time.Monday,
		TimeLocation: c.loc,
		TimeFormats:  timeFormats,
	}
	return cfg.With(t.In(c.loc))
}

var (
	defaultCalendar *Calendar
	defaultOnce     sync.Once
	initErr         error
)

// Init 初始化进程级默认 Calendar，应在启动时调用一次，重复调用无效。
// tz 为空时使用 Asia/Shanghai；tz 无法加载时仍以默认时区完成初始化并返回错误。
func Init(tz string, opts ...Option) error {
	defaultOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		loc, err := time.LoadLocation(tz)
		if err != nil {
			initErr = xerrors.Wrap(xerrors.ErrInvalidTimezone, xerrors.ErrInvalidArg, fmt.Sprintf("load timezone %q", tz)).
				WithDetail("%v", err)
			defaultCalendar = New(opts...)
			return
		}
		defaultCalendar = New(append([]Option{WithLocation(loc)}, opts...)...)
	})
	return initErr
}

// MustInit 初始化默认 Calendar，失败时 panic。
func MustInit(tz string, opts ...Option) {
	if err := Init(tz, opts...); err != nil {
		panic(fmt.Sprintf("datetime: failed to initialize timezone %q: %v", tz, err))
	}
}

// Default 返回默认 Calendar，未显式初始化时以 Asia/Shanghai 自动初始化。
func Default() *Calendar {
	_ = Init("")
	return defaultCalendar
}

// Parse 见 Calendar.Parse。
func Parse(value any) (int64, error) {
	return Default().Parse(value)
}

// DayStart 见 Calendar.DayStart。
func DayStart(ref string) (int64, error) {
	return Default().DayStart(ref)
}

// FriendlyDate 见 Calendar.FriendlyDate。
func FriendlyDate(value any, lang Lang) string {
	return Default().FriendlyDate(value, lang)
}

// LastDays 见 Calendar.LastDays。
func LastDays(n int, lang ...Lang) DayRange {
	return Default().LastDays(n, lang...)
}

// WeekdayName 见 Calendar.WeekdayName。
func WeekdayName(value any, lang Lang) string {
	return Default().WeekdayName(value, lang)
}

// MonthName 见 Calendar.MonthName。
func MonthName(value any, lang Lang) string {
	return Default().MonthName(value, lang)
}

// IsTimestamp 见 Calendar.IsTimestamp。
func IsTimestamp(value any) (int64, bool) {
	return Default().IsTimestamp(value)
}
