package xerrors

var (
	// ErrTimeEmpty 时间输入为空。
	ErrTimeEmpty = New(ErrInvalidArg, 400101, "empty time input", "time value must not be empty", nil)
	// ErrTimeUnparseable 时间输入无法解析为时间戳或日期表达式。
	ErrTimeUnparseable = New(ErrInvalidArg, 400102, "unparseable time input", "expect epoch seconds or a date/time expression", nil)
	// ErrInvalidTimezone 时区名称无法加载。
	ErrInvalidTimezone = New(ErrInvalidArg, 400103, "invalid timezone", "timezone must be an IANA name such as Asia/Shanghai", nil)
)
