package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfcoding/dateutil/datetime"
)

// 2024-06-15 14:30:00 +08:00，周六
var fixedNow = time.Unix(1718433000, 0)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(datetime.WithClock(func() time.Time { return fixedNow }))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestDayStartCommand(t *testing.T) {
	out, err := run(t, "daystart", "today")
	require.NoError(t, err)
	assert.Equal(t, "1718380800", out)

	out, err = run(t, "daystart", "month_first")
	require.NoError(t, err)
	assert.Equal(t, "1717171200", out)

	out, err = run(t, "--tz", "UTC", "daystart", "today")
	require.NoError(t, err)
	assert.Equal(t, "1718409600", out)

	_, err = run(t, "daystart", "whenever")
	require.Error(t, err)
	assert.True(t, errors.Is(err, datetime.ErrInvalidTime))
}

func TestFriendlyCommand(t *testing.T) {
	out, err := run(t, "friendly", "1718432989")
	require.NoError(t, err)
	assert.Equal(t, "11秒前", out)

	out, err = run(t, "--lang", "en", "friendly", "3", "hours", "ago")
	require.NoError(t, err)
	assert.Equal(t, "3 hours ago", out)

	out, err = run(t, "friendly", "0")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = run(t, "friendly", "not", "a", "date")
	require.Error(t, err)
}

func TestLastDaysCommand(t *testing.T) {
	out, err := run(t, "lastdays", "3")
	require.NoError(t, err)

	var got struct {
		Date  []int64  `json:"date"`
		Weeks []string `json:"weeks"`
		Day   []string `json:"day"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"2024-06-13", "2024-06-14", "2024-06-15"}, got.Day)
	assert.Equal(t, []string{"星期四", "星期五", "星期六"}, got.Weeks)
	assert.Equal(t, int64(1718433000), got.Date[2])

	out, err = run(t, "lastdays")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Day, 7, "defaults to config last_days")

	_, err = run(t, "lastdays", "seven")
	require.Error(t, err)
}

func TestLabelCommands(t *testing.T) {
	out, err := run(t, "weekday", "2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, "星期六", out)

	out, err = run(t, "--lang", "en", "weekday", "2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, "Saturday", out)

	out, err = run(t, "month", "2024-09-01")
	require.NoError(t, err)
	assert.Equal(t, "9月", out)

	out, err = run(t, "-l", "en", "month", "2024-09-01")
	require.NoError(t, err)
	assert.Equal(t, "Sept.", out)

	_, err = run(t, "month", "garbage")
	require.Error(t, err)
}

func TestIsTimestampCommand(t *testing.T) {
	out, err := run(t, "istimestamp", "1718433000")
	require.NoError(t, err)
	assert.Equal(t, "1718433000", out)

	out, err = run(t, "istimestamp", "abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotTimestamp))
	assert.Equal(t, "false", out)
}

func TestParseCommand(t *testing.T) {
	out, err := run(t, "parse", "--", "-1", "day")
	require.NoError(t, err)
	assert.Equal(t, "1718346600\t2024-06-14 14:30:00", out)
}

func TestInvalidFlagsRejected(t *testing.T) {
	_, err := run(t, "--tz", "Nowhere/Invalid", "daystart", "today")
	require.Error(t, err)

	_, err = run(t, "--lang", "fr", "daystart", "today")
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dateutil.toml")
	content := `
[datetime]
timezone = "UTC"
default_lang = "en"
last_days = 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out, err := run(t, "--config", path, "config")
	require.NoError(t, err)
	assert.Contains(t, out, `"timezone": "UTC"`)
	assert.Contains(t, out, `"default_lang": "en"`)

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "config")
	require.Error(t, err)
}

func TestMetricsTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dateutil.prom")

	_, err := run(t, "--metrics-textfile", path, "parse", "garbage")
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `dateutil_operations_total{operation="parse",status="invalid"} 1`)
	assert.Contains(t, string(data), `dateutil_build_info{service="dateutil",version="dev"} 1`)
}
