// Package cli 实现 dateutil 命令行入口，将 datetime 包的各项操作暴露为子命令。
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wyfcoding/dateutil/config"
	"github.com/wyfcoding/dateutil/datetime"
	"github.com/wyfcoding/dateutil/logging"
	"github.com/wyfcoding/dateutil/metrics"
)

const (
	serviceName = "dateutil"
	moduleName  = "cli"
)

// Version 构建时通过 -ldflags "-X" 注入。
var Version = "dev"

// ErrNotTimestamp istimestamp 校验未通过。
var ErrNotTimestamp = errors.New("value does not round-trip as a timestamp")

type app struct {
	configPath  string
	timezone    string
	lang        string
	metricsFile string

	conf     *config.Config
	calendar *datetime.Calendar
	calOpts  []datetime.Option
	metrics  *metrics.Metrics
}

// NewCommand 创建根命令。opts 追加到 Calendar 构造选项之后，测试中用于固定时钟。
func NewCommand(opts ...datetime.Option) *cobra.Command {
	a := &app{calOpts: opts}

	cmd := &cobra.Command{
		Use:           serviceName,
		Short:         "Date/time formatting helpers",
		Version:       Version,
		Long:          `dateutil computes day boundaries, friendly relative times, recent day lists and calendar labels in a fixed business timezone.`,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to TOML config file (default: built-in defaults)")
	cmd.PersistentFlags().StringVar(&a.timezone, "tz", "", "Business timezone, overrides config (e.g. Asia/Shanghai)")
	cmd.PersistentFlags().StringVarP(&a.lang, "lang", "l", "", "Output language: cn or en, overrides config")
	cmd.PersistentFlags().StringVar(&a.metricsFile, "metrics-textfile", "", "Write operation metrics to this file in node_exporter textfile format")

	cmd.AddCommand(
		a.newDayStartCommand(),
		a.newFriendlyCommand(),
		a.newLastDaysCommand(),
		a.newWeekdayCommand(),
		a.newMonthCommand(),
		a.newIsTimestampCommand(),
		a.newParseCommand(),
		a.newConfigCommand(),
	)

	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	conf := config.Default()
	if a.configPath != "" {
		if err := config.Load(a.configPath, conf); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if a.timezone != "" {
		conf.Datetime.Timezone = a.timezone
	}
	if a.lang != "" {
		conf.Datetime.DefaultLang = a.lang
	}
	if err := config.Validate(conf); err != nil {
		return err
	}

	logging.Init(conf.LoggingConfig(serviceName, moduleName))
	logger := logging.Default()

	opts := append([]datetime.Option{
		datetime.WithLogger(logger.Logger),
		datetime.WithTimezone(conf.Datetime.Timezone),
	}, a.calOpts...)

	a.conf = conf
	a.calendar = datetime.New(opts...)
	a.metrics = metrics.NewMetrics(serviceName)
	a.metrics.RegisterBuildInfo(serviceName, Version)
	logger.DebugContext(cmd.Context(), "calendar ready",
		"timezone", a.calendar.Location().String(),
		"lang", conf.Datetime.DefaultLang,
		"command", cmd.Name())
	return nil
}

func (a *app) defaultLang() datetime.Lang {
	return datetime.Lang(a.conf.Datetime.DefaultLang)
}

// observe 为子命令统一记录耗时日志与指标，并在配置了 --metrics-textfile 时写出指标文件。
func (a *app) observe(operation string, run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer logging.LogDuration(cmd.Context(), operation)()
		start := time.Now()
		err := run(cmd, args)
		a.metrics.Observe(operation, time.Since(start), err)
		if writeErr := a.metrics.WriteTextfile(a.metricsFile); writeErr != nil {
			logging.Warn(cmd.Context(), "failed to write metrics textfile", "path", a.metricsFile, "error", writeErr)
		}
		return err
	}
}

// joinArgs 允许不加引号书写多词表达式，如 `dateutil friendly 3 hours ago`。
func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func (a *app) newDayStartCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "daystart <today|yesterday|tomorrow|month_first|year_first|date>",
		Short: "Print the epoch seconds of a day's local midnight",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.observe("daystart", func(cmd *cobra.Command, args []string) error {
			ts, err := a.calendar.DayStart(joinArgs(args))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ts)
			return err
		}),
	}
}

func (a *app) newFriendlyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "friendly <time>",
		Short: "Render a time relative to now, e.g. 3分钟前 / yesterday 14:30",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.observe("friendly", func(cmd *cobra.Command, args []string) error {
			value := joinArgs(args)
			out := a.calendar.FriendlyDate(value, a.defaultLang())
			if out == "" {
				// 区分 "空输入" 与 "无法解析"
				if _, err := a.calendar.Parse(value); err != nil && value != "0" {
					return err
				}
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		}),
	}
}

func (a *app) newLastDaysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lastdays [n]",
		Short: "List the last n days (default from config) as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.observe("lastdays", func(cmd *cobra.Command, args []string) error {
			n := a.conf.Datetime.LastDays
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid day count %q: %w", args[0], err)
				}
				n = v
			}
			data, err := json.MarshalIndent(a.calendar.LastDays(n, a.defaultLang()), "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		}),
	}
}

func (a *app) newWeekdayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "weekday <time>",
		Short: "Print the weekday name of a time",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.observe("weekday", func(cmd *cobra.Command, args []string) error {
			value := joinArgs(args)
			if _, err := a.calendar.Parse(value); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.calendar.WeekdayName(value, a.defaultLang()))
			return err
		}),
	}
}

func (a *app) newMonthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "month <time>",
		Short: "Print the month name of a time",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.observe("month", func(cmd *cobra.Command, args []string) error {
			value := joinArgs(args)
			if _, err := a.calendar.Parse(value); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.calendar.MonthName(value, a.defaultLang()))
			return err
		}),
	}
}

func (a *app) newIsTimestampCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "istimestamp <value>",
		Short: "Check that a value round-trips as a timestamp",
		Args:  cobra.ExactArgs(1),
		RunE: a.observe("istimestamp", func(cmd *cobra.Command, args []string) error {
			v, ok := a.calendar.IsTimestamp(args[0])
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "false")
				return fmt.Errorf("%q: %w", args[0], ErrNotTimestamp)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		}),
	}
}

func (a *app) newParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <time>",
		Short: "Print epoch seconds and the local date-time of an expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.observe("parse", func(cmd *cobra.Command, args []string) error {
			t, err := a.calendar.ParseTime(joinArgs(args))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", t.Unix(), datetime.FormatTime(t))
			return err
		}),
	}
}

func (a *app) newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config.Print(a.conf)
			data, err := json.MarshalIndent(a.conf, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}
