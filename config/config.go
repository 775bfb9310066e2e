// Package config 提供了统一的配置加载与管理能力：TOML 文件 + APP_ 前缀环境变量覆盖，
// 加载后校验，并在文件变化时热更新日志级别与回调。
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/wyfcoding/dateutil/logging"
)

// Config 全局顶级配置结构.
type Config struct {
	Version  string         `mapstructure:"version"  toml:"version"  json:"version"`
	Log      LogConfig      `mapstructure:"log"      toml:"log"      json:"log"`
	Datetime DatetimeConfig `mapstructure:"datetime" toml:"datetime" json:"datetime"`
}

// LogConfig 定义日志输出、级别与切割策略.
type LogConfig struct {
	Level      string `mapstructure:"level" toml:"level" json:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format     string `mapstructure:"format" toml:"format" json:"format" validate:"omitempty,oneof=json text"`
	Output     string `mapstructure:"output" toml:"output" json:"output" validate:"omitempty,oneof=stdout stderr file both"`
	File       string `mapstructure:"file" toml:"file" json:"file" validate:"required_if=Output file,required_if=Output both"`
	MaxSize    int    `mapstructure:"max_size" toml:"max_size" json:"max_size" validate:"gte=0"`          // 单个文件最大大小 (MB)。
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" validate:"gte=0"` // 最大备份数。
	MaxAge     int    `mapstructure:"max_age" toml:"max_age" json:"max_age" validate:"gte=0"`             // 最大保留天数。
	Compress   bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}

// DatetimeConfig 定义日期工具的业务时区与默认参数.
type DatetimeConfig struct {
	Timezone    string `mapstructure:"timezone" toml:"timezone" json:"timezone" validate:"required,timezone"`
	DefaultLang string `mapstructure:"default_lang" toml:"default_lang" json:"default_lang" validate:"oneof=cn en"`
	LastDays    int    `mapstructure:"last_days" toml:"last_days" json:"last_days" validate:"min=1,max=366"`
}

// LoggingConfig 转换为 logging 包的配置.
func (c *Config) LoggingConfig(service, module string) logging.Config {
	return logging.Config{
		Service:    service,
		Module:     module,
		Level:      c.Log.Level,
		Format:     c.Log.Format,
		Output:     c.Log.Output,
		File:       c.Log.File,
		MaxSize:    c.Log.MaxSize,
		MaxBackups: c.Log.MaxBackups,
		MaxAge:     c.Log.MaxAge,
		Compress:   c.Log.Compress,
	}
}

// Default 返回内置默认配置，未提供配置文件时使用.
func Default() *Config {
	return &Config{
		Version: "v1",
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			Output:     "stderr",
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     7,
		},
		Datetime: DatetimeConfig{
			Timezone:    "Asia/Shanghai",
			DefaultLang: "cn",
			LastDays:    7,
		},
	}
}

var (
	vInstance = viper.New()
	onReload  []func(*Config)
	reloadMu  sync.Mutex
)

// RegisterReloadHook 注册配置热更新回调。
func RegisterReloadHook(hook func(*Config)) {
	if hook == nil {
		return
	}
	reloadMu.Lock()
	defer reloadMu.Unlock()
	onReload = append(onReload, hook)
}

var validate = validator.New()

// Validate 校验配置结构.
func Validate(conf any) error {
	if err := validate.Struct(conf); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// setDefaults 将默认值注册到 viper，使文件中缺失的键也能被 APP_ 环境变量覆盖.
func setDefaults(conf *Config) {
	vInstance.SetDefault("version", conf.Version)
	vInstance.SetDefault("log.level", conf.Log.Level)
	vInstance.SetDefault("log.format", conf.Log.Format)
	vInstance.SetDefault("log.output", conf.Log.Output)
	vInstance.SetDefault("log.file", conf.Log.File)
	vInstance.SetDefault("log.max_size", conf.Log.MaxSize)
	vInstance.SetDefault("log.max_backups", conf.Log.MaxBackups)
	vInstance.SetDefault("log.max_age", conf.Log.MaxAge)
	vInstance.SetDefault("log.compress", conf.Log.Compress)
	vInstance.SetDefault("datetime.timezone", conf.Datetime.Timezone)
	vInstance.SetDefault("datetime.default_lang", conf.Datetime.DefaultLang)
	vInstance.SetDefault("datetime.last_days", conf.Datetime.LastDays)
}

// Load 读取配置文件并开启热更新.
// conf 需预先填充默认值，文件中缺失的字段保持默认。
func Load(path string, conf *Config) error {
	vInstance.SetConfigFile(path)
	vInstance.SetConfigType("toml")

	vInstance.SetEnvPrefix("APP")
	vInstance.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vInstance.AutomaticEnv()
	setDefaults(conf)

	if err := vInstance.ReadInConfig(); err != nil {
		return fmt.Errorf("read config error: %w", err)
	}

	if err := vInstance.Unmarshal(conf); err != nil {
		return fmt.Errorf("unmarshal config error: %w", err)
	}

	if err := Validate(conf); err != nil {
		return err
	}

	vInstance.OnConfigChange(func(event fsnotify.Event) {
		slog.Info("detecting config change", "file", event.Name)
		const debounceTimeout = 500 * time.Millisecond
		time.Sleep(debounceTimeout)

		next := *conf
		if unmarshalErr := vInstance.Unmarshal(&next); unmarshalErr != nil {
			slog.Error("reload config unmarshal failed", "error", unmarshalErr)
			return
		}
		if validateErr := Validate(&next); validateErr != nil {
			slog.Error("reload config validation failed", "error", validateErr)
			return
		}

		// 业务时区在进程启动时固定，热更新只调整日志级别
		if next.Datetime.Timezone != conf.Datetime.Timezone {
			slog.Warn("timezone change requires restart", "current", conf.Datetime.Timezone, "new", next.Datetime.Timezone)
		}
		logging.SetLevel(next.Log.Level)
		slog.Info("config hot-reloaded and validated successfully")

		reloadMu.Lock()
		hooks := append([]func(*Config){}, onReload...)
		reloadMu.Unlock()
		for _, hook := range hooks {
			hook(&next)
		}
	})
	vInstance.WatchConfig()

	return nil
}

// Print 以 JSON 形式输出当前生效配置.
func Print(conf any) {
	data, err := json.MarshalIndent(conf, "  ", "  ")
	if err != nil {
		slog.Error("failed to marshal config for printing", "error", err)

		return
	}

	slog.Info("Current effective configuration", "config", string(data))
}

// GetViper 返回底层的 Viper 实例.
func GetViper() *viper.Viper {
	return vInstance
}
