// Package metrics 封装了基于 Prometheus 的指标注册表，记录日期工具各操作的调用量与耗时。
package metrics

import (
	"errors"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/wyfcoding/dateutil/xerrors"
)

// 操作结果标签取值。
const (
	StatusOK         = "ok"
	StatusEmpty      = "empty"
	StatusInvalid    = "invalid"
	StatusError      = "error"
	defaultNamespace = "dateutil"
)

// Metrics 封装了独立的 Prometheus 注册表及预定义指标。
type Metrics struct {
	registry *prometheus.Registry // 内部独立的 Prometheus 注册中心

	OperationsTotal   *prometheus.CounterVec   // 操作调用总量 (维度: operation, status)
	OperationDuration *prometheus.HistogramVec // 操作耗时分布 (维度: operation)
	BuildInfo         *prometheus.GaugeVec
}

// NewMetrics 初始化并返回一个新的指标采集器。
// 只注册日期操作相关指标，不含 Go 运行时与进程指标。
func NewMetrics(serviceName string) *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.OperationsTotal = m.NewCounterVec(prometheus.CounterOpts{
		Namespace: defaultNamespace,
		Name:      "operations_total",
		Help:      "Total number of date/time operations",
	}, []string{"operation", "status"})

	m.OperationDuration = m.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: defaultNamespace,
		Name:      "operation_duration_seconds",
		Help:      "Date/time operation latency in seconds",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
	}, []string{"operation"})

	slog.Debug("metrics registry initialized", "service", serviceName)
	return m
}

// NewCounterVec 创建并注册一个新的计数器指标。
func (m *Metrics) NewCounterVec(opts prometheus.CounterOpts, labelNames []string) *prometheus.CounterVec {
	cv := prometheus.NewCounterVec(opts, labelNames)
	m.registry.MustRegister(cv)
	return cv
}

// NewGaugeVec 创建并注册一个新的仪表盘指标。
func (m *Metrics) NewGaugeVec(opts prometheus.GaugeOpts, labelNames []string) *prometheus.GaugeVec {
	gv := prometheus.NewGaugeVec(opts, labelNames)
	m.registry.MustRegister(gv)
	return gv
}

// NewHistogramVec 创建并注册一个新的直方图指标。
func (m *Metrics) NewHistogramVec(opts prometheus.HistogramOpts, labelNames []string) *prometheus.HistogramVec {
	hv := prometheus.NewHistogramVec(opts, labelNames)
	m.registry.MustRegister(hv)
	return hv
}

// Observe 记录一次操作的结果与耗时。
func (m *Metrics) Observe(operation string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.OperationsTotal.WithLabelValues(operation, Status(err)).Inc()
	m.OperationDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// Status 将错误归类为指标标签。
func Status(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, xerrors.ErrTimeEmpty):
		return StatusEmpty
	case xerrors.IsType(err, xerrors.ErrInvalidArg):
		return StatusInvalid
	default:
		return StatusError
	}
}

// Gatherer 返回内部注册表，供测试或自定义导出使用。
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile 以 node_exporter textfile collector 格式原子写出全部指标。
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return xerrors.Wrap(err, xerrors.ErrInternal, "write metrics textfile")
	}
	return nil
}
