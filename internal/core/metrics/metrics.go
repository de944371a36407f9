package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dep2p/go-sockprov/internal/util/logger"
	"github.com/dep2p/go-sockprov/pkg/types"
)

var log = logger.Logger("metrics")

// 发现结果标签
const (
	ResultOK              = "ok"
	ResultNoData          = "no_data"
	ResultInvalidArgument = "invalid_argument"
	ResultError           = "error"
)

// Metrics provider 指标集合
type Metrics struct {
	getInfo         *prometheus.CounterVec
	getInfoDuration prometheus.Histogram
	descriptors     *prometheus.CounterVec
	fabrics         prometheus.Gauge
	domains         prometheus.Gauge
}

// New 创建指标并注册到 reg
//
// reg 为 nil 时只创建不注册。
func New(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		getInfo: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "getinfo_total",
			Help:      "Number of discovery calls by result.",
		}, []string{"result"}),
		getInfoDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "getinfo_duration_seconds",
			Help:      "Latency of discovery calls.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		descriptors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "descriptors_total",
			Help:      "Number of info descriptors returned by endpoint type.",
		}, []string{"ep_type"}),
		fabrics: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "open_fabrics",
			Help:      "Number of registered fabrics.",
		}),
		domains: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "open_domains",
			Help:      "Number of registered domains.",
		}),
	}

	if reg != nil {
		for _, c := range m.Collectors() {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
		log.Debug("指标已注册", "namespace", namespace)
	}
	return m, nil
}

// Collectors 返回全部收集器
func (m *Metrics) Collectors() []prometheus.Collector {
	if m == nil {
		return nil
	}
	return []prometheus.Collector{m.getInfo, m.getInfoDuration, m.descriptors, m.fabrics, m.domains}
}

// ResultLabel 将发现错误映射为结果标签
func ResultLabel(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, types.ErrNoData):
		return ResultNoData
	case errors.Is(err, types.ErrInvalidArgument):
		return ResultInvalidArgument
	default:
		return ResultError
	}
}

// ObserveGetInfo 记录一次发现调用
func (m *Metrics) ObserveGetInfo(err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.getInfo.WithLabelValues(ResultLabel(err)).Inc()
	m.getInfoDuration.Observe(elapsed.Seconds())
}

// AddDescriptors 记录返回的描述符
func (m *Metrics) AddDescriptors(infos []*types.Info) {
	if m == nil {
		return
	}
	for _, info := range infos {
		m.descriptors.WithLabelValues(info.EndpointType().String()).Inc()
	}
}

// FabricOpened 记录 fabric 注册
func (m *Metrics) FabricOpened() {
	if m != nil {
		m.fabrics.Inc()
	}
}

// FabricClosed 记录 fabric 注销
func (m *Metrics) FabricClosed() {
	if m != nil {
		m.fabrics.Dec()
	}
}

// DomainOpened 记录 domain 注册
func (m *Metrics) DomainOpened() {
	if m != nil {
		m.domains.Inc()
	}
}

// DomainClosed 记录 domain 注销
func (m *Metrics) DomainClosed() {
	if m != nil {
		m.domains.Dec()
	}
}
