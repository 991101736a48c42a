package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор прометеевских метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Интеграция с cinema backend
	BackendRequestsTotal *prometheus.CounterVec

	// Доменные метрики
	BulkActionsTotal      *prometheus.CounterVec
	DataIntegrityWarnings prometheus.Counter
	SnapshotCacheResults  *prometheus.CounterVec
	FactsPurgedTotal      prometheus.Counter

	// Пул соединений БД
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec
	DBWaitCount       *prometheus.GaugeVec
}

// New регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		BackendRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "cinema_backend_requests_total",
			Help:        "Total number of requests to the cinema backend",
			ConstLabels: labels,
		}, []string{"operation", "outcome"}),

		BulkActionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "showtime_bulk_actions_total",
			Help:        "Per-showtime outcomes of bulk release/unrelease/delete",
			ConstLabels: labels,
		}, []string{"action", "outcome"}),

		DataIntegrityWarnings: factory.NewCounter(prometheus.CounterOpts{
			Name:        "showtime_data_integrity_warnings_total",
			Help:        "Showtime records skipped because of missing references",
			ConstLabels: labels,
		}),

		SnapshotCacheResults: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "showtime_snapshot_cache_total",
			Help:        "Showtime snapshot cache lookups",
			ConstLabels: labels,
		}, []string{"result"}),

		FactsPurgedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name:        "session_facts_purged_total",
			Help:        "Expired session facts removed by the purge job",
			ConstLabels: labels,
		}),

		DBOpenConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: labels,
		}, []string{"db"}),

		DBInUse: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}, []string{"db"}),

		DBIdle: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: labels,
		}, []string{"db"}),

		DBWaitCount: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}, []string{"db"}),
	}
}

// IncBulkOutcome увеличивает счетчик исхода bulk-операции
func (m *Metrics) IncBulkOutcome(action string, success bool) {
	if m == nil {
		return
	}
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.BulkActionsTotal.WithLabelValues(action, outcome).Inc()
}

// IncDataIntegrityWarning увеличивает счетчик пропущенных записей
func (m *Metrics) IncDataIntegrityWarning() {
	if m == nil {
		return
	}
	m.DataIntegrityWarnings.Inc()
}

// IncSnapshotCache отмечает попадание или промах кэша снапшотов
func (m *Metrics) IncSnapshotCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.SnapshotCacheResults.WithLabelValues(result).Inc()
}

// IncBackendRequest отмечает исход запроса к cinema backend
func (m *Metrics) IncBackendRequest(operation string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.BackendRequestsTotal.WithLabelValues(operation, outcome).Inc()
}

// AddFactsPurged учитывает удалённые просроченные факты сессий
func (m *Metrics) AddFactsPurged(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.FactsPurgedTotal.Add(float64(n))
}
