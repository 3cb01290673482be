package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics содержит все Prometheus метрики сервиса.
// Все методы безопасны для nil-получателя: при выключенных метриках в main
// передаётся nil, и вызовы превращаются в no-op.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dayStatusTotal        *prometheus.CounterVec
	exhaustedSearchTotal  prometheus.Counter
	staleSelectionsTotal  prometheus.Counter
	cacheRequestsTotal    *prometheus.CounterVec
	providerRequestsTotal *prometheus.CounterVec
	providerDuration      prometheus.Histogram
	providerDroppedSlots  prometheus.Counter
	prefetchRunsTotal     *prometheus.CounterVec
}

// New создаёт отдельный registry и регистрирует в нём метрики сервиса
func New(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	labels := prometheus.Labels{"service": serviceName}
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		dayStatusTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "schedule_day_status_total",
			Help:        "Day classifications by resulting status",
			ConstLabels: labels,
		}, []string{"status"}),

		exhaustedSearchTotal: factory.NewCounter(prometheus.CounterOpts{
			Name:        "schedule_working_window_exhausted_total",
			Help:        "Working-day windows resolved with fewer neighbour days than requested",
			ConstLabels: labels,
		}),

		staleSelectionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name:        "schedule_stale_selections_total",
			Help:        "Availability results discarded because a newer selection superseded them",
			ConstLabels: labels,
		}),

		cacheRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "schedule_availability_cache_requests_total",
			Help:        "Availability cache lookups by result (hit, miss, error)",
			ConstLabels: labels,
		}, []string{"result"}),

		providerRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "schedule_provider_requests_total",
			Help:        "Requests to the external availability provider by result",
			ConstLabels: labels,
		}, []string{"result"}),

		providerDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:        "schedule_provider_request_duration_seconds",
			Help:        "Latency of availability provider requests",
			ConstLabels: labels,
			Buckets:     []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),

		providerDroppedSlots: factory.NewCounter(prometheus.CounterOpts{
			Name:        "schedule_provider_dropped_slots_total",
			Help:        "Provider slots dropped because their timestamps could not be parsed",
			ConstLabels: labels,
		}),

		prefetchRunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "schedule_prefetch_runs_total",
			Help:        "Availability cache warm-up runs by result",
			ConstLabels: labels,
		}, []string{"result"}),
	}
}

// Handler HTTP handler для /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry нужен тестам и для регистрации внешних коллекторов
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RegisterDB добавляет метрики пула соединений базы данных
func (m *Metrics) RegisterDB(db *sql.DB, dbName string) {
	if m == nil {
		return
	}
	m.registry.MustRegister(collectors.NewDBStatsCollector(db, dbName))
}

func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) IncDayStatus(status string) {
	if m == nil {
		return
	}
	m.dayStatusTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) IncExhaustedSearch() {
	if m == nil {
		return
	}
	m.exhaustedSearchTotal.Inc()
}

func (m *Metrics) IncStaleSelection() {
	if m == nil {
		return
	}
	m.staleSelectionsTotal.Inc()
}

// IncCacheRequest result: hit, miss, error
func (m *Metrics) IncCacheRequest(result string) {
	if m == nil {
		return
	}
	m.cacheRequestsTotal.WithLabelValues(result).Inc()
}

// ObserveProviderRequest result: ok, error, rate_limited
func (m *Metrics) ObserveProviderRequest(result string, duration time.Duration) {
	if m == nil {
		return
	}
	m.providerRequestsTotal.WithLabelValues(result).Inc()
	m.providerDuration.Observe(duration.Seconds())
}

func (m *Metrics) AddDroppedSlots(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.providerDroppedSlots.Add(float64(n))
}

func (m *Metrics) IncPrefetchRun(result string) {
	if m == nil {
		return
	}
	m.prefetchRunsTotal.WithLabelValues(result).Inc()
}
