// Package metrics собирает Prometheus метрики сервиса
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Результаты попытки бронирования для booking_attempts_total
const (
	BookingResultCreated  = "created"
	BookingResultConflict = "conflict"
	BookingResultInvalid  = "invalid"
	BookingResultError    = "error"
)

// Metrics набор метрик сервиса.
// Все методы безопасны для nil-получателя: если метрики выключены, вызовы ничего не делают.
type Metrics struct {
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	bookingAttempts *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec
	dbOpenConns     *prometheus.GaugeVec
	dbInUseConns    *prometheus.GaugeVec
	dbIdleConns     *prometheus.GaugeVec
	dbWaitCount     *prometheus.GaugeVec
}

// New создает метрики и регистрирует их в глобальном registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики в указанном registry (используется в тестах)
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests by route, method and status.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency by route and method.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookingAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_attempts_total",
			Help:        "Booking attempts by outcome.",
			ConstLabels: constLabels,
		}, []string{"result"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency by operation.",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"operation", "status"}),
		dbOpenConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections.",
			ConstLabels: constLabels,
		}, []string{"db"}),
		dbInUseConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use.",
			ConstLabels: constLabels,
		}, []string{"db"}),
		dbIdleConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections.",
			ConstLabels: constLabels,
		}, []string{"db"}),
		dbWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for.",
			ConstLabels: constLabels,
		}, []string{"db"}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.bookingAttempts,
		m.dbQueryDuration,
		m.dbOpenConns,
		m.dbInUseConns,
		m.dbIdleConns,
		m.dbWaitCount,
	)

	return m
}

// ObserveHTTPRequest записывает HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// IncBookingAttempt увеличивает счетчик попыток бронирования
func (m *Metrics) IncBookingAttempt(result string) {
	if m == nil {
		return
	}
	m.bookingAttempts.WithLabelValues(result).Inc()
}

// ObserveDBQuery записывает длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueryDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет метрики пула соединений
func (m *Metrics) SetDBPoolStats(db string, open, inUse, idle int, waitCount int64) {
	if m == nil {
		return
	}
	m.dbOpenConns.WithLabelValues(db).Set(float64(open))
	m.dbInUseConns.WithLabelValues(db).Set(float64(inUse))
	m.dbIdleConns.WithLabelValues(db).Set(float64(idle))
	m.dbWaitCount.WithLabelValues(db).Set(float64(waitCount))
}
