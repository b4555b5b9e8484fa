// Package metrics собирает Prometheus-метрики сервиса.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "picker_service"

// Metrics коллекция метрик сервиса
// Все методы безопасно вызывать на nil-указателе: при выключенных метриках это no-op
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HolidayFetchTotal   *prometheus.CounterVec
	HolidaySetSize      prometheus.Gauge
	PickerEventsTotal   *prometheus.CounterVec
	DayDecisionsTotal   *prometheus.CounterVec
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		HolidayFetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "holiday_fetch_total",
			Help:        "Holiday source fetch attempts by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
		HolidaySetSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "holiday_set_size",
			Help:        "Number of holidays in the loaded set",
			ConstLabels: constLabels,
		}),
		PickerEventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "picker_events_total",
			Help:        "Widget events handled per picker",
			ConstLabels: constLabels,
		}, []string{"picker", "event", "applied"}),
		DayDecisionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "day_decisions_total",
			Help:        "Per-day render decisions by state",
			ConstLabels: constLabels,
		}, []string{"picker", "state"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HolidayFetchTotal,
		m.HolidaySetSize,
		m.PickerEventsTotal,
		m.DayDecisionsTotal,
	)

	return m
}

// Handler возвращает HTTP handler для эндпоинта метрик
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry возвращает реестр метрик
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordHolidayFetch фиксирует результат загрузки праздников
func (m *Metrics) RecordHolidayFetch(success bool, size int) {
	if m == nil {
		return
	}
	result := "success"
	if !success {
		result = "failure"
	}
	m.HolidayFetchTotal.WithLabelValues(result).Inc()
	m.HolidaySetSize.Set(float64(size))
}

// RecordPickerEvent фиксирует обработку события виджета
func (m *Metrics) RecordPickerEvent(pickerID, event string, applied bool) {
	if m == nil {
		return
	}
	m.PickerEventsTotal.WithLabelValues(pickerID, event, strconv.FormatBool(applied)).Inc()
}

// RecordDayDecision фиксирует решение по одной дате календаря
func (m *Metrics) RecordDayDecision(pickerID, state string) {
	if m == nil {
		return
	}
	m.DayDecisionsTotal.WithLabelValues(pickerID, state).Inc()
}
