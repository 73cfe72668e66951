package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the portal:
// request timings, upstream fetch outcomes, memo-cache effectiveness and chat
// fallbacks.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	upstreamFetches *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	chatFallbacks   prometheus.Counter
}

// NewMetricsService registers the portal's Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	upstreamFetches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_fetches_total",
		Help: "NEIS fetches by endpoint and outcome",
	}, []string{"endpoint", "outcome"})

	upstreamLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "upstream_fetch_duration_seconds",
		Help:    "Duration of NEIS fetches",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "upstream_cache_hits_total",
		Help: "Memo cache hits for upstream responses",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "upstream_cache_misses_total",
		Help: "Memo cache misses for upstream responses",
	})

	chatFallbacks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chat_fallbacks_total",
		Help: "Chat replies served from the fixed fallback text",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, upstreamFetches, upstreamLatency, cacheHits, cacheMisses, chatFallbacks, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		upstreamFetches: upstreamFetches,
		upstreamLatency: upstreamLatency,
		cacheHits:       cacheHits,
		cacheMisses:     cacheMisses,
		chatFallbacks:   chatFallbacks,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// ObserveUpstreamFetch records one NEIS call.
func (m *MetricsService) ObserveUpstreamFetch(endpoint, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.upstreamFetches.WithLabelValues(endpoint, outcome).Inc()
	m.upstreamLatency.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordUpstreamCache records a memo cache lookup.
func (m *MetricsService) RecordUpstreamCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.cacheHits.Inc()
	} else {
		m.cacheMisses.Inc()
	}
}

// RecordChatFallback counts a chat reply served from the fixed fallback.
func (m *MetricsService) RecordChatFallback() {
	if m == nil {
		return
	}
	m.chatFallbacks.Inc()
}
