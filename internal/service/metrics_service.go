package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Article events tracked by MetricsService.
const (
	ArticleEventCreated   = "created"
	ArticleEventUpdated   = "updated"
	ArticleEventDeleted   = "deleted"
	ArticleEventPublished = "published"
	ArticleEventViewed    = "viewed"
	ArticleEventShared    = "shared"
)

// MetricsService encapsulates Prometheus instrumentation for the API.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	articleEvents   *prometheus.CounterVec
	providerErrors  *prometheus.CounterVec
}

// NewMetricsService registers core Prometheus collectors.
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

	articleEvents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "article_events_total",
		Help: "Article lifecycle and engagement events",
	}, []string{"event"})

	providerErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "article_provider_errors_total",
		Help: "Failed display-value lookups while composing article details",
	}, []string{"provider"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, articleEvents, providerErrors, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		articleEvents:   articleEvents,
		providerErrors:  providerErrors,
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

// RecordArticleEvent counts one article event.
func (m *MetricsService) RecordArticleEvent(event string) {
	if m == nil {
		return
	}
	m.articleEvents.WithLabelValues(event).Inc()
}

// RecordProviderError counts a failed display-value lookup.
func (m *MetricsService) RecordProviderError(provider string) {
	if m == nil {
		return
	}
	m.providerErrors.WithLabelValues(provider).Inc()
}
