package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the interface handlers and usecases record business events on.
type Recorder interface {
	RecordRegistration()
	RecordVerification(success bool)
	RecordLogin(success bool)
	RecordEnrollment()
	RecordReview()
	RecordHTTPStatus(statusCode int)
}

// Collector collects Prometheus metrics for the service.
type Collector struct {
	registry      *prometheus.Registry
	registrations prometheus.Counter
	verifications *prometheus.CounterVec
	logins        *prometheus.CounterVec
	enrollments   prometheus.Counter
	reviews       prometheus.Counter
	httpStatus    *prometheus.CounterVec
}

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "educonnect_registrations_total",
			Help: "Total registration attempts that created a reservation",
		}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "educonnect_verifications_total",
			Help: "Total phone verification attempts by result",
		}, []string{"result"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "educonnect_logins_total",
			Help: "Total login attempts by result",
		}, []string{"result"}),
		enrollments: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "educonnect_enrollments_total",
			Help: "Total successful course enrollments",
		}),
		reviews: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "educonnect_reviews_total",
			Help: "Total reviews created",
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "educonnect_http_status_total",
			Help: "HTTP responses by status code",
		}, []string{"status_code"}),
	}

	c.registry.MustRegister(
		c.registrations,
		c.verifications,
		c.logins,
		c.enrollments,
		c.reviews,
		c.httpStatus,
	)
	return c
}

func (c *Collector) RecordRegistration() {
	c.registrations.Inc()
}

func (c *Collector) RecordVerification(success bool) {
	c.verifications.WithLabelValues(resultLabel(success)).Inc()
}

func (c *Collector) RecordLogin(success bool) {
	c.logins.WithLabelValues(resultLabel(success)).Inc()
}

func (c *Collector) RecordEnrollment() {
	c.enrollments.Inc()
}

func (c *Collector) RecordReview() {
	c.reviews.Inc()
}

func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Handler returns the HTTP handler exposing the collected metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func resultLabel(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
