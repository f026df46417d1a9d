package metrics

import "github.com/prometheus/client_golang/prometheus"

// BackendMetrics counts calls the portal makes to the REST backend.
type BackendMetrics struct {
	requestsTotal  *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

func NewBackendMetrics(reg prometheus.Registerer) *BackendMetrics {
	m := &BackendMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "careportal",
			Subsystem: "backend",
			Name:      "requests_total",
			Help:      "Total requests sent to the REST backend",
		}, []string{"resource", "method", "outcome"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "careportal",
			Subsystem: "backend",
			Name:      "request_latency_seconds",
			Help:      "Latency of REST backend requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"resource"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.requestLatency)
	return m
}

// ObserveRequest records one backend call. outcome is "ok", "rejected",
// "unauthorized" or "transport".
func (m *BackendMetrics) ObserveRequest(resource, method, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(resource, method, outcome).Inc()
	m.requestLatency.WithLabelValues(resource).Observe(seconds)
}

// ViewMetrics counts view state events of the appointment page.
type ViewMetrics struct {
	staleResponsesTotal *prometheus.CounterVec
	bookingsTotal       *prometheus.CounterVec
}

func NewViewMetrics(reg prometheus.Registerer) *ViewMetrics {
	m := &ViewMetrics{
		staleResponsesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "careportal",
			Subsystem: "view",
			Name:      "stale_responses_total",
			Help:      "Backend responses discarded because a newer request superseded them",
		}, []string{"view"}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "careportal",
			Subsystem: "view",
			Name:      "booking_submissions_total",
			Help:      "Booking submissions by result",
		}, []string{"result"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.staleResponsesTotal, m.bookingsTotal)
	return m
}

func (m *ViewMetrics) ObserveStale(view string) {
	if m == nil {
		return
	}
	m.staleResponsesTotal.WithLabelValues(view).Inc()
}

// ObserveBooking records a submission result: "invalid", "failed" or "booked".
func (m *ViewMetrics) ObserveBooking(result string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(result).Inc()
}

// StaleResponses is the stale response counter of view.
func (m *ViewMetrics) StaleResponses(view string) prometheus.Counter {
	return m.staleResponsesTotal.WithLabelValues(view)
}
