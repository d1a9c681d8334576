package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	responseTime = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "response_time",
			Help:    "http response time.",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	totalHttpRequestsToUri = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "total_http_requests_to_uri", Help: "http requests to uri"},
		[]string{"code", "uri", "method"},
	)

	totalHttpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "total_http_requests", Help: "http requests by code and method"},
		[]string{"code", "method"},
	)

	signupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "activity_signups_total", Help: "successful signups per activity"},
		[]string{"activity"},
	)

	unregistrationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "activity_unregistrations_total", Help: "successful unregistrations per activity"},
		[]string{"activity"},
	)
)

func init() {
	prometheus.MustRegister(
		responseTime,
		totalHttpRequestsToUri,
		totalHttpRequests,
		signupsTotal,
		unregistrationsTotal,
	)
}

// ObserveSignup records a successful signup for an activity.
func ObserveSignup(activity string) { signupsTotal.WithLabelValues(activity).Inc() }

// ObserveUnregistration records a successful unregistration.
func ObserveUnregistration(activity string) { unregistrationsTotal.WithLabelValues(activity).Inc() }
