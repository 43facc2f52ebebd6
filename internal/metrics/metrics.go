package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "lawcrusade", Name: "rate_limit_allowed_total", Help: "Requests admitted by the rate limiter."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "lawcrusade", Name: "rate_limit_rejected_total", Help: "Requests rejected by the rate limiter."},
		[]string{"limiter"},
	)
	QueryDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{Namespace: "lawcrusade", Name: "db_query_duration_seconds", Help: "Wall-clock time spent in database calls."},
	)
	QueryFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "lawcrusade", Name: "db_query_failures_total", Help: "Database calls that returned an error."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(QueryDuration)
	reg.MustRegister(QueryFailures)
}
