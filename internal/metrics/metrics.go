package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frontdesk_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "frontdesk_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SignupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frontdesk_signups_total",
			Help: "Total number of member signups",
		},
		[]string{"plan"},
	)

	RenewalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frontdesk_renewals_total",
			Help: "Total number of membership renewals",
		},
		[]string{"plan"},
	)

	PaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frontdesk_payments_total",
			Help: "Total number of payments recorded",
		},
		[]string{"method"},
	)

	PaymentAmountCents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frontdesk_payment_amount_cents_total",
			Help: "Sum of recorded payment amounts in centavos",
		},
		[]string{"method"},
	)

	CheckInsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "frontdesk_checkins_total",
			Help: "Total number of check-ins",
		},
	)

	CheckInsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frontdesk_checkins_rejected_total",
			Help: "Check-ins refused because the membership is not active",
		},
		[]string{"status"},
	)

	MembersInGym = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "frontdesk_members_in_gym",
			Help: "Number of members currently checked in",
		},
	)

	MembersByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "frontdesk_members",
			Help: "Number of members by status",
		},
		[]string{"status"},
	)

	EventPublishFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "frontdesk_event_publish_failures_total",
			Help: "Activity feed events that could not be published",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordSignup(plan string) {
	SignupsTotal.WithLabelValues(plan).Inc()
}

func RecordRenewal(plan string) {
	RenewalsTotal.WithLabelValues(plan).Inc()
}

func RecordPayment(method string, amountCents int64) {
	PaymentsTotal.WithLabelValues(method).Inc()
	PaymentAmountCents.WithLabelValues(method).Add(float64(amountCents))
}

func RecordCheckIn() {
	CheckInsTotal.Inc()
}

func RecordRejectedCheckIn(status string) {
	CheckInsRejectedTotal.WithLabelValues(status).Inc()
}

func RecordEventPublishFailure() {
	EventPublishFailuresTotal.Inc()
}

func SetMembersInGym(n int) {
	MembersInGym.Set(float64(n))
}

func SetMemberCounts(active, expired, frozen int) {
	MembersByStatus.WithLabelValues("active").Set(float64(active))
	MembersByStatus.WithLabelValues("expired").Set(float64(expired))
	MembersByStatus.WithLabelValues("frozen").Set(float64(frozen))
}
