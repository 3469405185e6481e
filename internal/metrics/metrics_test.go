package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/admin/stats", "200", 0.5)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/admin/stats", "200"))
	assert.Equal(t, float64(1), count)
	assert.Equal(t, 1, testutil.CollectAndCount(HTTPRequestDuration))
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/kiosk/signup", "201", 0.1)
	RecordHTTPRequest("POST", "/kiosk/signup", "201", 0.2)
	RecordHTTPRequest("POST", "/kiosk/signup", "409", 0.05)

	created := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/kiosk/signup", "201"))
	conflict := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/kiosk/signup", "409"))

	assert.Equal(t, float64(2), created)
	assert.Equal(t, float64(1), conflict)
}

func TestRecordSignupAndRenewal(t *testing.T) {
	SignupsTotal.Reset()
	RenewalsTotal.Reset()

	RecordSignup("monthly")
	RecordSignup("monthly")
	RecordSignup("walkin")
	RecordRenewal("weekly")

	assert.Equal(t, float64(2), testutil.ToFloat64(SignupsTotal.WithLabelValues("monthly")))
	assert.Equal(t, float64(1), testutil.ToFloat64(SignupsTotal.WithLabelValues("walkin")))
	assert.Equal(t, float64(1), testutil.ToFloat64(RenewalsTotal.WithLabelValues("weekly")))
}

func TestRecordPayment(t *testing.T) {
	PaymentsTotal.Reset()
	PaymentAmountCents.Reset()

	RecordPayment("cash", 150000)
	RecordPayment("cash", 50000)
	RecordPayment("gcash", 75000)

	assert.Equal(t, float64(2), testutil.ToFloat64(PaymentsTotal.WithLabelValues("cash")))
	assert.Equal(t, float64(200000), testutil.ToFloat64(PaymentAmountCents.WithLabelValues("cash")))
	assert.Equal(t, float64(75000), testutil.ToFloat64(PaymentAmountCents.WithLabelValues("gcash")))
}

func TestRecordCheckIn(t *testing.T) {
	testCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "frontdesk_checkins_total_test",
			Help: "Total number of check-ins",
		},
	)

	oldCounter := CheckInsTotal
	CheckInsTotal = testCounter
	defer func() { CheckInsTotal = oldCounter }()

	RecordCheckIn()
	RecordCheckIn()

	assert.Equal(t, float64(2), testutil.ToFloat64(testCounter))
}

func TestRecordRejectedCheckIn(t *testing.T) {
	CheckInsRejectedTotal.Reset()

	RecordRejectedCheckIn("frozen")
	RecordRejectedCheckIn("expired")
	RecordRejectedCheckIn("expired")

	assert.Equal(t, float64(1), testutil.ToFloat64(CheckInsRejectedTotal.WithLabelValues("frozen")))
	assert.Equal(t, float64(2), testutil.ToFloat64(CheckInsRejectedTotal.WithLabelValues("expired")))
}

func TestGauges(t *testing.T) {
	MembersByStatus.Reset()

	SetMembersInGym(4)
	assert.Equal(t, float64(4), testutil.ToFloat64(MembersInGym))

	SetMembersInGym(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(MembersInGym))

	SetMemberCounts(7, 3, 1)
	assert.Equal(t, float64(7), testutil.ToFloat64(MembersByStatus.WithLabelValues("active")))
	assert.Equal(t, float64(3), testutil.ToFloat64(MembersByStatus.WithLabelValues("expired")))
	assert.Equal(t, float64(1), testutil.ToFloat64(MembersByStatus.WithLabelValues("frozen")))
}

func TestRecordEventPublishFailure(t *testing.T) {
	before := testutil.ToFloat64(EventPublishFailuresTotal)

	RecordEventPublishFailure()

	assert.Equal(t, before+1, testutil.ToFloat64(EventPublishFailuresTotal))
}
