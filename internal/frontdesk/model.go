package frontdesk

import "time"

type PlanID string

type MemberStatus string

type PaymentMethod string

const (
	StatusActive  MemberStatus = "active"
	StatusExpired MemberStatus = "expired"
	StatusFrozen  MemberStatus = "frozen"

	MethodCash  PaymentMethod = "cash"
	MethodGCash PaymentMethod = "gcash"
)

func (s MemberStatus) Valid() bool {
	switch s {
	case StatusActive, StatusExpired, StatusFrozen:
		return true
	}
	return false
}

func (m PaymentMethod) Valid() bool {
	return m == MethodCash || m == MethodGCash
}

// MembershipPlan is a static catalog entry. Prices are in centavos.
type MembershipPlan struct {
	ID           PlanID `json:"id"`
	Name         string `json:"name"`
	PriceCents   int64  `json:"price_cents"`
	DurationDays int    `json:"duration_days"`
}

type Member struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	ContactNumber string       `json:"contact_number"`
	PlanID        PlanID       `json:"plan_id"`
	StartDate     time.Time    `json:"start_date"`
	EndDate       time.Time    `json:"end_date"`
	Status        MemberStatus `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
}

type Payment struct {
	ID          string        `json:"id"`
	MemberID    string        `json:"member_id"`
	AmountCents int64         `json:"amount_cents"`
	Method      PaymentMethod `json:"method"`
	Description string        `json:"description"`
	Date        time.Time     `json:"date"`
}

// CheckIn is one attendance session. A nil CheckOutTime means the member is
// still inside.
type CheckIn struct {
	ID           string     `json:"id"`
	MemberID     string     `json:"member_id"`
	CheckInTime  time.Time  `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time"`
}

func (c CheckIn) Open() bool {
	return c.CheckOutTime == nil
}

type CheckedInMember struct {
	CheckIn
	Member Member `json:"member"`
}

type DailyRevenue struct {
	Date        string `json:"date"`
	AmountCents int64  `json:"amount_cents"`
}

type DailyAttendance struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type MethodTotal struct {
	Method     PaymentMethod `json:"method"`
	TotalCents int64         `json:"total_cents"`
	Count      int           `json:"count"`
}

type HourCount struct {
	Hour  int    `json:"hour"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type DayOfMonthRevenue struct {
	Day         int   `json:"day"`
	AmountCents int64 `json:"amount_cents"`
}

type Stats struct {
	CurrentlyInGym    int   `json:"currently_in_gym"`
	VisitsToday       int   `json:"visits_today"`
	ActiveMembers     int   `json:"active_members"`
	ExpiredMembers    int   `json:"expired_members"`
	FrozenMembers     int   `json:"frozen_members"`
	TodayRevenueCents int64 `json:"today_revenue_cents"`
	MonthRevenueCents int64 `json:"month_revenue_cents"`
}

type PaymentWithMember struct {
	Payment
	MemberName string `json:"member_name,omitempty"`
}

type PaymentFilter struct {
	Method PaymentMethod
	Query  string
}

// Snapshot is the initial state a Store is built from.
type Snapshot struct {
	Plans    []MembershipPlan
	Members  []Member
	Payments []Payment
	CheckIns []CheckIn
}

type SignUpRequest struct {
	Name          string        `json:"name" binding:"required"`
	ContactNumber string        `json:"contact_number" binding:"required"`
	PlanID        PlanID        `json:"plan_id" binding:"required"`
	PaymentMethod PaymentMethod `json:"payment_method" binding:"required,oneof=cash gcash"`
}

type RenewRequest struct {
	PlanID        PlanID        `json:"plan_id" binding:"required"`
	PaymentMethod PaymentMethod `json:"payment_method" binding:"required,oneof=cash gcash"`
}

type RecordPaymentRequest struct {
	MemberID    string        `json:"member_id" binding:"required"`
	AmountCents int64         `json:"amount_cents" binding:"required,gt=0"`
	Method      PaymentMethod `json:"method" binding:"required,oneof=cash gcash"`
	Description string        `json:"description" binding:"required"`
}

type MemberDetail struct {
	Member   Member          `json:"member"`
	Plan     *MembershipPlan `json:"plan,omitempty"`
	Payments []Payment       `json:"payments"`
	InGym    bool            `json:"in_gym"`
}

type ReportSummary struct {
	Days               int                 `json:"days"`
	AverageDailyVisits float64             `json:"average_daily_visits"`
	PeakHours          []HourCount         `json:"peak_hours"`
	TopDaysOfMonth     []DayOfMonthRevenue `json:"top_days_of_month"`
	Methods            []MethodTotal       `json:"methods"`
}
