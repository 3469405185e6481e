// Package seed builds the demo snapshot the front desk starts with. All
// dates are relative to the supplied time so the dashboard always has recent
// activity to show.
package seed

import (
	"fmt"
	"time"

	"frontdesk/internal/frontdesk"
)

type memberRow struct {
	id         string
	name       string
	contact    string
	plan       frontdesk.PlanID
	startAgo   int
	endAgo     int // negative values are days from now
	status     frontdesk.MemberStatus
	createdAgo int
}

type paymentRow struct {
	memberID    string
	amountCents int64
	method      frontdesk.PaymentMethod
	description string
	daysAgo     int
}

var members = []memberRow{
	{"m-1", "Marco Reyes", "09171234567", frontdesk.PlanMonthly, 10, -20, frontdesk.StatusActive, 40},
	{"m-2", "Angela Torres", "09181234567", frontdesk.PlanMonthly, 5, -25, frontdesk.StatusActive, 65},
	{"m-3", "Jared Santos", "09191234567", frontdesk.PlanWeekly, 3, -4, frontdesk.StatusActive, 30},
	{"m-4", "Bea Villanueva", "09201234567", frontdesk.PlanMonthly, 35, 5, frontdesk.StatusExpired, 90},
	{"m-5", "Carlos Mendoza", "09211234567", frontdesk.PlanMonthly, 60, 30, frontdesk.StatusExpired, 120},
	{"m-6", "Diana Cruz", "09221234567", frontdesk.PlanWeekly, 2, -5, frontdesk.StatusActive, 50},
	{"m-7", "Ethan Lim", "09231234567", frontdesk.PlanMonthly, 20, -10, frontdesk.StatusActive, 80},
	{"m-8", "Fiona Garcia", "09241234567", frontdesk.PlanMonthly, 15, -15, frontdesk.StatusFrozen, 100},
	{"m-9", "Gabriel Tan", "09251234567", frontdesk.PlanWalkIn, 0, 0, frontdesk.StatusActive, 0},
	{"m-10", "Hannah Ramos", "09261234567", frontdesk.PlanMonthly, 28, -2, frontdesk.StatusActive, 60},
	{"m-11", "Ivan Flores", "09271234567", frontdesk.PlanMonthly, 45, 15, frontdesk.StatusExpired, 75},
	{"m-12", "Julia Navarro", "09281234567", frontdesk.PlanWeekly, 1, -6, frontdesk.StatusActive, 20},
}

var payments = []paymentRow{
	{"m-1", 150000, frontdesk.MethodGCash, "Monthly renewal", 10},
	{"m-2", 150000, frontdesk.MethodCash, "Monthly renewal", 5},
	{"m-3", 50000, frontdesk.MethodCash, "Weekly membership", 3},
	{"m-4", 150000, frontdesk.MethodGCash, "Monthly renewal", 35},
	{"m-5", 150000, frontdesk.MethodCash, "Monthly renewal", 60},
	{"m-6", 50000, frontdesk.MethodGCash, "Weekly membership", 2},
	{"m-7", 150000, frontdesk.MethodCash, "Monthly renewal", 20},
	{"m-8", 150000, frontdesk.MethodGCash, "Monthly renewal", 15},
	{"m-9", 10000, frontdesk.MethodCash, "Walk-in", 0},
	{"m-10", 150000, frontdesk.MethodCash, "Monthly renewal", 28},
	{"m-11", 150000, frontdesk.MethodGCash, "Monthly renewal", 45},
	{"m-12", 50000, frontdesk.MethodCash, "Weekly membership", 1},
	{"m-1", 150000, frontdesk.MethodCash, "Monthly renewal", 40},
	{"m-2", 150000, frontdesk.MethodGCash, "Monthly renewal", 35},
	{"m-7", 150000, frontdesk.MethodCash, "Monthly renewal", 50},
	{"m-10", 150000, frontdesk.MethodGCash, "Monthly renewal", 58},
}

// Demo returns the demo snapshot as of now. Four members are inside the gym,
// three came and left today and five visited yesterday.
func Demo(now time.Time, plans []frontdesk.MembershipPlan) frontdesk.Snapshot {
	today := startOfDay(now)
	daysAgo := func(n int) time.Time { return today.AddDate(0, 0, -n) }
	hoursAgo := func(h float64) time.Time { return now.Add(-time.Duration(h * float64(time.Hour))) }

	next := 100
	uid := func() string {
		next++
		return fmt.Sprintf("id-%d", next)
	}

	snap := frontdesk.Snapshot{
		Plans:    append([]frontdesk.MembershipPlan(nil), plans...),
		Members:  make([]frontdesk.Member, 0, len(members)),
		Payments: make([]frontdesk.Payment, 0, len(payments)),
	}

	for _, r := range members {
		snap.Members = append(snap.Members, frontdesk.Member{
			ID:            r.id,
			Name:          r.name,
			ContactNumber: r.contact,
			PlanID:        r.plan,
			StartDate:     daysAgo(r.startAgo),
			EndDate:       daysAgo(r.endAgo),
			Status:        r.status,
			CreatedAt:     daysAgo(r.createdAgo),
		})
	}

	for _, r := range payments {
		snap.Payments = append(snap.Payments, frontdesk.Payment{
			ID:          uid(),
			MemberID:    r.memberID,
			AmountCents: r.amountCents,
			Method:      r.method,
			Description: r.description,
			Date:        daysAgo(r.daysAgo),
		})
	}

	open := func(memberID string, inAgo float64) frontdesk.CheckIn {
		return frontdesk.CheckIn{ID: uid(), MemberID: memberID, CheckInTime: hoursAgo(inAgo)}
	}
	closed := func(memberID string, inAgo, outAgo float64) frontdesk.CheckIn {
		out := hoursAgo(outAgo)
		return frontdesk.CheckIn{ID: uid(), MemberID: memberID, CheckInTime: hoursAgo(inAgo), CheckOutTime: &out}
	}

	snap.CheckIns = []frontdesk.CheckIn{
		open("m-1", 1),
		open("m-3", 2),
		open("m-6", 0.5),
		open("m-9", 0.25),
		closed("m-2", 5, 3.5),
		closed("m-7", 6, 4.5),
		closed("m-12", 4, 2.5),
	}
	for _, id := range []string{"m-1", "m-2", "m-6", "m-7", "m-10"} {
		snap.CheckIns = append(snap.CheckIns, closed(id, 24, 23))
	}

	return snap
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
