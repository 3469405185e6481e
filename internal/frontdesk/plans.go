package frontdesk

const (
	PlanMonthly PlanID = "monthly"
	PlanWeekly  PlanID = "weekly"
	PlanWalkIn  PlanID = "walkin"
)

// DefaultPlans returns the reference catalog.
func DefaultPlans() []MembershipPlan {
	return []MembershipPlan{
		{ID: PlanMonthly, Name: "Monthly", PriceCents: 150000, DurationDays: 30},
		{ID: PlanWeekly, Name: "Weekly", PriceCents: 50000, DurationDays: 7},
		{ID: PlanWalkIn, Name: "Walk-in", PriceCents: 10000, DurationDays: 1},
	}
}

func findPlan(plans []MembershipPlan, id PlanID) (MembershipPlan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return MembershipPlan{}, false
}
