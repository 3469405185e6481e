package frontdesk

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// CheckedInMembers joins every open session with its member. Sessions whose
// member cannot be resolved are dropped.
func (s *Store) CheckedInMembers() []CheckedInMember {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]CheckedInMember, 0)
	for _, c := range s.checkIns {
		if !c.Open() {
			continue
		}
		i := s.memberIndex(c.MemberID)
		if i < 0 {
			continue
		}
		out = append(out, CheckedInMember{CheckIn: cloneCheckIn(c), Member: s.members[i]})
	}
	return out
}

// TodayVisitCount counts sessions started today, open or closed.
func (s *Store) TodayVisitCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visitsOn(s.dateKey(s.now()))
}

func (s *Store) visitsOn(day string) int {
	n := 0
	for _, c := range s.checkIns {
		if s.dateKey(c.CheckInTime) == day {
			n++
		}
	}
	return n
}

func (s *Store) ActiveCount() int  { return s.countStatus(StatusActive) }
func (s *Store) ExpiredCount() int { return s.countStatus(StatusExpired) }
func (s *Store) FrozenCount() int  { return s.countStatus(StatusFrozen) }

func (s *Store) countStatus(status MemberStatus) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, m := range s.members {
		if m.Status == status {
			n++
		}
	}
	return n
}

func (s *Store) TodayRevenue() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revenueOn(s.dateKey(s.now()))
}

func (s *Store) revenueOn(day string) int64 {
	var total int64
	for _, p := range s.payments {
		if s.dateKey(p.Date) == day {
			total += p.AmountCents
		}
	}
	return total
}

// MonthRevenue sums payments from the 1st of the current month through today.
func (s *Store) MonthRevenue() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(dateLayout)
	today := now.Format(dateLayout)

	var total int64
	for _, p := range s.payments {
		day := s.dateKey(p.Date)
		if day >= first && day <= today {
			total += p.AmountCents
		}
	}
	return total
}

// lastDays returns the date keys of the last n days, oldest first, ending today.
func (s *Store) lastDays(n int) []string {
	if n <= 0 {
		return []string{}
	}
	today := s.today()
	days := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, today.AddDate(0, 0, -i).Format(dateLayout))
	}
	return days
}

func (s *Store) RevenueByDay(days int) []DailyRevenue {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := s.lastDays(days)
	out := make([]DailyRevenue, 0, len(keys))
	for _, day := range keys {
		out = append(out, DailyRevenue{Date: day, AmountCents: s.revenueOn(day)})
	}
	return out
}

func (s *Store) AttendanceByDay(days int) []DailyAttendance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := s.lastDays(days)
	out := make([]DailyAttendance, 0, len(keys))
	for _, day := range keys {
		out = append(out, DailyAttendance{Date: day, Count: s.visitsOn(day)})
	}
	return out
}

func (s *Store) Stats() Stats {
	return Stats{
		CurrentlyInGym:    len(s.CheckedInMembers()),
		VisitsToday:       s.TodayVisitCount(),
		ActiveMembers:     s.ActiveCount(),
		ExpiredMembers:    s.ExpiredCount(),
		FrozenMembers:     s.FrozenCount(),
		TodayRevenueCents: s.TodayRevenue(),
		MonthRevenueCents: s.MonthRevenue(),
	}
}

// SearchMembers matches query against name (case-insensitive) or contact
// number. An empty status matches every status. Results are sorted by name.
func (s *Store) SearchMembers(query string, status MemberStatus) []Member {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Member, 0)
	for _, m := range s.members {
		if status != "" && m.Status != status {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(m.Name), q) && !strings.Contains(m.ContactNumber, q) {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

func (s *Store) ExpiredMembers() []Member {
	return s.SearchMembers("", StatusExpired)
}

// PaymentsForMember returns the member's payments, newest first.
func (s *Store) PaymentsForMember(memberID string) []Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Payment, 0)
	for _, p := range s.payments {
		if p.MemberID == memberID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// ListPayments returns payments newest first, joined with member names and
// narrowed by filter.
func (s *Store) ListPayments(filter PaymentFilter) []PaymentWithMember {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(filter.Query))
	out := make([]PaymentWithMember, 0)
	for _, p := range s.payments {
		if filter.Method != "" && p.Method != filter.Method {
			continue
		}
		row := PaymentWithMember{Payment: p}
		if i := s.memberIndex(p.MemberID); i >= 0 {
			row.MemberName = s.members[i].Name
		}
		if q != "" && !strings.Contains(strings.ToLower(row.MemberName), q) && !strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		out = append(out, row)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// MethodBreakdown totals payments per method, cash first.
func (s *Store) MethodBreakdown() []MethodTotal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []MethodTotal{{Method: MethodCash}, {Method: MethodGCash}}
	for _, p := range s.payments {
		for i := range out {
			if out[i].Method == p.Method {
				out[i].TotalCents += p.AmountCents
				out[i].Count++
			}
		}
	}
	return out
}

// PeakHours groups check-ins by local hour of day, busiest first.
func (s *Store) PeakHours(limit int) []HourCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	loc := s.now().Location()
	counts := make(map[int]int)
	for _, c := range s.checkIns {
		counts[c.CheckInTime.In(loc).Hour()]++
	}

	out := make([]HourCount, 0, len(counts))
	for h, n := range counts {
		out = append(out, HourCount{Hour: h, Label: hourLabel(h), Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Hour < out[j].Hour
	})
	return truncate(out, limit)
}

func hourLabel(h int) string {
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d%s", h12, suffix)
}

// TopRevenueDaysOfMonth groups all payments by day of month, highest total
// first.
func (s *Store) TopRevenueDaysOfMonth(limit int) []DayOfMonthRevenue {
	s.mu.RLock()
	defer s.mu.RUnlock()

	loc := s.now().Location()
	totals := make(map[int]int64)
	for _, p := range s.payments {
		totals[p.Date.In(loc).Day()] += p.AmountCents
	}

	out := make([]DayOfMonthRevenue, 0, len(totals))
	for d, amount := range totals {
		out = append(out, DayOfMonthRevenue{Day: d, AmountCents: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AmountCents != out[j].AmountCents {
			return out[i].AmountCents > out[j].AmountCents
		}
		return out[i].Day < out[j].Day
	})
	return truncate(out, limit)
}

func (s *Store) AverageDailyVisits(days int) float64 {
	data := s.AttendanceByDay(days)
	if len(data) == 0 {
		return 0
	}
	total := 0
	for _, d := range data {
		total += d.Count
	}
	return float64(total) / float64(len(data))
}

func (s *Store) Summary(days int) ReportSummary {
	return ReportSummary{
		Days:               days,
		AverageDailyVisits: s.AverageDailyVisits(days),
		PeakHours:          s.PeakHours(6),
		TopDaysOfMonth:     s.TopRevenueDaysOfMonth(5),
		Methods:            s.MethodBreakdown(),
	}
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
