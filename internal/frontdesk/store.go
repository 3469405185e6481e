package frontdesk

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	ErrMemberNotFound       = errors.New("member not found")
	ErrPlanNotFound         = errors.New("membership plan not found")
	ErrInvalidStatus        = errors.New("invalid member status")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

const (
	idSeed = 1000

	prefixMember  = "m"
	prefixPayment = "p"
	prefixCheckIn = "ci"

	dateLayout = "2006-01-02"
)

// Store is the single owner of members, payments, check-ins and the plan
// catalog. All methods are safe for concurrent use; mutations are serialized.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	nextID   int
	plans    []MembershipPlan
	members  []Member
	payments []Payment
	checkIns []CheckIn
}

func NewStore(snap Snapshot, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}

	s := &Store{
		now:      now,
		nextID:   idSeed,
		plans:    append([]MembershipPlan(nil), snap.Plans...),
		members:  append([]Member(nil), snap.Members...),
		payments: append([]Payment(nil), snap.Payments...),
		checkIns: make([]CheckIn, 0, len(snap.CheckIns)),
	}
	for _, c := range snap.CheckIns {
		s.checkIns = append(s.checkIns, cloneCheckIn(c))
	}

	return s
}

func (s *Store) generateID(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s-%d", prefix, s.nextID)
}

func (s *Store) Now() time.Time {
	return s.now()
}

func (s *Store) today() time.Time {
	return startOfDay(s.now())
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (s *Store) dateKey(t time.Time) string {
	return t.In(s.now().Location()).Format(dateLayout)
}

func (s *Store) memberIndex(id string) int {
	for i := range s.members {
		if s.members[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) Plans() []MembershipPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]MembershipPlan(nil), s.plans...)
}

func (s *Store) Plan(id PlanID) (MembershipPlan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findPlan(s.plans, id)
}

func (s *Store) Members() []Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Member(nil), s.members...)
}

func (s *Store) Payments() []Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Payment(nil), s.payments...)
}

func (s *Store) CheckIns() []CheckIn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]CheckIn, 0, len(s.checkIns))
	for _, c := range s.checkIns {
		out = append(out, cloneCheckIn(c))
	}
	return out
}

// AddMember enrolls a new member under planID and records the signup
// payment. Contact uniqueness is not checked here.
func (s *Store) AddMember(name, contactNumber string, planID PlanID, method PaymentMethod) (Member, error) {
	if !method.Valid() {
		return Member{}, ErrInvalidPaymentMethod
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	plan, ok := findPlan(s.plans, planID)
	if !ok {
		return Member{}, fmt.Errorf("add member: %w", ErrPlanNotFound)
	}

	today := s.today()
	member := Member{
		ID:            s.generateID(prefixMember),
		Name:          name,
		ContactNumber: contactNumber,
		PlanID:        plan.ID,
		StartDate:     today,
		EndDate:       today.AddDate(0, 0, plan.DurationDays),
		Status:        StatusActive,
		CreatedAt:     today,
	}
	s.members = append(s.members, member)

	s.payments = append(s.payments, Payment{
		ID:          s.generateID(prefixPayment),
		MemberID:    member.ID,
		AmountCents: plan.PriceCents,
		Method:      method,
		Description: "New signup - " + plan.Name,
		Date:        today,
	})

	return member, nil
}

// RenewMember restarts the member's validity window under planID and always
// reactivates them, whatever their previous status.
func (s *Store) RenewMember(memberID string, planID PlanID, method PaymentMethod) error {
	if !method.Valid() {
		return ErrInvalidPaymentMethod
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	plan, ok := findPlan(s.plans, planID)
	if !ok {
		return fmt.Errorf("renew member %s: %w", memberID, ErrPlanNotFound)
	}
	i := s.memberIndex(memberID)
	if i < 0 {
		return fmt.Errorf("renew member %s: %w", memberID, ErrMemberNotFound)
	}

	today := s.today()
	m := &s.members[i]
	m.PlanID = plan.ID
	m.StartDate = today
	m.EndDate = today.AddDate(0, 0, plan.DurationDays)
	m.Status = StatusActive

	s.payments = append(s.payments, Payment{
		ID:          s.generateID(prefixPayment),
		MemberID:    memberID,
		AmountCents: plan.PriceCents,
		Method:      method,
		Description: "Renewal - " + plan.Name,
		Date:        today,
	})

	return nil
}

// UpdateMemberStatus sets the status with no transition rules and no payment.
func (s *Store) UpdateMemberStatus(memberID string, status MemberStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.memberIndex(memberID)
	if i < 0 {
		return fmt.Errorf("update status of %s: %w", memberID, ErrMemberNotFound)
	}
	s.members[i].Status = status
	return nil
}

func (s *Store) GetMember(id string) (Member, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.memberIndex(id)
	if i < 0 {
		return Member{}, false
	}
	return s.members[i], true
}

func (s *Store) FindMemberByContact(contact string) (Member, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.members {
		if m.ContactNumber == contact {
			return m, true
		}
	}
	return Member{}, false
}

// CheckInMember opens a session for the member. It is a no-op when one is
// already open. Member status is not checked here.
func (s *Store) CheckInMember(memberID string) (CheckIn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.memberIndex(memberID) < 0 {
		return CheckIn{}, fmt.Errorf("check in %s: %w", memberID, ErrMemberNotFound)
	}
	if c, ok := s.openCheckIn(memberID); ok {
		return cloneCheckIn(c), nil
	}

	c := CheckIn{
		ID:          s.generateID(prefixCheckIn),
		MemberID:    memberID,
		CheckInTime: s.now(),
	}
	s.checkIns = append(s.checkIns, c)
	return c, nil
}

// CheckOutMember closes every open session of the member.
func (s *Store) CheckOutMember(memberID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.memberIndex(memberID) < 0 {
		return fmt.Errorf("check out %s: %w", memberID, ErrMemberNotFound)
	}

	now := s.now()
	for i := range s.checkIns {
		c := &s.checkIns[i]
		if c.MemberID == memberID && c.Open() {
			out := now
			c.CheckOutTime = &out
		}
	}
	return nil
}

func (s *Store) IsCheckedIn(memberID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.openCheckIn(memberID)
	return ok
}

func (s *Store) GetCurrentCheckIn(memberID string) (CheckIn, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.openCheckIn(memberID)
	if !ok {
		return CheckIn{}, false
	}
	return cloneCheckIn(c), true
}

func (s *Store) openCheckIn(memberID string) (CheckIn, bool) {
	for _, c := range s.checkIns {
		if c.MemberID == memberID && c.Open() {
			return c, true
		}
	}
	return CheckIn{}, false
}

// RecordPayment appends a payment dated today. Amount and description are
// taken as given.
func (s *Store) RecordPayment(memberID string, amountCents int64, method PaymentMethod, description string) (Payment, error) {
	if !method.Valid() {
		return Payment{}, ErrInvalidPaymentMethod
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.memberIndex(memberID) < 0 {
		return Payment{}, fmt.Errorf("record payment for %s: %w", memberID, ErrMemberNotFound)
	}

	p := Payment{
		ID:          s.generateID(prefixPayment),
		MemberID:    memberID,
		AmountCents: amountCents,
		Method:      method,
		Description: description,
		Date:        s.today(),
	}
	s.payments = append(s.payments, p)
	return p, nil
}

func cloneCheckIn(c CheckIn) CheckIn {
	if c.CheckOutTime != nil {
		out := *c.CheckOutTime
		c.CheckOutTime = &out
	}
	return c
}
