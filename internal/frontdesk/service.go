package frontdesk

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"frontdesk/internal/events"
	"frontdesk/internal/logger"
	"frontdesk/internal/metrics"
)

var (
	ErrMissingFields    = errors.New("missing required fields")
	ErrDuplicateContact = errors.New("a member with that contact number already exists")
	ErrMemberNotActive  = errors.New("membership is not active")
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
)

const publishTimeout = 2 * time.Second

type Service interface {
	Plans() []MembershipPlan
	SignUp(ctx context.Context, req SignUpRequest) (Member, error)
	Renew(ctx context.Context, memberID string, req RenewRequest) (Member, error)
	Freeze(ctx context.Context, memberID string) (Member, error)
	Activate(ctx context.Context, memberID string) (Member, error)
	CheckIn(ctx context.Context, memberID string) (CheckIn, error)
	CheckOut(ctx context.Context, memberID string) error
	RecordPayment(ctx context.Context, req RecordPaymentRequest) (Payment, error)

	SearchMembers(query string, status MemberStatus) []Member
	ExpiredMembers() []Member
	MemberDetail(memberID string) (MemberDetail, error)
	CheckedIn() []CheckedInMember
	Payments(filter PaymentFilter) []PaymentWithMember
	Stats() Stats
	RevenueByDay(days int) []DailyRevenue
	AttendanceByDay(days int) []DailyAttendance
	Summary(days int) ReportSummary
}

type service struct {
	// mu makes check-then-act rules (duplicate contact, active-only
	// check-in) atomic with the store mutation they guard.
	mu        sync.Mutex
	store     *Store
	publisher events.Publisher
	validate  *validator.Validate
}

func NewService(store *Store, publisher events.Publisher) Service {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}

	v := validator.New()
	v.SetTagName("binding")

	s := &service{
		store:     store,
		publisher: publisher,
		validate:  v,
	}
	s.refreshGauges()
	return s
}

func (s *service) Plans() []MembershipPlan {
	return s.store.Plans()
}

func (s *service) SignUp(ctx context.Context, req SignUpRequest) (Member, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.ContactNumber = strings.TrimSpace(req.ContactNumber)
	if err := s.check(req); err != nil {
		return Member{}, err
	}

	s.mu.Lock()
	if _, exists := s.store.FindMemberByContact(req.ContactNumber); exists {
		s.mu.Unlock()
		return Member{}, ErrDuplicateContact
	}
	member, err := s.store.AddMember(req.Name, req.ContactNumber, req.PlanID, req.PaymentMethod)
	s.mu.Unlock()
	if err != nil {
		return Member{}, err
	}

	logger.Info("Member signed up", "member_id", member.ID, "plan", member.PlanID)
	metrics.RecordSignup(string(member.PlanID))
	if plan, ok := s.store.Plan(member.PlanID); ok {
		metrics.RecordPayment(string(req.PaymentMethod), plan.PriceCents)
	}
	s.publish(ctx, events.MemberSignedUp, member.ID, map[string]interface{}{
		"plan_id":        member.PlanID,
		"payment_method": req.PaymentMethod,
	})

	return member, nil
}

func (s *service) Renew(ctx context.Context, memberID string, req RenewRequest) (Member, error) {
	if err := s.check(req); err != nil {
		return Member{}, err
	}

	if err := s.store.RenewMember(memberID, req.PlanID, req.PaymentMethod); err != nil {
		return Member{}, err
	}
	member, ok := s.store.GetMember(memberID)
	if !ok {
		return Member{}, ErrMemberNotFound
	}

	logger.Info("Membership renewed", "member_id", memberID, "plan", req.PlanID)
	metrics.RecordRenewal(string(req.PlanID))
	if plan, ok := s.store.Plan(req.PlanID); ok {
		metrics.RecordPayment(string(req.PaymentMethod), plan.PriceCents)
	}
	s.publish(ctx, events.MemberRenewed, memberID, map[string]interface{}{
		"plan_id":        req.PlanID,
		"payment_method": req.PaymentMethod,
		"end_date":       member.EndDate.Format(dateLayout),
	})

	return member, nil
}

func (s *service) Freeze(ctx context.Context, memberID string) (Member, error) {
	return s.setStatus(ctx, memberID, StatusFrozen)
}

func (s *service) Activate(ctx context.Context, memberID string) (Member, error) {
	return s.setStatus(ctx, memberID, StatusActive)
}

func (s *service) setStatus(ctx context.Context, memberID string, status MemberStatus) (Member, error) {
	if err := s.store.UpdateMemberStatus(memberID, status); err != nil {
		return Member{}, err
	}
	member, ok := s.store.GetMember(memberID)
	if !ok {
		return Member{}, ErrMemberNotFound
	}

	logger.Info("Member status changed", "member_id", memberID, "status", status)
	s.publish(ctx, events.MemberStatusChanged, memberID, map[string]interface{}{"status": status})

	return member, nil
}

// CheckIn admits only active members. A member already inside gets their
// open session back.
func (s *service) CheckIn(ctx context.Context, memberID string) (CheckIn, error) {
	s.mu.Lock()
	member, ok := s.store.GetMember(memberID)
	if !ok {
		s.mu.Unlock()
		return CheckIn{}, ErrMemberNotFound
	}
	if member.Status != StatusActive {
		s.mu.Unlock()
		metrics.RecordRejectedCheckIn(string(member.Status))
		return CheckIn{}, fmt.Errorf("cannot check in: %w (%s)", ErrMemberNotActive, member.Status)
	}
	wasInside := s.store.IsCheckedIn(memberID)
	c, err := s.store.CheckInMember(memberID)
	s.mu.Unlock()
	if err != nil {
		return CheckIn{}, err
	}

	if !wasInside {
		logger.Info("Member checked in", "member_id", memberID, "check_in_id", c.ID)
		metrics.RecordCheckIn()
		s.publish(ctx, events.MemberCheckedIn, memberID, map[string]interface{}{"check_in_id": c.ID})
	}

	return c, nil
}

func (s *service) CheckOut(ctx context.Context, memberID string) error {
	wasInside := s.store.IsCheckedIn(memberID)
	if err := s.store.CheckOutMember(memberID); err != nil {
		return err
	}

	if wasInside {
		logger.Info("Member checked out", "member_id", memberID)
		s.publish(ctx, events.MemberCheckedOut, memberID, nil)
	}
	return nil
}

func (s *service) RecordPayment(ctx context.Context, req RecordPaymentRequest) (Payment, error) {
	req.MemberID = strings.TrimSpace(req.MemberID)
	req.Description = strings.TrimSpace(req.Description)
	if err := s.check(req); err != nil {
		return Payment{}, err
	}

	p, err := s.store.RecordPayment(req.MemberID, req.AmountCents, req.Method, req.Description)
	if err != nil {
		return Payment{}, err
	}

	logger.Info("Payment recorded", "payment_id", p.ID, "member_id", p.MemberID, "amount_cents", p.AmountCents)
	metrics.RecordPayment(string(p.Method), p.AmountCents)
	s.publish(ctx, events.PaymentRecorded, p.MemberID, map[string]interface{}{
		"payment_id":   p.ID,
		"amount_cents": p.AmountCents,
		"method":       p.Method,
	})

	return p, nil
}

func (s *service) SearchMembers(query string, status MemberStatus) []Member {
	return s.store.SearchMembers(query, status)
}

func (s *service) ExpiredMembers() []Member {
	return s.store.ExpiredMembers()
}

func (s *service) MemberDetail(memberID string) (MemberDetail, error) {
	member, ok := s.store.GetMember(memberID)
	if !ok {
		return MemberDetail{}, ErrMemberNotFound
	}

	detail := MemberDetail{
		Member:   member,
		Payments: s.store.PaymentsForMember(memberID),
		InGym:    s.store.IsCheckedIn(memberID),
	}
	if plan, ok := s.store.Plan(member.PlanID); ok {
		detail.Plan = &plan
	}
	return detail, nil
}

func (s *service) CheckedIn() []CheckedInMember {
	return s.store.CheckedInMembers()
}

func (s *service) Payments(filter PaymentFilter) []PaymentWithMember {
	return s.store.ListPayments(filter)
}

func (s *service) Stats() Stats {
	return s.store.Stats()
}

func (s *service) RevenueByDay(days int) []DailyRevenue {
	return s.store.RevenueByDay(days)
}

func (s *service) AttendanceByDay(days int) []DailyAttendance {
	return s.store.AttendanceByDay(days)
}

func (s *service) Summary(days int) ReportSummary {
	return s.store.Summary(days)
}

// check runs the binding tags of a request and maps the first failure onto
// a package error.
func (s *service) check(req interface{}) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	switch {
	case fe.Field() == "AmountCents":
		return ErrInvalidAmount
	case fe.Tag() == "oneof":
		return ErrInvalidPaymentMethod
	default:
		return fmt.Errorf("%w: %s", ErrMissingFields, fe.Field())
	}
}

func (s *service) publish(ctx context.Context, eventType, memberID string, data map[string]interface{}) {
	s.refreshGauges()

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err := s.publisher.Publish(ctx, events.Event{
		Type:       eventType,
		MemberID:   memberID,
		OccurredAt: s.store.Now(),
		Data:       data,
	})
	if err != nil {
		metrics.RecordEventPublishFailure()
		logger.WithError(err).Error("Failed to publish event", "type", eventType, "member_id", memberID)
	}
}

func (s *service) refreshGauges() {
	metrics.SetMembersInGym(len(s.store.CheckedInMembers()))
	metrics.SetMemberCounts(s.store.ActiveCount(), s.store.ExpiredCount(), s.store.FrozenCount())
}
