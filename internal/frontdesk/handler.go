package frontdesk

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"frontdesk/internal/api"

	"github.com/gin-gonic/gin"
)

const (
	defaultReportDays = 7
	maxReportDays     = 366
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// @Summary      List membership plans
// @Tags         plans
// @Produce      json
// @Success      200 {array} frontdesk.MembershipPlan
// @Router       /plans [get]
func (h *Handler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Plans())
}

// @Summary      Search members from the kiosk
// @Tags         kiosk
// @Produce      json
// @Param        q query string true "Name or contact number"
// @Success      200 {array} frontdesk.Member
// @Failure      400 {object} api.ErrorResponse
// @Router       /kiosk/members [get]
func (h *Handler) KioskSearch(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "q parameter required"})
		return
	}

	c.JSON(http.StatusOK, h.service.SearchMembers(q, ""))
}

// @Summary      Sign up a new member
// @Tags         kiosk
// @Accept       json
// @Produce      json
// @Param        request body frontdesk.SignUpRequest true "Signup payload"
// @Success      201 {object} frontdesk.Member
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /kiosk/signup [post]
func (h *Handler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.BindError(err))
		return
	}

	member, err := h.service.SignUp(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "Failed to sign up member")
		return
	}

	c.JSON(http.StatusCreated, member)
}

// @Summary      Renew a membership
// @Tags         kiosk
// @Accept       json
// @Produce      json
// @Param        memberID path string true "Member ID"
// @Param        request body frontdesk.RenewRequest true "Renewal payload"
// @Success      200 {object} frontdesk.Member
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /kiosk/members/{memberID}/renew [post]
func (h *Handler) Renew(c *gin.Context) {
	var req RenewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.BindError(err))
		return
	}

	member, err := h.service.Renew(c.Request.Context(), c.Param("memberID"), req)
	if err != nil {
		writeError(c, err, "Failed to renew membership")
		return
	}

	c.JSON(http.StatusOK, member)
}

// @Summary      Check a member in
// @Tags         kiosk
// @Produce      json
// @Param        memberID path string true "Member ID"
// @Success      200 {object} frontdesk.CheckIn
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /kiosk/members/{memberID}/checkin [post]
func (h *Handler) CheckIn(c *gin.Context) {
	checkIn, err := h.service.CheckIn(c.Request.Context(), c.Param("memberID"))
	if err != nil {
		writeError(c, err, "Failed to check in")
		return
	}

	c.JSON(http.StatusOK, checkIn)
}

// @Summary      Check a member out
// @Tags         kiosk,admin
// @Produce      json
// @Param        memberID path string true "Member ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /kiosk/members/{memberID}/checkout [post]
func (h *Handler) CheckOut(c *gin.Context) {
	if err := h.service.CheckOut(c.Request.Context(), c.Param("memberID")); err != nil {
		writeError(c, err, "Failed to check out")
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "checked out"})
}

// @Summary      Members currently in the gym
// @Tags         kiosk,admin
// @Produce      json
// @Success      200 {array} frontdesk.CheckedInMember
// @Router       /kiosk/checked-in [get]
func (h *Handler) ListCheckedIn(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.CheckedIn())
}

// @Summary      Dashboard stats
// @Tags         admin
// @Produce      json
// @Success      200 {object} frontdesk.Stats
// @Router       /admin/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Stats())
}

// @Summary      List members
// @Tags         admin
// @Produce      json
// @Param        q query string false "Name or contact number"
// @Param        status query string false "active, expired or frozen"
// @Success      200 {array} frontdesk.Member
// @Failure      400 {object} api.ErrorResponse
// @Router       /admin/members [get]
func (h *Handler) ListMembers(c *gin.Context) {
	status := MemberStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid status filter"})
		return
	}

	c.JSON(http.StatusOK, h.service.SearchMembers(c.Query("q"), status))
}

// @Summary      Expired members
// @Tags         admin
// @Produce      json
// @Success      200 {array} frontdesk.Member
// @Router       /admin/members/expired [get]
func (h *Handler) ListExpired(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ExpiredMembers())
}

// @Summary      Member detail with payment history
// @Tags         admin
// @Produce      json
// @Param        memberID path string true "Member ID"
// @Success      200 {object} frontdesk.MemberDetail
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/members/{memberID} [get]
func (h *Handler) GetMember(c *gin.Context) {
	detail, err := h.service.MemberDetail(c.Param("memberID"))
	if err != nil {
		writeError(c, err, "Failed to load member")
		return
	}

	c.JSON(http.StatusOK, detail)
}

// @Summary      Freeze a membership
// @Tags         admin
// @Produce      json
// @Param        memberID path string true "Member ID"
// @Success      200 {object} frontdesk.Member
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/members/{memberID}/freeze [post]
func (h *Handler) Freeze(c *gin.Context) {
	member, err := h.service.Freeze(c.Request.Context(), c.Param("memberID"))
	if err != nil {
		writeError(c, err, "Failed to freeze membership")
		return
	}

	c.JSON(http.StatusOK, member)
}

// @Summary      Activate a membership
// @Tags         admin
// @Produce      json
// @Param        memberID path string true "Member ID"
// @Success      200 {object} frontdesk.Member
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/members/{memberID}/activate [post]
func (h *Handler) Activate(c *gin.Context) {
	member, err := h.service.Activate(c.Request.Context(), c.Param("memberID"))
	if err != nil {
		writeError(c, err, "Failed to activate membership")
		return
	}

	c.JSON(http.StatusOK, member)
}

// @Summary      List payments
// @Tags         admin
// @Produce      json
// @Param        method query string false "cash or gcash"
// @Param        q query string false "Member name or description"
// @Success      200 {array} frontdesk.PaymentWithMember
// @Failure      400 {object} api.ErrorResponse
// @Router       /admin/payments [get]
func (h *Handler) ListPayments(c *gin.Context) {
	method := PaymentMethod(c.Query("method"))
	if method != "" && !method.Valid() {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid payment method"})
		return
	}

	c.JSON(http.StatusOK, h.service.Payments(PaymentFilter{Method: method, Query: c.Query("q")}))
}

// @Summary      Record a payment
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body frontdesk.RecordPaymentRequest true "Payment payload"
// @Success      201 {object} frontdesk.Payment
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/payments [post]
func (h *Handler) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.BindError(err))
		return
	}

	payment, err := h.service.RecordPayment(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "Failed to record payment")
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// @Summary      Revenue per day
// @Tags         admin,reports
// @Produce      json
// @Param        days query int false "Number of days, default 7"
// @Success      200 {array} frontdesk.DailyRevenue
// @Failure      400 {object} api.ErrorResponse
// @Router       /admin/reports/revenue [get]
func (h *Handler) RevenueReport(c *gin.Context) {
	days, ok := parseDays(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.service.RevenueByDay(days))
}

// @Summary      Attendance per day
// @Tags         admin,reports
// @Produce      json
// @Param        days query int false "Number of days, default 7"
// @Success      200 {array} frontdesk.DailyAttendance
// @Failure      400 {object} api.ErrorResponse
// @Router       /admin/reports/attendance [get]
func (h *Handler) AttendanceReport(c *gin.Context) {
	days, ok := parseDays(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.service.AttendanceByDay(days))
}

// @Summary      Report summary
// @Description  Peak hours, best days of month, payment methods and average visits
// @Tags         admin,reports
// @Produce      json
// @Param        days query int false "Window for average visits, default 7"
// @Success      200 {object} frontdesk.ReportSummary
// @Failure      400 {object} api.ErrorResponse
// @Router       /admin/reports/summary [get]
func (h *Handler) SummaryReport(c *gin.Context) {
	days, ok := parseDays(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.service.Summary(days))
}

func parseDays(c *gin.Context) (int, bool) {
	raw := c.Query("days")
	if raw == "" {
		return defaultReportDays, true
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 || days > maxReportDays {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "days must be between 1 and 366"})
		return 0, false
	}
	return days, true
}

func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrMemberNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member not found"})
	case errors.Is(err, ErrPlanNotFound):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Unknown membership plan"})
	case errors.Is(err, ErrDuplicateContact):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "A member with that contact number already exists. Use renew instead."})
	case errors.Is(err, ErrMemberNotActive):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidPaymentMethod),
		errors.Is(err, ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: fallback})
	}
}
