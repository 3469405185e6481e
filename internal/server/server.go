package server

import (
	"context"
	"net/http"
	"time"

	"frontdesk/internal/config"
	"frontdesk/internal/frontdesk"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	config *config.Config
}

func New(cfg *config.Config, handler *frontdesk.Handler, feed ActivityFeed) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/plans", handler.ListPlans)

	kiosk := router.Group("/kiosk")
	kiosk.Use(RateLimitMiddleware(cfg.KioskRateLimitRPS, cfg.KioskRateLimitBurst))
	{
		kiosk.GET("/members", handler.KioskSearch)
		kiosk.POST("/signup", handler.SignUp)
		kiosk.POST("/members/:memberID/renew", handler.Renew)
		kiosk.POST("/members/:memberID/checkin", handler.CheckIn)
		kiosk.POST("/members/:memberID/checkout", handler.CheckOut)
		kiosk.GET("/checked-in", handler.ListCheckedIn)
	}

	admin := router.Group("/admin")
	{
		admin.GET("/stats", handler.Stats)
		admin.GET("/members", handler.ListMembers)
		admin.GET("/members/expired", handler.ListExpired)
		admin.GET("/members/:memberID", handler.GetMember)
		admin.POST("/members/:memberID/freeze", handler.Freeze)
		admin.POST("/members/:memberID/activate", handler.Activate)
		admin.POST("/members/:memberID/checkout", handler.CheckOut)
		admin.GET("/checked-in", handler.ListCheckedIn)
		admin.GET("/payments", handler.ListPayments)
		admin.POST("/payments", handler.RecordPayment)
		admin.GET("/reports/revenue", handler.RevenueReport)
		admin.GET("/reports/attendance", handler.AttendanceReport)
		admin.GET("/reports/summary", handler.SummaryReport)
		admin.GET("/activity", Activity(feed))
	}

	return &Server{
		router: router,
		config: cfg,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:   []string{"X-Request-ID"},
		MaxAge:          12 * time.Hour,
	})
}
