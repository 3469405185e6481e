package server

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"frontdesk/internal/api"
	"frontdesk/internal/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// KioskLimiter hands out one token bucket per client IP.
type KioskLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	rate    rate.Limit
	burst   int
	ttl     time.Duration
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewKioskLimiter(rps float64, burst int, ttl time.Duration) *KioskLimiter {
	return &KioskLimiter{
		clients: make(map[string]*client),
		rate:    rate.Limit(rps),
		burst:   burst,
		ttl:     ttl,
	}
}

// Run evicts idle clients every interval until stop is closed. A nil stop
// runs for the life of the process.
func (l *KioskLimiter) Run(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			l.evict(now)
		}
	}
}

func (l *KioskLimiter) evict(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for ip, c := range l.clients {
		if now.Sub(c.lastSeen) > l.ttl {
			delete(l.clients, ip)
			removed++
		}
	}
	return removed
}

func (l *KioskLimiter) limiter(ip string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter
}

// Reserve reports whether ip may proceed now and, if not, how long it should
// wait before retrying.
func (l *KioskLimiter) Reserve(ip string) (bool, time.Duration) {
	now := time.Now()
	lim := l.limiter(ip, now)
	if lim.AllowN(now, 1) {
		return true, 0
	}

	r := lim.ReserveN(now, 1)
	if !r.OK() {
		return false, time.Second
	}
	wait := r.DelayFrom(now)
	r.CancelAt(now)
	return false, wait
}

// RateLimitMiddleware rejects clients that exceed rps with 429.
func RateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	limiter := NewKioskLimiter(rps, burst, 3*time.Minute)
	go limiter.Run(time.Minute, nil)

	return limitWith(limiter)
}

func limitWith(limiter *KioskLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, wait := limiter.Reserve(c.ClientIP())
		if !allowed {
			secs := int(wait.Seconds() + 0.999)
			if secs < 1 {
				secs = 1
			}
			logger.Warn("Rate limit exceeded", "client_ip", c.ClientIP(), "path", c.FullPath())
			c.Header("Retry-After", strconv.Itoa(secs))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api.ErrorResponse{Error: "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
