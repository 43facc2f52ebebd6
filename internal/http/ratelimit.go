package http

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/Balraaj27/lawcrusade/internal/metrics"
)

const rateLimitMessage = "Too many requests from this IP, please try again later."

// clientIP relies on the RealIP middleware having rewritten RemoteAddr from
// the forwarding headers.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// rateLimit picks the backend: a shared Redis window when configured, a
// per-process token bucket otherwise.
func (s *Server) rateLimit() func(http.Handler) http.Handler {
	if s.redis != nil {
		return s.redisRateLimit()
	}
	return s.memoryRateLimit()
}

// memoryRateLimit keeps one token bucket per client IP. The bucket refills at
// max/window and allows a full window worth of burst, which approximates the
// fixed window without shared state.
func (s *Server) memoryRateLimit() func(http.Handler) http.Handler {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)
	perSecond := rate.Limit(float64(s.cfg.RateLimitMax) / s.cfg.RateLimitWindow.Seconds())

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		lim, ok := limiters[ip]
		if !ok {
			lim = rate.NewLimiter(perSecond, s.cfg.RateLimitMax)
			limiters[ip] = lim
		}
		return lim
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiterFor(clientIP(r)).Allow() {
				metrics.RateLimitRejected.WithLabelValues("memory").Inc()
				w.Header().Set("Retry-After", strconv.Itoa(int(s.cfg.RateLimitWindow.Seconds())))
				writeError(w, http.StatusTooManyRequests, rateLimitMessage)
				return
			}
			metrics.RateLimitAllowed.WithLabelValues("memory").Inc()
			next.ServeHTTP(w, r)
		})
	}
}

// redisRateLimit counts requests in fixed windows shared across replicas.
// Keys carry the window bucket so stale counters expire on their own.
func (s *Server) redisRateLimit() func(http.Handler) http.Handler {
	window := s.cfg.RateLimitWindow
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bucket := time.Now().UnixMilli() / window.Milliseconds()
			key := fmt.Sprintf("rl:ip:%s:%d", clientIP(r), bucket)

			pipe := s.redis.TxPipeline()
			count := pipe.Incr(r.Context(), key)
			pipe.Expire(r.Context(), key, window+time.Second)
			if _, err := pipe.Exec(r.Context()); err != nil && err != redis.Nil {
				s.writeServerError(w, "Rate limit check failed", err)
				return
			}
			if count.Val() > int64(s.cfg.RateLimitMax) {
				metrics.RateLimitRejected.WithLabelValues("redis").Inc()
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				writeError(w, http.StatusTooManyRequests, rateLimitMessage)
				return
			}
			metrics.RateLimitAllowed.WithLabelValues("redis").Inc()
			next.ServeHTTP(w, r)
		})
	}
}
