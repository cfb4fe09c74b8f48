package rest

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/pr-poehali-dev/real-estate-venture-1/internal/contextkeys"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/port"
	"golang.org/x/time/rate"
)

type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает частоту запросов к API по IP клиента (token bucket)
type RateLimiter struct {
	cfg     RateLimitConfig
	clients map[string]*clientLimiter
	mu      sync.Mutex

	idleTTL time.Duration
	stop    chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewRateLimiter создает лимитер и запускает фоновую очистку старых клиентов.
// Фоновая горутина останавливается через Close.
func NewRateLimiter(cfg RateLimitConfig, cleanupEvery, idleTTL time.Duration) *RateLimiter {
	rl := &RateLimiter{
		cfg:     cfg,
		clients: make(map[string]*clientLimiter),
		idleTTL: idleTTL,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go rl.cleanupLoop(cleanupEvery)
	return rl
}

func (rl *RateLimiter) getClientLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(rl.cfg.RPS), rl.cfg.Burst)}
		rl.clients[key] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter
}

func (rl *RateLimiter) cleanupLoop(every time.Duration) {
	defer close(rl.done)
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.cleanup()
		}
	}
}

// cleanup удаляет клиентов, которых не было дольше idleTTL
func (rl *RateLimiter) cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for key, cl := range rl.clients {
		if time.Since(cl.lastSeen) > rl.idleTTL {
			delete(rl.clients, key)
			removed++
		}
	}
	return removed
}

func (rl *RateLimiter) Close() {
	rl.once.Do(func() {
		close(rl.stop)
		<-rl.done
	})
}

// Limit - middleware; при превышении лимита отвечает 429
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	if !rl.cfg.Enabled {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)
		if !rl.getClientLimiter(key).Allow() {
			contextkeys.LoggerFromContext(r.Context()).Warn("Rate limit exceeded", port.Fields{"client": key})
			w.Header().Set("Retry-After", "1")
			WriteJSONError(w, r, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey - IP без порта; RemoteAddr уже поправлен middleware.RealIP
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
