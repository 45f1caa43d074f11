package rate_limiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*clientLimiter)
	mu       sync.Mutex

	// Disabled until Configure is called with a positive rate.
	limitRPS   rate.Limit
	limitBurst int
)

// Configure sets the per-visitor rate. A non-positive rps disables limiting.
func Configure(rps float64, burst int) {
	mu.Lock()
	defer mu.Unlock()
	limitRPS = rate.Limit(rps)
	limitBurst = burst
	visitors = make(map[string]*clientLimiter)
}

func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return limitRPS > 0
}

func GetVisitor(ip string) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, exists := visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(limitRPS, limitBurst)
		visitors[ip] = &clientLimiter{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func StartVisitorCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		mu.Lock()
		for ip, v := range visitors {
			if time.Since(v.lastSeen) > 5*time.Minute {
				delete(visitors, ip)
			}
		}
		mu.Unlock()
	}
}

func CleanupAllVisitors() {
	mu.Lock()
	defer mu.Unlock()
	visitors = make(map[string]*clientLimiter)
}
