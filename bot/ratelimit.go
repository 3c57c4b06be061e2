package bot

import (
	"log"
	"sync"
	"time"
)

const msgSlowDown = "Troppi messaggi, attendi un momento e riprova."

const (
	bucketCleanupThreshold = 1 * time.Hour
	cleanupInterval        = 30 * time.Minute
)

type chatBucket struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter grants each chat a fixed message budget per refill window, so
// a single conversation cannot monopolize the dispatch loop.
type RateLimiter struct {
	mu          sync.Mutex
	capacity    int
	refillDur   time.Duration
	chats       map[int64]*chatBucket
	stopCleanup chan struct{}
}

func NewRateLimiter(capacity int, refillDur time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity:    capacity,
		refillDur:   refillDur,
		chats:       make(map[int64]*chatBucket),
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for chatID, bucket := range r.chats {
		if now.Sub(bucket.lastRefill) > bucketCleanupThreshold {
			delete(r.chats, chatID)
		}
	}
}

// Allow reports whether the chat still has budget for one more message.
func (r *RateLimiter) Allow(chatID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	bucket, ok := r.chats[chatID]
	if !ok {
		bucket = &chatBucket{tokens: r.capacity, lastRefill: now}
		r.chats[chatID] = bucket
	}

	if now.Sub(bucket.lastRefill) >= r.refillDur {
		bucket.tokens = r.capacity
		bucket.lastRefill = now
	}

	if bucket.tokens <= 0 {
		return false
	}
	bucket.tokens--
	return true
}

func (r *RateLimiter) Stop() {
	close(r.stopCleanup)
}

// Throttled wraps a message handler so over-budget chats are told to slow
// down instead of timing out in silence.
func Throttled(rl *RateLimiter, t Transport, handle func(chatID int64, text string)) func(chatID int64, text string) {
	return func(chatID int64, text string) {
		if !rl.Allow(chatID) {
			log.Printf("chat %d over budget, message dropped", chatID)
			if err := t.SendText(chatID, msgSlowDown); err != nil {
				log.Printf("slow-down notice failed for chat %d: %v", chatID, err)
			}
			return
		}
		handle(chatID, text)
	}
}
