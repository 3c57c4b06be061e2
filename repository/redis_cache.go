package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// paymentTTL bounds how long a memoized amortization result may be served.
const paymentTTL = 24 * time.Hour

// RedisCache memoizes computed monthly payments across process restarts.
// Keys encode the loan parameters, so an entry is only ever reused for an
// identical amount, rate and term. Entries expire after paymentTTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(addr string) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
		ttl: paymentTTL,
	}
}

func (r *RedisCache) Get(key string) (string, bool) {
	val, err := r.client.Get(context.Background(), key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(key string, value string) error {
	return r.client.Set(context.Background(), key, value, r.ttl).Err()
}
