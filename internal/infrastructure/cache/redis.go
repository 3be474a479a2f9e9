package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"mtg-cards/internal/domain/card"
)

// Redis key namespace, so a full clear never touches keys owned by other
// tenants of the same instance.
const redisKeyPrefix = "mtgcards:"

// Redis is the optional distributed cache backend. When the server is
// unreachable it degrades to a pass-through: every Get misses and every Set is
// dropped, so the service keeps answering from upstream. Expiry is server-side
// (per-key TTL on SET), which makes Stats report every resident key as valid.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger *log.Logger

	warnedUnavailable atomic.Bool
}

func NewRedis(ttl time.Duration, logger *log.Logger) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	host := strings.TrimSpace(os.Getenv("REDIS_HOST"))
	if host == "" {
		host = "localhost"
	}
	port := strings.TrimSpace(os.Getenv("REDIS_PORT"))
	if port == "" {
		port = "6379"
	}
	pass := strings.TrimSpace(os.Getenv("REDIS_PASSWORD"))

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: pass,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Printf("[Cache] Redis unavailable, bypassing cache: %v", err)
		}
		_ = client.Close()
		return &Redis{client: nil, ttl: ttl, logger: logger}
	}

	return &Redis{client: client, ttl: ttl, logger: logger}
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil || r.logger == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Printf("[Cache] Redis unavailable, bypassing cache: %v", err)
	}
}

func (r *Redis) Get(ctx context.Context, key string) (card.ResultPayload, bool) {
	if r.isUnavailable() {
		return card.ResultPayload{}, false
	}
	b, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.warnUnavailableOnce(err)
		}
		return card.ResultPayload{}, false
	}
	var out card.ResultPayload
	if err := json.Unmarshal(b, &out); err != nil {
		return card.ResultPayload{}, false
	}
	return out, true
}

func (r *Redis) Set(ctx context.Context, key string, payload card.ResultPayload) {
	if r.isUnavailable() {
		return
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, redisKeyPrefix+key, b, r.ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
	}
}

func (r *Redis) Clear(ctx context.Context) int {
	if r.isUnavailable() {
		return 0
	}
	n := 0
	iter := r.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			if r.logger != nil {
				r.logger.Printf("[Cache] Redis delete error key=%s err=%v", iter.Val(), err)
			}
			continue
		}
		n++
	}
	if err := iter.Err(); err != nil {
		r.warnUnavailableOnce(err)
	}
	return n
}

func (r *Redis) Stats(ctx context.Context) Stats {
	if r.isUnavailable() {
		return Stats{}
	}
	total := 0
	iter := r.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		total++
	}
	if err := iter.Err(); err != nil {
		r.warnUnavailableOnce(err)
		return Stats{}
	}
	// Redis expires keys server-side, so nothing resident is ever stale.
	return Stats{Total: total, Valid: total, Expired: 0}
}

func (r *Redis) Close() error {
	if r.isUnavailable() {
		return nil
	}
	return r.client.Close()
}

var _ Store = (*Redis)(nil)
