package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Rate limiting key patterns:
// - ratelimit:{ip}:auth - 60s TTL, per-minute auth attempts
// - ratelimit:{user_id}:uploads - 60s TTL, per-minute attachment uploads

// RateLimitConfig contains configuration for rate limiting
type RateLimitConfig struct {
	AuthLimit    int           // Max auth attempts per window
	AuthWindow   time.Duration // Auth rate limit window
	UploadLimit  int           // Max uploads per window
	UploadWindow time.Duration // Upload rate limit window
}

// DefaultRateLimitConfig returns sensible defaults
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		AuthLimit:    5, // 5 auth attempts per minute
		AuthWindow:   60 * time.Second,
		UploadLimit:  20, // 20 uploads per minute
		UploadWindow: 60 * time.Second,
	}
}

// RateLimiter handles rate limiting using Redis
type RateLimiter struct {
	client *goredis.Client
	config RateLimitConfig
}

// RateLimitResult contains the result of a rate limit check
type RateLimitResult struct {
	Allowed   bool          // Whether the action is allowed
	Remaining int           // Remaining actions in the window
	ResetIn   time.Duration // Time until the window resets
	Limit     int           // The limit for this action
}

func NewRateLimiter(client *goredis.Client, config RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		client: client,
		config: config,
	}
}

// AllowAuth checks if an IP can make an auth attempt
func (r *RateLimiter) AllowAuth(ctx context.Context, ip string) (*RateLimitResult, error) {
	key := fmt.Sprintf("ratelimit:%s:auth", ip)
	return r.checkLimit(ctx, key, r.config.AuthLimit, r.config.AuthWindow)
}

// AllowUpload checks if a user can upload an attachment
func (r *RateLimiter) AllowUpload(ctx context.Context, userID string) (*RateLimitResult, error) {
	key := fmt.Sprintf("ratelimit:%s:uploads", userID)
	return r.checkLimit(ctx, key, r.config.UploadLimit, r.config.UploadWindow)
}

// checkLimit performs the actual rate limit check using a sliding window counter
func (r *RateLimiter) checkLimit(ctx context.Context, key string, limit int, window time.Duration) (*RateLimitResult, error) {
	// Use Lua script for atomic increment and check
	script := goredis.NewScript(`
		local key = KEYS[1]
		local limit = tonumber(ARGV[1])
		local window = tonumber(ARGV[2])

		local current = redis.call('GET', key)
		if current == false then
			current = 0
		else
			current = tonumber(current)
		end

		local ttl = redis.call('TTL', key)
		if ttl < 0 then
			ttl = window
		end

		if current < limit then
			redis.call('INCR', key)
			if ttl == window then
				redis.call('EXPIRE', key, window)
			end
			return {1, limit - current - 1, ttl}
		else
			return {0, 0, ttl}
		end
	`)

	result, err := script.Run(ctx, r.client, []string{key}, limit, int(window.Seconds())).Result()
	if err != nil {
		return nil, fmt.Errorf("rate limit check failed: %w", err)
	}

	resultSlice, ok := result.([]interface{})
	if !ok || len(resultSlice) < 3 {
		return nil, fmt.Errorf("unexpected rate limit result format")
	}

	allowed := resultSlice[0].(int64) == 1
	remaining := int(resultSlice[1].(int64))
	resetIn := time.Duration(resultSlice[2].(int64)) * time.Second

	return &RateLimitResult{
		Allowed:   allowed,
		Remaining: remaining,
		ResetIn:   resetIn,
		Limit:     limit,
	}, nil
}

// Reset resets the rate limit for a specific key (admin operation)
func (r *RateLimiter) Reset(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// ResetAuth resets auth rate limit for an IP
func (r *RateLimiter) ResetAuth(ctx context.Context, ip string) error {
	key := fmt.Sprintf("ratelimit:%s:auth", ip)
	return r.client.Del(ctx, key).Err()
}

// ResetUploads resets upload rate limit for a user
func (r *RateLimiter) ResetUploads(ctx context.Context, userID string) error {
	key := fmt.Sprintf("ratelimit:%s:uploads", userID)
	return r.client.Del(ctx, key).Err()
}
