package middleware

import (
	"net/http"
	"strconv"

	"continuity/internal/redis"
	"continuity/internal/services"
	"continuity/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// AuthRateLimitMiddleware limits auth attempts per client IP.
func AuthRateLimitMiddleware(limiter *redis.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := limiter.AllowAuth(c.Request.Context(), c.ClientIP())
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("rate limit error", "INTERNAL_ERROR"))
			c.Abort()
			return
		}

		setRateLimitHeaders(c, result)

		if !result.Allowed {
			c.JSON(http.StatusTooManyRequests, httpdto.NewErrorResponse("rate limit exceeded", "RATE_LIMITED"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// UploadRateLimitMiddleware limits attachment uploads per user. Apply
// after the auth middleware.
func UploadRateLimitMiddleware(limiter *redis.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := services.UserIDFromContext(c.Request.Context())
		if !ok {
			// No user context, skip rate limiting (auth middleware will handle)
			c.Next()
			return
		}

		result, err := limiter.AllowUpload(c.Request.Context(), strconv.Itoa(userID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("rate limit error", "INTERNAL_ERROR"))
			c.Abort()
			return
		}

		setRateLimitHeaders(c, result)

		if !result.Allowed {
			c.JSON(http.StatusTooManyRequests, httpdto.NewErrorResponse("upload rate limit exceeded", "RATE_LIMITED"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// setRateLimitHeaders sets standard rate limit response headers
func setRateLimitHeaders(c *gin.Context, result *redis.RateLimitResult) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(int64(result.ResetIn.Seconds()), 10))
}
