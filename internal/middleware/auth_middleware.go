package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"continuity/internal/services"
	"continuity/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(service *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c)
		claims, err := service.ParseAccessToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
			c.Abort()
			return
		}

		userID, err := strconv.Atoi(claims.Subject)
		if err != nil || userID <= 0 {
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
			c.Abort()
			return
		}

		ctx := services.WithUserContext(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func extractBearer(c *gin.Context) string {
	value := c.GetHeader("Authorization")
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
