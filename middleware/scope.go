package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"hotelbook/utils"
)

// SessionScope resolves the caller's scope from the header, then the cookie,
// minting one when neither is present. The scope is echoed back.
func SessionScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		scope := c.GetHeader(utils.ScopeHeader)
		if scope == "" {
			if cookie, err := c.Cookie(utils.ScopeCookie); err == nil {
				scope = cookie
			}
		}
		if _, err := uuid.Parse(scope); err != nil {
			scope = uuid.NewString()
		}
		c.Set(utils.ContextScopeKey, scope)
		c.Header(utils.ScopeHeader, scope)
		c.Next()
	}
}

// Scope returns the scope resolved by SessionScope.
func Scope(c *gin.Context) string {
	return c.GetString(utils.ContextScopeKey)
}

// RequestLogger stores a scope-tagged logger in the context and logs each request.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqLogger := logger.With(zap.String("scope", Scope(c)))
		c.Set(utils.ContextLoggerKey, reqLogger)

		c.Next()

		reqLogger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.String("ip", getClientIP(c)),
			zap.Duration("took", time.Since(start)))
	}
}
