package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotelbook/utils"
)

// getLogger retrieves the request logger from the Gin context, falling back to the process logger.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get(utils.ContextLoggerKey); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}
