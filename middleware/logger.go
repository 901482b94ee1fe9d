package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger formats one line per request: status first so failures stand out
// when scanning, colored when the output supports it.
func Logger() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		var statusColor, methodColor, resetColor string
		if param.IsOutputColor() {
			statusColor = param.StatusCodeColor()
			methodColor = param.MethodColor()
			resetColor = param.ResetColor()
		}

		latency := param.Latency
		if latency > time.Minute {
			latency = latency.Truncate(time.Second)
		}

		return fmt.Sprintf("%s |%s %3d %s|%s %-7s %s %s | %13v | %s | %s\n",
			param.TimeStamp.Format("2006/01/02 15:04:05"),
			statusColor, param.StatusCode, resetColor,
			methodColor, param.Method, resetColor,
			param.Path,
			latency,
			param.ClientIP,
			param.ErrorMessage,
		)
	})
}
