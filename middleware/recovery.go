package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns panics into a 500 JSON response carrying the error
// detail. The stack goes to the log and the response body; this mirrors the
// debugging-friendly behavior of the deployed service.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				log.Printf("Unhandled error: %v\n%s", r, stack)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":       fmt.Sprintf("%v", r),
					"stack_trace": stack,
				})
			}
		}()
		c.Next()
	}
}
