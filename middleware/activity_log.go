package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// ActivityLog writes one tagged line per admin mutation (anything that is not
// a read) after the handler has run.
func ActivityLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if c.Request.Method == "GET" {
			return
		}

		user, _ := c.Get("sessionUser")
		log.Printf("[admin.activity] %s %s status=%d user=%v took=%v",
			c.Request.Method, c.FullPath(), c.Writer.Status(), user, time.Since(start))
	}
}
