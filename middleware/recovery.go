package middleware

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
)

// Recovery rewrites panics into the standard failure envelope so no request
// ever escapes to the transport layer as an unhandled fault. The panic value
// reaches the caller only in diagnostic deployments.
func (m *Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Println("panic recovered:", recovered)
		m.helper.SendAPIError(c, fmt.Errorf("panic: %v", recovered))
		c.Abort()
	})
}
