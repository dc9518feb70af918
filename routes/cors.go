package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// corsMiddleware allows any origin, method and request header with credentials. The origin is
// echoed back since "*" cannot carry credentials, and the same holds for requested headers.
func corsMiddleware() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		echoRequestHeaders(),
		cors.New(cors.Config{
			AllowOriginFunc: func(string) bool { return true },
			AllowMethods: []string{
				http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
				http.MethodDelete, http.MethodHead, http.MethodOptions,
			},
			ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	}
}

// echoRequestHeaders answers a preflight's Access-Control-Request-Headers with the same list.
// cors.New leaves Access-Control-Allow-Headers alone while its AllowHeaders is empty.
func echoRequestHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodOptions || c.GetHeader("Origin") == "" {
			return
		}
		if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
			c.Header("Access-Control-Allow-Headers", requested)
		}
	}
}
