package middleware

import (
	"log"

	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func RequestTracingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		browser, clientOS, device := utils.ParseClient(c.GetHeader("User-Agent"))
		log.Printf("[%s] %s %s client=%s/%s/%s",
			requestID, c.Request.Method, c.Request.URL.Path, device, browser, clientOS)

		c.Next()
	}
}
