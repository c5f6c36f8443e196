package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-restaurante/pkg/logger"
)

// RequestLogger registra método, caminho, status e duração de cada requisição
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if userID := UserID(c); userID != "" {
			fields = append(fields, "user_id", userID)
		}

		if status >= 500 {
			log.Error("requisição com erro", fields...)
			return
		}
		log.Info("requisição atendida", fields...)
	}
}

// Timeout limita a duração do contexto da requisição.
// Zero ou negativo desativa o limite.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
