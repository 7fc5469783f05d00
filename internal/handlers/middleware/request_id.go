package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader é o header HTTP usado para propagar o request ID
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey é a chave do request ID no contexto do Gin
	RequestIDContextKey = "request_id"
)

// RequestID atribui um identificador único a cada requisição.
// Respeita o X-Request-ID enviado pelo cliente, se houver; caso contrário
// gera um UUID novo. O ID é devolvido no header da resposta.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDContextKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}
