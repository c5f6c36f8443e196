package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-restaurante/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-restaurante/pkg/jwt"
)

// Chaves do contexto gin preenchidas pelo AuthMiddleware
const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

// AuthMiddleware valida o token Bearer emitido pelo serviço de identidade
// e guarda o usuário e o cargo no contexto da requisição
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthorized(c, "token não informado", "")
			return
		}
		token, ok := bearerToken(header)
		if !ok {
			unauthorized(c, "token inválido", "esperado: Bearer <token>")
			return
		}

		claims, err := jwt.ValidateToken(token)
		switch {
		case errors.Is(err, jwt.ErrExpiredToken):
			unauthorized(c, "token expirado", "")
			return
		case err != nil:
			unauthorized(c, "token inválido", err.Error())
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}

// UserID retorna o usuário autenticado, ou vazio fora das rotas protegidas
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// UserRole retorna o cargo do usuário autenticado
func UserRole(c *gin.Context) string {
	return c.GetString(ContextUserRole)
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(c *gin.Context, message, details string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, message, details))
}
