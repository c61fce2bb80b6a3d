package middleware

import (
	"net/http"
	"strings"
	"time"

	"aerobook/internal/shared/config"
	"aerobook/internal/shared/utils/response"
	"aerobook/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Context keys set by SessionAuth
const (
	CtxSessionID = "session_id"
	CtxTokenID   = "token_id"
	CtxTraceID   = "trace_id"
)

// SessionAuth validates the bearer token minted at login/search time and
// places the session identity and the provider credential pair on the
// request context. Every downstream GDS call needs token_id and trace_id.
func SessionAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header is required", nil)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(c, http.StatusUnauthorized, "authorization header format must be Bearer {token}", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWT.Secret), nil
		})
		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, "invalid or expired token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "invalid token claims", nil)
			c.Abort()
			return
		}

		sessionID, _ := claims["session_id"].(string)
		tokenID, _ := claims["token_id"].(string)
		traceID, _ := claims["trace_id"].(string)
		if sessionID == "" {
			response.Error(c, http.StatusUnauthorized, "token carries no session", nil)
			c.Abort()
			return
		}

		c.Set(CtxSessionID, sessionID)
		c.Set(CtxTokenID, tokenID)
		c.Set(CtxTraceID, traceID)
		c.Next()
	}
}

// RequestID tags every request with a unique id for log correlation
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// RequestLogger logs each request with timing via the shared logger
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.LogHTTPRequest(c, time.Since(start))
	}
}
