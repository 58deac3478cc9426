package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/DoctorConsultas/recetalia-api-rest/pkg/jwt"
	"github.com/DoctorConsultas/recetalia-api-rest/pkg/response"

	"github.com/redis/go-redis/v9"
)

type contextKey string

const (
	EmailKey   contextKey = "email"
	RoleKey    contextKey = "role"
	TokenIDKey contextKey = "token_id"
)

// RoleAuthorityPrefix mirrors the authority naming used by API consumers:
// a "role" claim of PRESTADOR maps to the ROLE_PRESTADOR authority.
const RoleAuthorityPrefix = "ROLE_"

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthMiddleware(jwtService *jwt.JWTService, redisClient *redis.Client) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

// Authenticate validates the bearer token and places its claims in the
// request context. Tenant scoping happens downstream: handlers resolve the
// email claim to a medical provider and ignore any client-supplied
// provider ID.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		// Check the token has not been revoked
		if m.redisClient != nil {
			tokenKey := fmt.Sprintf("access_token:%s:%s", claims.Email, claims.TokenID)
			exists, err := m.redisClient.Exists(r.Context(), tokenKey).Result()
			if err != nil {
				response.InternalServerError(w, "Failed to validate token")
				return
			}
			if exists == 0 {
				response.Unauthorized(w, "Token has been revoked")
				return
			}
		}

		ctx := context.WithValue(r.Context(), EmailKey, claims.Email)
		ctx = context.WithValue(ctx, RoleKey, RoleAuthorityPrefix+claims.Role)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetEmailFromContext extracts the authenticated email claim from context
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailKey).(string)
	return email, ok
}

// GetRoleFromContext extracts the caller's authority from context
func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}

// GetTokenIDFromContext extracts the token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
