package middleware

import (
	"context"
	"net/http"
	"strings"

	"products-backend/interfaces/gateway"

	"github.com/awslabs/aws-lambda-go-api-proxy/core"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type claimsKey struct{}

// Claims attaches caller claims to the request context. Behind API Gateway
// they come from the authorizer; otherwise a bearer token is decoded without
// verification. Claims are informational and never authorize anything.
func Claims(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := authorizerClaims(r.Context())
			if !ok {
				claims, ok = bearerClaims(r, logger)
			}
			if ok {
				r = r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClaimsFromContext returns the claims attached by Claims.
func ClaimsFromContext(ctx context.Context) gateway.Claims {
	claims, _ := ctx.Value(claimsKey{}).(gateway.Claims)
	return claims
}

func authorizerClaims(ctx context.Context) (gateway.Claims, bool) {
	apiCtx, ok := core.GetAPIGatewayContextFromContext(ctx)
	if !ok {
		return gateway.Claims{}, false
	}
	raw, ok := apiCtx.Authorizer["claims"].(map[string]interface{})
	if !ok {
		return gateway.Claims{}, false
	}

	var claims gateway.Claims
	claims.Subject, _ = raw["sub"].(string)
	claims.Email, _ = raw["email"].(string)
	return claims, true
}

func bearerClaims(r *http.Request, logger *zap.Logger) (gateway.Claims, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return gateway.Claims{}, false
	}

	token, _, err := jwt.NewParser().ParseUnverified(strings.TrimPrefix(authHeader, "Bearer "), jwt.MapClaims{})
	if err != nil {
		logger.Debug("Ignoring unparsable bearer token", zap.Error(err))
		return gateway.Claims{}, false
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return gateway.Claims{}, false
	}

	var claims gateway.Claims
	claims.Subject, _ = mapClaims.GetSubject()
	claims.Email, _ = mapClaims["email"].(string)
	return claims, true
}
