package auth

import "context"

type contextKey string

const claimsKey contextKey = "user_claims"

func SetClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFrom returns the verified claims stored by the middleware, or nil
// for an unauthenticated context.
func ClaimsFrom(ctx context.Context) *Claims {
	if claims, ok := ctx.Value(claimsKey).(*Claims); ok {
		return claims
	}
	return nil
}
