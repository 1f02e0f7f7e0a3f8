package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const (
	// userIDKey stores the authenticated user's ID in the request context.
	userIDKey = contextKey("userID")
	// companyClaimKey stores the company the token was issued for, if any.
	companyClaimKey = contextKey("companyClaim")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return GetUserIDFromCtx(c.Request.Context())
}

// GetUserIDFromCtx retrieves the authenticated user ID from a request context.
func GetUserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// WithUserID returns a copy of ctx carrying the authenticated user ID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetCompanyClaim returns the company the token is scoped to. An empty
// result means the token is not scoped to a single company.
func GetCompanyClaim(ctx context.Context) string {
	company, _ := ctx.Value(companyClaimKey).(string)
	return company
}
