package middleware

import "context"

// userIDKey is the key used to store the authenticated caller's ID in the request context.
const userIDKey = contextKey("userID")

// GetUserIDFromCtx retrieves the authenticated caller ID from the request context.
// It returns the ID and a boolean indicating if it was found.
func GetUserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
