package middleware

import (
	"github.com/gin-gonic/gin"
)

// contextKey is a private key type for values stored in request
// contexts. Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	accountIDKey = contextKey("accountID")
)

// GetAccountIDFromContext retrieves the authenticated account ID from
// the request context. It returns the ID and whether it was found.
func GetAccountIDFromContext(c *gin.Context) (int64, bool) {
	v := c.Request.Context().Value(accountIDKey)
	if v == nil {
		return 0, false
	}
	accountID, ok := v.(int64)
	return accountID, ok
}
