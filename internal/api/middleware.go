package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fitguide/fitness-app/internal/domain"
	"fitguide/fitness-app/internal/metrics"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Constants for context keys
const (
	ContextUserIDKey        = "userID"
	ContextAuthenticatedKey = "authenticated"

	HeaderDeviceID = "X-Device-ID"
)

// TokenParser validates bearer tokens.
type TokenParser interface {
	ParseToken(token string) (userID string, err error)
}

// DeviceIdentity is the server's own anonymous identity, used when a request
// carries neither a token nor a device header.
type DeviceIdentity interface {
	DeviceID(ctx context.Context) (string, error)
	StoredDeviceID(ctx context.Context) (string, error)
}

// IdentityMiddleware resolves who a request acts for: the user in a Bearer
// token, else the X-Device-ID header, else the stored device identity.
// A present but invalid token is rejected rather than downgraded.
func IdentityMiddleware(tokens TokenParser, devices DeviceIdentity) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			// Expecting "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				abortWithError(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
				return
			}
			userID, err := tokens.ParseToken(parts[1])
			if err != nil {
				abortWithError(c, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
			c.Set(ContextUserIDKey, userID)
			c.Set(ContextAuthenticatedKey, true)
			c.Next()
			return
		}

		deviceID := c.GetHeader(HeaderDeviceID)
		if deviceID != "" && !domain.IsDeviceID(deviceID) {
			abortWithError(c, http.StatusBadRequest, "X-Device-ID must start with "+domain.DeviceIDPrefix)
			return
		}
		if deviceID == "" {
			var err error
			deviceID, err = devices.DeviceID(c.Request.Context())
			if err != nil {
				log.Errorf("resolve device identity: %s", err)
				abortWithError(c, http.StatusInternalServerError, "Device identity unavailable")
				return
			}
		}

		c.Header(HeaderDeviceID, deviceID)
		c.Set(ContextUserIDKey, deviceID)
		c.Set(ContextAuthenticatedKey, false)
		c.Next()
	}
}

// RequireAuth rejects anonymous requests. Must run AFTER IdentityMiddleware.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextAuthenticatedKey) {
			abortWithError(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		c.Next()
	}
}

// MetricsMiddleware counts requests and records their duration.
func MetricsMiddleware(metricsManager *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metricsManager.HistRequestDuration.Observe(time.Since(start).Seconds())
		metricsManager.CounterRequests.WithLabelValues(c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// Helper function to get User ID from context (used by handlers)
func getUserIDFromContext(c *gin.Context) (string, error) {
	idRaw, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", errors.New("user ID not found in context")
	}
	idStr, ok := idRaw.(string)
	if !ok || idStr == "" {
		return "", errors.New("invalid user ID type in context")
	}
	return idStr, nil
}

// mustUserID aborts with 500 when the identity middleware did not run.
func mustUserID(c *gin.Context) (string, bool) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve request identity")
		return "", false
	}
	return userID, true
}
