package server

import (
	"net/http"
	"strings"
	"time"

	"cardamom-auction/internal/biddingerrors"
	model "cardamom-auction/internal/models"
	"cardamom-auction/services/bidding/helpers"
	"cardamom-auction/utils"

	"github.com/gin-gonic/gin"
)

// Headers set by the upstream identity provider
const (
	HeaderUserID    = "X-User-ID"
	HeaderUserEmail = "X-User-Email"
	HeaderUserRole  = "X-User-Role"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	fields := map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	}
	if id := helpers.CurrentIdentity(c); id.UserID != "" {
		fields["user_id"] = id.UserID
	}
	utils.Info("HTTP Request", fields)
}

// IdentityMiddleware copies the caller identity from the request headers onto the context
func IdentityMiddleware(c *gin.Context) {
	id := model.Identity{
		UserID: strings.TrimSpace(c.GetHeader(HeaderUserID)),
		Email:  strings.TrimSpace(c.GetHeader(HeaderUserEmail)),
		Role:   strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderUserRole))),
	}
	if id.UserID != "" {
		helpers.SetIdentity(c, id)
	}
	c.Next()
}

// RequireIdentity rejects anonymous requests
func RequireIdentity(c *gin.Context) {
	if helpers.CurrentIdentity(c).UserID == "" {
		utils.JSONError(c, http.StatusUnauthorized, biddingerrors.ErrUnauthenticated, "authenticated user required")
		c.Abort()
		return
	}
	c.Next()
}

// RequireAdmin rejects callers without the admin role
func RequireAdmin(c *gin.Context) {
	id := helpers.CurrentIdentity(c)
	if id.UserID == "" {
		utils.JSONError(c, http.StatusUnauthorized, biddingerrors.ErrUnauthenticated, "authenticated user required")
		c.Abort()
		return
	}
	if !id.IsAdmin() {
		utils.JSONError(c, http.StatusForbidden, biddingerrors.ErrForbidden, "admin role required")
		utils.Warn("RequireAdmin: forbidden", map[string]any{"user_id": id.UserID, "path": c.Request.URL.Path})
		c.Abort()
		return
	}
	c.Next()
}
