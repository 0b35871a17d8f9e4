// Package controller provides the HTTP handlers of the microblog server.
package controller

import (
	"github.com/gin-gonic/gin"
)

// adminClaimHeader is the literal, non-cryptographic admin claim. Any caller
// presenting this exact Authorization value is treated as admin by the
// visibility policy. Kept as-is for wire compatibility.
const adminClaimHeader = "Bearer true"

// BaseController provides functionality shared by all controllers.
type BaseController struct{}

// isAdminClaim reports whether the caller attached the admin claim header.
func isAdminClaim(c *gin.Context) bool {
	return c.GetHeader("Authorization") == adminClaimHeader
}
