package middleware

import (
	"net/http"

	"campuseats_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// RequireAdmin restricts a route to users with the ADMIN role. There is no
// second privilege tier above it.
func RequireAdmin(c *gin.Context) {
	role, exists := c.Get("role")
	if !exists || role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		c.Abort()
		return
	}
	c.Next()
}

// RequireVendor restricts a route to users with the VENDOR role.
func RequireVendor(c *gin.Context) {
	role, exists := c.Get("role")
	if !exists || role != models.RoleVendor {
		c.JSON(http.StatusForbidden, gin.H{"error": "Vendor access required"})
		c.Abort()
		return
	}
	c.Next()
}
