package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-ops/models"
	"restaurant-ops/utils"
)

// RequireRole admits the listed roles; ADMIN always passes.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		role := models.UserRole(fmt.Sprint(roleValue))
		if role == models.UserRoleAdmin {
			c.Next()
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		utils.RespondError(c, http.StatusForbidden, fmt.Errorf("%s access required", roles[0]))
		c.Abort()
	}
}
