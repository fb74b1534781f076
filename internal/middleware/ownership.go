package middleware

import (
	"errors"
	"strconv"

	"github.com/anand2468/easyeval/internal/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OwnerResolver maps an entity id to the user id owning it, walking
// whatever chain applies (exam -> user, response -> exam -> user, ...).
type OwnerResolver func(id uint) (uint, error)

// RequireOwnership guards a route carrying an entity id in the named path
// parameter. Every exam, question and response access goes through one of
// these, so handlers never re-check ownership themselves.
func RequireOwnership(param string, resolve OwnerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		id, err := strconv.ParseUint(c.Param(param), 10, 64)
		if err != nil {
			util.BadRequest(c, "invalid id")
			c.Abort()
			return
		}

		ownerID, err := resolve(uint(id))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				util.NotFound(c)
			} else {
				util.LogInternalError(c, err)
			}
			c.Abort()
			return
		}

		if ownerID != claims.UserID {
			util.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
