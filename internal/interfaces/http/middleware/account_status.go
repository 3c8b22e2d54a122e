package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"pawmart.backend/internal/config"
	"pawmart.backend/internal/domain/entities"
	"pawmart.backend/internal/domain/repositories"
	"pawmart.backend/pkg/logger"
)

// AccountStatusMiddleware blocks suspended and banned accounts on every
// authenticated route. Exempt paths (logout, token refresh) and bypass
// user ids come from configuration so a locked-out account can still
// recover its session. Must run after AuthMiddleware.
func AccountStatusMiddleware(userRepo repositories.UserRepository, cfg config.AccessGateConfig) gin.HandlerFunc {
	exempt := make(map[string]struct{}, len(cfg.ExemptPaths))
	for _, p := range cfg.ExemptPaths {
		exempt[p] = struct{}{}
	}
	bypass := make(map[string]struct{}, len(cfg.BypassUserIDs))
	for _, id := range cfg.BypassUserIDs {
		bypass[id] = struct{}{}
	}

	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.Next()
			return
		}

		if _, ok := exempt[c.Request.URL.Path]; ok {
			c.Next()
			return
		}
		if _, ok := bypass[userID.String()]; ok {
			c.Next()
			return
		}

		user, err := userRepo.GetByID(c.Request.Context(), userID)
		if err != nil {
			logger.Error(c.Request.Context(), "account status lookup failed",
				zap.String("user_id", userID.String()), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    "account_suspended",
				"message": "account status could not be verified",
			})
			return
		}

		if user.Status == entities.UserStatusSuspended || user.Status == entities.UserStatusBanned {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    "account_suspended",
				"message": "your account has been suspended",
			})
			return
		}

		c.Next()
	}
}
