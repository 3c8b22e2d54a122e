package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"pawmart.backend/internal/domain/entities"
	domainerrors "pawmart.backend/internal/domain/errors"
	"pawmart.backend/internal/interfaces/http/middleware"
	"pawmart.backend/internal/interfaces/http/response"
	"pawmart.backend/internal/usecases"
	"pawmart.backend/pkg/utils"
)

// AdminHandler handles back-office endpoints
type AdminHandler struct {
	adminUsecase *usecases.AdminUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase *usecases.AdminUsecase) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
	}
}

// ListUsers pages through the user directory
// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var query struct {
		Search string `form:"search"`
		Skip   int    `form:"skip"`
		Take   int    `form:"take"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	query.Skip, query.Take = utils.NormalizePagination(query.Skip, query.Take)

	users, total, err := h.adminUsecase.ListUsers(c.Request.Context(), query.Search, query.Take, query.Skip)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"users": users,
		"total": total,
		"skip":  query.Skip,
		"take":  query.Take,
	})
}

// SetUserStatus suspends, bans or reinstates an account
// PATCH /api/v1/admin/users/:id/status
func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	var input struct {
		Status entities.UserStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.adminUsecase.SetUserStatus(c.Request.Context(), adminID, userID, input.Status); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "account status updated"})
}

// GetStats assembles the dashboard summary
// GET /api/v1/admin/stats
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminUsecase.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}
