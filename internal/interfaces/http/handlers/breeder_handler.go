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
)

// BreederHandler handles breeder applications and profiles
type BreederHandler struct {
	breederUsecase *usecases.BreederUsecase
}

// NewBreederHandler creates a new breeder handler
func NewBreederHandler(breederUsecase *usecases.BreederUsecase) *BreederHandler {
	return &BreederHandler{
		breederUsecase: breederUsecase,
	}
}

// SubmitApplication files a breeder application
// POST /api/v1/breeder/applications
func (h *BreederHandler) SubmitApplication(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.ApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	app, err := h.breederUsecase.Submit(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"application": app})
}

// GetMyApplication returns the caller's live application
// GET /api/v1/breeder/applications/me
func (h *BreederHandler) GetMyApplication(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	app, err := h.breederUsecase.GetMyApplication(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"application": app})
}

// ListPendingApplications returns the review queue
// GET /api/v1/admin/applications
func (h *BreederHandler) ListPendingApplications(c *gin.Context) {
	apps, err := h.breederUsecase.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"applications": apps})
}

// ApproveApplication approves a pending application
// POST /api/v1/admin/applications/:id/approve
func (h *BreederHandler) ApproveApplication(c *gin.Context) {
	reviewerID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid application id"))
		return
	}

	profile, err := h.breederUsecase.Approve(c.Request.Context(), reviewerID, applicationID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}

type reviewInput struct {
	Notes string `json:"notes,omitempty"`
}

// RejectApplication rejects a pending application
// POST /api/v1/admin/applications/:id/reject
func (h *BreederHandler) RejectApplication(c *gin.Context) {
	reviewerID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid application id"))
		return
	}

	var input reviewInput
	if err := c.ShouldBindJSON(&input); err != nil && c.Request.ContentLength > 0 {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.breederUsecase.Reject(c.Request.Context(), reviewerID, applicationID, input.Notes); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "application rejected"})
}

// RequestApplicationInfo sends an application back for more detail
// POST /api/v1/admin/applications/:id/request-info
func (h *BreederHandler) RequestApplicationInfo(c *gin.Context) {
	reviewerID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid application id"))
		return
	}

	var input reviewInput
	if err := c.ShouldBindJSON(&input); err != nil && c.Request.ContentLength > 0 {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.breederUsecase.RequestInfo(c.Request.Context(), reviewerID, applicationID, input.Notes); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "information requested"})
}

// GetProfileBySlug resolves a public breeder page
// GET /api/v1/breeders/:slug
func (h *BreederHandler) GetProfileBySlug(c *gin.Context) {
	profile, err := h.breederUsecase.GetProfileBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}

// GetMyProfile returns the caller's breeder profile
// GET /api/v1/breeder/profile
func (h *BreederHandler) GetMyProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	profile, err := h.breederUsecase.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}

// UpdateMyProfile edits bio and media on the caller's profile
// PUT /api/v1/breeder/profile
func (h *BreederHandler) UpdateMyProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.UpdateProfileMediaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.breederUsecase.UpdateProfileMedia(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}
