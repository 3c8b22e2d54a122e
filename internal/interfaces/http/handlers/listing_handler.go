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

// ListingHandler handles breeder and adoption listing endpoints
type ListingHandler struct {
	listingUsecase *usecases.ListingUsecase
}

// NewListingHandler creates a new listing handler
func NewListingHandler(listingUsecase *usecases.ListingUsecase) *ListingHandler {
	return &ListingHandler{
		listingUsecase: listingUsecase,
	}
}

// CreateBreederListing creates a commercial listing
// POST /api/v1/breeder/listings
func (h *ListingHandler) CreateBreederListing(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.BreederListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	listing, err := h.listingUsecase.CreateBreederListing(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"listing": listing})
}

// GetBreederListing resolves a single listing
// GET /api/v1/listings/:id
func (h *ListingHandler) GetBreederListing(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid listing id"))
		return
	}

	listing, err := h.listingUsecase.GetBreederListing(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"listing": listing})
}

// MyBreederListings lists the caller's own listings
// GET /api/v1/breeder/listings
func (h *ListingHandler) MyBreederListings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	listings, err := h.listingUsecase.MyBreederListings(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"listings": listings})
}

// UpdateBreederListing edits an owned listing
// PUT /api/v1/breeder/listings/:id
func (h *ListingHandler) UpdateBreederListing(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid listing id"))
		return
	}

	var input entities.BreederListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	listing, err := h.listingUsecase.UpdateBreederListing(c.Request.Context(), userID, listingID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"listing": listing})
}

// SetBreederListingStatus pauses or resumes an owned listing
// PATCH /api/v1/breeder/listings/:id/status
func (h *ListingHandler) SetBreederListingStatus(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid listing id"))
		return
	}

	var input struct {
		Status entities.ListingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.listingUsecase.SetBreederListingStatus(c.Request.Context(), userID, listingID, input.Status); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "listing status updated"})
}

// DeleteBreederListing soft deletes an owned listing
// DELETE /api/v1/breeder/listings/:id
func (h *ListingHandler) DeleteBreederListing(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid listing id"))
		return
	}

	if err := h.listingUsecase.DeleteBreederListing(c.Request.Context(), userID, listingID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "listing deleted"})
}

// SearchListings searches active breeder listings
// GET /api/v1/listings
func (h *ListingHandler) SearchListings(c *gin.Context) {
	var filter entities.ListingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	filter.Skip, filter.Take = utils.NormalizePagination(filter.Skip, filter.Take)

	listings, total, err := h.listingUsecase.Search(c.Request.Context(), &filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"listings": listings,
		"total":    total,
		"skip":     filter.Skip,
		"take":     filter.Take,
	})
}

// CreateAdoptionListing creates a rehoming listing
// POST /api/v1/adoptions
func (h *ListingHandler) CreateAdoptionListing(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.AdoptionListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	listing, err := h.listingUsecase.CreateAdoptionListing(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"listing": listing})
}

// GetAdoptionListing resolves a rehoming listing
// GET /api/v1/adoptions/:id
func (h *ListingHandler) GetAdoptionListing(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid listing id"))
		return
	}

	listing, err := h.listingUsecase.GetAdoptionListing(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"listing": listing})
}

// ListAdoptionListings lists active rehoming listings
// GET /api/v1/adoptions
func (h *ListingHandler) ListAdoptionListings(c *gin.Context) {
	var query struct {
		CityID  *uuid.UUID `form:"cityId"`
		PetType string     `form:"petType"`
		Skip    int        `form:"skip"`
		Take    int        `form:"take"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	query.Skip, query.Take = utils.NormalizePagination(query.Skip, query.Take)

	listings, total, err := h.listingUsecase.ListAdoptionListings(c.Request.Context(), query.CityID, query.PetType, query.Take, query.Skip)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"listings": listings,
		"total":    total,
		"skip":     query.Skip,
		"take":     query.Take,
	})
}

// MyAdoptionListings lists the caller's own rehoming listings
// GET /api/v1/adoptions/mine
func (h *ListingHandler) MyAdoptionListings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	listings, err := h.listingUsecase.MyAdoptionListings(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"listings": listings})
}

// UpdateAdoptionListing edits an owned rehoming listing
// PUT /api/v1/adoptions/:id
func (h *ListingHandler) UpdateAdoptionListing(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid listing id"))
		return
	}

	var input entities.AdoptionListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	listing, err := h.listingUsecase.UpdateAdoptionListing(c.Request.Context(), userID, listingID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"listing": listing})
}

// DeleteAdoptionListing soft deletes an owned rehoming listing
// DELETE /api/v1/adoptions/:id
func (h *ListingHandler) DeleteAdoptionListing(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid listing id"))
		return
	}

	if err := h.listingUsecase.DeleteAdoptionListing(c.Request.Context(), userID, listingID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "listing deleted"})
}
