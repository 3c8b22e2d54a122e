package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "pawmart.backend/internal/domain/errors"
	"pawmart.backend/internal/interfaces/http/response"
	"pawmart.backend/internal/usecases"
	"pawmart.backend/pkg/utils"
)

// CatalogHandler serves the public reference catalog
type CatalogHandler struct {
	catalogUsecase *usecases.CatalogUsecase
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogUsecase *usecases.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
	}
}

// ListBreeds lists breeds, optionally filtered by pet type
// GET /api/v1/breeds
func (h *CatalogHandler) ListBreeds(c *gin.Context) {
	breeds, err := h.catalogUsecase.ListBreeds(c.Request.Context(), c.Query("petType"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"breeds": breeds})
}

// ListCities lists all supported cities
// GET /api/v1/cities
func (h *CatalogHandler) ListCities(c *gin.Context) {
	cities, err := h.catalogUsecase.ListCities(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cities": cities})
}

// GetPet resolves a single pet with images
// GET /api/v1/pets/:id
func (h *CatalogHandler) GetPet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid pet id"))
		return
	}

	pet, err := h.catalogUsecase.GetPet(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"pet": pet})
}

// ListPets lists pets with optional type filter
// GET /api/v1/pets
func (h *CatalogHandler) ListPets(c *gin.Context) {
	var query struct {
		PetType string `form:"petType"`
		Skip    int    `form:"skip"`
		Take    int    `form:"take"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	query.Skip, query.Take = utils.NormalizePagination(query.Skip, query.Take)

	pets, total, err := h.catalogUsecase.ListPets(c.Request.Context(), query.PetType, query.Take, query.Skip)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"pets":  pets,
		"total": total,
		"skip":  query.Skip,
		"take":  query.Take,
	})
}
