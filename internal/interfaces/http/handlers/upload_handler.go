package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	domainerrors "pawmart.backend/internal/domain/errors"
	"pawmart.backend/internal/domain/storage"
	"pawmart.backend/internal/interfaces/http/response"
)

// MaxUploadBytes caps a single image upload
const MaxUploadBytes = 5 << 20

var allowedImageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

// UploadHandler stores pet and profile images
type UploadHandler struct {
	store storage.FileStorage
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(store storage.FileStorage) *UploadHandler {
	return &UploadHandler{
		store: store,
	}
}

// UploadImage accepts a multipart image and returns its public URL
// POST /api/v1/uploads
func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("file is required"))
		return
	}
	if file.Size > MaxUploadBytes {
		response.Error(c, domainerrors.BadRequest("file exceeds the 5MB limit"))
		return
	}

	name := strings.ToLower(file.Filename)
	dot := strings.LastIndex(name, ".")
	if dot < 0 {
		response.Error(c, domainerrors.BadRequest("file has no extension"))
		return
	}
	if _, ok := allowedImageExtensions[name[dot:]]; !ok {
		response.Error(c, domainerrors.BadRequest("only jpg, png and webp images are allowed"))
		return
	}

	src, err := file.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, MaxUploadBytes+1))
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(data) > MaxUploadBytes {
		response.Error(c, domainerrors.BadRequest("file exceeds the 5MB limit"))
		return
	}

	url, err := h.store.Store(c.Request.Context(), file.Filename, data)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"url": url})
}
