package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BeautyProBR/beautypro-api/internal/httperr"
	"github.com/BeautyProBR/beautypro-api/internal/images"
	"github.com/BeautyProBR/beautypro-api/internal/middleware"
	"github.com/BeautyProBR/beautypro-api/internal/models"
	"github.com/BeautyProBR/beautypro-api/internal/storage"
)

const (
	maxPhotoBytes = 5 << 20 // 5 MiB
	photoMaxEdge  = 1280
)

type ServicePhotoHandler struct {
	db    *gorm.DB
	store *storage.PhotoStore
}

func NewServicePhotoHandler(db *gorm.DB, store *storage.PhotoStore) *ServicePhotoHandler {
	return &ServicePhotoHandler{db: db, store: store}
}

// Upload recebe multipart "photo", converte para WebP redimensionado
// e grava no S3. A URL resultante fica no catálogo público.
func (h *ServicePhotoHandler) Upload(c *gin.Context) {
	profID := c.MustGet(middleware.ContextProfessionalID).(uint)

	if !h.store.Enabled() {
		httperr.Write(c, http.StatusServiceUnavailable, "storage_disabled", "Upload de fotos não está configurado.")
		return
	}

	id := c.Param("id")

	var svc models.Service
	if err := h.db.
		Where("id = ? AND professional_id = ?", id, profID).
		First(&svc).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Erro ao buscar serviço.")
		return
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Envie o arquivo no campo 'photo'.")
		return
	}
	defer file.Close()

	if header.Size > maxPhotoBytes {
		httperr.BadRequest(c, "photo_too_large", "Foto acima do limite de 5MB.")
		return
	}

	raw, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes+1))
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Erro ao ler o arquivo.")
		return
	}

	webpData, err := images.ToWebP(raw, photoMaxEdge)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Arquivo não é uma imagem JPEG/PNG válida.")
		return
	}

	url, err := h.store.UploadServicePhoto(c.Request.Context(), profID, svc.ID, webpData)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Erro ao enviar a foto.")
		return
	}

	svc.PhotoURL = url
	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao salvar a foto.")
		return
	}

	c.JSON(http.StatusOK, svc)
}
