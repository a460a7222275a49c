package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BeautyProBR/beautypro-api/internal/httpresp"
	"github.com/BeautyProBR/beautypro-api/internal/middleware"
	"github.com/BeautyProBR/beautypro-api/internal/models"
)

type ProfileHandler struct {
	db *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profIDVal, exists := c.Get(middleware.ContextProfessionalID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	profID, ok := profIDVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
		return
	}

	var prof models.Professional
	if err := h.db.First(&prof, profID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	httpresp.OK(c, prof)
}
