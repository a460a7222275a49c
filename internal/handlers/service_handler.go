package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BeautyProBR/beautypro-api/internal/audit"
	"github.com/BeautyProBR/beautypro-api/internal/httperr"
	"github.com/BeautyProBR/beautypro-api/internal/httpresp"
	"github.com/BeautyProBR/beautypro-api/internal/middleware"
	"github.com/BeautyProBR/beautypro-api/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`

	Category      string `json:"category" binding:"required,oneof=service product"`
	DurationMin   int    `json:"duration_minutes"`
	StockQuantity *int   `json:"stock_quantity"`
}

// A categoria decide qual campo é obrigatório: serviço ocupa agenda,
// produto ocupa estoque.
func (r *ServiceRequest) validateCategory(c *gin.Context) bool {
	switch r.Category {
	case models.CategoryService:
		if r.DurationMin <= 0 {
			httperr.BadRequest(c, "invalid_duration", "Serviço exige duração em minutos maior que zero.")
			return false
		}
		r.StockQuantity = nil
	case models.CategoryProduct:
		if r.StockQuantity == nil || *r.StockQuantity < 0 {
			httperr.BadRequest(c, "invalid_stock", "Produto exige quantidade em estoque maior ou igual a zero.")
			return false
		}
		r.DurationMin = 0
	}
	return true
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	profID := c.MustGet(middleware.ContextProfessionalID).(uint)

	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("professional_id = ?", profID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.OK(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	profID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !req.validateCategory(c) {
		return
	}

	svc := models.Service{
		ProfessionalID: profID,
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Category:       req.Category,
		DurationMin:    req.DurationMin,
		StockQuantity:  req.StockQuantity,
		Active:         true,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ProfessionalID: profID,
		Action:         "service_created",
		Entity:         "service",
		EntityID:       &svc.ID,
	})

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	profID := c.MustGet(middleware.ContextProfessionalID).(uint)

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

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !req.validateCategory(c) {
		return
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.Price = req.Price
	svc.Category = req.Category
	svc.DurationMin = req.DurationMin
	svc.StockQuantity = req.StockQuantity

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ProfessionalID: profID,
		Action:         "service_updated",
		Entity:         "service",
		EntityID:       &svc.ID,
	})

	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	profID := c.MustGet(middleware.ContextProfessionalID).(uint)

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

	if err := h.db.Delete(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao excluir serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ProfessionalID: profID,
		Action:         "service_deleted",
		Entity:         "service",
		EntityID:       &svc.ID,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Serviço excluído com sucesso"})
}
