package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BeautyProBR/beautypro-api/internal/audit"
	financial "github.com/BeautyProBR/beautypro-api/internal/domain/financial"
	"github.com/BeautyProBR/beautypro-api/internal/httperr"
	"github.com/BeautyProBR/beautypro-api/internal/httpresp"
	"github.com/BeautyProBR/beautypro-api/internal/middleware"
	"github.com/BeautyProBR/beautypro-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

// Razão financeiro append-only: cria e lê, nunca altera.
type FinancialHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewFinancialHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *FinancialHandler {
	return &FinancialHandler{db: db, audit: dispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateFinancialEntryRequest struct {
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category"`
	ServiceID   *uint   `json:"service_id"`
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
}

// ======================================================
// CREATE
// ======================================================

func (h *FinancialHandler) Create(c *gin.Context) {
	profID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var req CreateFinancialEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !financial.ValidEntryType(req.Type) {
		httperr.BadRequest(c, "invalid_entry_type", "Tipo deve ser income ou expense.")
		return
	}

	// Vínculo opcional com item do catálogo: precisa ser do mesmo dono.
	if req.ServiceID != nil {
		var count int64
		h.db.Model(&models.Service{}).
			Where("id = ? AND professional_id = ?", *req.ServiceID, profID).
			Count(&count)
		if count == 0 {
			httperr.BadRequest(c, "service_not_found", "Serviço vinculado não encontrado.")
			return
		}
	}

	entry := models.FinancialEntry{
		ProfessionalID: profID,
		Type:           req.Type,
		Description:    req.Description,
		Amount:         req.Amount,
		Category:       req.Category,
		ServiceID:      req.ServiceID,
		Date:           req.Date,
	}

	if err := h.db.Create(&entry).Error; err != nil {
		httperr.Internal(c, "failed_to_create_entry", "Erro ao criar lançamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ProfessionalID: profID,
		Action:         "financial_entry_created",
		Entity:         "financial_entry",
		EntityID:       &entry.ID,
	})

	httpresp.Created(c, entry)
}

// ======================================================
// LIST
// ======================================================

func (h *FinancialHandler) List(c *gin.Context) {
	profID := c.MustGet(middleware.ContextProfessionalID).(uint)

	q := h.filtered(c, profID)

	if entryType := c.Query("entry_type"); entryType != "" {
		q = q.Where("type = ?", entryType)
	}

	var entries []models.FinancialEntry
	if err := q.
		Order("date DESC").
		Order("created_at DESC").
		Find(&entries).Error; err != nil {

		httperr.Internal(c, "failed_to_list_entries", "Erro ao listar lançamentos.")
		return
	}

	httpresp.OK(c, entries)
}

// ======================================================
// BALANCE
// ======================================================

func (h *FinancialHandler) Balance(c *gin.Context) {
	profID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var entries []models.FinancialEntry
	if err := h.filtered(c, profID).Find(&entries).Error; err != nil {
		httperr.Internal(c, "failed_to_compute_balance", "Erro ao calcular saldo.")
		return
	}

	b := financial.Summarize(entries)

	c.JSON(http.StatusOK, gin.H{
		"income":   b.Income,
		"expenses": b.Expenses,
		"balance":  b.Balance,
		"period": gin.H{
			"start_date": c.Query("start_date"),
			"end_date":   c.Query("end_date"),
		},
	})
}

// ======================================================
// HELPERS
// ======================================================

func (h *FinancialHandler) filtered(c *gin.Context, profID uint) *gorm.DB {
	q := h.db.Model(&models.FinancialEntry{}).
		Where("professional_id = ?", profID)

	if start := c.Query("start_date"); start != "" {
		q = q.Where("date >= ?", start)
	}
	if end := c.Query("end_date"); end != "" {
		q = q.Where("date <= ?", end)
	}

	return q
}
