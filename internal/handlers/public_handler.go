package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BeautyProBR/beautypro-api/internal/domain/appointment"
	"github.com/BeautyProBR/beautypro-api/internal/httperr"
	"github.com/BeautyProBR/beautypro-api/internal/models"
	"github.com/BeautyProBR/beautypro-api/internal/timezone"
	ucAppointment "github.com/BeautyProBR/beautypro-api/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// Superfície pública do link de agendamento: perfil do profissional,
// horários livres e solicitação de atendimento, tudo sem login.
type PublicHandler struct {
	db             *gorm.DB
	availabilityUC *ucAppointment.GetAvailability
	createUC       *ucAppointment.CreatePublicAppointment
}

func NewPublicHandler(
	db *gorm.DB,
	availabilityUC *ucAppointment.GetAvailability,
	createUC *ucAppointment.CreatePublicAppointment,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
		createUC:       createUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	Notes       string `json:"notes"`
}

////////////////////////////////////////////////////////
// PROFESSIONAL PROFILE
////////////////////////////////////////////////////////

func (h *PublicHandler) GetProfessional(c *gin.Context) {
	publicID := c.Param("publicID")

	var prof models.Professional
	if err := h.db.Where("public_id = ?", publicID).First(&prof).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("professional_id = ? AND category = ? AND active = true",
			prof.ID, models.CategoryService).
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"professional": gin.H{
			"name":          prof.Name,
			"business_name": prof.BusinessName,
			"phone":         prof.Phone,
		},
		"services": services,
	})
}

////////////////////////////////////////////////////////
// AVAILABLE TIMES
////////////////////////////////////////////////////////

func (h *PublicHandler) AvailableTimes(c *gin.Context) {
	publicID := c.Param("publicID")
	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e serviço obrigatórios.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	var prof models.Professional
	if err := h.db.Where("public_id = ?", publicID).First(&prof).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	date, err := time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(prof.Timezone),
	)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			ProfessionalID: prof.ID,
			ServiceID:      uint(serviceID),
			Date:           date,
		},
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		case httperr.IsBusiness(err, "invalid_category"):
			httperr.BadRequest(c, "invalid_category", "Produto não ocupa agenda.")
		default:
			httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":            dateStr,
		"available_times": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT (always pending)
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	publicID := c.Param("publicID")

	var prof models.Professional
	if err := h.db.Where("public_id = ?", publicID).First(&prof).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		ucAppointment.CreatePublicAppointmentInput{
			ProfessionalID: prof.ID,
			ClientName:     req.ClientName,
			ClientPhone:    req.ClientPhone,
			ServiceID:      req.ServiceID,
			Date:           req.Date,
			Time:           req.Time,
			Notes:          req.Notes,
		},
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		case httperr.IsBusiness(err, "invalid_category"):
			httperr.BadRequest(c, "invalid_category", "Produto não pode ser agendado.")
		case httperr.IsBusiness(err, "invalid_date_or_time"):
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		case httperr.IsBusiness(err, "past_datetime"):
			httperr.BadRequest(c, "past_datetime", "Escolha um horário no futuro.")
		case httperr.IsBusiness(err, "slot_unavailable"):
			httperr.Conflict(c, "slot_unavailable", "Horário não está mais disponível.")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Agendamento solicitado com sucesso! Aguarde a confirmação do profissional.",
		"appointment": ap,
	})
}
