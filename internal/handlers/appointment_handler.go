package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BeautyProBR/beautypro-api/internal/httperr"
	"github.com/BeautyProBR/beautypro-api/internal/middleware"
	ucAppointment "github.com/BeautyProBR/beautypro-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	listUC    *ucAppointment.ListAppointments
	resolveUC *ucAppointment.ResolveAppointment
	proposeUC *ucAppointment.ProposeReschedule
}

func NewAppointmentHandler(
	listUC *ucAppointment.ListAppointments,
	resolveUC *ucAppointment.ResolveAppointment,
	proposeUC *ucAppointment.ProposeReschedule,
) *AppointmentHandler {
	return &AppointmentHandler{
		listUC:    listUC,
		resolveUC: resolveUC,
		proposeUC: proposeUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateAppointmentRequest struct {
	Status  string `json:"status" binding:"required,oneof=confirmed rejected"`
	NewDate string `json:"new_date"`
	NewTime string `json:"new_time"`
}

type ProposeRescheduleRequest struct {
	Date1 string `json:"date1" binding:"required"`
	Time1 string `json:"time1" binding:"required"`
	Date2 string `json:"date2"`
	Time2 string `json:"time2"`
	Date3 string `json:"date3"`
	Time3 string `json:"time3"`

	Message string `json:"message"`
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	profID := c.MustGet(middleware.ContextProfessionalID).(uint)

	aps, err := h.listUC.Execute(
		c.Request.Context(),
		ucAppointment.ListAppointmentsInput{
			ProfessionalID: profID,
			Date:           c.Query("date"),
			Status:         c.Query("status"),
		},
	)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, aps)
}

// ======================================================
// UPDATE (confirm / reject)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	profID := c.MustGet(middleware.ContextProfessionalID).(uint)

	apID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Agendamento inválido.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.resolveUC.Execute(
		c.Request.Context(),
		ucAppointment.ResolveAppointmentInput{
			ProfessionalID: profID,
			AppointmentID:  uint(apID),
			Status:         req.Status,
			NewDate:        req.NewDate,
			NewTime:        req.NewTime,
		},
	)
	if err != nil {
		mapLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// PROPOSE RESCHEDULE
// ======================================================

func (h *AppointmentHandler) ProposeReschedule(c *gin.Context) {
	profID := c.MustGet(middleware.ContextProfessionalID).(uint)

	apID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Agendamento inválido.")
		return
	}

	var req ProposeRescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	out, err := h.proposeUC.Execute(
		c.Request.Context(),
		ucAppointment.ProposeRescheduleInput{
			ProfessionalID: profID,
			AppointmentID:  uint(apID),
			Date1:          req.Date1,
			Time1:          req.Time1,
			Date2:          req.Date2,
			Time2:          req.Time2,
			Date3:          req.Date3,
			Time3:          req.Time3,
			Message:        req.Message,
		},
	)
	if err != nil {
		mapLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":          "Proposta de reagendamento enviada",
		"appointment":      out.Appointment,
		"whatsapp_message": out.WhatsAppMessage,
	})
}

// ======================================================
// ERROR MAPPING
// ======================================================

func mapLifecycleError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
	case httperr.IsBusiness(err, "professional_not_found"):
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.Conflict(c, "invalid_state", "Agendamento não está mais pendente.")
	case httperr.IsBusiness(err, "time_conflict"):
		httperr.Conflict(c, "time_conflict", "Conflito de horário com outro agendamento confirmado.")
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
	case httperr.IsBusiness(err, "past_datetime"):
		httperr.BadRequest(c, "past_datetime", "Horário já passou.")
	case httperr.IsBusiness(err, "invalid_status"):
		httperr.BadRequest(c, "invalid_status", "Status inválido.")
	case httperr.IsBusiness(err, "missing_first_option"):
		httperr.BadRequest(c, "missing_first_option", "Informe ao menos a primeira opção de horário.")
	default:
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}
