package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wowbarber/wow-barber/internal/audit"
	"github.com/wowbarber/wow-barber/internal/httperr"
	"github.com/wowbarber/wow-barber/internal/models"
	"github.com/wowbarber/wow-barber/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db    *gorm.DB
	tz    string
	audit *audit.Dispatcher
}

func NewAppointmentHandler(db *gorm.DB, tz string, dispatcher *audit.Dispatcher) *AppointmentHandler {
	return &AppointmentHandler{
		db:    db,
		tz:    tz,
		audit: dispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName  string `json:"clientName" binding:"required"`
	ClientEmail string `json:"clientEmail" binding:"required"`
	ClientPhone string `json:"clientPhone" binding:"required"`
	Date        string `json:"date" binding:"required"` // 2006-01-02T15:04:05
	ServiceID   string `json:"serviceId" binding:"required"`
	BarberID    string `json:"barberId" binding:"required"`
	Notes       string `json:"notes"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	var appointments []models.Appointment
	if err := h.db.
		Preload("Service").
		Preload("Barber").
		Order("date DESC").
		Find(&appointments).Error; err != nil {

		httperr.Internal(c, "failed_to_list_appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request")
		return
	}

	date, err := timezone.ParseDateTime(req.Date, h.tz)
	if err != nil {
		httperr.BadRequest(c, "invalid_date")
		return
	}

	ap := models.Appointment{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		Date:        date,
		Status:      models.StatusScheduled,
		Notes:       req.Notes,
		ServiceID:   req.ServiceID,
		BarberID:    req.BarberID,
	}

	if err := h.db.Create(&ap).Error; err != nil {
		// inclui violação de FK quando serviceId/barberId não existem
		httperr.Internal(c, "failed_to_create_appointment")
		return
	}

	if err := h.db.
		Preload("Service").
		Preload("Barber").
		First(&ap, "id = ?", ap.ID).Error; err != nil {

		httperr.Internal(c, "failed_to_create_appointment")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "status_required")
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, "id = ?", id).Error; err != nil {
		httperr.Internal(c, "failed_to_update_appointment")
		return
	}

	// transição livre: qualquer status pode ser gravado sobre qualquer outro
	ap.Status = req.Status

	if err := h.db.Save(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_update_appointment")
		return
	}

	if err := h.db.
		Preload("Service").
		Preload("Barber").
		First(&ap, "id = ?", ap.ID).Error; err != nil {

		httperr.Internal(c, "failed_to_update_appointment")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{"status": ap.Status},
	})

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.Appointment{}, "id = ?", id)
	if res.Error != nil || res.RowsAffected == 0 {
		httperr.Internal(c, "failed_to_delete_appointment")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
