package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wowbarber/wow-barber/internal/audit"
	"github.com/wowbarber/wow-barber/internal/httperr"
	"github.com/wowbarber/wow-barber/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string     `json:"name" binding:"required"`
	Price       FlexNumber `json:"price" binding:"required"`
	Duration    FlexNumber `json:"duration" binding:"required"`
	Description string     `json:"description"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Order("name ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services")
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request")
		return
	}

	price, err := req.Price.Float64()
	if err != nil {
		httperr.BadRequest(c, "invalid_price")
		return
	}

	duration, err := req.Duration.Int()
	if err != nil {
		httperr.BadRequest(c, "invalid_duration")
		return
	}

	service := models.Service{
		Name:        req.Name,
		Price:       price,
		Duration:    duration,
		Description: req.Description,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "service_created",
		Entity:   "service",
		EntityID: service.ID,
	})

	c.JSON(http.StatusCreated, service)
}
