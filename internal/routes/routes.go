package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wowbarber/wow-barber/internal/audit"
	"github.com/wowbarber/wow-barber/internal/config"
	"github.com/wowbarber/wow-barber/internal/handlers"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(db, cfg.Timezone, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	barberHandler := handlers.NewBarberHandler(db, auditDispatcher)
	seedHandler := handlers.NewSeedHandler(db, auditDispatcher)
	webHandler := handlers.NewWebHandler()

	// ======================================================
	// 🌍 ROTAS WEB (HTML)
	// ======================================================
	r.GET("/", webHandler.Landing)
	r.GET("/booking", webHandler.Booking)
	r.GET("/admin", webHandler.Admin)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", appointmentHandler.Create)
		api.PUT("/appointments/:id", appointmentHandler.UpdateStatus)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)

		api.GET("/services", serviceHandler.List)
		api.POST("/services", serviceHandler.Create)

		api.GET("/barbers", barberHandler.List)
		api.POST("/barbers", barberHandler.Create)

		api.POST("/seed", seedHandler.Run)
	}
}
