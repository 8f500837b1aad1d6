package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wowbarber/wow-barber/internal/audit"
	"github.com/wowbarber/wow-barber/internal/httperr"
	"github.com/wowbarber/wow-barber/internal/seed"
)

type SeedHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSeedHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *SeedHandler {
	return &SeedHandler{db: db, audit: dispatcher}
}

// Run insere o catálogo fixo de demonstração. Sem idempotência:
// chamar duas vezes duplica tudo (conveniência de dev, não operação de prod).
func (h *SeedHandler) Run(c *gin.Context) {
	services := seed.Services()
	barbers := seed.Barbers()

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&services).Error; err != nil {
			return err
		}
		return tx.Create(&barbers).Error
	})

	if err != nil {
		httperr.Internal(c, "failed_to_seed_database")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action: "catalog_seeded",
		Entity: "catalog",
		Metadata: map[string]any{
			"services": len(services),
			"barbers":  len(barbers),
		},
	})

	c.JSON(http.StatusOK, gin.H{
		"message":  "Database seeded successfully",
		"services": len(services),
		"barbers":  len(barbers),
	})
}
