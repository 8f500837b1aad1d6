package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/wowbarber/wow-barber/internal/config"
	dbpkg "github.com/wowbarber/wow-barber/internal/db"
	"github.com/wowbarber/wow-barber/internal/models"
	"github.com/wowbarber/wow-barber/internal/routes"
)

func newTestEnv(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// :memory: vive por conexão; uma conexão só evita bancos diferentes por query
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	r := gin.New()
	routes.RegisterRoutes(r, db, &config.Config{Timezone: "America/Sao_Paulo"})

	return db, r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func mustCreateService(t *testing.T, db *gorm.DB, name string) models.Service {
	t.Helper()

	s := models.Service{Name: name, Price: 45, Duration: 30}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("create service: %v", err)
	}
	return s
}

func mustCreateBarber(t *testing.T, db *gorm.DB, name string) models.Barber {
	t.Helper()

	b := models.Barber{Name: name, Email: name + "@wowbarber.com"}
	if err := db.Create(&b).Error; err != nil {
		t.Fatalf("create barber: %v", err)
	}
	return b
}

func mustCreateAppointment(t *testing.T, db *gorm.DB, serviceID, barberID string, date time.Time) models.Appointment {
	t.Helper()

	ap := models.Appointment{
		ClientName:  "Cliente Teste",
		ClientEmail: "cliente@example.com",
		ClientPhone: "(11) 90000-0000",
		Date:        date,
		Status:      models.StatusScheduled,
		ServiceID:   serviceID,
		BarberID:    barberID,
	}
	if err := db.Create(&ap).Error; err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	return ap
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()

	if w.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, want, w.Body.String())
	}
}
