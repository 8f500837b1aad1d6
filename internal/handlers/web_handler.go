package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type WebHandler struct{}

func NewWebHandler() *WebHandler {
	return &WebHandler{}
}

func (h *WebHandler) Landing(c *gin.Context) {
	c.HTML(http.StatusOK, "landing.html", gin.H{
		"Page": "landing",
	})
}

func (h *WebHandler) Booking(c *gin.Context) {
	c.HTML(http.StatusOK, "booking.html", gin.H{
		"Page": "booking",
	})
}

func (h *WebHandler) Admin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Page": "admin",
	})
}
