package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Error string `json:"error"`
}

func Write(c *gin.Context, status int, code string) {
	c.JSON(status, HTTPError{Error: code})
}

func BadRequest(c *gin.Context, code string) {
	Write(c, http.StatusBadRequest, code)
}

func Internal(c *gin.Context, code string) {
	Write(c, http.StatusInternalServerError, code)
}
