package utils

import (
	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Field   string      `json:"field,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
	})
}

// RespondFieldError is RespondError plus the offending field name, for
// validation and state-conflict responses.
func RespondFieldError(c *gin.Context, code int, err error, field string) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Field:   field,
	})
}
