package response

import (
	"errors"
	"net/http"

	"brandtracker-api/pkg/paginator"

	"github.com/gin-gonic/gin"
)

// Resp is the JSON envelope shared by every endpoint.
type Resp struct {
	Success    bool                 `json:"success"`
	Data       any                  `json:"data,omitempty"`
	Error      string               `json:"error,omitempty"`
	Pagination *paginator.Paginator `json:"pagination,omitempty"`
}

// ErrorMapping maps domain sentinel errors to HTTP status codes.
type ErrorMapping map[error]int

// OK sends 200 with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{Success: true, Data: data})
}

// OKPaginated sends 200 with data and pagination info.
func OKPaginated(c *gin.Context, data any, pag paginator.Paginator) {
	c.JSON(http.StatusOK, Resp{Success: true, Data: data, Pagination: &pag})
}

// Created sends 201 with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Resp{Success: true, Data: data})
}

// BadRequest sends 400 with the error message.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Resp{Success: false, Error: err.Error()})
}

// NotFound sends 404 with the error message.
func NotFound(c *gin.Context, err error) {
	c.JSON(http.StatusNotFound, Resp{Success: false, Error: err.Error()})
}

// Error looks up err in eMap and sends the mapped status; unmapped errors
// become an opaque 500 so internals never leak to clients. Matching uses
// errors.Is so wrapped sentinels still map.
func Error(c *gin.Context, err error, eMap ErrorMapping) {
	for sentinel, status := range eMap {
		if errors.Is(err, sentinel) {
			c.JSON(status, Resp{Success: false, Error: err.Error()})
			return
		}
	}
	c.JSON(http.StatusInternalServerError, Resp{Success: false, Error: "internal server error"})
}
