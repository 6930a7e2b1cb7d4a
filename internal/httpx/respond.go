package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExposeDetail controls whether Fail includes the underlying error string
// in the response. Set once at startup; true outside production.
var ExposeDetail = false

// OK writes a 200 envelope. Message and data are omitted when empty.
func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, envelope(true, message, data))
}

// Created writes a 201 envelope.
func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, envelope(true, message, data))
}

// List writes a 200 envelope carrying a collection and its count.
func List(c *gin.Context, count int, data any) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

// Fail maps an error to its status code and writes the failure envelope,
// aborting the request. Non-*Error values are treated as internal faults.
func Fail(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = Internal("Something went wrong", err)
	}

	var status int
	switch e.Kind {
	case KindValidation, KindUnsupportedFile:
		status = http.StatusBadRequest
	case KindUnauthorized:
		status = http.StatusUnauthorized
	case KindNotFound:
		status = http.StatusNotFound
	case KindInternal:
		status = http.StatusInternalServerError
	}

	body := gin.H{
		"success": false,
		"message": e.Message,
	}
	if ExposeDetail && e.Err != nil {
		body["error"] = e.Err.Error()
	}
	c.AbortWithStatusJSON(status, body)
}

func envelope(success bool, message string, data any) gin.H {
	body := gin.H{"success": success}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	return body
}
