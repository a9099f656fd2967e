package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestDeviceEndpointsWithoutPushConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)

	dc := NewDeviceController(nil)
	r := gin.New()
	r.POST("/devices", dc.Register)
	r.DELETE("/devices/:id", dc.Disable)

	t.Run("register answers 503", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/devices",
			strings.NewReader(`{"platform":"android","token":"tok"}`))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("disable answers 503", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/devices/3", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
