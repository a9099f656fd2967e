package controllers

import (
	"net/http"
	"strconv"
	"time"

	"ayurbackend/services"

	"github.com/gin-gonic/gin"
)

type ScheduleAppointmentInput struct {
	ConsultationID uint      `json:"consultation_id" binding:"required"`
	ScheduledAt    time.Time `json:"scheduled_at" binding:"required"`
	DurationMin    int       `json:"duration_min"`
	Mode           string    `json:"mode"`
}

func ScheduleAppointment(c *gin.Context) {
	uid := c.GetUint("userID")

	var input ScheduleAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := services.ScheduleAppointment(input.ConsultationID, uid, input.ScheduledAt, input.DurationMin, input.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, appt)
}

func ListAppointments(c *gin.Context) {
	uid := c.GetUint("userID")
	role := c.GetString("role")
	upcoming := c.Query("upcoming") == "true"

	appts, err := services.ListAppointments(uid, role, upcoming)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

func CancelAppointment(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}

	if err := services.CancelAppointment(uint(id), uid); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "appointment cancelled"})
}

func CompleteAppointment(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}

	if err := services.CompleteAppointment(uint(id), uid); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "appointment completed"})
}
