package controllers

import (
	"net/http"
	"strconv"

	"ayurbackend/services"

	"github.com/gin-gonic/gin"
)

type CreateConsultationInput struct {
	DoctorID uint   `json:"doctor_id" binding:"required"`
	Note     string `json:"note"`
}

func CreateConsultation(c *gin.Context) {
	uid := c.GetUint("userID")

	var input CreateConsultationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, err := services.CreateConsultationRequest(uid, input.DoctorID, input.Note)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, req)
}

type RespondConsultationInput struct {
	Accept bool `json:"accept"`
}

func RespondConsultation(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid consultation id"})
		return
	}

	var input RespondConsultationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, err := services.RespondToConsultation(uint(id), uid, input.Accept)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, req)
}

func ListConsultations(c *gin.Context) {
	uid := c.GetUint("userID")
	role := c.GetString("role")

	reqs, err := services.ListConsultations(uid, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"consultations": reqs})
}
