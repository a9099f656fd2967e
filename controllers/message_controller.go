package controllers

import (
	"net/http"
	"strconv"

	"ayurbackend/services"

	"github.com/gin-gonic/gin"
)

type SendMessageInput struct {
	Body string `json:"body" binding:"required"`
}

func SendMessage(c *gin.Context) {
	uid := c.GetUint("userID")

	consultationID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid consultation id"})
		return
	}

	var input SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := services.SendMessage(uint(consultationID), uid, input.Body)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, msg)
}

func ListMessages(c *gin.Context) {
	uid := c.GetUint("userID")

	consultationID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid consultation id"})
		return
	}

	msgs, err := services.ListMessages(uint(consultationID), uid)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}
