package controllers

import (
	"net/http"

	"ayurbackend/services"
	"ayurbackend/utils"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	email := c.GetString("email")

	profile, err := services.GetUserProfile(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func UpdateProfile(c *gin.Context) {
	email := c.GetString("email")

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.UpdateUserProfile(email, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}

func DeleteAccount(c *gin.Context) {
	email := c.GetString("email")

	if err := services.DeleteUser(email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "account deactivated"})
}

func ListDoctors(c *gin.Context) {
	doctors, err := services.ListDoctors()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

func SubmitAssessment(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.AssessmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := services.UpsertAssessment(uid, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "assessment saved", "profile": profile})
}

func GetAssessment(c *gin.Context) {
	uid := c.GetUint("userID")

	profile, err := services.GetAssessment(uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no assessment on file"})
		return
	}

	resp := gin.H{"profile": profile}
	if bmi, err := utils.CalculateBMI(profile.HeightCm, profile.WeightKg); err == nil {
		resp["bmi"] = bmi
		resp["bmi_category"] = utils.BMICategory(bmi)
	}

	c.JSON(http.StatusOK, resp)
}
