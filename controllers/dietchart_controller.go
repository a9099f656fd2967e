package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"ayurbackend/models"
	"ayurbackend/services"

	"github.com/gin-gonic/gin"
)

type DietChartController struct {
	Charts  *services.DietChartService
	Recipes services.RecipeDetailSource
}

func NewDietChartController(cs *services.DietChartService, rd services.RecipeDetailSource) *DietChartController {
	return &DietChartController{Charts: cs, Recipes: rd}
}

type GenerateChartInput struct {
	PatientID uint `json:"patient_id" binding:"required"`
	NumDays   int  `json:"num_days"`
}

func (dc *DietChartController) Generate(c *gin.Context) {
	doctorID := c.GetUint("userID")

	var input GenerateChartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, err := services.FindUserByID(input.PatientID)
	if err != nil || patient.Role != models.RolePatient {
		c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
		return
	}

	profile, err := services.GetAssessment(patient.ID)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "patient has not completed the assessment"})
		return
	}

	chart, err := dc.Charts.Generate(doctorID, patient, profile, input.NumDays)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrIncompleteProfile):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrTooManyDays):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	if err := dc.Charts.SaveDietChart(chart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save chart"})
		return
	}

	services.EmitNotification(patient.ID, models.NotifyDietChart,
		"A new diet chart has been prepared for you")

	c.JSON(http.StatusCreated, chart)
}

func (dc *DietChartController) Get(c *gin.Context) {
	uid := c.GetUint("userID")
	role := c.GetString("role")

	chart, err := dc.Charts.GetChart(c.Param("chartId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "chart not found"})
		return
	}

	// Patients see only their own charts; doctors any chart they authored.
	if role == models.RolePatient && chart.PatientID != uid {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your chart"})
		return
	}
	if role == models.RoleDoctor && chart.DoctorID != uid {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your chart"})
		return
	}

	c.JSON(http.StatusOK, chart)
}

func (dc *DietChartController) List(c *gin.Context) {
	uid := c.GetUint("userID")
	role := c.GetString("role")

	patientID := uid
	if role == models.RoleDoctor {
		pid, err := strconv.ParseUint(c.Query("patient_id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "patient_id query parameter required"})
			return
		}
		patientID = uint(pid)
	}

	charts, err := dc.Charts.ListChartsForPatient(patientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"charts": charts})
}

func (dc *DietChartController) Delete(c *gin.Context) {
	doctorID := c.GetUint("userID")

	if err := dc.Charts.DeleteChart(c.Param("chartId"), doctorID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "chart deleted"})
}

type ReviewNoteInput struct {
	Note string `json:"note" binding:"required"`
}

func (dc *DietChartController) ReviewNote(c *gin.Context) {
	doctorID := c.GetUint("userID")

	var input ReviewNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := dc.Charts.AddReviewNote(c.Param("chartId"), doctorID, input.Note); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "review note saved"})
}

type ChartEditInput struct {
	EditType string `json:"edit_type" binding:"required"`
	Reason   string `json:"reason"`
	Changes  string `json:"changes"`
}

func (dc *DietChartController) RecordEdit(c *gin.Context) {
	doctorID := c.GetUint("userID")

	var input ChartEditInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	edit, err := dc.Charts.RecordChartEdit(c.Param("chartId"), doctorID, input.EditType, input.Reason, input.Changes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, edit)
}

func (dc *DietChartController) ListEdits(c *gin.Context) {
	uid := c.GetUint("userID")

	edits, err := dc.Charts.ListChartEdits(c.Param("chartId"), uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"edits": edits})
}

// RecipeDetail returns the ingredient list and preparation steps for one
// recipe from a generated chart.
func (dc *DietChartController) RecipeDetail(c *gin.Context) {
	if dc.Recipes == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "recipe lookups not configured"})
		return
	}
	recipeID := c.Param("recipeId")

	ingredients, err := dc.Recipes.GetRecipeIngredients(recipeID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	instructions, err := dc.Recipes.GetRecipeInstructions(recipeID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipe_id":    recipeID,
		"ingredients":  ingredients,
		"instructions": instructions,
	})
}

// IngredientPairings surfaces the flavor-pairing lookup for meal tweaks.
func (dc *DietChartController) IngredientPairings(c *gin.Context) {
	if dc.Recipes == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "recipe lookups not configured"})
		return
	}

	pairings, err := dc.Recipes.GetIngredientPairings(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingredient": c.Param("name"), "pairings": pairings})
}

type FeedbackInput struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

func (dc *DietChartController) Feedback(c *gin.Context) {
	uid := c.GetUint("userID")

	var input FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fb, err := dc.Charts.SubmitFeedback(c.Param("chartId"), uid, input.Rating, input.Comment)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, fb)
}
