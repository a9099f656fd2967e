package routes

import (
	"net/http"

	"ayurbackend/controllers"
	"ayurbackend/middlewares"
	"ayurbackend/models"
	"ayurbackend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(rt *services.RealtimeHub, ps *services.PushService, charts *services.DietChartService, recipes services.RecipeDetailSource) *gin.Engine {
	r := gin.Default()

	rc := controllers.NewRealtimeController(rt)
	dc := controllers.NewDietChartController(charts, recipes)
	devc := controllers.NewDeviceController(ps)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.DELETE("/account", controllers.DeleteAccount)
		user.GET("/doctors", controllers.ListDoctors)
		user.PUT("/assessment", controllers.SubmitAssessment)
		user.GET("/assessment", controllers.GetAssessment)
		user.POST("/devices", devc.Register)
		user.DELETE("/devices/:id", devc.Disable)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
	}

	consultations := r.Group("/consultations")
	consultations.Use(middlewares.AuthMiddleware())
	{
		consultations.POST("", middlewares.RequireRole(models.RolePatient), controllers.CreateConsultation)
		consultations.GET("", controllers.ListConsultations)
		consultations.POST("/:id/respond", middlewares.RequireRole(models.RoleDoctor), controllers.RespondConsultation)
		consultations.POST("/:id/messages", controllers.SendMessage)
		consultations.GET("/:id/messages", controllers.ListMessages)
	}

	appointments := r.Group("/appointments")
	appointments.Use(middlewares.AuthMiddleware())
	{
		appointments.POST("", controllers.ScheduleAppointment)
		appointments.GET("", controllers.ListAppointments)
		appointments.POST("/:id/cancel", controllers.CancelAppointment)
		appointments.POST("/:id/complete", middlewares.RequireRole(models.RoleDoctor), controllers.CompleteAppointment)
	}

	notifications := r.Group("/notifications")
	notifications.Use(middlewares.AuthMiddleware())
	{
		notifications.GET("", controllers.ListNotifications)
		notifications.POST("/:id/read", controllers.MarkNotificationRead)
		notifications.POST("/read-all", controllers.MarkAllNotificationsRead)
	}

	chartsGroup := r.Group("/charts")
	chartsGroup.Use(middlewares.AuthMiddleware())
	{
		chartsGroup.POST("", middlewares.RequireRole(models.RoleDoctor), dc.Generate)
		chartsGroup.GET("", dc.List)
		chartsGroup.GET("/:chartId", dc.Get)
		chartsGroup.DELETE("/:chartId", middlewares.RequireRole(models.RoleDoctor), dc.Delete)
		chartsGroup.POST("/:chartId/review", middlewares.RequireRole(models.RoleDoctor), dc.ReviewNote)
		chartsGroup.POST("/:chartId/edits", middlewares.RequireRole(models.RoleDoctor), dc.RecordEdit)
		chartsGroup.GET("/:chartId/edits", dc.ListEdits)
		chartsGroup.POST("/:chartId/feedback", middlewares.RequireRole(models.RolePatient), dc.Feedback)
	}

	recipesGroup := r.Group("/recipes")
	recipesGroup.Use(middlewares.AuthMiddleware())
	{
		recipesGroup.GET("/:recipeId", dc.RecipeDetail)
	}

	ingredients := r.Group("/ingredients")
	ingredients.Use(middlewares.AuthMiddleware())
	{
		ingredients.GET("/:name/pairings", dc.IngredientPairings)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/notifications", rc.NotificationsWS)
	}

	return r
}
