package traineeRoutes

import (
	controllers "tms/controllers/trainee"
	"tms/middleware"
	"tms/models"
	validators "tms/validators/trainee"

	"github.com/gofiber/fiber/v2"
)

// SetupTraineeRoutes sets up all trainee routes
func SetupTraineeRoutes(app *fiber.App) {
	traineeGroup := app.Group("/trainee")

	// Instructor registers and views trainees
	traineeGroup.Post("/register", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor),
		validators.RegisterTrainee(), controllers.RegisterTrainee)
	traineeGroup.Get("/list", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleInstructor),
		validators.ListTrainees(), controllers.ListTrainees)
	traineeGroup.Get("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleInstructor),
		validators.GetTrainee(), controllers.GetTrainee)

	// Admin approval workflow
	adminGroup := app.Group("/admin/trainee")
	adminGroup.Get("/pending", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin),
		validators.ListTrainees(), controllers.ListPendingApprovals)
	adminGroup.Post("/:id/decide", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin),
		validators.DecideTrainee(), controllers.DecideTrainee)
}
