package projectRoutes

import (
	controllers "tms/controllers/project"
	"tms/middleware"
	"tms/models"
	validators "tms/validators/project"

	"github.com/gofiber/fiber/v2"
)

// SetupProjectRoutes sets up all project routes
func SetupProjectRoutes(app *fiber.App) {
	projectGroup := app.Group("/project")

	projectGroup.Post("/create", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor),
		validators.CreateProject(), controllers.CreateProject)
	projectGroup.Get("/list", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleInstructor),
		validators.ListProjects(), controllers.ListProjects)
	projectGroup.Get("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleInstructor),
		validators.GetProject(), controllers.GetProject)

	projectGroup.Post("/:id/progress", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor),
		validators.RecordProgress(), controllers.RecordProgress)
	projectGroup.Post("/:id/complete", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor),
		validators.CompleteProject(), controllers.CompleteProject)
}
