package adminRoutes

import (
	controllers "tms/controllers/admin"
	"tms/middleware"
	"tms/models"
	validators "tms/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the admin management routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin")

	adminGroup.Get("/dashboard", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin),
		controllers.Dashboard)
	adminGroup.Post("/instructor", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin),
		validators.Signup(), controllers.CreateInstructor)
	adminGroup.Get("/instructor/list", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin),
		controllers.ListInstructors)
}
