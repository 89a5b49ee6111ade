package notificationRoutes

import (
	controllers "tms/controllers/notification"
	"tms/middleware"
	"tms/models"
	validators "tms/validators/notification"

	"github.com/gofiber/fiber/v2"
)

// SetupNotificationRoutes sets up all notification routes
func SetupNotificationRoutes(app *fiber.App) {
	notificationGroup := app.Group("/notification")

	notificationGroup.Get("/list", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleInstructor),
		validators.ListNotifications(), controllers.ListNotifications)
	notificationGroup.Put("/:id/read", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleInstructor),
		validators.MarkRead(), controllers.MarkRead)
	notificationGroup.Put("/read-all", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleInstructor),
		controllers.MarkAllRead)
}
