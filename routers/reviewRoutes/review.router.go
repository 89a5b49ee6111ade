package reviewRoutes

import (
	controllers "tms/controllers/review"
	"tms/middleware"
	"tms/models"
	validators "tms/validators/review"

	"github.com/gofiber/fiber/v2"
)

// SetupReviewRoutes sets up all progress review routes
func SetupReviewRoutes(app *fiber.App) {
	reviewGroup := app.Group("/review")

	reviewGroup.Post("/share", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor),
		validators.ShareProgress(), controllers.ShareProgress)
	reviewGroup.Get("/list", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleInstructor),
		validators.ListReviews(), controllers.ListReviews)
	reviewGroup.Post("/:id/complete", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin),
		validators.CompleteReview(), controllers.CompleteReview)
}
