package authRoutes

import (
	controllers "tms/controllers/auth"
	"tms/middleware"
	validators "tms/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up all authentication routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", validators.Signup(), controllers.Signup)
	authGroup.Post("/login", validators.Login(), controllers.Login)

	authGroup.Post("/send-otp", validators.ForgotPassword(), controllers.SendOTP)
	authGroup.Post("/verify-otp", validators.VerifyOTP(), controllers.VerifyOTP)

	authGroup.Post("/forgot-password", validators.ForgotPassword(), controllers.ForgotPasswordSendOTP)
	authGroup.Post("/reset-password", validators.ResetPassword(), controllers.ResetPassword)
	authGroup.Post("/change-password", middleware.JWTMiddleware, validators.ChangePassword(), controllers.ChangePassword)

	authGroup.Get("/login-history", middleware.JWTMiddleware, controllers.LoginHistoryList)
}
