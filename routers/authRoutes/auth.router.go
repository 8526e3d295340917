package authRoutes

import (
	authController "edugate/controllers/auth"
	authValidators "edugate/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, ctl *authController.Controller) {
	authGroup := app.Group("/auth")

	authGroup.Post("/login", authValidators.Login(), ctl.Login)
}
