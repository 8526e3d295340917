package universityRoutes

import (
	universityController "edugate/controllers/university"
	"edugate/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUniversityRoutes(app *fiber.App, ctl *universityController.Controller) {
	universityGroup := app.Group("/university")

	universityGroup.Get("/list", middleware.JWTMiddleware, ctl.ListUniversities)
}
