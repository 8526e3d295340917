package courseRoutes

import (
	controllers "edugate/controllers/course"
	"edugate/middleware"
	validators "edugate/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the authenticated course search routes
func SetupCourseRoutes(app *fiber.App, ctl *controllers.CourseController) {
	courseGroup := app.Group("/course")

	courseGroup.Get("/list", middleware.JWTMiddleware, validators.ListCourses(), ctl.ListCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), ctl.GetCourse)
}
