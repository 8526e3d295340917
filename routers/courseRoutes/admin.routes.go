package courseRoutes

import (
	controllers "edugate/controllers/course"
	"edugate/middleware"
	"edugate/models"
	validators "edugate/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up the admin course management routes.
// The role gate sits on the group so non-admins are rejected before any
// validator or body parsing runs.
func SetupAdminCourseRoutes(app *fiber.App, ctl *controllers.CourseController, importCtl *controllers.ImportController) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	adminGroup.Post("/create", validators.CreateCourse(), ctl.CreateCourse)
	adminGroup.Delete("/:id", validators.CourseID(), ctl.DeleteCourse)
	adminGroup.Post("/import", importCtl.ImportCourses)
}
