package universityController

import (
	"edugate/middleware"
	"edugate/repository"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	universities *repository.UniversityRepository
}

func New(universities *repository.UniversityRepository) *Controller {
	return &Controller{universities: universities}
}

// ListUniversities returns all universities ordered by name
func (ctl *Controller) ListUniversities(c *fiber.Ctx) error {
	universities, err := ctl.universities.List()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch universities!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Universities fetched successfully!", universities)
}
