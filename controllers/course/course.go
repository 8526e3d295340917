package controllers

import (
	"errors"
	"fmt"

	"edugate/activity"
	"edugate/middleware"
	"edugate/models"
	"edugate/repository"
	courseValidator "edugate/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CourseController struct {
	courses      *repository.CourseRepository
	universities *repository.UniversityRepository
	activityLog  *activity.Logger
}

func NewCourseController(
	courses *repository.CourseRepository,
	universities *repository.UniversityRepository,
	activityLog *activity.Logger,
) *CourseController {
	return &CourseController{courses: courses, universities: universities, activityLog: activityLog}
}

// ListCourses runs the filtered, paginated course search
func (ctl *CourseController) ListCourses(c *fiber.Ctx) error {
	filter, ok := c.Locals("courseFilter").(repository.CourseFilter)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	courses, pagination, err := ctl.courses.Search(filter)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses":    courses,
		"pagination": pagination,
	})
}

// GetCourse fetches a single course with its university
func (ctl *CourseController) GetCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	course, err := ctl.courses.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// CreateCourse creates a new course
func (ctl *CourseController) CreateCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if _, err := ctl.universities.FindByID(reqData.UniversityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ValidationErrorResponse(c, map[string]string{"universityId": "University not found!"})
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	currency := reqData.Currency
	if currency == "" {
		currency = "GBP"
	}

	course := models.Course{
		CourseName:         reqData.CourseName,
		CourseNameUz:       reqData.CourseNameUz,
		Description:        reqData.Description,
		DescriptionUz:      reqData.DescriptionUz,
		Level:              reqData.Level,
		UniversityID:       reqData.UniversityID,
		Campus:             reqData.Campus,
		TuitionFee:         reqData.TuitionFee,
		Currency:           currency,
		SelectedIntake:     reqData.SelectedIntake,
		SelectedDuration:   reqData.SelectedDuration,
		SubmissionDeadline: reqData.ParsedDeadline,
		OfferTAT:           reqData.OfferTAT,
		ExpressOffer:       reqData.ExpressOffer,
		ModeOfStudy:        reqData.ModeOfStudy,
	}

	if err := ctl.courses.Create(&course); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	ctl.activityLog.Log(activity.Entry{
		UserID:  userId,
		Type:    models.ActivityCreateCourse,
		Details: fmt.Sprintf("Created course: %s (%d)", course.CourseName, course.ID),
	})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// DeleteCourse removes a course by id
func (ctl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	course, err := ctl.courses.Delete(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	ctl.activityLog.Log(activity.Entry{
		UserID:  userId,
		Type:    models.ActivityDeleteCourse,
		Details: fmt.Sprintf("Deleted course: %d", course.ID),
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
