package courseValidator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"edugate/middleware"
	"edugate/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

var validate = newValidate()

// newValidate keys field errors by the json tag, so clients get back the
// names they sent (e.g. "universityId", not "UniversityID").
func newValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CreateCourseRequest is the course schema shared by the create form and
// the import pipeline. Field names mirror the JSON/form keys.
type CreateCourseRequest struct {
	CourseName         string  `json:"courseName" form:"courseName" validate:"required"`
	CourseNameUz       string  `json:"courseNameUz" form:"courseNameUz" validate:"required"`
	Description        string  `json:"description" form:"description"`
	DescriptionUz      string  `json:"descriptionUz" form:"descriptionUz"`
	Level              string  `json:"level" form:"level" validate:"required,oneof=Undergraduate Postgraduate"`
	UniversityID       uint    `json:"universityId" form:"universityId" validate:"required"`
	Campus             string  `json:"campus" form:"campus" validate:"required"`
	TuitionFee         float64 `json:"tuitionFee" form:"tuitionFee" validate:"gte=0"`
	Currency           string  `json:"currency" form:"currency"`
	SelectedIntake     string  `json:"selectedIntake" form:"selectedIntake" validate:"required"`
	SelectedDuration   string  `json:"selectedDuration" form:"selectedDuration" validate:"required"`
	SubmissionDeadline string  `json:"submissionDeadline" form:"submissionDeadline"`
	OfferTAT           *int    `json:"offerTAT" form:"offerTAT"`
	ExpressOffer       bool    `json:"expressOffer" form:"expressOffer"`
	ModeOfStudy        string  `json:"modeOfStudy" form:"modeOfStudy"`

	// ParsedDeadline is filled by the validator when SubmissionDeadline is set.
	ParsedDeadline *time.Time `json:"-" form:"-" validate:"-"`
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			if fieldErrs, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range fieldErrs {
					errors[fe.Field()] = fieldMessage(fe)
				}
			} else {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
			}
		}

		if reqData.SubmissionDeadline != "" {
			if parsed, err := now.Parse(reqData.SubmissionDeadline); err != nil {
				errors["submissionDeadline"] = "Submission deadline must be a valid date!"
			} else {
				reqData.ParsedDeadline = &parsed
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CourseID validator middleware for routes carrying a course id param
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}

		c.Locals("courseID", uint(id))
		return c.Next()
	}
}

// ListCourses parses the search query parameters into a CourseFilter
func ListCourses() fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := repository.ParseCourseFilter(c.Queries())
		c.Locals("courseFilter", filter)
		return c.Next()
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required!", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s!", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("%s must be a positive number!", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid!", fe.Field())
	}
}
