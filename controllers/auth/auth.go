package authController

import (
	"fmt"
	"time"

	"edugate/activity"
	"edugate/middleware"
	"edugate/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Controller struct {
	db          *gorm.DB
	activityLog *activity.Logger
}

func New(db *gorm.DB, activityLog *activity.Logger) *Controller {
	return &Controller{db: db, activityLog: activityLog}
}

// Login authenticates by email and password and issues a JWT. The SIGN_IN
// activity is queued after the response is decided.
func (ctl *Controller) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := ctl.db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	loginTime := time.Now()
	user.LastLogin = &loginTime
	ctl.db.Save(&user)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	ctl.activityLog.Log(activity.Entry{
		UserID:  user.ID,
		Type:    models.ActivitySignIn,
		Details: fmt.Sprintf("Signed in: %s", user.Email),
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"user":  user,
	})
}
