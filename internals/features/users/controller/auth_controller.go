package controller

import (
	"errors"
	"strconv"
	"time"

	"schoolku_backend/internals/configs"
	teacherModel "schoolku_backend/internals/features/teachers/model"
	userDTO "schoolku_backend/internals/features/users/dto"
	userModel "schoolku_backend/internals/features/users/model"
	helper "schoolku_backend/internals/helpers"
	authmw "schoolku_backend/internals/middlewares/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const sessionTTL = 24 * time.Hour

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// POST /api/auth/login
//
// Unknown login and wrong password return the same message, so the response
// leaks nothing about which logins exist.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req userDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&user, "user_login = ?", req.UserLogin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch account")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.UserPassword)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	displayName := user.UserLogin
	if user.UserTeacherID != nil {
		var t teacherModel.TeacherModel
		if err := ctrl.DB.WithContext(c.UserContext()).
			First(&t, "teacher_id = ?", *user.UserTeacherID).Error; err == nil {
			displayName = t.TeacherName
		}
	}

	if configs.JWTSecret == "" {
		return fiber.NewError(fiber.StatusInternalServerError, "missing JWT secret")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  strconv.Itoa(user.UserID),
		"role": user.UserRole,
		"name": displayName,
		"iat":  now.Unix(),
		"exp":  now.Add(sessionTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to sign token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     authmw.CookieName,
		Value:    signed,
		Expires:  now.Add(sessionTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return helper.JsonOK(c, "login successful", userDTO.LoginResponse{
		Token:       signed,
		UserID:      user.UserID,
		UserLogin:   user.UserLogin,
		UserRole:    user.UserRole,
		DisplayName: displayName,
	})
}

// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     authmw.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return helper.JsonOK(c, "logged out", nil)
}

// GET /api/u/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	return helper.JsonOK(c, "session identity", fiber.Map{
		"user_id":   c.Locals("user_id"),
		"user_role": c.Locals("user_role"),
		"user_name": c.Locals("user_name"),
	})
}
