package controller

import (
	"errors"
	"strconv"
	"strings"

	userDTO "schoolku_backend/internals/features/users/dto"
	userModel "schoolku_backend/internals/features/users/model"
	helper "schoolku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

// POST /api/a/users
func (ctrl *UserController) Create(c *fiber.Ctx) error {
	var req userDTO.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	m := req.ToModel(string(hashed))
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return fiber.NewError(fiber.StatusConflict, "login already in use")
		}
		if helper.IsForeignKeyViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "unknown teacher reference")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create user")
	}
	return helper.JsonCreated(c, "user created", m)
}

// GET /api/a/users?q=&role=
func (ctrl *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	tx := ctrl.DB.WithContext(c.UserContext()).Model(&userModel.UserModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("LOWER(user_login) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	if role := strings.ToLower(strings.TrimSpace(c.Query("role"))); role != "" {
		tx = tx.Where("user_role = ?", role)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count users")
	}

	var rows []userModel.UserModel
	if err := tx.Order("user_login ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list users")
	}
	return helper.JsonList(c, "users", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/users/:id
func (ctrl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	var m userModel.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch user")
	}
	return helper.JsonOK(c, "user detail", m)
}

// PUT /api/a/users/:id
//
// The stored hash changes only when a new password is supplied.
func (ctrl *UserController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	var req userDTO.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m userModel.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch user")
	}

	var hash *string
	if req.UserPassword != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.UserPassword), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
		}
		s := string(hashed)
		hash = &s
	}

	req.ApplyUpdates(&m, hash)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return fiber.NewError(fiber.StatusConflict, "login already in use")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update user")
	}
	return helper.JsonUpdated(c, "user updated", m)
}

// DELETE /api/a/users/:id
//
// A teacher's account only goes away with the teacher itself; deleting it
// here would leave the teacher unable to sign in.
func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	var m userModel.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch user")
	}
	if m.UserTeacherID != nil {
		return fiber.NewError(fiber.StatusConflict, "user belongs to a teacher; delete the teacher instead")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Delete(&userModel.UserModel{}, "user_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete user")
	}
	return helper.JsonDeleted(c, "user deleted", fiber.Map{"user_id": id})
}
