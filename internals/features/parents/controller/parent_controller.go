package controller

import (
	"errors"
	"strconv"
	"strings"

	parentDTO "schoolku_backend/internals/features/parents/dto"
	parentModel "schoolku_backend/internals/features/parents/model"
	studentModel "schoolku_backend/internals/features/students/model"
	helper "schoolku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ParentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewParentController(db *gorm.DB) *ParentController {
	return &ParentController{DB: db, Validate: validator.New()}
}

func hashPassword(plain *string) (*string, error) {
	if plain == nil {
		return nil, nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(*plain), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	s := string(hashed)
	return &s, nil
}

// POST /api/a/parents
func (ctrl *ParentController) Create(c *fiber.Ctx) error {
	var req parentDTO.CreateParentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hash, err := hashPassword(req.ParentPassword)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	m := req.ToModel(hash)
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return fiber.NewError(fiber.StatusConflict, "parent username already in use")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create parent")
	}
	return helper.JsonCreated(c, "parent created", m)
}

// GET /api/u/parents?q=
func (ctrl *ParentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	tx := ctrl.DB.WithContext(c.UserContext()).Model(&parentModel.ParentModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		kw := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("(LOWER(parent_name) LIKE ? OR LOWER(parent_email) LIKE ? OR LOWER(parent_phone) LIKE ?)", kw, kw, kw)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count parents")
	}

	var rows []parentModel.ParentModel
	if err := tx.Order("parent_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list parents")
	}
	return helper.JsonList(c, "parents", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/u/parents/:id
//
// Detail includes the parent's children.
func (ctrl *ParentController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid parent id")
	}

	var m parentModel.ParentModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "parent_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "parent not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch parent")
	}

	var children []studentModel.StudentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("StudentClass").
		Where("student_parent_id = ?", id).
		Order("student_last_name ASC, student_first_name ASC").
		Find(&children).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch children")
	}

	return helper.JsonOK(c, "parent detail", fiber.Map{
		"parent":   m,
		"children": children,
	})
}

// PUT /api/a/parents/:id
//
// The stored password hash changes only when a new password is supplied.
func (ctrl *ParentController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid parent id")
	}

	var req parentDTO.UpdateParentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m parentModel.ParentModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "parent_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "parent not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch parent")
	}

	hash, err := hashPassword(req.ParentPassword)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	req.ApplyUpdates(&m, hash)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return fiber.NewError(fiber.StatusConflict, "parent username already in use")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update parent")
	}
	return helper.JsonUpdated(c, "parent updated", m)
}

// DELETE /api/a/parents/:id
//
// Refused while students or payments still reference the parent.
func (ctrl *ParentController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid parent id")
	}

	db := ctrl.DB.WithContext(c.UserContext())

	var m parentModel.ParentModel
	if err := db.First(&m, "parent_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "parent not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch parent")
	}

	var refs int64
	if err := db.Model(&studentModel.StudentModel{}).
		Where("student_parent_id = ?", id).Count(&refs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check references")
	}
	if refs == 0 {
		if err := db.Table("payments").
			Where("payment_parent_id = ?", id).Count(&refs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check references")
		}
	}
	if refs > 0 {
		return fiber.NewError(fiber.StatusConflict, "parent is still referenced")
	}

	if err := db.Delete(&m).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "parent is still referenced")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete parent")
	}
	return helper.JsonDeleted(c, "parent deleted", fiber.Map{"parent_id": id})
}
