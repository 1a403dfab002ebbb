package controller

import (
	"errors"
	"strconv"
	"strings"

	classDTO "schoolku_backend/internals/features/classes/dto"
	classModel "schoolku_backend/internals/features/classes/model"
	studentModel "schoolku_backend/internals/features/students/model"
	helper "schoolku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db, Validate: validator.New()}
}

// POST /api/a/classes
func (ctrl *ClassController) Create(c *fiber.Ctx) error {
	var req classDTO.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create class")
	}
	return helper.JsonCreated(c, "class created", m)
}

// GET /api/u/classes
//
// Each row carries its enrolled student count.
func (ctrl *ClassController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	tx := ctrl.DB.WithContext(c.UserContext()).Model(&classModel.ClassModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("LOWER(class_name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	if lvl, err := strconv.Atoi(c.Query("level")); err == nil && lvl > 0 {
		tx = tx.Where("class_level = ?", lvl)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count classes")
	}

	var rows []classModel.ClassModel
	if err := tx.Order("class_level ASC, class_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list classes")
	}

	out := make([]classDTO.ClassWithCount, 0, len(rows))
	for _, row := range rows {
		var cnt int64
		if err := ctrl.DB.WithContext(c.UserContext()).
			Model(&studentModel.StudentModel{}).
			Where("student_class_id = ?", row.ClassID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to count students")
		}
		out = append(out, classDTO.ClassWithCount{ClassModel: row, ClassStudentCount: cnt})
	}
	return helper.JsonList(c, "classes", out, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/u/classes/:id
//
// Detail includes the class roster.
func (ctrl *ClassController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid class id")
	}

	var m classModel.ClassModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "class not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch class")
	}

	var students []studentModel.StudentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("student_class_id = ?", id).
		Order("student_last_name ASC, student_first_name ASC").
		Find(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch class roster")
	}

	return helper.JsonOK(c, "class detail", fiber.Map{
		"class":    m,
		"students": students,
	})
}

// PUT /api/a/classes/:id
func (ctrl *ClassController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid class id")
	}

	var req classDTO.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m classModel.ClassModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "class not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch class")
	}

	req.ApplyUpdates(&m)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update class")
	}
	return helper.JsonUpdated(c, "class updated", m)
}

// DELETE /api/a/classes/:id
//
// Refused while students or schedule entries still reference the class.
func (ctrl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid class id")
	}

	db := ctrl.DB.WithContext(c.UserContext())

	var m classModel.ClassModel
	if err := db.First(&m, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "class not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch class")
	}

	var refs int64
	if err := db.Model(&studentModel.StudentModel{}).
		Where("student_class_id = ?", id).Count(&refs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check references")
	}
	if refs == 0 {
		if err := db.Table("schedules").
			Where("schedule_class_id = ?", id).Count(&refs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check references")
		}
	}
	if refs > 0 {
		return fiber.NewError(fiber.StatusConflict, "class is still referenced")
	}

	if err := db.Delete(&m).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "class is still referenced")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete class")
	}
	return helper.JsonDeleted(c, "class deleted", fiber.Map{"class_id": id})
}
