package controller

import (
	"errors"
	"strconv"
	"strings"

	studentDTO "schoolku_backend/internals/features/students/dto"
	studentModel "schoolku_backend/internals/features/students/model"
	helper "schoolku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const photoKind = "students"

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validate: validator.New()}
}

// POST /api/a/students
//
// Accepts JSON or multipart. With multipart, an optional "photo" file is
// converted to webp and stored keyed by the new student id; without one the
// gender placeholder is used.
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	req, fh, err := studentDTO.BindCreate(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}

		photo := helper.DefaultPhoto(photoKind, m.StudentGender)
		if fh != nil {
			p, err := helper.SavePhoto(photoKind, m.StudentID, fh)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "invalid photo upload")
			}
			photo = p
		}
		m.StudentPhoto = &photo
		return tx.Model(&studentModel.StudentModel{}).
			Where("student_id = ?", m.StudentID).
			Update("student_photo", photo).Error
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		if helper.IsDuplicateKey(err) {
			return fiber.NewError(fiber.StatusConflict, "student code already in use")
		}
		if helper.IsForeignKeyViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "unknown class or parent reference")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create student")
	}

	return helper.JsonCreated(c, "student created", m)
}

// GET /api/u/students?q=&class_id=&parent_id=&status=
//
// Rows join class and parent eagerly.
func (ctrl *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	tx := ctrl.DB.WithContext(c.UserContext()).Model(&studentModel.StudentModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		kw := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("(LOWER(student_first_name) LIKE ? OR LOWER(student_last_name) LIKE ? OR LOWER(student_code) LIKE ?)", kw, kw, kw)
	}
	if classID, err := strconv.Atoi(c.Query("class_id")); err == nil && classID > 0 {
		tx = tx.Where("student_class_id = ?", classID)
	}
	if parentID, err := strconv.Atoi(c.Query("parent_id")); err == nil && parentID > 0 {
		tx = tx.Where("student_parent_id = ?", parentID)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		tx = tx.Where("student_status = ?", st)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count students")
	}

	var rows []studentModel.StudentModel
	if err := tx.Preload("StudentClass").Preload("StudentParent").
		Order("student_last_name ASC, student_first_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list students")
	}
	return helper.JsonList(c, "students", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/u/students/:id
func (ctrl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid student id")
	}

	var m studentModel.StudentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("StudentClass").Preload("StudentParent").
		First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch student")
	}
	return helper.JsonOK(c, "student detail", m)
}

// PUT /api/a/students/:id
func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid student id")
	}

	req, fh, err := studentDTO.BindUpdate(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m studentModel.StudentModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch student")
	}

	req.ApplyUpdates(&m)

	if fh != nil {
		photo, err := helper.SavePhoto(photoKind, m.StudentID, fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid photo upload")
		}
		m.StudentPhoto = &photo
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return fiber.NewError(fiber.StatusConflict, "student code already in use")
		}
		if helper.IsForeignKeyViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "unknown class or parent reference")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update student")
	}
	return helper.JsonUpdated(c, "student updated", m)
}

// DELETE /api/a/students/:id
func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid student id")
	}

	db := ctrl.DB.WithContext(c.UserContext())

	var m studentModel.StudentModel
	if err := db.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch student")
	}

	if err := db.Delete(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete student")
	}
	helper.DeletePhoto(photoKind, id)
	return helper.JsonDeleted(c, "student deleted", fiber.Map{"student_id": id})
}
