package controller

import (
	"errors"
	"strconv"
	"strings"

	subjectDTO "schoolku_backend/internals/features/subjects/dto"
	subjectModel "schoolku_backend/internals/features/subjects/model"
	teacherModel "schoolku_backend/internals/features/teachers/model"
	helper "schoolku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db, Validate: validator.New()}
}

// POST /api/a/subjects
func (ctrl *SubjectController) Create(c *fiber.Ctx) error {
	var req subjectDTO.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return fiber.NewError(fiber.StatusConflict, "subject code already in use")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create subject")
	}
	return helper.JsonCreated(c, "subject created", m)
}

// GET /api/u/subjects
func (ctrl *SubjectController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	tx := ctrl.DB.WithContext(c.UserContext()).Model(&subjectModel.SubjectModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		kw := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("(LOWER(subject_name) LIKE ? OR LOWER(subject_code) LIKE ?)", kw, kw)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count subjects")
	}

	var rows []subjectModel.SubjectModel
	if err := tx.Order("subject_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list subjects")
	}
	return helper.JsonList(c, "subjects", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/u/subjects/:id
func (ctrl *SubjectController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid subject id")
	}

	var m subjectModel.SubjectModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "subject not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch subject")
	}
	return helper.JsonOK(c, "subject detail", m)
}

// PUT /api/a/subjects/:id
func (ctrl *SubjectController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid subject id")
	}

	var req subjectDTO.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m subjectModel.SubjectModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "subject not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch subject")
	}

	req.ApplyUpdates(&m)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return fiber.NewError(fiber.StatusConflict, "subject code already in use")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update subject")
	}
	return helper.JsonUpdated(c, "subject updated", m)
}

// DELETE /api/a/subjects/:id
//
// Deletion is refused while teachers or schedule entries still reference the
// subject.
func (ctrl *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid subject id")
	}

	db := ctrl.DB.WithContext(c.UserContext())

	var m subjectModel.SubjectModel
	if err := db.First(&m, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "subject not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch subject")
	}

	var refs int64
	if err := db.Model(&teacherModel.TeacherModel{}).
		Where("teacher_subject_id = ?", id).Count(&refs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check references")
	}
	if refs == 0 {
		if err := db.Table("schedules").
			Where("schedule_subject_id = ?", id).Count(&refs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check references")
		}
	}
	if refs > 0 {
		return fiber.NewError(fiber.StatusConflict, "subject is still referenced")
	}

	if err := db.Delete(&m).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "subject is still referenced")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete subject")
	}
	return helper.JsonDeleted(c, "subject deleted", fiber.Map{"subject_id": id})
}
