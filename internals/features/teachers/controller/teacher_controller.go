package controller

import (
	"errors"
	"strconv"
	"strings"

	"schoolku_backend/internals/constants"
	teacherDTO "schoolku_backend/internals/features/teachers/dto"
	teacherModel "schoolku_backend/internals/features/teachers/model"
	userModel "schoolku_backend/internals/features/users/model"
	helper "schoolku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const photoKind = "teachers"

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db, Validate: validator.New()}
}

// POST /api/a/teachers
//
// The teacher row and its user account commit together: a duplicate login
// rolls back the whole creation.
func (ctrl *TeacherController) Create(c *fiber.Ctx) error {
	req, fh, err := teacherDTO.BindCreate(c)
	if err != nil {
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

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}

		account := userModel.UserModel{
			UserLogin:     req.UserLogin,
			UserPassword:  string(hashed),
			UserRole:      constants.RoleTeacher,
			UserTeacherID: &m.TeacherID,
		}
		if err := tx.Create(&account).Error; err != nil {
			return err
		}
		m.TeacherUser = &account

		photo := helper.DefaultPhoto(photoKind, m.TeacherGender)
		if fh != nil {
			p, err := helper.SavePhoto(photoKind, m.TeacherID, fh)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "invalid photo upload")
			}
			photo = p
		}
		m.TeacherPhoto = &photo
		return tx.Model(&teacherModel.TeacherModel{}).
			Where("teacher_id = ?", m.TeacherID).
			Update("teacher_photo", photo).Error
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		if helper.IsDuplicateKey(err) {
			return fiber.NewError(fiber.StatusConflict, "teacher code or login already in use")
		}
		if helper.IsForeignKeyViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "unknown subject reference")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create teacher")
	}

	return helper.JsonCreated(c, "teacher created", m)
}

// GET /api/u/teachers?q=&subject_id=
func (ctrl *TeacherController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	tx := ctrl.DB.WithContext(c.UserContext()).Model(&teacherModel.TeacherModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		kw := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("(LOWER(teacher_name) LIKE ? OR LOWER(teacher_email) LIKE ? OR LOWER(teacher_code) LIKE ?)", kw, kw, kw)
	}
	if subjectID, err := strconv.Atoi(c.Query("subject_id")); err == nil && subjectID > 0 {
		tx = tx.Where("teacher_subject_id = ?", subjectID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count teachers")
	}

	var rows []teacherModel.TeacherModel
	if err := tx.Preload("TeacherSubject").
		Order("teacher_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list teachers")
	}
	return helper.JsonList(c, "teachers", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/u/teachers/:id
func (ctrl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid teacher id")
	}

	var m teacherModel.TeacherModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("TeacherSubject").Preload("TeacherUser").
		First(&m, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "teacher not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch teacher")
	}
	return helper.JsonOK(c, "teacher detail", m)
}

// PUT /api/a/teachers/:id
//
// Credential fields touch the linked user account; the stored hash changes
// only when a new password is supplied.
func (ctrl *TeacherController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid teacher id")
	}

	req, fh, err := teacherDTO.BindUpdate(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m teacherModel.TeacherModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "teacher not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch teacher")
	}

	req.ApplyUpdates(&m)

	if fh != nil {
		photo, err := helper.SavePhoto(photoKind, m.TeacherID, fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid photo upload")
		}
		m.TeacherPhoto = &photo
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&m).Error; err != nil {
			return err
		}

		if req.UserLogin == nil && req.UserPassword == nil {
			return nil
		}
		updates := map[string]any{}
		if req.UserLogin != nil {
			updates["user_login"] = *req.UserLogin
		}
		if req.UserPassword != nil {
			hashed, err := bcrypt.GenerateFromPassword([]byte(*req.UserPassword), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			updates["user_password"] = string(hashed)
		}
		return tx.Model(&userModel.UserModel{}).
			Where("user_teacher_id = ?", m.TeacherID).
			Updates(updates).Error
	}); err != nil {
		if helper.IsDuplicateKey(err) {
			return fiber.NewError(fiber.StatusConflict, "teacher code or login already in use")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update teacher")
	}
	return helper.JsonUpdated(c, "teacher updated", m)
}

// DELETE /api/a/teachers/:id
//
// Refused while schedule entries still reference the teacher. The linked
// user account is removed in the same transaction.
func (ctrl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid teacher id")
	}

	db := ctrl.DB.WithContext(c.UserContext())

	var m teacherModel.TeacherModel
	if err := db.First(&m, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "teacher not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch teacher")
	}

	var refs int64
	if err := db.Table("schedules").
		Where("schedule_teacher_id = ?", id).Count(&refs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check references")
	}
	if refs > 0 {
		return fiber.NewError(fiber.StatusConflict, "teacher is still referenced")
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_teacher_id = ?", id).
			Delete(&userModel.UserModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&m).Error
	}); err != nil {
		if helper.IsForeignKeyViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "teacher is still referenced")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete teacher")
	}
	helper.DeletePhoto(photoKind, id)
	return helper.JsonDeleted(c, "teacher deleted", fiber.Map{"teacher_id": id})
}
