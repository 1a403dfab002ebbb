package dto

import (
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	m "schoolku_backend/internals/features/teachers/model"

	"github.com/gofiber/fiber/v2"
)

/* =========================================================
   CREATE: teacher row plus its user account, one transaction
   ========================================================= */

type CreateTeacherRequest struct {
	TeacherName    string  `json:"teacher_name" form:"teacher_name" validate:"required,min=1,max=120"`
	TeacherCode    *string `json:"teacher_code" form:"teacher_code" validate:"omitempty,min=1,max=40"`
	TeacherEmail   *string `json:"teacher_email" form:"teacher_email" validate:"omitempty,email,max=120"`
	TeacherPhone   *string `json:"teacher_phone" form:"teacher_phone" validate:"omitempty,max=30"`
	TeacherGender  string  `json:"teacher_gender" form:"teacher_gender" validate:"omitempty,oneof=m f"`
	TeacherDiploma *string `json:"teacher_diploma" form:"teacher_diploma"`

	TeacherSubjectID *int `json:"teacher_subject_id" form:"teacher_subject_id"`

	// Account credentials for the teacher's login.
	UserLogin    string `json:"user_login" form:"user_login" validate:"required,min=3,max=80"`
	UserPassword string `json:"user_password" form:"user_password" validate:"required,min=6,max=72"`
}

func (r *CreateTeacherRequest) Normalize() {
	r.TeacherName = strings.TrimSpace(r.TeacherName)
	r.TeacherGender = strings.ToLower(strings.TrimSpace(r.TeacherGender))
	if r.TeacherGender == "" {
		r.TeacherGender = "m"
	}
	r.UserLogin = strings.ToLower(strings.TrimSpace(r.UserLogin))
	trimPtr(&r.TeacherCode)
	trimPtr(&r.TeacherEmail)
	trimPtr(&r.TeacherPhone)
	trimPtr(&r.TeacherDiploma)
}

func (r CreateTeacherRequest) ToModel() m.TeacherModel {
	return m.TeacherModel{
		TeacherName:      r.TeacherName,
		TeacherCode:      r.TeacherCode,
		TeacherEmail:     r.TeacherEmail,
		TeacherPhone:     r.TeacherPhone,
		TeacherGender:    r.TeacherGender,
		TeacherDiploma:   r.TeacherDiploma,
		TeacherSubjectID: r.TeacherSubjectID,
	}
}

// BindCreate reads either a JSON body or a multipart form with an optional
// "photo" file.
func BindCreate(c *fiber.Ctx) (CreateTeacherRequest, *multipart.FileHeader, error) {
	var req CreateTeacherRequest

	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		if err := c.BodyParser(&req); err != nil {
			return req, nil, err
		}
		return req, nil, nil
	}

	req.TeacherName = c.FormValue("teacher_name")
	req.TeacherGender = c.FormValue("teacher_gender")
	req.TeacherCode = formPtr(c, "teacher_code")
	req.TeacherEmail = formPtr(c, "teacher_email")
	req.TeacherPhone = formPtr(c, "teacher_phone")
	req.TeacherDiploma = formPtr(c, "teacher_diploma")
	req.TeacherSubjectID = formInt(c, "teacher_subject_id")
	req.UserLogin = c.FormValue("user_login")
	req.UserPassword = c.FormValue("user_password")

	var fh *multipart.FileHeader
	if f, err := c.FormFile("photo"); err == nil && f != nil {
		fh = f
	}
	return req, fh, nil
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateTeacherRequest struct {
	TeacherName    *string `json:"teacher_name" form:"teacher_name" validate:"omitempty,min=1,max=120"`
	TeacherCode    *string `json:"teacher_code" form:"teacher_code" validate:"omitempty,min=1,max=40"`
	TeacherEmail   *string `json:"teacher_email" form:"teacher_email" validate:"omitempty,email,max=120"`
	TeacherPhone   *string `json:"teacher_phone" form:"teacher_phone" validate:"omitempty,max=30"`
	TeacherGender  *string `json:"teacher_gender" form:"teacher_gender" validate:"omitempty,oneof=m f"`
	TeacherDiploma *string `json:"teacher_diploma" form:"teacher_diploma"`

	TeacherSubjectID *int `json:"teacher_subject_id" form:"teacher_subject_id"`

	// nil = credentials unchanged.
	UserLogin    *string `json:"user_login" form:"user_login" validate:"omitempty,min=3,max=80"`
	UserPassword *string `json:"user_password" form:"user_password" validate:"omitempty,min=6,max=72"`
}

func (r *UpdateTeacherRequest) Normalize() {
	trimPtr(&r.TeacherName)
	trimPtr(&r.TeacherCode)
	trimPtr(&r.TeacherEmail)
	trimPtr(&r.TeacherPhone)
	trimPtr(&r.TeacherDiploma)
	if r.TeacherGender != nil {
		v := strings.ToLower(strings.TrimSpace(*r.TeacherGender))
		r.TeacherGender = &v
	}
	if r.UserLogin != nil {
		v := strings.ToLower(strings.TrimSpace(*r.UserLogin))
		if v == "" {
			r.UserLogin = nil
		} else {
			r.UserLogin = &v
		}
	}
	if r.UserPassword != nil && strings.TrimSpace(*r.UserPassword) == "" {
		r.UserPassword = nil
	}
}

func (r UpdateTeacherRequest) ApplyUpdates(mm *m.TeacherModel) {
	if r.TeacherName != nil {
		mm.TeacherName = *r.TeacherName
	}
	if r.TeacherCode != nil {
		mm.TeacherCode = r.TeacherCode
	}
	if r.TeacherEmail != nil {
		mm.TeacherEmail = r.TeacherEmail
	}
	if r.TeacherPhone != nil {
		mm.TeacherPhone = r.TeacherPhone
	}
	if r.TeacherGender != nil {
		mm.TeacherGender = *r.TeacherGender
	}
	if r.TeacherDiploma != nil {
		mm.TeacherDiploma = r.TeacherDiploma
	}
	if r.TeacherSubjectID != nil {
		mm.TeacherSubjectID = r.TeacherSubjectID
	}
	now := time.Now()
	mm.TeacherUpdatedAt = &now
}

// BindUpdate mirrors BindCreate for partial updates.
func BindUpdate(c *fiber.Ctx) (UpdateTeacherRequest, *multipart.FileHeader, error) {
	var req UpdateTeacherRequest

	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		if err := c.BodyParser(&req); err != nil {
			return req, nil, err
		}
		return req, nil, nil
	}

	req.TeacherName = formPtr(c, "teacher_name")
	req.TeacherCode = formPtr(c, "teacher_code")
	req.TeacherEmail = formPtr(c, "teacher_email")
	req.TeacherPhone = formPtr(c, "teacher_phone")
	req.TeacherGender = formPtr(c, "teacher_gender")
	req.TeacherDiploma = formPtr(c, "teacher_diploma")
	req.TeacherSubjectID = formInt(c, "teacher_subject_id")
	req.UserLogin = formPtr(c, "user_login")
	req.UserPassword = formPtr(c, "user_password")

	var fh *multipart.FileHeader
	if f, err := c.FormFile("photo"); err == nil && f != nil {
		fh = f
	}
	return req, fh, nil
}

func formPtr(c *fiber.Ctx, key string) *string {
	v := strings.TrimSpace(c.FormValue(key))
	if v == "" {
		return nil
	}
	return &v
}

func formInt(c *fiber.Ctx, key string) *int {
	v := strings.TrimSpace(c.FormValue(key))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}

func trimPtr(pp **string) {
	if pp == nil || *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	if v == "" {
		*pp = nil
		return
	}
	*pp = &v
}
