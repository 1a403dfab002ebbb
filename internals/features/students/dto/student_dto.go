package dto

import (
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	m "schoolku_backend/internals/features/students/model"

	"github.com/gofiber/fiber/v2"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateStudentRequest struct {
	StudentFirstName string     `json:"student_first_name" form:"student_first_name" validate:"required,min=1,max=100"`
	StudentLastName  string     `json:"student_last_name" form:"student_last_name" validate:"required,min=1,max=100"`
	StudentCode      *string    `json:"student_code" form:"student_code" validate:"omitempty,min=1,max=40"`
	StudentBirthday  *time.Time `json:"student_birthday"`
	StudentGender    string     `json:"student_gender" form:"student_gender" validate:"omitempty,oneof=m f"`
	StudentPhone     *string    `json:"student_phone" form:"student_phone" validate:"omitempty,max=30"`
	StudentAddress   *string    `json:"student_address" form:"student_address"`
	StudentStatus    *string    `json:"student_status" form:"student_status" validate:"omitempty,max=40"`
	StudentClassID   *int       `json:"student_class_id" form:"student_class_id"`
	StudentParentID  *int       `json:"student_parent_id" form:"student_parent_id"`
}

func (r *CreateStudentRequest) Normalize() {
	r.StudentFirstName = strings.TrimSpace(r.StudentFirstName)
	r.StudentLastName = strings.TrimSpace(r.StudentLastName)
	r.StudentGender = strings.ToLower(strings.TrimSpace(r.StudentGender))
	if r.StudentGender == "" {
		r.StudentGender = "m"
	}
	trimPtr(&r.StudentCode)
	trimPtr(&r.StudentPhone)
	trimPtr(&r.StudentAddress)
	trimPtr(&r.StudentStatus)
}

func (r CreateStudentRequest) ToModel() m.StudentModel {
	return m.StudentModel{
		StudentFirstName: r.StudentFirstName,
		StudentLastName:  r.StudentLastName,
		StudentCode:      r.StudentCode,
		StudentBirthday:  r.StudentBirthday,
		StudentGender:    r.StudentGender,
		StudentPhone:     r.StudentPhone,
		StudentAddress:   r.StudentAddress,
		StudentStatus:    r.StudentStatus,
		StudentClassID:   r.StudentClassID,
		StudentParentID:  r.StudentParentID,
	}
}

// BindCreate reads either a JSON body or a multipart form (text fields plus
// an optional "photo" file).
func BindCreate(c *fiber.Ctx) (CreateStudentRequest, *multipart.FileHeader, error) {
	var req CreateStudentRequest

	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		if err := c.BodyParser(&req); err != nil {
			return req, nil, err
		}
		return req, nil, nil
	}

	req.StudentFirstName = c.FormValue("student_first_name")
	req.StudentLastName = c.FormValue("student_last_name")
	req.StudentGender = c.FormValue("student_gender")
	req.StudentCode = formPtr(c, "student_code")
	req.StudentPhone = formPtr(c, "student_phone")
	req.StudentAddress = formPtr(c, "student_address")
	req.StudentStatus = formPtr(c, "student_status")
	req.StudentBirthday = formDate(c, "student_birthday")
	req.StudentClassID = formInt(c, "student_class_id")
	req.StudentParentID = formInt(c, "student_parent_id")

	var fh *multipart.FileHeader
	if f, err := c.FormFile("photo"); err == nil && f != nil {
		fh = f
	}
	return req, fh, nil
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateStudentRequest struct {
	StudentFirstName *string    `json:"student_first_name" form:"student_first_name" validate:"omitempty,min=1,max=100"`
	StudentLastName  *string    `json:"student_last_name" form:"student_last_name" validate:"omitempty,min=1,max=100"`
	StudentCode      *string    `json:"student_code" form:"student_code" validate:"omitempty,min=1,max=40"`
	StudentBirthday  *time.Time `json:"student_birthday"`
	StudentGender    *string    `json:"student_gender" form:"student_gender" validate:"omitempty,oneof=m f"`
	StudentPhone     *string    `json:"student_phone" form:"student_phone" validate:"omitempty,max=30"`
	StudentAddress   *string    `json:"student_address" form:"student_address"`
	StudentStatus    *string    `json:"student_status" form:"student_status" validate:"omitempty,max=40"`
	StudentClassID   *int       `json:"student_class_id" form:"student_class_id"`
	StudentParentID  *int       `json:"student_parent_id" form:"student_parent_id"`
}

func (r *UpdateStudentRequest) Normalize() {
	trimPtr(&r.StudentFirstName)
	trimPtr(&r.StudentLastName)
	trimPtr(&r.StudentCode)
	trimPtr(&r.StudentPhone)
	trimPtr(&r.StudentAddress)
	trimPtr(&r.StudentStatus)
	if r.StudentGender != nil {
		v := strings.ToLower(strings.TrimSpace(*r.StudentGender))
		r.StudentGender = &v
	}
}

func (r UpdateStudentRequest) ApplyUpdates(mm *m.StudentModel) {
	if r.StudentFirstName != nil {
		mm.StudentFirstName = *r.StudentFirstName
	}
	if r.StudentLastName != nil {
		mm.StudentLastName = *r.StudentLastName
	}
	if r.StudentCode != nil {
		mm.StudentCode = r.StudentCode
	}
	if r.StudentBirthday != nil {
		mm.StudentBirthday = r.StudentBirthday
	}
	if r.StudentGender != nil {
		mm.StudentGender = *r.StudentGender
	}
	if r.StudentPhone != nil {
		mm.StudentPhone = r.StudentPhone
	}
	if r.StudentAddress != nil {
		mm.StudentAddress = r.StudentAddress
	}
	if r.StudentStatus != nil {
		mm.StudentStatus = r.StudentStatus
	}
	if r.StudentClassID != nil {
		mm.StudentClassID = r.StudentClassID
	}
	if r.StudentParentID != nil {
		mm.StudentParentID = r.StudentParentID
	}
	now := time.Now()
	mm.StudentUpdatedAt = &now
}

// BindUpdate mirrors BindCreate for partial updates.
func BindUpdate(c *fiber.Ctx) (UpdateStudentRequest, *multipart.FileHeader, error) {
	var req UpdateStudentRequest

	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		if err := c.BodyParser(&req); err != nil {
			return req, nil, err
		}
		return req, nil, nil
	}

	req.StudentFirstName = formPtr(c, "student_first_name")
	req.StudentLastName = formPtr(c, "student_last_name")
	req.StudentCode = formPtr(c, "student_code")
	req.StudentPhone = formPtr(c, "student_phone")
	req.StudentAddress = formPtr(c, "student_address")
	req.StudentStatus = formPtr(c, "student_status")
	req.StudentGender = formPtr(c, "student_gender")
	req.StudentBirthday = formDate(c, "student_birthday")
	req.StudentClassID = formInt(c, "student_class_id")
	req.StudentParentID = formInt(c, "student_parent_id")

	var fh *multipart.FileHeader
	if f, err := c.FormFile("photo"); err == nil && f != nil {
		fh = f
	}
	return req, fh, nil
}

/* =========================================================
   form helpers
   ========================================================= */

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

func formDate(c *fiber.Ctx, key string) *time.Time {
	v := strings.TrimSpace(c.FormValue(key))
	if v == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t
	}
	return nil
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
