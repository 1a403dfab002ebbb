package dto

import (
	"strings"
	"time"

	m "schoolku_backend/internals/features/classes/model"
)

type CreateClassRequest struct {
	ClassName  string `json:"class_name" validate:"required,min=1,max=120"`
	ClassLevel int    `json:"class_level" validate:"omitempty,min=1,max=3"`
}

func (r *CreateClassRequest) Normalize() {
	r.ClassName = strings.TrimSpace(r.ClassName)
	if r.ClassLevel == 0 {
		r.ClassLevel = 1
	}
}

func (r CreateClassRequest) ToModel() m.ClassModel {
	return m.ClassModel{
		ClassName:  r.ClassName,
		ClassLevel: r.ClassLevel,
	}
}

type UpdateClassRequest struct {
	ClassName  *string `json:"class_name" validate:"omitempty,min=1,max=120"`
	ClassLevel *int    `json:"class_level" validate:"omitempty,min=1,max=3"`
}

func (r *UpdateClassRequest) Normalize() {
	if r.ClassName != nil {
		v := strings.TrimSpace(*r.ClassName)
		if v == "" {
			r.ClassName = nil
		} else {
			r.ClassName = &v
		}
	}
}

func (r UpdateClassRequest) ApplyUpdates(mm *m.ClassModel) {
	if r.ClassName != nil {
		mm.ClassName = *r.ClassName
	}
	if r.ClassLevel != nil {
		mm.ClassLevel = *r.ClassLevel
	}
	now := time.Now()
	mm.ClassUpdatedAt = &now
}

// ClassWithCount decorates a class row with its enrolled student total for
// list views.
type ClassWithCount struct {
	m.ClassModel
	ClassStudentCount int64 `json:"class_student_count"`
}
