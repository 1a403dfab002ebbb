package dto

import (
	"strings"
	"time"

	m "schoolku_backend/internals/features/subjects/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateSubjectRequest struct {
	SubjectName string  `json:"subject_name" validate:"required,min=1,max=120"`
	SubjectCode *string `json:"subject_code" validate:"omitempty,min=1,max=40"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.SubjectName = strings.TrimSpace(r.SubjectName)
	trimPtr(&r.SubjectCode)
}

func (r CreateSubjectRequest) ToModel() m.SubjectModel {
	return m.SubjectModel{
		SubjectName: r.SubjectName,
		SubjectCode: r.SubjectCode,
	}
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateSubjectRequest struct {
	SubjectName *string `json:"subject_name" validate:"omitempty,min=1,max=120"`
	SubjectCode *string `json:"subject_code" validate:"omitempty,min=1,max=40"`
}

func (r *UpdateSubjectRequest) Normalize() {
	trimPtr(&r.SubjectName)
	trimPtr(&r.SubjectCode)
}

func (r UpdateSubjectRequest) ApplyUpdates(mm *m.SubjectModel) {
	if r.SubjectName != nil {
		mm.SubjectName = *r.SubjectName
	}
	if r.SubjectCode != nil {
		mm.SubjectCode = r.SubjectCode
	}
	now := time.Now()
	mm.SubjectUpdatedAt = &now
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
