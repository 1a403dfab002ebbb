package dto

import (
	"strings"
	"time"

	m "schoolku_backend/internals/features/parents/model"
)

type CreateParentRequest struct {
	ParentName     string  `json:"parent_name" validate:"required,min=1,max=120"`
	ParentRelation *string `json:"parent_relation" validate:"omitempty,oneof=father mother guardian"`
	ParentEmail    *string `json:"parent_email" validate:"omitempty,email,max=120"`
	ParentPhone    *string `json:"parent_phone" validate:"omitempty,max=30"`

	// Optional portal credentials. Password is hashed before storage.
	ParentUsername *string `json:"parent_username" validate:"omitempty,min=3,max=80"`
	ParentPassword *string `json:"parent_password" validate:"omitempty,min=6,max=72"`
}

func (r *CreateParentRequest) Normalize() {
	r.ParentName = strings.TrimSpace(r.ParentName)
	trimPtr(&r.ParentRelation, true)
	trimPtr(&r.ParentEmail, true)
	trimPtr(&r.ParentPhone, false)
	trimPtr(&r.ParentUsername, true)
	if r.ParentPassword != nil && strings.TrimSpace(*r.ParentPassword) == "" {
		r.ParentPassword = nil
	}
}

// ToModel maps the request onto a row. The caller supplies the password hash
// (nil when no credentials were given).
func (r CreateParentRequest) ToModel(passwordHash *string) m.ParentModel {
	return m.ParentModel{
		ParentName:     r.ParentName,
		ParentRelation: r.ParentRelation,
		ParentEmail:    r.ParentEmail,
		ParentPhone:    r.ParentPhone,
		ParentUsername: r.ParentUsername,
		ParentPassword: passwordHash,
	}
}

type UpdateParentRequest struct {
	ParentName     *string `json:"parent_name" validate:"omitempty,min=1,max=120"`
	ParentRelation *string `json:"parent_relation" validate:"omitempty,oneof=father mother guardian"`
	ParentEmail    *string `json:"parent_email" validate:"omitempty,email,max=120"`
	ParentPhone    *string `json:"parent_phone" validate:"omitempty,max=30"`
	ParentUsername *string `json:"parent_username" validate:"omitempty,min=3,max=80"`

	// nil = keep the stored hash.
	ParentPassword *string `json:"parent_password" validate:"omitempty,min=6,max=72"`
}

func (r *UpdateParentRequest) Normalize() {
	trimPtr(&r.ParentName, false)
	trimPtr(&r.ParentRelation, true)
	trimPtr(&r.ParentEmail, true)
	trimPtr(&r.ParentPhone, false)
	trimPtr(&r.ParentUsername, true)
	if r.ParentPassword != nil && strings.TrimSpace(*r.ParentPassword) == "" {
		r.ParentPassword = nil
	}
}

// ApplyUpdates mutates the row in place. passwordHash is non-nil only when a
// new password was supplied.
func (r UpdateParentRequest) ApplyUpdates(mm *m.ParentModel, passwordHash *string) {
	if r.ParentName != nil {
		mm.ParentName = *r.ParentName
	}
	if r.ParentRelation != nil {
		mm.ParentRelation = r.ParentRelation
	}
	if r.ParentEmail != nil {
		mm.ParentEmail = r.ParentEmail
	}
	if r.ParentPhone != nil {
		mm.ParentPhone = r.ParentPhone
	}
	if r.ParentUsername != nil {
		mm.ParentUsername = r.ParentUsername
	}
	if passwordHash != nil {
		mm.ParentPassword = passwordHash
	}
	now := time.Now()
	mm.ParentUpdatedAt = &now
}

func trimPtr(pp **string, lower bool) {
	if pp == nil || *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	if v == "" {
		*pp = nil
		return
	}
	if lower {
		v = strings.ToLower(v)
	}
	*pp = &v
}
