package dto

import (
	"strings"
	"time"

	m "schoolku_backend/internals/features/users/model"
)

type CreateUserRequest struct {
	UserLogin    string `json:"user_login" validate:"required,min=3,max=80"`
	UserPassword string `json:"user_password" validate:"required,min=6,max=72"`
	UserRole     string `json:"user_role" validate:"required,oneof=admin teacher"`

	UserTeacherID *int `json:"user_teacher_id" validate:"omitempty,min=1"`
}

func (r *CreateUserRequest) Normalize() {
	r.UserLogin = strings.ToLower(strings.TrimSpace(r.UserLogin))
	r.UserRole = strings.ToLower(strings.TrimSpace(r.UserRole))
}

// ToModel maps the request onto a row; the caller supplies the bcrypt hash.
func (r CreateUserRequest) ToModel(passwordHash string) m.UserModel {
	return m.UserModel{
		UserLogin:     r.UserLogin,
		UserPassword:  passwordHash,
		UserRole:      r.UserRole,
		UserTeacherID: r.UserTeacherID,
	}
}

type UpdateUserRequest struct {
	UserLogin *string `json:"user_login" validate:"omitempty,min=3,max=80"`
	UserRole  *string `json:"user_role" validate:"omitempty,oneof=admin teacher"`

	// nil = keep the stored hash.
	UserPassword *string `json:"user_password" validate:"omitempty,min=6,max=72"`

	UserTeacherID *int `json:"user_teacher_id" validate:"omitempty,min=1"`
}

func (r *UpdateUserRequest) Normalize() {
	if r.UserLogin != nil {
		v := strings.ToLower(strings.TrimSpace(*r.UserLogin))
		if v == "" {
			r.UserLogin = nil
		} else {
			r.UserLogin = &v
		}
	}
	if r.UserRole != nil {
		v := strings.ToLower(strings.TrimSpace(*r.UserRole))
		r.UserRole = &v
	}
	if r.UserPassword != nil && strings.TrimSpace(*r.UserPassword) == "" {
		r.UserPassword = nil
	}
}

// ApplyUpdates mutates the row in place. passwordHash is non-nil only when a
// new password was supplied.
func (r UpdateUserRequest) ApplyUpdates(mm *m.UserModel, passwordHash *string) {
	if r.UserLogin != nil {
		mm.UserLogin = *r.UserLogin
	}
	if r.UserRole != nil {
		mm.UserRole = *r.UserRole
	}
	if passwordHash != nil {
		mm.UserPassword = *passwordHash
	}
	if r.UserTeacherID != nil {
		mm.UserTeacherID = r.UserTeacherID
	}
	now := time.Now()
	mm.UserUpdatedAt = &now
}

/* =========================================================
   AUTH
   ========================================================= */

type LoginRequest struct {
	UserLogin    string `json:"user_login" validate:"required"`
	UserPassword string `json:"user_password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.UserLogin = strings.ToLower(strings.TrimSpace(r.UserLogin))
}

// LoginResponse carries the signed session token plus the identity the UI
// shows.
type LoginResponse struct {
	Token       string `json:"token"`
	UserID      int    `json:"user_id"`
	UserLogin   string `json:"user_login"`
	UserRole    string `json:"user_role"`
	DisplayName string `json:"display_name"`
}
