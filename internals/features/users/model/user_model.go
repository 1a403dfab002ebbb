package model

import (
	"time"
)

// UserModel represents the `users` table. Passwords are stored as bcrypt
// hashes only.
type UserModel struct {
	UserID       int    `json:"user_id" gorm:"column:user_id;primaryKey;autoIncrement"`
	UserLogin    string `json:"user_login" gorm:"column:user_login;type:varchar(80);uniqueIndex;not null"`
	UserPassword string `json:"-" gorm:"column:user_password;type:varchar(120);not null"`
	UserRole     string `json:"user_role" gorm:"column:user_role;type:varchar(20);not null"`

	// Set when the account belongs to a teacher (role=teacher).
	UserTeacherID *int `json:"user_teacher_id,omitempty" gorm:"column:user_teacher_id"`

	UserCreatedAt time.Time  `json:"user_created_at" gorm:"column:user_created_at;not null;autoCreateTime"`
	UserUpdatedAt *time.Time `json:"user_updated_at,omitempty" gorm:"column:user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
