package model

import (
	"time"
)

// ParentModel represents the `parents` table.
type ParentModel struct {
	ParentID       int     `json:"parent_id" gorm:"column:parent_id;primaryKey;autoIncrement"`
	ParentName     string  `json:"parent_name" gorm:"column:parent_name;type:varchar(120);not null"`
	ParentRelation *string `json:"parent_relation,omitempty" gorm:"column:parent_relation;type:varchar(20)"` // father | mother | guardian
	ParentEmail    *string `json:"parent_email,omitempty" gorm:"column:parent_email;type:varchar(120)"`
	ParentPhone    *string `json:"parent_phone,omitempty" gorm:"column:parent_phone;type:varchar(30)"`

	// Optional portal credentials.
	ParentUsername *string `json:"parent_username,omitempty" gorm:"column:parent_username;type:varchar(80)"`
	ParentPassword *string `json:"-" gorm:"column:parent_password;type:varchar(120)"`

	ParentCreatedAt time.Time  `json:"parent_created_at" gorm:"column:parent_created_at;not null;autoCreateTime"`
	ParentUpdatedAt *time.Time `json:"parent_updated_at,omitempty" gorm:"column:parent_updated_at"`
}

func (ParentModel) TableName() string {
	return "parents"
}
