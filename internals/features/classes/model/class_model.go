package model

import (
	"time"
)

// ClassModel represents the `classes` table. Level is the 1..3 ordinal shown
// as a localized label by the UI.
type ClassModel struct {
	ClassID    int    `json:"class_id" gorm:"column:class_id;primaryKey;autoIncrement"`
	ClassName  string `json:"class_name" gorm:"column:class_name;type:varchar(120);not null"`
	ClassLevel int    `json:"class_level" gorm:"column:class_level;not null;default:1"`

	ClassCreatedAt time.Time  `json:"class_created_at" gorm:"column:class_created_at;not null;autoCreateTime"`
	ClassUpdatedAt *time.Time `json:"class_updated_at,omitempty" gorm:"column:class_updated_at"`
}

func (ClassModel) TableName() string {
	return "classes"
}
