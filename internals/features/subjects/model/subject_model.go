package model

import (
	"time"
)

// SubjectModel represents the `subjects` table.
type SubjectModel struct {
	SubjectID   int     `json:"subject_id" gorm:"column:subject_id;primaryKey;autoIncrement"`
	SubjectName string  `json:"subject_name" gorm:"column:subject_name;type:varchar(120);not null"`
	SubjectCode *string `json:"subject_code,omitempty" gorm:"column:subject_code;type:varchar(40);uniqueIndex"`

	SubjectCreatedAt time.Time  `json:"subject_created_at" gorm:"column:subject_created_at;not null;autoCreateTime"`
	SubjectUpdatedAt *time.Time `json:"subject_updated_at,omitempty" gorm:"column:subject_updated_at"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
