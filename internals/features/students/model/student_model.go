package model

import (
	"time"

	classModel "schoolku_backend/internals/features/classes/model"
	parentModel "schoolku_backend/internals/features/parents/model"
)

// StudentModel represents the `students` table. Class and Parent links are
// nullable; list/get responses join them eagerly.
type StudentModel struct {
	StudentID        int    `json:"student_id" gorm:"column:student_id;primaryKey;autoIncrement"`
	StudentFirstName string `json:"student_first_name" gorm:"column:student_first_name;type:varchar(100);not null"`
	StudentLastName  string `json:"student_last_name" gorm:"column:student_last_name;type:varchar(100);not null"`

	// External enrollment code, unique per school.
	StudentCode *string `json:"student_code,omitempty" gorm:"column:student_code;type:varchar(40);uniqueIndex"`

	StudentBirthday *time.Time `json:"student_birthday,omitempty" gorm:"column:student_birthday"`
	StudentGender   string     `json:"student_gender" gorm:"column:student_gender;type:varchar(1);not null;default:'m'"` // m | f
	StudentPhone    *string    `json:"student_phone,omitempty" gorm:"column:student_phone;type:varchar(30)"`
	StudentAddress  *string    `json:"student_address,omitempty" gorm:"column:student_address;type:text"`
	StudentPhoto    *string    `json:"student_photo,omitempty" gorm:"column:student_photo;type:text"`
	StudentStatus   *string    `json:"student_status,omitempty" gorm:"column:student_status;type:varchar(40)"`

	StudentClassID  *int `json:"student_class_id,omitempty" gorm:"column:student_class_id"`
	StudentParentID *int `json:"student_parent_id,omitempty" gorm:"column:student_parent_id"`

	StudentClass  *classModel.ClassModel   `json:"student_class,omitempty" gorm:"foreignKey:StudentClassID;references:ClassID"`
	StudentParent *parentModel.ParentModel `json:"student_parent,omitempty" gorm:"foreignKey:StudentParentID;references:ParentID"`

	StudentCreatedAt time.Time  `json:"student_created_at" gorm:"column:student_created_at;not null;autoCreateTime"`
	StudentUpdatedAt *time.Time `json:"student_updated_at,omitempty" gorm:"column:student_updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}
