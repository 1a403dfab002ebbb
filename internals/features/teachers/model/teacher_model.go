package model

import (
	"time"

	subjectModel "schoolku_backend/internals/features/subjects/model"
	userModel "schoolku_backend/internals/features/users/model"
)

// TeacherModel represents the `teachers` table. Every teacher row owns
// exactly one user account (role=teacher), created in the same transaction.
type TeacherModel struct {
	TeacherID     int     `json:"teacher_id" gorm:"column:teacher_id;primaryKey;autoIncrement"`
	TeacherName   string  `json:"teacher_name" gorm:"column:teacher_name;type:varchar(120);not null"`
	TeacherCode   *string `json:"teacher_code,omitempty" gorm:"column:teacher_code;type:varchar(40);uniqueIndex"`
	TeacherEmail  *string `json:"teacher_email,omitempty" gorm:"column:teacher_email;type:varchar(120)"`
	TeacherPhone  *string `json:"teacher_phone,omitempty" gorm:"column:teacher_phone;type:varchar(30)"`
	TeacherGender string  `json:"teacher_gender" gorm:"column:teacher_gender;type:varchar(1);not null;default:'m'"` // m | f

	TeacherDiploma *string `json:"teacher_diploma,omitempty" gorm:"column:teacher_diploma;type:text"`
	TeacherPhoto   *string `json:"teacher_photo,omitempty" gorm:"column:teacher_photo;type:text"`

	TeacherSubjectID *int `json:"teacher_subject_id,omitempty" gorm:"column:teacher_subject_id"`

	TeacherSubject *subjectModel.SubjectModel `json:"teacher_subject,omitempty" gorm:"foreignKey:TeacherSubjectID;references:SubjectID"`
	TeacherUser    *userModel.UserModel       `json:"teacher_user,omitempty" gorm:"foreignKey:UserTeacherID;references:TeacherID"`

	TeacherCreatedAt time.Time  `json:"teacher_created_at" gorm:"column:teacher_created_at;not null;autoCreateTime"`
	TeacherUpdatedAt *time.Time `json:"teacher_updated_at,omitempty" gorm:"column:teacher_updated_at"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
