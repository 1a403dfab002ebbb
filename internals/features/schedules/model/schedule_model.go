package model

import (
	"time"

	classModel "schoolku_backend/internals/features/classes/model"
	roomModel "schoolku_backend/internals/features/rooms/model"
	subjectModel "schoolku_backend/internals/features/subjects/model"
	teacherModel "schoolku_backend/internals/features/teachers/model"
)

// ScheduleModel represents the `schedules` table: one recurring weekly slot
// of the timetable, scoped by school-year label. The four links are nullable
// at storage level but a usable entry carries all of them.
type ScheduleModel struct {
	ScheduleID       int     `json:"schedule_id" gorm:"column:schedule_id;primaryKey;autoIncrement"`
	ScheduleAs       string  `json:"schedule_as" gorm:"column:schedule_as;type:varchar(9);not null;index"`
	ScheduleDay      string  `json:"schedule_day" gorm:"column:schedule_day;type:varchar(10);not null"` // monday..saturday
	ScheduleStart    string  `json:"schedule_start" gorm:"column:schedule_start;type:varchar(5);not null"` // HH:MM
	ScheduleDuration float64 `json:"schedule_duration" gorm:"column:schedule_duration;not null;default:1"` // hours

	ScheduleSubjectID *int `json:"schedule_subject_id,omitempty" gorm:"column:schedule_subject_id;index"`
	ScheduleRoomID    *int `json:"schedule_room_id,omitempty" gorm:"column:schedule_room_id;index"`
	ScheduleClassID   *int `json:"schedule_class_id,omitempty" gorm:"column:schedule_class_id;index"`
	ScheduleTeacherID *int `json:"schedule_teacher_id,omitempty" gorm:"column:schedule_teacher_id;index"`

	ScheduleSubject *subjectModel.SubjectModel `json:"schedule_subject,omitempty" gorm:"foreignKey:ScheduleSubjectID;references:SubjectID"`
	ScheduleRoom    *roomModel.RoomModel       `json:"schedule_room,omitempty" gorm:"foreignKey:ScheduleRoomID;references:RoomID"`
	ScheduleClass   *classModel.ClassModel     `json:"schedule_class,omitempty" gorm:"foreignKey:ScheduleClassID;references:ClassID"`
	ScheduleTeacher *teacherModel.TeacherModel `json:"schedule_teacher,omitempty" gorm:"foreignKey:ScheduleTeacherID;references:TeacherID"`

	ScheduleCreatedAt time.Time  `json:"schedule_created_at" gorm:"column:schedule_created_at;not null;autoCreateTime"`
	ScheduleUpdatedAt *time.Time `json:"schedule_updated_at,omitempty" gorm:"column:schedule_updated_at"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}
