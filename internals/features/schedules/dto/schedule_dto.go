package dto

import (
	"strings"
	"time"

	"schoolku_backend/internals/features/schedules/grid"
	m "schoolku_backend/internals/features/schedules/model"
)

type CreateScheduleRequest struct {
	ScheduleAs       string  `json:"schedule_as" validate:"omitempty,min=1,max=9"`
	ScheduleDay      string  `json:"schedule_day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday"`
	ScheduleStart    string  `json:"schedule_start" validate:"required"`
	ScheduleDuration float64 `json:"schedule_duration" validate:"required,gt=0,lte=10"`

	ScheduleSubjectID *int `json:"schedule_subject_id" validate:"omitempty,min=1"`
	ScheduleRoomID    *int `json:"schedule_room_id" validate:"omitempty,min=1"`
	ScheduleClassID   *int `json:"schedule_class_id" validate:"omitempty,min=1"`
	ScheduleTeacherID *int `json:"schedule_teacher_id" validate:"omitempty,min=1"`
}

func (r *CreateScheduleRequest) Normalize() {
	r.ScheduleAs = strings.TrimSpace(r.ScheduleAs)
	r.ScheduleDay = strings.ToLower(strings.TrimSpace(r.ScheduleDay))
	r.ScheduleStart = strings.TrimSpace(r.ScheduleStart)
}

// Validate checks what struct tags cannot: the start time format and the
// grid bounds.
func (r CreateScheduleRequest) Validate() error {
	start, err := grid.ParseStart(r.ScheduleStart)
	if err != nil {
		return err
	}
	if start < grid.GridStartHour || start+r.ScheduleDuration > grid.GridEndHour {
		return errOutOfGrid
	}
	return nil
}

func (r CreateScheduleRequest) ToModel() m.ScheduleModel {
	return m.ScheduleModel{
		ScheduleAs:        r.ScheduleAs,
		ScheduleDay:       r.ScheduleDay,
		ScheduleStart:     r.ScheduleStart,
		ScheduleDuration:  r.ScheduleDuration,
		ScheduleSubjectID: r.ScheduleSubjectID,
		ScheduleRoomID:    r.ScheduleRoomID,
		ScheduleClassID:   r.ScheduleClassID,
		ScheduleTeacherID: r.ScheduleTeacherID,
	}
}

type UpdateScheduleRequest struct {
	ScheduleAs       *string  `json:"schedule_as" validate:"omitempty,min=1,max=9"`
	ScheduleDay      *string  `json:"schedule_day" validate:"omitempty,oneof=monday tuesday wednesday thursday friday saturday"`
	ScheduleStart    *string  `json:"schedule_start"`
	ScheduleDuration *float64 `json:"schedule_duration" validate:"omitempty,gt=0,lte=10"`

	ScheduleSubjectID *int `json:"schedule_subject_id" validate:"omitempty,min=1"`
	ScheduleRoomID    *int `json:"schedule_room_id" validate:"omitempty,min=1"`
	ScheduleClassID   *int `json:"schedule_class_id" validate:"omitempty,min=1"`
	ScheduleTeacherID *int `json:"schedule_teacher_id" validate:"omitempty,min=1"`
}

func (r *UpdateScheduleRequest) Normalize() {
	if r.ScheduleAs != nil {
		v := strings.TrimSpace(*r.ScheduleAs)
		if v == "" {
			r.ScheduleAs = nil
		} else {
			r.ScheduleAs = &v
		}
	}
	if r.ScheduleDay != nil {
		v := strings.ToLower(strings.TrimSpace(*r.ScheduleDay))
		r.ScheduleDay = &v
	}
	if r.ScheduleStart != nil {
		v := strings.TrimSpace(*r.ScheduleStart)
		if v == "" {
			r.ScheduleStart = nil
		} else {
			r.ScheduleStart = &v
		}
	}
}

func (r UpdateScheduleRequest) ApplyUpdates(mm *m.ScheduleModel) {
	if r.ScheduleAs != nil {
		mm.ScheduleAs = *r.ScheduleAs
	}
	if r.ScheduleDay != nil {
		mm.ScheduleDay = *r.ScheduleDay
	}
	if r.ScheduleStart != nil {
		mm.ScheduleStart = *r.ScheduleStart
	}
	if r.ScheduleDuration != nil {
		mm.ScheduleDuration = *r.ScheduleDuration
	}
	if r.ScheduleSubjectID != nil {
		mm.ScheduleSubjectID = r.ScheduleSubjectID
	}
	if r.ScheduleRoomID != nil {
		mm.ScheduleRoomID = r.ScheduleRoomID
	}
	if r.ScheduleClassID != nil {
		mm.ScheduleClassID = r.ScheduleClassID
	}
	if r.ScheduleTeacherID != nil {
		mm.ScheduleTeacherID = r.ScheduleTeacherID
	}
	now := time.Now()
	mm.ScheduleUpdatedAt = &now
}

// Validate checks the resulting slot still fits the grid.
func (r UpdateScheduleRequest) Validate(mm m.ScheduleModel) error {
	start, err := grid.ParseStart(mm.ScheduleStart)
	if err != nil {
		return err
	}
	if start < grid.GridStartHour || start+mm.ScheduleDuration > grid.GridEndHour {
		return errOutOfGrid
	}
	return nil
}

// GridEntry is one placed slot of the timetable view.
type GridEntry struct {
	m.ScheduleModel
	GridPlacement grid.Placement `json:"grid_placement"`
	GridColor     string         `json:"grid_color"`
}

type gridError string

func (e gridError) Error() string { return string(e) }

const errOutOfGrid = gridError("slot falls outside the timetable grid")
