package dto

import (
	"strings"
	"time"

	m "schoolku_backend/internals/features/rooms/model"

	"gorm.io/datatypes"
)

type CreateRoomRequest struct {
	RoomName     string         `json:"room_name" validate:"required,min=1,max=120"`
	RoomType     string         `json:"room_type" validate:"omitempty,oneof=classroom laboratory amphitheater"`
	RoomCapacity *int           `json:"room_capacity" validate:"omitempty,min=1"`
	RoomStatus   string         `json:"room_status" validate:"omitempty,oneof=available maintenance occupied"`
	RoomFeatures datatypes.JSON `json:"room_features"`
}

func (r *CreateRoomRequest) Normalize() {
	r.RoomName = strings.TrimSpace(r.RoomName)
	r.RoomType = strings.ToLower(strings.TrimSpace(r.RoomType))
	r.RoomStatus = strings.ToLower(strings.TrimSpace(r.RoomStatus))
	if r.RoomType == "" {
		r.RoomType = string(m.RoomTypeClassroom)
	}
	if r.RoomStatus == "" {
		r.RoomStatus = string(m.RoomStatusAvailable)
	}
}

func (r CreateRoomRequest) ToModel() m.RoomModel {
	return m.RoomModel{
		RoomName:     r.RoomName,
		RoomType:     m.RoomType(r.RoomType),
		RoomCapacity: r.RoomCapacity,
		RoomStatus:   m.RoomStatus(r.RoomStatus),
		RoomFeatures: r.RoomFeatures,
	}
}

type UpdateRoomRequest struct {
	RoomName     *string        `json:"room_name" validate:"omitempty,min=1,max=120"`
	RoomType     *string        `json:"room_type" validate:"omitempty,oneof=classroom laboratory amphitheater"`
	RoomCapacity *int           `json:"room_capacity" validate:"omitempty,min=1"`
	RoomStatus   *string        `json:"room_status" validate:"omitempty,oneof=available maintenance occupied"`
	RoomFeatures datatypes.JSON `json:"room_features"`
}

func (r *UpdateRoomRequest) Normalize() {
	if r.RoomName != nil {
		v := strings.TrimSpace(*r.RoomName)
		if v == "" {
			r.RoomName = nil
		} else {
			r.RoomName = &v
		}
	}
	if r.RoomType != nil {
		v := strings.ToLower(strings.TrimSpace(*r.RoomType))
		r.RoomType = &v
	}
	if r.RoomStatus != nil {
		v := strings.ToLower(strings.TrimSpace(*r.RoomStatus))
		r.RoomStatus = &v
	}
}

func (r UpdateRoomRequest) ApplyUpdates(mm *m.RoomModel) {
	if r.RoomName != nil {
		mm.RoomName = *r.RoomName
	}
	if r.RoomType != nil {
		mm.RoomType = m.RoomType(*r.RoomType)
	}
	if r.RoomCapacity != nil {
		mm.RoomCapacity = r.RoomCapacity
	}
	if r.RoomStatus != nil {
		mm.RoomStatus = m.RoomStatus(*r.RoomStatus)
	}
	if len(r.RoomFeatures) > 0 {
		mm.RoomFeatures = r.RoomFeatures
	}
	now := time.Now()
	mm.RoomUpdatedAt = &now
}
