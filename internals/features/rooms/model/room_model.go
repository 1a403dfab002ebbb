package model

import (
	"time"

	"gorm.io/datatypes"
)

type RoomType string

const (
	RoomTypeClassroom    RoomType = "classroom"
	RoomTypeLaboratory   RoomType = "laboratory"
	RoomTypeAmphitheater RoomType = "amphitheater"
)

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusMaintenance RoomStatus = "maintenance"
	RoomStatusOccupied    RoomStatus = "occupied"
)

// RoomModel represents the `rooms` table.
type RoomModel struct {
	RoomID       int        `json:"room_id" gorm:"column:room_id;primaryKey;autoIncrement"`
	RoomName     string     `json:"room_name" gorm:"column:room_name;type:varchar(120);not null"`
	RoomType     RoomType   `json:"room_type" gorm:"column:room_type;type:varchar(20);not null;default:'classroom'"`
	RoomCapacity *int       `json:"room_capacity,omitempty" gorm:"column:room_capacity"`
	RoomStatus   RoomStatus `json:"room_status" gorm:"column:room_status;type:varchar(20);not null;default:'available'"`

	// Free-form equipment/feature attributes (projector, lab benches, ...).
	RoomFeatures datatypes.JSON `json:"room_features,omitempty" gorm:"column:room_features"`

	RoomCreatedAt time.Time  `json:"room_created_at" gorm:"column:room_created_at;not null;autoCreateTime"`
	RoomUpdatedAt *time.Time `json:"room_updated_at,omitempty" gorm:"column:room_updated_at"`
}

func (RoomModel) TableName() string {
	return "rooms"
}
