package model

import (
	"time"

	parentModel "schoolku_backend/internals/features/parents/model"
)

type PaymentType string

const (
	PaymentTypeCash     PaymentType = "cash"
	PaymentTypeCheck    PaymentType = "check"
	PaymentTypeTransfer PaymentType = "transfer"
)

// PaymentModel represents the `payments` table. PaymentAs is the school-year
// label ("2024/2025") scoping the payment.
type PaymentModel struct {
	PaymentID     int         `json:"payment_id" gorm:"column:payment_id;primaryKey;autoIncrement"`
	PaymentAmount float64     `json:"payment_amount" gorm:"column:payment_amount;not null"`
	PaymentType   PaymentType `json:"payment_type" gorm:"column:payment_type;type:varchar(20);not null;default:'cash'"`
	PaymentAs     string      `json:"payment_as" gorm:"column:payment_as;type:varchar(9);not null;index"`
	PaymentDate   time.Time   `json:"payment_date" gorm:"column:payment_date;not null;autoCreateTime"`

	PaymentParentID *int `json:"payment_parent_id,omitempty" gorm:"column:payment_parent_id;index"`

	PaymentParent *parentModel.ParentModel `json:"payment_parent,omitempty" gorm:"foreignKey:PaymentParentID;references:ParentID"`

	PaymentCreatedAt time.Time  `json:"payment_created_at" gorm:"column:payment_created_at;not null;autoCreateTime"`
	PaymentUpdatedAt *time.Time `json:"payment_updated_at,omitempty" gorm:"column:payment_updated_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
