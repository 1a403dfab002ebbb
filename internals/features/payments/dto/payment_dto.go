package dto

import (
	"strings"
	"time"

	m "schoolku_backend/internals/features/payments/model"
)

type CreatePaymentRequest struct {
	PaymentAmount   float64 `json:"payment_amount" validate:"required,gt=0"`
	PaymentType     string  `json:"payment_type" validate:"omitempty,oneof=cash check transfer"`
	PaymentAs       string  `json:"payment_as" validate:"required,min=1,max=9"`
	PaymentParentID *int    `json:"payment_parent_id" validate:"omitempty,min=1"`
}

func (r *CreatePaymentRequest) Normalize() {
	r.PaymentType = strings.ToLower(strings.TrimSpace(r.PaymentType))
	if r.PaymentType == "" {
		r.PaymentType = string(m.PaymentTypeCash)
	}
	r.PaymentAs = strings.TrimSpace(r.PaymentAs)
}

func (r CreatePaymentRequest) ToModel() m.PaymentModel {
	return m.PaymentModel{
		PaymentAmount:   r.PaymentAmount,
		PaymentType:     m.PaymentType(r.PaymentType),
		PaymentAs:       r.PaymentAs,
		PaymentParentID: r.PaymentParentID,
	}
}

type UpdatePaymentRequest struct {
	PaymentAmount   *float64 `json:"payment_amount" validate:"omitempty,gt=0"`
	PaymentType     *string  `json:"payment_type" validate:"omitempty,oneof=cash check transfer"`
	PaymentAs       *string  `json:"payment_as" validate:"omitempty,min=1,max=9"`
	PaymentParentID *int     `json:"payment_parent_id" validate:"omitempty,min=1"`
}

func (r *UpdatePaymentRequest) Normalize() {
	if r.PaymentType != nil {
		v := strings.ToLower(strings.TrimSpace(*r.PaymentType))
		r.PaymentType = &v
	}
	if r.PaymentAs != nil {
		v := strings.TrimSpace(*r.PaymentAs)
		if v == "" {
			r.PaymentAs = nil
		} else {
			r.PaymentAs = &v
		}
	}
}

func (r UpdatePaymentRequest) ApplyUpdates(mm *m.PaymentModel) {
	if r.PaymentAmount != nil {
		mm.PaymentAmount = *r.PaymentAmount
	}
	if r.PaymentType != nil {
		mm.PaymentType = m.PaymentType(*r.PaymentType)
	}
	if r.PaymentAs != nil {
		mm.PaymentAs = *r.PaymentAs
	}
	if r.PaymentParentID != nil {
		mm.PaymentParentID = r.PaymentParentID
	}
	now := time.Now()
	mm.PaymentUpdatedAt = &now
}

// PaymentSummaryRow is one bucket of the grouped totals view.
type PaymentSummaryRow struct {
	PaymentParentID *int    `json:"payment_parent_id"`
	PaymentAs       string  `json:"payment_as"`
	TotalAmount     float64 `json:"total_amount"`
	PaymentCount    int64   `json:"payment_count"`
}
