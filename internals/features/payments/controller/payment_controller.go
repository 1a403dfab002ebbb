package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"schoolku_backend/internals/features/academics/schoolyear"
	paymentDTO "schoolku_backend/internals/features/payments/dto"
	paymentModel "schoolku_backend/internals/features/payments/model"
	helper "schoolku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PaymentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db, Validate: validator.New()}
}

// POST /api/a/payments
func (ctrl *PaymentController) Create(c *fiber.Ctx) error {
	var req paymentDTO.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if req.PaymentAs == "" {
		req.PaymentAs = schoolyear.CurrentLabel(time.Now())
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "unknown parent reference")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create payment")
	}
	return helper.JsonCreated(c, "payment created", m)
}

// GET /api/u/payments?parent_id=&year=&type=
//
// parent_id and year accept the "all" sentinel (same as absent).
func (ctrl *PaymentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	tx := ctrl.DB.WithContext(c.UserContext()).Model(&paymentModel.PaymentModel{})
	tx = applyPaymentFilters(tx, c)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count payments")
	}

	var rows []paymentModel.PaymentModel
	if err := tx.Preload("PaymentParent").
		Order("payment_date DESC, payment_id DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list payments")
	}
	return helper.JsonList(c, "payments", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/u/payments/summary?parent_id=&year=
//
// Grouped totals per (parent, school year), honoring the same filters and
// "all" sentinels as the list.
func (ctrl *PaymentController) Summary(c *fiber.Ctx) error {
	tx := ctrl.DB.WithContext(c.UserContext()).Model(&paymentModel.PaymentModel{})
	tx = applyPaymentFilters(tx, c)

	var buckets []paymentDTO.PaymentSummaryRow
	if err := tx.
		Select("payment_parent_id, payment_as, SUM(payment_amount) AS total_amount, COUNT(*) AS payment_count").
		Group("payment_parent_id, payment_as").
		Order("payment_as DESC").
		Scan(&buckets).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to aggregate payments")
	}

	var grand float64
	var count int64
	for _, b := range buckets {
		grand += b.TotalAmount
		count += b.PaymentCount
	}

	return helper.JsonOK(c, "payment summary", fiber.Map{
		"buckets":       buckets,
		"total_amount":  grand,
		"payment_count": count,
	})
}

// GET /api/u/payments/years
//
// Labels the year picker can offer: the current school year plus every
// label already persisted.
func (ctrl *PaymentController) Years(c *fiber.Ctx) error {
	var persisted []string
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&paymentModel.PaymentModel{}).
		Distinct("payment_as").
		Pluck("payment_as", &persisted).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list payment years")
	}
	return helper.JsonOK(c, "payment years", schoolyear.AvailableLabels(time.Now(), persisted))
}

// GET /api/u/payments/:id
func (ctrl *PaymentController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payment id")
	}

	var m paymentModel.PaymentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("PaymentParent").
		First(&m, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "payment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch payment")
	}
	return helper.JsonOK(c, "payment detail", m)
}

// PUT /api/a/payments/:id
func (ctrl *PaymentController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payment id")
	}

	var req paymentDTO.UpdatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m paymentModel.PaymentModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "payment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch payment")
	}

	req.ApplyUpdates(&m)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "unknown parent reference")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update payment")
	}
	return helper.JsonUpdated(c, "payment updated", m)
}

// DELETE /api/a/payments/:id
func (ctrl *PaymentController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payment id")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&paymentModel.PaymentModel{}, "payment_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete payment")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "payment not found")
	}
	return helper.JsonDeleted(c, "payment deleted", fiber.Map{"payment_id": id})
}

// applyPaymentFilters interprets ?parent_id= and ?year=, where "all" (or
// absence) means unfiltered.
func applyPaymentFilters(tx *gorm.DB, c *fiber.Ctx) *gorm.DB {
	if p := strings.TrimSpace(c.Query("parent_id")); p != "" && !strings.EqualFold(p, "all") {
		if id, err := strconv.Atoi(p); err == nil && id > 0 {
			tx = tx.Where("payment_parent_id = ?", id)
		}
	}
	if y := strings.TrimSpace(c.Query("year")); y != "" && !strings.EqualFold(y, "all") {
		tx = tx.Where("payment_as = ?", y)
	}
	if t := strings.ToLower(strings.TrimSpace(c.Query("type"))); t != "" && t != "all" {
		tx = tx.Where("payment_type = ?", t)
	}
	return tx
}
