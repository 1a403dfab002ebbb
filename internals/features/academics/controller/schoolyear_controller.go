package controller

import (
	"time"

	"schoolku_backend/internals/features/academics/schoolyear"
	helper "schoolku_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SchoolYearController struct {
	DB *gorm.DB
}

func NewSchoolYearController(db *gorm.DB) *SchoolYearController {
	return &SchoolYearController{DB: db}
}

// GET /api/u/school-years
//
// Year pickers across the app share one source: the current label plus every
// label persisted on payments or schedule entries.
func (ctrl *SchoolYearController) List(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())
	now := time.Now()

	var fromPayments []string
	if err := db.Table("payments").
		Distinct("payment_as").
		Pluck("payment_as", &fromPayments).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list school years")
	}

	var fromSchedules []string
	if err := db.Table("schedules").
		Distinct("schedule_as").
		Pluck("schedule_as", &fromSchedules).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list school years")
	}

	labels := schoolyear.AvailableLabels(now, append(fromPayments, fromSchedules...))
	return helper.JsonOK(c, "school years", fiber.Map{
		"current": schoolyear.CurrentLabel(now),
		"years":   labels,
	})
}
