package router

import (
	scheduleController "schoolku_backend/internals/features/schedules/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ScheduleUserRoutes: read-only, any authenticated role.
func ScheduleUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := scheduleController.NewScheduleController(db)
	schedules := r.Group("/schedules")
	schedules.Get("/", ctrl.List)
	schedules.Get("/grid", ctrl.Grid)
	schedules.Get("/:id", ctrl.GetByID)
}

// ScheduleAdminRoutes: full CRUD with perspective pinning.
func ScheduleAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := scheduleController.NewScheduleController(db)
	schedules := r.Group("/schedules")
	schedules.Post("/", ctrl.Create)
	schedules.Put("/:id", ctrl.Update)
	schedules.Delete("/:id", ctrl.Delete)
}
