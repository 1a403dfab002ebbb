package router

import (
	subjectController "schoolku_backend/internals/features/subjects/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SubjectUserRoutes: read-only, any authenticated role.
func SubjectUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := subjectController.NewSubjectController(db)
	subjects := r.Group("/subjects")
	subjects.Get("/", ctrl.List)
	subjects.Get("/:id", ctrl.GetByID)
}

// SubjectAdminRoutes: full CRUD.
func SubjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := subjectController.NewSubjectController(db)
	subjects := r.Group("/subjects")
	subjects.Post("/", ctrl.Create)
	subjects.Put("/:id", ctrl.Update)
	subjects.Delete("/:id", ctrl.Delete)
}
