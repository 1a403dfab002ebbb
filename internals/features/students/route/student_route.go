package router

import (
	studentController "schoolku_backend/internals/features/students/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StudentUserRoutes: read-only, any authenticated role.
func StudentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)
	students := r.Group("/students")
	students.Get("/", ctrl.List)
	students.Get("/:id", ctrl.GetByID)
}

// StudentAdminRoutes: full CRUD with photo upload.
func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)
	students := r.Group("/students")
	students.Post("/", ctrl.Create)
	students.Put("/:id", ctrl.Update)
	students.Delete("/:id", ctrl.Delete)
}
