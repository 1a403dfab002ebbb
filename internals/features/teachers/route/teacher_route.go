package router

import (
	teacherController "schoolku_backend/internals/features/teachers/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TeacherUserRoutes: read-only, any authenticated role.
func TeacherUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := teacherController.NewTeacherController(db)
	teachers := r.Group("/teachers")
	teachers.Get("/", ctrl.List)
	teachers.Get("/:id", ctrl.GetByID)
}

// TeacherAdminRoutes: full CRUD, account managed alongside.
func TeacherAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := teacherController.NewTeacherController(db)
	teachers := r.Group("/teachers")
	teachers.Post("/", ctrl.Create)
	teachers.Put("/:id", ctrl.Update)
	teachers.Delete("/:id", ctrl.Delete)
}
