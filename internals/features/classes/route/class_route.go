package router

import (
	classController "schoolku_backend/internals/features/classes/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ClassUserRoutes: read-only, any authenticated role.
func ClassUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classController.NewClassController(db)
	classes := r.Group("/classes")
	classes.Get("/", ctrl.List)
	classes.Get("/:id", ctrl.GetByID)
}

// ClassAdminRoutes: full CRUD.
func ClassAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classController.NewClassController(db)
	classes := r.Group("/classes")
	classes.Post("/", ctrl.Create)
	classes.Put("/:id", ctrl.Update)
	classes.Delete("/:id", ctrl.Delete)
}
