package router

import (
	parentController "schoolku_backend/internals/features/parents/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ParentUserRoutes: read-only, any authenticated role.
func ParentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := parentController.NewParentController(db)
	parents := r.Group("/parents")
	parents.Get("/", ctrl.List)
	parents.Get("/:id", ctrl.GetByID)
}

// ParentAdminRoutes: full CRUD.
func ParentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := parentController.NewParentController(db)
	parents := r.Group("/parents")
	parents.Post("/", ctrl.Create)
	parents.Put("/:id", ctrl.Update)
	parents.Delete("/:id", ctrl.Delete)
}
