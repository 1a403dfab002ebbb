package router

import (
	roomController "schoolku_backend/internals/features/rooms/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RoomUserRoutes: read-only, any authenticated role.
func RoomUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := roomController.NewRoomController(db)
	rooms := r.Group("/rooms")
	rooms.Get("/", ctrl.List)
	rooms.Get("/:id", ctrl.GetByID)
}

// RoomAdminRoutes: full CRUD.
func RoomAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := roomController.NewRoomController(db)
	rooms := r.Group("/rooms")
	rooms.Post("/", ctrl.Create)
	rooms.Put("/:id", ctrl.Update)
	rooms.Delete("/:id", ctrl.Delete)
}
