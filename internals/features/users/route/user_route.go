package router

import (
	userController "schoolku_backend/internals/features/users/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthRoutes: public login/logout.
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userController.NewAuthController(db)
	r.Post("/login", ctrl.Login)
	r.Post("/logout", ctrl.Logout)
}

// AuthUserRoutes: session introspection for any authenticated role.
func AuthUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userController.NewAuthController(db)
	r.Get("/auth/me", ctrl.Me)
}

// UserAdminRoutes: account management, admin only.
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)
	users := r.Group("/users")
	users.Get("/", ctrl.List)
	users.Get("/:id", ctrl.GetByID)
	users.Post("/", ctrl.Create)
	users.Put("/:id", ctrl.Update)
	users.Delete("/:id", ctrl.Delete)
}
