package router

import (
	searchController "schoolku_backend/internals/features/search/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SearchUserRoutes: global quick search, any authenticated role.
func SearchUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := searchController.NewSearchController(db)
	r.Get("/search", ctrl.Search)
}
