package router

import (
	academicsController "schoolku_backend/internals/features/academics/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SchoolYearUserRoutes: read-only, any authenticated role.
func SchoolYearUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := academicsController.NewSchoolYearController(db)
	r.Get("/school-years", ctrl.List)
}
