package router

import (
	paymentController "schoolku_backend/internals/features/payments/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PaymentUserRoutes: read-only, any authenticated role.
func PaymentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)
	payments := r.Group("/payments")
	payments.Get("/", ctrl.List)
	payments.Get("/summary", ctrl.Summary)
	payments.Get("/years", ctrl.Years)
	payments.Get("/:id", ctrl.GetByID)
}

// PaymentAdminRoutes: full CRUD.
func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)
	payments := r.Group("/payments")
	payments.Post("/", ctrl.Create)
	payments.Put("/:id", ctrl.Update)
	payments.Delete("/:id", ctrl.Delete)
}
