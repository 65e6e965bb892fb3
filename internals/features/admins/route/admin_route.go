package route

import (
	admCtrl "absenku_backend/internals/features/admins/controller"
	authMiddleware "absenku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AdminAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := admCtrl.NewAdminController(db)

	g := r.Group("/admins", authMiddleware.IsAdmin())
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	// delete-all harus terdaftar sebelum :id
	g.Delete("/delete-all", ctrl.DeleteAll)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
