package route

import (
	empCtrl "absenku_backend/internals/features/employees/controller"
	authMiddleware "absenku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func EmployeeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := empCtrl.NewEmployeeController(db)

	g := r.Group("/employees", authMiddleware.IsAdmin())
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	// delete-all harus terdaftar sebelum :id
	g.Delete("/delete-all", ctrl.DeleteAll)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
