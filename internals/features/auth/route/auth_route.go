package route

import (
	authCtrl "absenku_backend/internals/features/auth/controller"
	middlewares "absenku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authCtrl.NewAuthController(db)

	app.Post("/api/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
