// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "pertandinganku_backend/internals/features/users/auth/controller"
	"pertandinganku_backend/internals/middlewares"
)

func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authCtl.NewAuthController(db)

	grp := r.Group("/auth")
	grp.Post("/register", middlewares.LoginRateLimiter(), ctrl.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	grp.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
}
