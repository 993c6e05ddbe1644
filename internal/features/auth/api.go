package auth

import (
	"github.com/gofiber/fiber/v2"
)

type AuthApi struct {
	authController *AuthController
}

func NewAuthApi(authController *AuthController) *AuthApi {
	return &AuthApi{
		authController: authController,
	}
}

func (h *AuthApi) Setup(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/login", h.authController.Login)
}
