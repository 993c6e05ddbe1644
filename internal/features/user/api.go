package user

import (
	"yapton-backend/internal/config"
	"yapton-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UserApi struct {
	userController *UserController
	config         *config.Config
}

func NewUserApi(userController *UserController, config *config.Config) *UserApi {
	return &UserApi{
		userController: userController,
		config:         config,
	}
}

func (h *UserApi) Setup(app *fiber.App) {
	users := app.Group("/api/users", middleware.AuthMiddleware(h.config.SkipAuth))

	users.Get("/", h.userController.ListUsers)
	users.Get("/:id", h.userController.GetUser)

	users.Post("/", middleware.RequireRole(RoleManagement, RoleExecutive), h.userController.CreateUser)
	users.Put("/:id", middleware.RequireRole(RoleManagement, RoleExecutive), h.userController.UpdateUser)
	users.Delete("/:id", middleware.RequireRole(RoleExecutive), h.userController.DeleteUser)
}
