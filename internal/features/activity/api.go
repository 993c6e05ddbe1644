package activity

import (
	"yapton-backend/internal/config"
	"yapton-backend/internal/features/user"
	"yapton-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ActivityApi struct {
	activityController *ActivityController
	config             *config.Config
}

func NewActivityApi(activityController *ActivityController, config *config.Config) *ActivityApi {
	return &ActivityApi{
		activityController: activityController,
		config:             config,
	}
}

func (h *ActivityApi) Setup(app *fiber.App) {
	activities := app.Group("/api/activity", middleware.AuthMiddleware(h.config.SkipAuth))

	activities.Post("/", h.activityController.LogActivity)
	activities.Get("/mine", h.activityController.ListMine)

	activities.Get("/", middleware.RequireRole(user.RoleManagement, user.RoleExecutive), h.activityController.ListAll)
	activities.Delete("/:id", middleware.RequireRole(user.RoleManagement, user.RoleExecutive), h.activityController.DeleteRecord)
}
