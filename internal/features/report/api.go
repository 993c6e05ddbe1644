package report

import (
	"yapton-backend/internal/config"
	"yapton-backend/internal/features/user"
	"yapton-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ReportApi struct {
	reportController *ReportController
	config           *config.Config
}

func NewReportApi(reportController *ReportController, config *config.Config) *ReportApi {
	return &ReportApi{
		reportController: reportController,
		config:           config,
	}
}

func (h *ReportApi) Setup(app *fiber.App) {
	reports := app.Group("/api/reports",
		middleware.AuthMiddleware(h.config.SkipAuth),
		middleware.RequireRole(user.RoleManagement, user.RoleExecutive),
	)

	reports.Post("/run", h.reportController.TriggerRun)
	reports.Get("/runs", h.reportController.ListRuns)
	reports.Get("/runs/:id", h.reportController.GetRun)
}
