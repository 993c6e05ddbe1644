package report

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ReportController struct {
	ReportService ReportService
	Logger        *zap.Logger
}

func NewReportController(reportService ReportService, logger *zap.Logger) *ReportController {
	return &ReportController{
		ReportService: reportService,
		Logger:        logger,
	}
}

// TriggerRun starts a report run for the week preceding now. Used by
// management to regenerate a report without waiting for the schedule.
func (ctrl *ReportController) TriggerRun(c *fiber.Ctx) error {
	run, err := ctrl.ReportService.RunWeeklyReport(c.Context(), time.Now())
	if err != nil {
		if errors.Is(err, ErrRunInProgress) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A report run is already in progress",
			})
		}
		ctrl.Logger.Error("manual report run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Report run failed",
			"run":   run,
		})
	}

	return c.JSON(run)
}

func (ctrl *ReportController) ListRuns(c *fiber.Ctx) error {
	limit, _ := strconv.ParseInt(c.Query("limit", "50"), 10, 64)

	runs, err := ctrl.ReportService.ListRuns(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch report runs",
		})
	}

	return c.JSON(fiber.Map{"runs": runs})
}

func (ctrl *ReportController) GetRun(c *fiber.Ctx) error {
	run, err := ctrl.ReportService.GetRun(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch report run",
		})
	}
	if run == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Report run not found",
		})
	}
	return c.JSON(run)
}
