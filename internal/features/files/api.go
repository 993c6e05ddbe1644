package files

import (
	"yapton-backend/internal/config"

	"github.com/gofiber/fiber/v2"
)

// FilesApi serves the generated report artifacts. Left unauthenticated so
// the download links in notification emails work from any mail client.
type FilesApi struct {
	config *config.Config
}

func NewFilesApi(config *config.Config) *FilesApi {
	return &FilesApi{
		config: config,
	}
}

func (h *FilesApi) Setup(app *fiber.App) {
	app.Static(h.config.ReportsURL, h.config.ReportsDir, fiber.Static{
		Browse:   false,
		Download: true,
	})
}
