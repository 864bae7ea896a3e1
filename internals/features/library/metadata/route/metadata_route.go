package route

import (
	"github.com/gofiber/fiber/v2"

	metadataController "perpustakaanku_backend/internals/features/library/metadata/controller"
)

// Mounted under the auth-guarded group: /api/u/metadata
func MetadataRoutes(r fiber.Router) {
	ctl := metadataController.NewMetadataController()

	metadata := r.Group("/metadata")
	metadata.Get("/isbn/:isbn", ctl.LookupISBN)
}
