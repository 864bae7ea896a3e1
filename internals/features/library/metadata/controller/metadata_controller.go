// internals/features/library/metadata/controller/metadata_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	service "perpustakaanku_backend/internals/features/library/metadata/service"
	helper "perpustakaanku_backend/internals/helpers"
)

type MetadataController struct {
	Service *service.MetadataService
}

func NewMetadataController() *MetadataController {
	return &MetadataController{Service: service.NewMetadataService()}
}

// =========================================================
// LOOKUP - GET /api/u/metadata/isbn/:isbn
// =========================================================
func (h *MetadataController) LookupISBN(c *fiber.Ctx) error {
	isbn := strings.TrimSpace(c.Params("isbn"))
	if isbn == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing ISBN")
	}

	res, err := h.Service.Lookup(c.UserContext(), isbn)
	if err != nil {
		if errors.Is(err, service.ErrMetadataNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "No metadata found for this ISBN")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Metadata lookup failed")
	}
	return helper.JsonOK(c, "ok", res)
}
