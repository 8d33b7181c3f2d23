package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/punam06/chatbot-inovatex/domain"
	"github.com/punam06/chatbot-inovatex/internal/api/presenters"
	"github.com/punam06/chatbot-inovatex/pkg/catalog"
)

type (
	CatalogHandler interface {
		GetCatalogItems(c *fiber.Ctx) error
		GetCatalogItemDetails(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService) CatalogHandler {
	return &catalogHandler{catalogService: catalogService}
}

func (h *catalogHandler) GetCatalogItems(c *fiber.Ctx) error {
	items, err := h.catalogService.GetCatalogItems(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCatalog, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetCatalog)
}

func (h *catalogHandler) GetCatalogItemDetails(c *fiber.Ctx) error {
	item, err := h.catalogService.GetCatalogItemByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetCatalog, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetCatalog)
}
