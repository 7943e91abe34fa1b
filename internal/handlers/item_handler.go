package handlers

import (
	"grocery/internal/models"
	"grocery/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ItemHandler handles HTTP requests for the item catalog.
type ItemHandler struct {
	service *services.ItemService
	log     *zap.Logger
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *services.ItemService, log *zap.Logger) *ItemHandler {
	return &ItemHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the item routes.
func (h *ItemHandler) RegisterRoutes(router fiber.Router) {
	itemRoutes := router.Group("/item")
	itemRoutes.Get("/", h.GetAllItems)
	itemRoutes.Get("/:name", h.GetItem)
	itemRoutes.Post("/", h.CreateItem)
	itemRoutes.Delete("/:name", h.DeleteItem)
}

// GetAllItems handles fetching the whole catalog.
func (h *ItemHandler) GetAllItems(c *fiber.Ctx) error {
	items, err := h.service.GetAllItems()
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(items)
}

// GetItem handles fetching a single item by name.
func (h *ItemHandler) GetItem(c *fiber.Ctx) error {
	item, err := h.service.GetItem(c.Params("name"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(item)
}

// CreateItem handles adding an item to the catalog.
func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	var in models.ItemInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	item, err := h.service.AddItem(in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// DeleteItem handles removing an item from the catalog and every list.
func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	name := c.Params("name")
	if err := h.service.RemoveItem(name); err != nil {
		return writeError(c, h.log, err)
	}
	return success(c, fiber.StatusOK, "Item "+name+" removed.")
}
