package handlers

import (
	"grocery/internal/middleware"
	"grocery/internal/models"
	"grocery/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ShoppingListHandler handles HTTP requests for shopping lists.
type ShoppingListHandler struct {
	service *services.ShoppingListService
	log     *zap.Logger
}

// NewShoppingListHandler creates a new ShoppingListHandler.
func NewShoppingListHandler(service *services.ShoppingListService, log *zap.Logger) *ShoppingListHandler {
	return &ShoppingListHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the shopping list routes.
func (h *ShoppingListHandler) RegisterRoutes(router fiber.Router) {
	listRoutes := router.Group("/shoppingList")
	listRoutes.Get("/", h.GetAllShoppingLists)
	listRoutes.Get("/:name", h.GetShoppingList)
	listRoutes.Post("/", h.CreateShoppingList)
	listRoutes.Delete("/:name", h.DeleteShoppingList)
	listRoutes.Post("/:name/item", h.AddItem)
	listRoutes.Delete("/:listName/item/:itemName", h.RemoveItem)
	listRoutes.Put("/:name/privacy", h.SetPrivacy)
	listRoutes.Put("/:name/owner", h.SetOwner)
}

type privacyRequest struct {
	Privacy models.Privacy `json:"privacy"`
}

type ownerRequest struct {
	Owner string `json:"owner"`
}

// viewer derives the requester from the token. Admins may look at the lists
// as another user through the role and username query parameters.
func viewer(c *fiber.Ctx) *models.Viewer {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return &models.Viewer{}
	}
	v := &models.Viewer{Username: claims.Username, Role: claims.Role}
	if claims.Role != models.RoleAdmin {
		return v
	}
	if role := c.Query("role"); role != "" {
		v.Role = models.Role(role)
		v.Username = c.Query("username")
	}
	return v
}

// GetAllShoppingLists handles fetching the lists the requester can see.
func (h *ShoppingListHandler) GetAllShoppingLists(c *fiber.Ctx) error {
	lists, err := h.service.GetAllShoppingLists(viewer(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(lists)
}

// GetShoppingList handles fetching a single list.
func (h *ShoppingListHandler) GetShoppingList(c *fiber.Ctx) error {
	list, err := h.service.GetShoppingList(c.Params("name"), viewer(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(list)
}

// CreateShoppingList handles creating a list with its initial items.
func (h *ShoppingListHandler) CreateShoppingList(c *fiber.Ctx) error {
	var in models.ShoppingListInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	list, err := h.service.AddShoppingList(in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(list)
}

// DeleteShoppingList handles removing a list.
func (h *ShoppingListHandler) DeleteShoppingList(c *fiber.Ctx) error {
	name := c.Params("name")
	if err := h.service.RemoveShoppingList(name, viewer(c)); err != nil {
		return writeError(c, h.log, err)
	}
	return success(c, fiber.StatusOK, "Shopping list "+name+" removed.")
}

// AddItem handles appending an item to a list.
func (h *ShoppingListHandler) AddItem(c *fiber.Ctx) error {
	var in models.ItemInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	item, err := h.service.AddItemToShoppingList(c.Params("name"), in, viewer(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// RemoveItem handles detaching an item from a list.
func (h *ShoppingListHandler) RemoveItem(c *fiber.Ctx) error {
	listName, itemName := c.Params("listName"), c.Params("itemName")
	if err := h.service.RemoveItemFromShoppingList(listName, itemName, viewer(c)); err != nil {
		return writeError(c, h.log, err)
	}
	return success(c, fiber.StatusOK, "Item "+itemName+" removed from shopping list "+listName+".")
}

// SetPrivacy handles changing the privacy of a list.
func (h *ShoppingListHandler) SetPrivacy(c *fiber.Ctx) error {
	var req privacyRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	list, err := h.service.SetShoppingListPrivacy(c.Params("name"), req.Privacy, viewer(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(list)
}

// SetOwner handles handing a list over to another owner.
func (h *ShoppingListHandler) SetOwner(c *fiber.Ctx) error {
	var req ownerRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	list, err := h.service.SetShoppingListOwner(c.Params("name"), req.Owner, viewer(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(list)
}
