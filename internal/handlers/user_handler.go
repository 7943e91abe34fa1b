package handlers

import (
	"fmt"

	"grocery/internal/models"
	"grocery/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UserHandler handles HTTP requests for accounts and authentication.
type UserHandler struct {
	users       *services.UserService
	authService *services.AuthService
	validate    *validator.Validate
	log         *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *services.UserService, authService *services.AuthService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		users:       users,
		authService: authService,
		validate:    validator.New(),
		log:         log,
	}
}

// RegisterPublicRoutes registers the routes reachable without a token.
func (h *UserHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Post("/user/signup", h.HandleSignup)
	router.Post("/user/login", h.HandleLogin)
}

// RegisterRoutes registers the user routes that require a token.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/user")
	userRoutes.Get("/", h.GetAllUsers)
	userRoutes.Get("/:username", h.GetUser)
	userRoutes.Delete("/:username", h.DeleteUser)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleSignup handles new user registration.
func (h *UserHandler) HandleSignup(c *fiber.Ctx) error {
	var in models.UserInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	user, err := h.users.AddUser(in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleLogin handles user login and issues a JWT token.
func (h *UserHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	if err := h.validate.Struct(req); err != nil {
		errorMessages := make(map[string]string)
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, e := range validationErrors {
				errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
			}
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":       "error",
			"errorMessage": "Username and password are required",
			"errors":       errorMessages,
		})
	}

	res, err := h.authService.Authenticate(req.Username, req.Password)
	if err != nil {
		h.log.Info("login rejected", zap.String("username", req.Username))
		return writeError(c, h.log, err)
	}
	return c.JSON(res)
}

// GetAllUsers handles listing every account.
func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	users, err := h.users.GetAllUsers()
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(users)
}

// GetUser handles fetching a single account.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.users.GetUser(c.Params("username"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(user)
}

// DeleteUser handles removing an account.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	username := c.Params("username")
	if err := h.users.RemoveUser(username); err != nil {
		return writeError(c, h.log, err)
	}
	return success(c, fiber.StatusOK, "User "+username+" removed.")
}
