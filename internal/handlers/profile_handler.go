package handlers

import (
	"strconv"

	"grocery/internal/errs"
	"grocery/internal/models"
	"grocery/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProfileHandler handles HTTP requests for user profiles.
type ProfileHandler struct {
	service *services.ProfileService
	log     *zap.Logger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service *services.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the profile routes.
func (h *ProfileHandler) RegisterRoutes(router fiber.Router) {
	profileRoutes := router.Group("/profile")
	profileRoutes.Get("/", h.GetAllProfiles)
	profileRoutes.Get("/:userId", h.GetProfile)
	profileRoutes.Post("/", h.CreateProfile)
	profileRoutes.Put("/:userId", h.UpdateProfile)
	profileRoutes.Delete("/:email", h.DeleteProfile)
}

func userIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("userId"), 10, 32)
	if err != nil || id == 0 {
		return 0, errs.Invalid(errs.InvalidUserID, "userId", "Invalid userId value")
	}
	return uint(id), nil
}

// GetAllProfiles handles fetching every profile.
func (h *ProfileHandler) GetAllProfiles(c *fiber.Ctx) error {
	profiles, err := h.service.GetAllProfiles()
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(profiles)
}

// GetProfile handles fetching the profile of a user.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	profile, err := h.service.GetProfileByUserID(userID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(profile)
}

// CreateProfile handles creating the profile of a user.
func (h *ProfileHandler) CreateProfile(c *fiber.Ctx) error {
	var in models.ProfileInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	profile, err := h.service.AddProfile(in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

// UpdateProfile handles replacing the details of a user's profile.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	var in models.ProfileInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	profile, err := h.service.UpdateProfile(userID, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(profile)
}

// DeleteProfile handles removing a profile by email.
func (h *ProfileHandler) DeleteProfile(c *fiber.Ctx) error {
	email := c.Params("email")
	if err := h.service.RemoveProfile(email); err != nil {
		return writeError(c, h.log, err)
	}
	return success(c, fiber.StatusOK, "Profile "+email+" removed.")
}
