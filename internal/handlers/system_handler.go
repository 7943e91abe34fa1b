package handlers

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
)

// SystemHandler serves the informational endpoints.
type SystemHandler struct {
	started time.Time
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{started: time.Now()}
}

// RegisterRoutes registers the public informational routes.
func (h *SystemHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.Root)
	router.Get("/status", h.Status)
	router.Get("/api-docs", h.APIDocs)
}

// Root greets API clients.
func (h *SystemHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Welcome to the grocery list API",
		"docs":    "/api-docs",
	})
}

// Status reports that the server is up.
func (h *SystemHandler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Server is running",
		"time":    time.Now().Format(time.RFC3339),
		"uptime":  time.Since(h.started).Round(time.Second).String(),
	})
}

type routeDoc struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// APIDocs lists the registered routes.
func (h *SystemHandler) APIDocs(c *fiber.Ctx) error {
	var routes []routeDoc
	seen := make(map[routeDoc]bool)
	for _, r := range c.App().GetRoutes(true) {
		if r.Method == fiber.MethodHead {
			continue
		}
		doc := routeDoc{Method: r.Method, Path: r.Path}
		if !seen[doc] {
			seen[doc] = true
			routes = append(routes, doc)
		}
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})
	return c.JSON(fiber.Map{"routes": routes})
}
