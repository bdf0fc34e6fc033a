// Package web serves the QR code form: a list of text fields, a generate
// button, the rendered SVG and its download.
package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/xid"

	"github.com/Mictilt/qrsvg/internal/config"
	"github.com/Mictilt/qrsvg/internal/logging"
)

// New creates the fiber app with middleware and routes registered.
func New(cfg config.Config, store fiber.Storage) (*fiber.App, error) {
	h, err := NewHandler(cfg, store)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		BodyLimit:             cfg.Server.BodyLimit,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
				logging.Warn("Request rejected", "path", c.Path(), "status", code, "message", msg)
			} else {
				logging.Error("Request failed", "path", c.Path(), "error", err)
			}

			return c.Status(code).SendString(msg)
		},
	})

	RegisterMiddleware(app)
	RegisterRoutes(app, h)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not Found")
	})

	return app, nil
}

// RegisterMiddleware attaches request ids, health endpoints and request logging.
func RegisterMiddleware(app *fiber.App) {
	app.Use(requestid.New(requestid.Config{
		Generator: func() string {
			return xid.New().String()
		},
	}))

	app.Use(healthcheck.New())

	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		logging.Info("Request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
		)
		return err
	})
}

// RegisterRoutes mounts the form handlers.
func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Get("/", h.Index)
	app.Post("/fields/add", h.AddField)
	app.Post("/fields/remove", h.RemoveField)
	app.Post("/generate", h.Generate)
	app.Get("/download/:id", h.DownloadSVG)
	app.Get("/download/:id/png", h.DownloadPNG)
}
