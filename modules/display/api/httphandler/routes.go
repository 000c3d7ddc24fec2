package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/v1")

	r.Get("/display/:unit", h.GetDisplay)
	r.Get("/balance", h.GetBalance)
	r.Get("/convert", h.GetConvert)
	r.Get("/rate/:currency", h.GetRate)
	return nil
}
