package handler

import (
	"go-pos-ws/internal/model"
	"go-pos-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SaleHandler struct {
	saleService service.SaleService
}

func NewSaleHandler(s service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: s}
}

// CreateSale records a completed sale.
// POST /api/v1/sales
func (h *SaleHandler) CreateSale(c *fiber.Ctx) error {
	var req model.CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	sale, err := h.saleService.RecordSale(c.UserContext(), &req)
	if err != nil {
		return respondErr(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Sale recorded", "data": sale})
}

// VoidSale reverses a previously recorded sale.
// DELETE /api/v1/sales/:id
func (h *SaleHandler) VoidSale(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.saleService.VoidSale(c.UserContext(), id); err != nil {
		return respondErr(c, err)
	}

	return c.JSON(fiber.Map{"message": "Sale voided", "sale_id": id})
}

// GetSales lists all sales with their line items.
// GET /api/v1/sales
func (h *SaleHandler) GetSales(c *fiber.Ctx) error {
	sales, err := h.saleService.GetAllSales()
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(sales)
}

// GetSale fetches one sale by id.
// GET /api/v1/sales/:id
func (h *SaleHandler) GetSale(c *fiber.Ctx) error {
	sale, err := h.saleService.GetSaleByID(c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(sale)
}
