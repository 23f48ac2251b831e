package handlers

import (
	"coinvault/internal/services/crypto"
	"coinvault/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CryptoHandler struct {
	cryptoService crypto.Service
}

func NewCryptoHandler(cryptoService crypto.Service) *CryptoHandler {
	return &CryptoHandler{cryptoService: cryptoService}
}

func (h *CryptoHandler) CreateCryptocurrency(c *fiber.Ctx) error {
	var input struct {
		Name   string           `json:"name"`
		Symbol string           `json:"symbol"`
		Price  *decimal.Decimal `json:"price"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	created, err := h.cryptoService.Create(input.Name, input.Symbol, input.Price)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Created(c, created)
}

func (h *CryptoHandler) GetCryptocurrency(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "invalid cryptocurrency id")
	}
	found, err := h.cryptoService.GetByID(uint(id))
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, found)
}

// ListCryptocurrencies returns every cryptocurrency, or with ?unused=true
// only the ones not held in any wallet.
func (h *CryptoHandler) ListCryptocurrencies(c *fiber.Ctx) error {
	if c.QueryBool("unused") {
		cryptos, err := h.cryptoService.ListUnused()
		if err != nil {
			return response.DomainError(c, err)
		}
		return response.Success(c, cryptos)
	}

	cryptos, err := h.cryptoService.List()
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, cryptos)
}

func (h *CryptoHandler) SetPrice(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "invalid cryptocurrency id")
	}
	var input struct {
		Price decimal.Decimal `json:"price"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	if err := h.cryptoService.SetPrice(uint(id), input.Price); err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, fiber.Map{"id": id, "price": input.Price})
}

func (h *CryptoHandler) DeleteCryptocurrency(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "invalid cryptocurrency id")
	}
	if err := h.cryptoService.Delete(uint(id)); err != nil {
		return response.DomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
