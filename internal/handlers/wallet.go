package handlers

import (
	"coinvault/internal/services/wallet"
	"coinvault/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type WalletHandler struct {
	walletService wallet.Service
}

func NewWalletHandler(walletService wallet.Service) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

func (h *WalletHandler) CreateWallet(c *fiber.Ctx) error {
	var input struct {
		UserEmail      string          `json:"user_email"`
		InitialBalance decimal.Decimal `json:"initial_balance"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	created, err := h.walletService.Create(c.Context(), input.UserEmail, input.InitialBalance)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Created(c, created)
}

func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "invalid wallet id")
	}
	found, err := h.walletService.Get(c.Context(), uint(id))
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, found)
}

func (h *WalletHandler) ListWallets(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return response.BadRequest(c, "email query parameter is required")
	}
	wallets, err := h.walletService.ListByUserEmail(c.Context(), email)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, wallets)
}

func (h *WalletHandler) AddAsset(c *fiber.Ctx) error {
	walletID, err := c.ParamsInt("id")
	if err != nil || walletID <= 0 {
		return response.BadRequest(c, "invalid wallet id")
	}
	var input struct {
		CryptocurrencyID uint `json:"cryptocurrency_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	asset, err := h.walletService.AddAsset(c.Context(), uint(walletID), input.CryptocurrencyID)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Created(c, asset)
}

func (h *WalletHandler) RemoveAsset(c *fiber.Ctx) error {
	walletID, err := c.ParamsInt("id")
	if err != nil || walletID <= 0 {
		return response.BadRequest(c, "invalid wallet id")
	}
	cryptoID, err := c.ParamsInt("cryptoID")
	if err != nil || cryptoID <= 0 {
		return response.BadRequest(c, "invalid cryptocurrency id")
	}

	if err := h.walletService.RemoveAsset(c.Context(), uint(walletID), uint(cryptoID)); err != nil {
		return response.DomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *WalletHandler) Invest(c *fiber.Ctx) error {
	walletID, err := c.ParamsInt("id")
	if err != nil || walletID <= 0 {
		return response.BadRequest(c, "invalid wallet id")
	}
	var input struct {
		CryptocurrencyID uint            `json:"cryptocurrency_id"`
		FiatAmount       decimal.Decimal `json:"fiat_amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	asset, err := h.walletService.Invest(c.Context(), uint(walletID), input.CryptocurrencyID, input.FiatAmount)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, asset)
}

func (h *WalletHandler) NetWorth(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return response.BadRequest(c, "email query parameter is required")
	}
	total, err := h.walletService.TotalNetWorth(c.Context(), email)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, fiber.Map{"email": email, "net_worth": total})
}

func (h *WalletHandler) DeleteWallet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "invalid wallet id")
	}
	if err := h.walletService.Delete(c.Context(), uint(id)); err != nil {
		return response.DomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
