package handlers

import (
	"time"

	"coinvault/internal/services/transfer"
	"coinvault/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type TransferHandler struct {
	transferService transfer.Service
}

func NewTransferHandler(transferService transfer.Service) *TransferHandler {
	return &TransferHandler{transferService: transferService}
}

func (h *TransferHandler) CreateTransfer(c *fiber.Ctx) error {
	var input struct {
		SenderID       uint            `json:"sender_id"`
		ReceiverID     uint            `json:"receiver_id"`
		SenderWalletID uint            `json:"sender_wallet_id"`
		CryptoSymbol   string          `json:"crypto_symbol"`
		FiatAmount     decimal.Decimal `json:"fiat_amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	tx, err := h.transferService.Transfer(c.Context(), input.SenderID, input.ReceiverID, input.SenderWalletID, input.CryptoSymbol, input.FiatAmount)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Created(c, tx)
}

// ListTransactions filters by ?user_id=N or by ?start=RFC3339&end=RFC3339.
func (h *TransferHandler) ListTransactions(c *fiber.Ctx) error {
	if userID := c.QueryInt("user_id"); userID > 0 {
		txs, err := h.transferService.TransactionsForUser(uint(userID))
		if err != nil {
			return response.DomainError(c, err)
		}
		return response.Success(c, txs)
	}

	startRaw, endRaw := c.Query("start"), c.Query("end")
	if startRaw == "" || endRaw == "" {
		return response.BadRequest(c, "either user_id or start and end query parameters are required")
	}
	start, err := time.Parse(time.RFC3339, startRaw)
	if err != nil {
		return response.BadRequest(c, "start must be an RFC3339 timestamp")
	}
	end, err := time.Parse(time.RFC3339, endRaw)
	if err != nil {
		return response.BadRequest(c, "end must be an RFC3339 timestamp")
	}

	txs, err := h.transferService.TransactionsInRange(start, end)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, txs)
}
