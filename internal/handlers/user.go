package handlers

import (
	"coinvault/internal/services/user"
	"coinvault/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var input struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		HistoryNote string `json:"history_note"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	created, err := h.userService.Create(input.Name, input.Email, input.HistoryNote)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Created(c, created)
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "invalid user id")
	}
	found, err := h.userService.GetByID(uint(id))
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, found)
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	if symbol := c.Query("holding"); symbol != "" {
		users, err := h.userService.ListByCryptoSymbol(symbol)
		if err != nil {
			return response.DomainError(c, err)
		}
		return response.Success(c, users)
	}
	if c.QueryBool("multiple_wallets") {
		users, err := h.userService.ListWithMultipleWallets()
		if err != nil {
			return response.DomainError(c, err)
		}
		return response.Success(c, users)
	}

	users, err := h.userService.List()
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, users)
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "invalid user id")
	}
	if err := h.userService.Delete(uint(id)); err != nil {
		return response.DomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *UserHandler) GetHistory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "invalid user id")
	}
	history, err := h.userService.GetHistory(uint(id))
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, history)
}
