package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minipay/ledger-api/internal/api/middleware"
	"github.com/minipay/ledger-api/internal/core/ports"
)

type AccountHandler struct {
	accountService ports.AccountService
}

func NewAccountHandler(accountService ports.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerResponse struct {
	ID int64 `json:"id"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Register creates a new account with a zero balance.
//
// @Summary      Register a new user
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Credentials"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/register [post]
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.accountService.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{ID: account.ID})
}

// Delete removes the authenticated account. Ledger rows are kept.
func (h *AccountHandler) Delete(c echo.Context) error {
	account, err := middleware.Account(c)
	if err != nil {
		return err
	}

	if err := h.accountService.Delete(c.Request().Context(), account.ID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully"})
}

// Users lists all registered accounts (id and username only).
func (h *AccountHandler) Users(c echo.Context) error {
	users, err := h.accountService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Welcome is the unauthenticated hello endpoint.
func (h *AccountHandler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "Welcome to the API"})
}
