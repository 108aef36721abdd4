package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minipay/ledger-api/internal/api/metrics"
	"github.com/minipay/ledger-api/internal/api/middleware"
	"github.com/minipay/ledger-api/internal/core/domain"
	"github.com/minipay/ledger-api/internal/core/ports"
)

type WalletHandler struct {
	walletService ports.WalletService
	rates         ports.RateConverter
}

func NewWalletHandler(walletService ports.WalletService, rates ports.RateConverter) *WalletHandler {
	return &WalletHandler{walletService: walletService, rates: rates}
}

type fundRequest struct {
	Amt float64 `json:"amt" validate:"required,gt=0"`
}

type payRequest struct {
	To  string  `json:"to" validate:"required"`
	Amt float64 `json:"amt" validate:"required,gt=0"`
}

type buyRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
}

type balanceResponse struct {
	Balance float64 `json:"balance"`
}

type convertedBalanceResponse struct {
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}

type purchaseResponse struct {
	Message string  `json:"message"`
	Balance float64 `json:"balance"`
}

// Fund credits an amount to the authenticated account.
//
// @Summary      Fund the account
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        body  body      fundRequest  true  "Amount to credit"
// @Success      200   {object}  balanceResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/fund [post]
func (h *WalletHandler) Fund(c echo.Context) error {
	account, err := middleware.Account(c)
	if err != nil {
		return err
	}

	var req fundRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.TransferErrorsTotal.WithLabelValues("fund", "invalid_amount").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	balance, err := h.walletService.Fund(c.Request().Context(), account.ID, req.Amt)
	if err != nil {
		metrics.TransferErrorsTotal.WithLabelValues("fund", transferErrorReason(err)).Inc()
		return err
	}

	metrics.TransfersTotal.WithLabelValues("fund").Inc()
	return c.JSON(http.StatusOK, balanceResponse{Balance: balance})
}

// Pay transfers an amount from the authenticated account to another user.
//
// @Summary      Pay another user
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        body  body      payRequest  true  "Recipient and amount"
// @Success      200   {object}  balanceResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/pay [post]
func (h *WalletHandler) Pay(c echo.Context) error {
	account, err := middleware.Account(c)
	if err != nil {
		return err
	}

	var req payRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.TransferErrorsTotal.WithLabelValues("pay", "invalid_amount").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	balance, err := h.walletService.Pay(c.Request().Context(), account.ID, req.To, req.Amt)
	if err != nil {
		metrics.TransferErrorsTotal.WithLabelValues("pay", transferErrorReason(err)).Inc()
		return err
	}

	metrics.TransfersTotal.WithLabelValues("pay").Inc()
	return c.JSON(http.StatusOK, balanceResponse{Balance: balance})
}

// Balance returns the stored balance, converted when a non-default currency
// is requested.
func (h *WalletHandler) Balance(c echo.Context) error {
	account, err := middleware.Account(c)
	if err != nil {
		return err
	}

	currency := c.QueryParam("currency")
	if currency == "" {
		currency = h.rates.BaseCurrency()
	}

	balance, err := h.walletService.Balance(c.Request().Context(), account.ID)
	if err != nil {
		return err
	}

	converted, err := h.rates.Convert(c.Request().Context(), balance, currency)
	if err != nil {
		metrics.RateLookupsTotal.WithLabelValues("error").Inc()
		return err
	}
	if currency != h.rates.BaseCurrency() {
		metrics.RateLookupsTotal.WithLabelValues("ok").Inc()
	}

	return c.JSON(http.StatusOK, convertedBalanceResponse{Balance: converted, Currency: currency})
}

// Statement returns the account's transactions, newest first.
func (h *WalletHandler) Statement(c echo.Context) error {
	account, err := middleware.Account(c)
	if err != nil {
		return err
	}

	transactions, err := h.walletService.Statement(c.Request().Context(), account.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, transactions)
}

// Buy purchases a catalog product with the account balance.
//
// @Summary      Buy a product
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        body  body      buyRequest  true  "Product id"
// @Success      200   {object}  purchaseResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/buy [post]
func (h *WalletHandler) Buy(c echo.Context) error {
	account, err := middleware.Account(c)
	if err != nil {
		return err
	}

	var req buyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.walletService.Buy(c.Request().Context(), account.ID, req.ProductID)
	if err != nil {
		metrics.TransferErrorsTotal.WithLabelValues("buy", transferErrorReason(err)).Inc()
		// Purchases report a distinct insufficient-funds message.
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return echo.NewHTTPError(http.StatusBadRequest, "Insufficient balance")
		}
		return err
	}

	metrics.TransfersTotal.WithLabelValues("buy").Inc()
	return c.JSON(http.StatusOK, purchaseResponse{Message: "Product purchased", Balance: result.Balance})
}

func transferErrorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrRecipientNotFound):
		return "recipient_not_found"
	case errors.Is(err, domain.ErrProductNotFound):
		return "invalid_product"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	default:
		return "store_error"
	}
}
