package middleware

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/minipay/ledger-api/internal/api/metrics"
	"github.com/minipay/ledger-api/internal/core/domain"
	"github.com/minipay/ledger-api/internal/core/ports"
)

// accountKey is the context key under which the authenticated account is
// stored for handlers.
const accountKey = "account"

// BasicAuth verifies the Basic credential header on every request and
// injects the resolved account into the context. Missing or malformed
// headers, unknown schemes, unknown users, and wrong passwords all yield a
// bare 401.
func BasicAuth(verifier ports.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthAttemptsTotal.WithLabelValues("unauthorized").Inc()
				return c.NoContent(http.StatusUnauthorized)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "basic") {
				metrics.AuthAttemptsTotal.WithLabelValues("unauthorized").Inc()
				return c.NoContent(http.StatusUnauthorized)
			}

			decoded, err := base64.StdEncoding.DecodeString(parts[1])
			if err != nil {
				metrics.AuthAttemptsTotal.WithLabelValues("unauthorized").Inc()
				return c.NoContent(http.StatusUnauthorized)
			}

			username, password, ok := strings.Cut(string(decoded), ":")
			if !ok || username == "" || password == "" {
				metrics.AuthAttemptsTotal.WithLabelValues("unauthorized").Inc()
				return c.NoContent(http.StatusUnauthorized)
			}

			account, err := verifier.Verify(c.Request().Context(), username, password)
			if err != nil {
				if err == domain.ErrUnauthorized {
					metrics.AuthAttemptsTotal.WithLabelValues("unauthorized").Inc()
					return c.NoContent(http.StatusUnauthorized)
				}
				metrics.AuthAttemptsTotal.WithLabelValues("error").Inc()
				return err
			}

			metrics.AuthAttemptsTotal.WithLabelValues("ok").Inc()
			c.Set(accountKey, account)
			return next(c)
		}
	}
}

// Account extracts the authenticated account injected by BasicAuth.
func Account(c echo.Context) (*domain.Account, error) {
	account, _ := c.Get(accountKey).(*domain.Account)
	if account == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return account, nil
}
