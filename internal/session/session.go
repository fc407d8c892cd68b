package session

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/nile/internal/logging"
)

const contextKey = "nile.session"

// Middleware pins one pooled connection to the request. Handlers reach it
// through FromContext; the connection goes back to the pool when the handler
// returns or panics.
func Middleware(db *gorm.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			var handlerErr error
			err := db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
				c.Set(contextKey, tx)
				defer c.Set(contextKey, nil)
				handlerErr = next(c)
				return nil
			})
			if err != nil {
				logging.FromContext(ctx).Error("session_error", "status", 500, "reason", "cannot acquire connection", "error", err)
				return echo.NewHTTPError(http.StatusInternalServerError, "database unavailable")
			}
			return handlerErr
		}
	}
}

// FromContext returns the request's connection-bound *gorm.DB, or nil when
// Middleware is not installed on the route.
func FromContext(c echo.Context) *gorm.DB {
	tx, _ := c.Get(contextKey).(*gorm.DB)
	return tx
}
