package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/nile/internal/db"
	itemhttp "github.com/Skotchmaster/nile/internal/item/httpserver"
	"github.com/Skotchmaster/nile/internal/logging"
	"github.com/Skotchmaster/nile/internal/session"
	userhttp "github.com/Skotchmaster/nile/internal/user/httpserver"
)

type Deps struct {
	DB          *gorm.DB
	ItemHandler *itemhttp.ItemHTTP
	UserHandler *userhttp.UserHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"message": "Thanks for shopping at Nile!"})
	})
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", ready(d.DB))

	withSession := session.Middleware(d.DB)

	users := e.Group("/users", withSession)
	users.POST("", d.UserHandler.CreateUser)
	users.POST("/:user_id/cart", d.UserHandler.AddItemToCart)
	users.GET("/:user_id/cart", d.UserHandler.ListCartItems)

	if d.ItemHandler.Searcher != nil {
		e.GET("/items/search", d.ItemHandler.SearchItems)
	}

	items := e.Group("/items", withSession)
	items.POST("", d.ItemHandler.CreateItem)
	items.GET("", d.ItemHandler.ListItems)
}

func ready(gdb *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx, gdb); err != nil {
			logging.FromContext(ctx).Error("readiness_error", "status", 503, "reason", "database ping failed", "error", err)
			return c.NoContent(http.StatusServiceUnavailable)
		}
		return c.NoContent(http.StatusOK)
	}
}
