package httpserver

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/nile/internal/events"
	"github.com/Skotchmaster/nile/internal/logging"
	"github.com/Skotchmaster/nile/internal/session"
	"github.com/Skotchmaster/nile/internal/user/app"
	"github.com/Skotchmaster/nile/internal/user/repo"
	"github.com/Skotchmaster/nile/internal/user/transport"
)

func (h *UserHTTP) AddItemToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_item")

	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		l.Warn("add_to_cart_error", "status", 400, "reason", "user_id is not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is not a uuid")
	}

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	cmd, err := req.Command(userID)
	if err != nil {
		l.Warn("add_to_cart_error", "status", 422, "reason", "validation failed", "error", err)
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	tx := session.FromContext(c)
	uc := app.NewAddItemToCartUseCase(repo.NewUserRepo(tx), repo.NewCartRepo(tx), repo.NewInventoryGateway(tx))
	cart, err := uc.Execute(ctx, cmd)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUserNotFound):
			l.Warn("add_to_cart_error", "status", 404, "reason", "user not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "User does not exist.")
		case errors.Is(err, app.ErrItemNotFound):
			l.Warn("add_to_cart_error", "status", 404, "reason", "item not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "Item does not exist.")
		case errors.Is(err, app.ErrNotEnoughStock):
			l.Warn("add_to_cart_error", "status", 409, "reason", "not enough stock", "error", err)
			return echo.NewHTTPError(http.StatusConflict, "Not enough items in stock.")
		case errors.Is(err, app.ErrItemAlreadyInCart):
			l.Warn("add_to_cart_error", "status", 409, "reason", "item already in cart", "error", err)
			return echo.NewHTTPError(http.StatusConflict, "Item already in cart.")
		}
		l.Error("add_to_cart_error", "status", 500, "reason", "cannot add item to cart", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add item to cart")
	}

	events.Emit(ctx, h.Events, events.TopicCartEvents, userID.String(),
		events.NewCartItemAdded(userID, cmd.ItemID, cmd.Quantity))

	l.Info("add_to_cart_success", "user_id", userID, "item_id", cmd.ItemID)
	return c.JSON(http.StatusOK, transport.NewCartResponse(cart))
}

func (h *UserHTTP) ListCartItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.list_items")

	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		l.Warn("list_cart_error", "status", 400, "reason", "user_id is not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is not a uuid")
	}

	uc := app.NewListCartItemsUseCase(repo.NewCartRepo(session.FromContext(c)))
	cart, err := uc.Execute(ctx, userID)
	if err != nil {
		l.Error("list_cart_error", "status", 500, "reason", "cannot list cart", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list cart")
	}

	l.Info("list_cart_success", "user_id", userID, "count", len(cart.Items))
	return c.JSON(http.StatusOK, transport.NewCartResponse(cart))
}
