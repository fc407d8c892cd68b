package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/nile/internal/events"
	"github.com/Skotchmaster/nile/internal/item/app"
	"github.com/Skotchmaster/nile/internal/item/repo"
	"github.com/Skotchmaster/nile/internal/item/transport"
	"github.com/Skotchmaster/nile/internal/logging"
	"github.com/Skotchmaster/nile/internal/search"
	"github.com/Skotchmaster/nile/internal/session"
	"github.com/Skotchmaster/nile/internal/util"
)

type Indexer interface {
	IndexItem(ctx context.Context, doc search.Document) error
}

type Searcher interface {
	Search(ctx context.Context, query string, from, size int) (search.Results, error)
}

// ItemHTTP serves the catalog. Indexer and Searcher are nil when search is
// not configured.
type ItemHTTP struct {
	Events   events.Publisher
	Indexer  Indexer
	Searcher Searcher
}

func (h *ItemHTTP) CreateItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "item.create_item")

	var req transport.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_item_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	cmd, err := req.Command()
	if err != nil {
		l.Warn("create_item_error", "status", 422, "reason", "validation failed", "error", err)
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	uc := app.NewCreateItemUseCase(repo.NewGormRepo(session.FromContext(c)))
	created, err := uc.Execute(ctx, cmd)
	if err != nil {
		if errors.Is(err, app.ErrItemAlreadyExists) {
			l.Warn("create_item_error", "status", 409, "reason", "item name taken", "error", err)
			return echo.NewHTTPError(http.StatusConflict, "Item with this name already exists.")
		}
		l.Error("create_item_error", "status", 500, "reason", "cannot create item", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create item")
	}

	events.Emit(ctx, h.Events, events.TopicItemEvents, created.ID.String(),
		events.NewItemCreated(created.ID, created.Name, created.Price, created.Quantity))

	if h.Indexer != nil {
		doc := search.Document{
			ID:          created.ID,
			Name:        created.Name,
			Description: created.Description,
			Price:       created.Price,
			Quantity:    created.Quantity,
		}
		if err := h.Indexer.IndexItem(ctx, doc); err != nil {
			l.Error("index_item_error", "item_id", created.ID, "error", err)
		}
	}

	l.Info("create_item_success", "item_id", created.ID)
	return c.JSON(http.StatusOK, transport.NewItemResponse(created))
}

func (h *ItemHTTP) ListItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "item.list_items")

	uc := app.NewListItemsUseCase(repo.NewGormRepo(session.FromContext(c)))
	items, err := uc.Execute(ctx)
	if err != nil {
		l.Error("list_items_error", "status", 500, "reason", "cannot list items", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list items")
	}

	l.Info("list_items_success", "count", len(items.Items))
	return c.JSON(http.StatusOK, transport.NewAllItemsResponse(items))
}

func (h *ItemHTTP) SearchItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "item.search_items")

	q := c.QueryParam("q")
	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, size := util.Calculate(page, size)

	res, err := h.Searcher.Search(ctx, q, from, size)
	if err != nil {
		if errors.Is(err, search.ErrEmptyQuery) {
			l.Warn("search_items_error", "status", 400, "reason", "empty query", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "query is required")
		}
		l.Error("search_items_error", "status", 500, "reason", "search failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}

	items := make([]transport.ItemResponse, 0, len(res.Items))
	for _, d := range res.Items {
		items = append(items, transport.ItemResponse{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Price:       d.Price,
			Quantity:    d.Quantity,
		})
	}

	l.Info("search_items_success", "total", res.Total)
	return c.JSON(http.StatusOK, transport.SearchItemsResponse{Total: res.Total, Items: items})
}
