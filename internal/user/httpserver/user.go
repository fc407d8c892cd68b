package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/nile/internal/events"
	"github.com/Skotchmaster/nile/internal/logging"
	"github.com/Skotchmaster/nile/internal/session"
	"github.com/Skotchmaster/nile/internal/user/app"
	"github.com/Skotchmaster/nile/internal/user/repo"
	"github.com/Skotchmaster/nile/internal/user/transport"
)

type UserHTTP struct {
	Events events.Publisher
	Hasher app.PasswordHasher
}

func (h *UserHTTP) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.create_user")

	var req transport.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_user_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	cmd, err := req.Command()
	if err != nil {
		l.Warn("create_user_error", "status", 422, "reason", "validation failed", "error", err)
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	uc := app.NewCreateUserUseCase(repo.NewUserRepo(session.FromContext(c)), h.Hasher)
	created, err := uc.Execute(ctx, cmd)
	if err != nil {
		if errors.Is(err, app.ErrUserAlreadyExists) {
			l.Warn("create_user_error", "status", 409, "reason", "email taken", "error", err)
			return echo.NewHTTPError(http.StatusConflict, "User with this email already exists.")
		}
		l.Error("create_user_error", "status", 500, "reason", "cannot create user", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create user")
	}

	events.Emit(ctx, h.Events, events.TopicUserEvents, created.ID.String(),
		events.NewUserCreated(created.ID, created.Email))

	l.Info("create_user_success", "user_id", created.ID)
	return c.JSON(http.StatusOK, transport.NewCreateUserResponse(created))
}
