package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/nile/internal/models"
	"github.com/Skotchmaster/nile/internal/testutil"
)

func newEcho(t *testing.T, db *gorm.DB, h echo.HandlerFunc) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Use(middleware.Recover())
	e.GET("/", h, Middleware(db))
	return e
}

func serve(e *echo.Echo) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec
}

func inUse(t *testing.T, db *gorm.DB) int {
	t.Helper()
	sqlDB, err := db.DB()
	require.NoError(t, err)
	return sqlDB.Stats().InUse
}

func TestMiddleware_ProvidesConnection(t *testing.T) {
	db := testutil.NewDB(t)

	var seenInUse int
	e := newEcho(t, db, func(c echo.Context) error {
		tx := FromContext(c)
		require.NotNil(t, tx)
		seenInUse = inUse(t, db)

		var count int64
		if err := tx.Model(&models.Item{}).Count(&count).Error; err != nil {
			return err
		}
		return c.JSON(http.StatusOK, map[string]int64{"count": count})
	})

	// The test pool holds a single connection, so a leak would block the
	// second request forever.
	for i := 0; i < 2; i++ {
		rec := serve(e)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"count":0}`, rec.Body.String())
	}
	assert.Equal(t, 1, seenInUse)
	assert.Equal(t, 0, inUse(t, db))
}

func TestMiddleware_ReleasesOnError(t *testing.T) {
	db := testutil.NewDB(t)
	e := newEcho(t, db, func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusConflict, "taken")
	})

	rec := serve(e)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, 0, inUse(t, db))
}

func TestMiddleware_ReleasesOnPanic(t *testing.T) {
	db := testutil.NewDB(t)
	e := newEcho(t, db, func(c echo.Context) error {
		panic("boom")
	})

	rec := serve(e)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 0, inUse(t, db))
}

func TestFromContext_WithoutMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Nil(t, FromContext(c))
}

func TestMiddleware_ClosedPool(t *testing.T) {
	db := testutil.NewDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	called := false
	e := newEcho(t, db, func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	rec := serve(e)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, called)
}
