package http_server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	tokenmocks "auctionhousego/internal/auth/token/mocks"
	"auctionhousego/internal/models"
	"auctionhousego/internal/pagination"
	categorymocks "auctionhousego/internal/services/category/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httpServer, sqlmock.Sqlmock, redismock.ClientMock, *categorymocks.MockICategoryService) {
	gin.SetMode(gin.TestMode)
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	rc, redisMock := redismock.NewClientMock()

	ctrl := gomock.NewController(t)
	categories := categorymocks.NewMockICategoryService(ctrl)
	srv := NewHttpServer(context.Background(), 8085, 5, db, rc, Services{
		Categories: categories,
		Tokens:     tokenmocks.NewMockIManager(ctrl),
	})
	return srv, dbMock, redisMock, categories
}

func TestHealth(t *testing.T) {
	srv, dbMock, redisMock, _ := newTestServer(t)
	r := srv.Router()

	dbMock.ExpectPing()
	redisMock.ExpectPing().SetVal("PONG")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"database":"ok","redis":"ok"}`, w.Body.String())

	dbMock.ExpectPing().WillReturnError(errors.New("connection refused"))
	redisMock.ExpectPing().SetVal("PONG")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"database":"down","redis":"ok"}`, w.Body.String())

	require.NoError(t, dbMock.ExpectationsWereMet())
	require.NoError(t, redisMock.ExpectationsWereMet())
}

func TestRouterMountsHandlers(t *testing.T) {
	srv, _, _, categories := newTestServer(t)
	r := srv.Router()

	categories.EXPECT().ListCategories(gomock.Any(), pagination.Page{Number: 1, Size: 5}).
		Return(pagination.List[models.Category]{Page: pagination.Page{Number: 1, Size: 5}}, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/categories/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auctions/", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
