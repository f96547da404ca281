package categoryhandler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"auctionhousego/internal/apperr"
	tokenmocks "auctionhousego/internal/auth/token/mocks"
	"auctionhousego/internal/http/middleware"
	"auctionhousego/internal/models"
	"auctionhousego/internal/pagination"
	"auctionhousego/internal/permissions"
	"auctionhousego/internal/services/category/mocks"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

var (
	admin = permissions.Principal{UserID: 9, Username: "root", IsAdmin: true}
	bob   = permissions.Principal{UserID: 2, Username: "bob"}
)

func setup(t *testing.T) (*gin.Engine, *mocks.MockICategoryService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockICategoryService(ctrl)
	tokens := tokenmocks.NewMockIManager(ctrl)
	tokens.EXPECT().ParseAccess("admin").Return(admin, nil).AnyTimes()
	tokens.EXPECT().ParseAccess("bob").Return(bob, nil).AnyTimes()

	r := gin.New()
	r.Use(middleware.Authenticate(tokens))
	New(svc, 5).Register(r)
	return r, svc
}

func request(r *gin.Engine, method, path, user, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("Authorization", "Bearer "+user)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCategoryHandler(t *testing.T) {
	r, svc := setup(t)

	svc.EXPECT().ListCategories(gomock.Any(), pagination.Page{Number: 1, Size: 5}).
		Return(pagination.List[models.Category]{
			Page: pagination.Page{Number: 1, Size: 5}, Count: 1,
			Items: []models.Category{{ID: 1, Name: "Electronics"}},
		}, nil)
	w := request(r, http.MethodGet, "/categories/", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":1,"next":null,"previous":null,"results":[{"id":1,"name":"Electronics"}]}`, w.Body.String())

	svc.EXPECT().CreateCategory(gomock.Any(), admin, "Electronics").Return(&models.Category{ID: 1, Name: "Electronics"}, nil)
	w = request(r, http.MethodPost, "/categories/", "admin", `{"name":"Electronics"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	svc.EXPECT().CreateCategory(gomock.Any(), bob, "Toys").Return(nil, apperr.ErrForbidden)
	w = request(r, http.MethodPost, "/categories/", "bob", `{"name":"Toys"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = request(r, http.MethodPost, "/categories/", "admin", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"name":["This field is required."]}`, w.Body.String())

	svc.EXPECT().CreateCategory(gomock.Any(), admin, "Electronics").
		Return(nil, apperr.NewFieldError("name", "category with this name already exists."))
	w = request(r, http.MethodPost, "/categories/", "admin", `{"name":"Electronics"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.EXPECT().DeleteCategory(gomock.Any(), admin, int64(1)).Return(nil)
	w = request(r, http.MethodDelete, "/categories/1/", "admin", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	svc.EXPECT().GetCategory(gomock.Any(), int64(3)).Return(nil, apperr.ErrNotFound)
	w = request(r, http.MethodGet, "/categories/3/", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
