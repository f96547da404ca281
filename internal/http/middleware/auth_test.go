package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"auctionhousego/internal/auth/token"
	"auctionhousego/internal/auth/token/mocks"
	"auctionhousego/internal/permissions"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func newRouter(t *testing.T) (*gin.Engine, *mocks.MockIManager) {
	gin.SetMode(gin.TestMode)
	tokens := mocks.NewMockIManager(gomock.NewController(t))

	r := gin.New()
	r.Use(Authenticate(tokens))
	r.GET("/open", func(c *gin.Context) { c.String(http.StatusOK, Principal(c).Username) })
	r.GET("/closed", RequireAuth(), func(c *gin.Context) { c.String(http.StatusOK, Principal(c).Username) })
	return r, tokens
}

func TestAuthenticate(t *testing.T) {
	alice := permissions.Principal{UserID: 1, Username: "alice"}

	tests := []struct {
		name       string
		path       string
		header     string
		setup      func(m *mocks.MockIManager)
		wantStatus int
		wantBody   string
	}{
		{name: "anonymous_open", path: "/open", wantStatus: http.StatusOK, wantBody: ""},
		{name: "anonymous_closed", path: "/closed", wantStatus: http.StatusUnauthorized},
		{
			name: "valid_token", path: "/closed", header: "Bearer good",
			setup: func(m *mocks.MockIManager) {
				m.EXPECT().ParseAccess("good").Return(alice, nil)
			},
			wantStatus: http.StatusOK, wantBody: "alice",
		},
		{
			name: "invalid_token_on_open_route", path: "/open", header: "Bearer expired",
			setup: func(m *mocks.MockIManager) {
				m.EXPECT().ParseAccess("expired").Return(permissions.Principal{}, token.ErrInvalidToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{name: "wrong_scheme", path: "/open", header: "Basic YWxpY2U6cHc=", wantStatus: http.StatusUnauthorized},
		{name: "empty_bearer", path: "/open", header: "Bearer ", wantStatus: http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, tokens := newRouter(t)
			if tc.setup != nil {
				tc.setup(tokens)
			}
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, tc.wantBody, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), "detail")
			}
		})
	}
}
