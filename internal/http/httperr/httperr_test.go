package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"auctionhousego/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"field", apperr.NewFieldError("search", "too short"), http.StatusBadRequest, `{"search":["too short"]}`},
		{"rule", fmt.Errorf("bid: %w", apperr.NewRuleError("auction closed")), http.StatusBadRequest, `{"detail":"auction closed"}`},
		{"forbidden", apperr.ErrForbidden, http.StatusForbidden, `{"detail":"you do not have permission to perform this action"}`},
		{"not_found", fmt.Errorf("get: %w", apperr.ErrNotFound), http.StatusNotFound, `{"detail":"Not found."}`},
		{"unauthorized", apperr.ErrUnauthorized, http.StatusUnauthorized, `{"detail":"authentication credentials were not provided or are invalid"}`},
		{"internal", errors.New("conn reset"), http.StatusInternalServerError, `{"detail":"A server error occurred."}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

			Write(c, tc.err)
			assert.Equal(t, tc.wantStatus, w.Code)
			assert.JSONEq(t, tc.wantBody, w.Body.String())
			assert.True(t, c.IsAborted())
		})
	}
}

type sample struct {
	Title string `json:"title" binding:"required,max=5"`
	Stock int    `json:"stock" binding:"required,min=1"`
}

func TestBadRequest_UsesJSONFieldNames(t *testing.T) {
	gin.SetMode(gin.TestMode)

	bind := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		var s sample
		err := c.ShouldBindJSON(&s)
		require.Error(t, err)
		BadRequest(c, err)
		return w
	}

	w := bind(`{"title":"much too long","stock":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"title":["Ensure this field has no more than 5 characters."],"stock":["This field is required."]}`, w.Body.String())

	w = bind(`{"title":"ok","stock":"many"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"stock"`)

	w = bind(`{"title":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "JSON parse error")
}
