package auctionhandler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"auctionhousego/internal/apperr"
	tokenmocks "auctionhousego/internal/auth/token/mocks"
	"auctionhousego/internal/filters"
	"auctionhousego/internal/http/middleware"
	"auctionhousego/internal/models"
	"auctionhousego/internal/pagination"
	"auctionhousego/internal/permissions"
	"auctionhousego/internal/services/auction"
	"auctionhousego/internal/services/auction/mocks"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = permissions.Principal{UserID: 1, Username: "alice"}
	bob   = permissions.Principal{UserID: 2, Username: "bob"}
)

type fixture struct {
	router *gin.Engine
	svc    *mocks.MockIAuctionService
}

func newFixture(t *testing.T) fixture {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockIAuctionService(ctrl)
	tokens := tokenmocks.NewMockIManager(ctrl)
	tokens.EXPECT().ParseAccess("alice").Return(alice, nil).AnyTimes()
	tokens.EXPECT().ParseAccess("bob").Return(bob, nil).AnyTimes()

	r := gin.New()
	r.Use(middleware.Authenticate(tokens))
	New(svc, 5).Register(r)
	return fixture{router: r, svc: svc}
}

func (f fixture) do(method, path, user, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if user != "" {
		req.Header.Set("Authorization", "Bearer "+user)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestList_FilterErrors(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/auctions/?search=ab", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"search"`)

	w = f.do(http.MethodGet, "/auctions/?min_price=50&max_price=10", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"max_price"`)

	w = f.do(http.MethodGet, "/auctions/?page=zero", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestList_Envelope(t *testing.T) {
	f := newFixture(t)
	closing := models.NewTimestamp(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))

	f.svc.EXPECT().
		ListAuctions(gomock.Any(), filters.AuctionFilter{Search: "lamp"}, pagination.Page{Number: 2, Size: 5}).
		Return(pagination.List[models.Auction]{
			Page:  pagination.Page{Number: 2, Size: 5},
			Count: 6,
			Items: []models.Auction{{ID: 6, Title: "Lamp", Price: models.MustPrice("25"), ClosingDate: closing, IsOpen: true, AverageRating: 3.5}},
		}, nil)

	w := f.do(http.MethodGet, "/auctions/?search=lamp&page=2", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Count    int              `json:"count"`
		Next     *string          `json:"next"`
		Previous *string          `json:"previous"`
		Results  []map[string]any `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 6, body.Count)
	assert.Nil(t, body.Next)
	require.NotNil(t, body.Previous)
	assert.Equal(t, "http://example.com/auctions/?search=lamp", *body.Previous)
	require.Len(t, body.Results, 1)
	assert.Equal(t, "25.00", body.Results[0]["price"])
	assert.Equal(t, "2030-01-01T00:00:00Z", body.Results[0]["closing_date"])
	assert.Equal(t, true, body.Results[0]["isOpen"])
	assert.Equal(t, 3.5, body.Results[0]["average_rating"])
}

const auctionJSON = `{
	"title": "iPhone 15",
	"description": "Sealed box",
	"price": "799.00",
	"stock": 1,
	"brand": "Apple",
	"category": 1,
	"thumbnail": "https://cdn.example.com/iphone.png",
	"closing_date": "2030-01-01T00:00:00Z"
}`

func TestCreate(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/auctions/", "", auctionJSON)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(http.MethodPost, "/auctions/", "alice", `{"title": "x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"closing_date":["This field is required."]`)

	w = f.do(http.MethodPost, "/auctions/", "alice", strings.Replace(auctionJSON, `"799.00"`, `"799.001"`, 1))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"price"`)

	f.svc.EXPECT().
		CreateAuction(gomock.Any(), alice, gomock.Any()).
		DoAndReturn(func(_ any, _ permissions.Principal, in auction.AuctionInput) (*models.Auction, error) {
			assert.True(t, in.Price.Equal(decimal.NewFromInt(799)))
			assert.Equal(t, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), in.ClosingDate)
			return &models.Auction{ID: 3, Title: in.Title, Auctioneer: alice.UserID, IsOpen: true}, nil
		})
	w = f.do(http.MethodPost, "/auctions/", "alice", auctionJSON)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"auctioneer":1`)
}

func TestCreate_TooShort(t *testing.T) {
	f := newFixture(t)
	f.svc.EXPECT().CreateAuction(gomock.Any(), alice, gomock.Any()).
		Return(nil, apperr.NewFieldError("closing_date", "The auction must last at least 15 days."))

	w := f.do(http.MethodPost, "/auctions/", "alice", auctionJSON)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"closing_date":["The auction must last at least 15 days."]}`, w.Body.String())
}

func TestUpdate_Forbidden(t *testing.T) {
	f := newFixture(t)
	f.svc.EXPECT().UpdateAuction(gomock.Any(), bob, int64(7), gomock.Any()).Return(nil, apperr.ErrForbidden)

	w := f.do(http.MethodPut, "/auctions/7/", "bob", auctionJSON)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestInfoAndDelete(t *testing.T) {
	f := newFixture(t)

	f.svc.EXPECT().GetAuction(gomock.Any(), int64(404)).Return(nil, apperr.ErrNotFound)
	w := f.do(http.MethodGet, "/auctions/404/", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(http.MethodGet, "/auctions/abc/", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	f.svc.EXPECT().DeleteAuction(gomock.Any(), alice, int64(7)).Return(nil)
	w = f.do(http.MethodDelete, "/auctions/7/", "alice", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestBids(t *testing.T) {
	f := newFixture(t)

	f.svc.EXPECT().PlaceBid(gomock.Any(), bob, int64(7), decimal.RequireFromString("50")).
		Return(nil, apperr.NewRuleError("bid must be higher than the current highest bid (100.00)"))
	w := f.do(http.MethodPost, "/auctions/7/bid/", "bob", `{"price": "50"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"bid must be higher than the current highest bid (100.00)"}`, w.Body.String())

	f.svc.EXPECT().PlaceBid(gomock.Any(), bob, int64(7), decimal.RequireFromString("150")).
		Return(&models.Bid{ID: 2, Auction: 7, Price: models.MustPrice("150"), Bidder: 2, BidderUsername: "bob"}, nil)
	w = f.do(http.MethodPost, "/auctions/7/bid/", "bob", `{"price": 150}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"price":"150.00"`)

	w = f.do(http.MethodPost, "/auctions/7/bid/", "bob", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	f.svc.EXPECT().UpdateBid(gomock.Any(), alice, int64(7), int64(2), gomock.Any()).Return(nil, apperr.ErrForbidden)
	w = f.do(http.MethodPut, "/auctions/7/bid/2/", "alice", `{"price": "500"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	f.svc.EXPECT().DeleteBid(gomock.Any(), bob, int64(7), int64(2)).Return(apperr.NewRuleError("auction closed"))
	w = f.do(http.MethodDelete, "/auctions/7/bid/2/", "bob", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	f.svc.EXPECT().ListBids(gomock.Any(), int64(7), pagination.Page{Number: 1, Size: 5}).
		Return(pagination.List[models.Bid]{Page: pagination.Page{Number: 1, Size: 5}}, nil)
	w = f.do(http.MethodGet, "/auctions/7/bid/", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":0,"next":null,"previous":null,"results":[]}`, w.Body.String())
}

func TestBids_PriceOutOfRange(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		msg    string
	}{
		{"place_three_decimals", http.MethodPost, "/auctions/7/bid/", `{"price": "100.001"}`,
			"Ensure that there are no more than 2 decimal places."},
		{"place_too_many_digits", http.MethodPost, "/auctions/7/bid/", `{"price": "1000000000"}`,
			"Ensure that there are no more than 10 digits in total."},
		{"update_three_decimals", http.MethodPut, "/auctions/7/bid/2/", `{"price": "100.001"}`,
			"Ensure that there are no more than 2 decimal places."},
		{"update_too_many_digits", http.MethodPut, "/auctions/7/bid/2/", `{"price": 1000000000}`,
			"Ensure that there are no more than 10 digits in total."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := f.do(tc.method, tc.path, "bob", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"price":["`+tc.msg+`"]}`, w.Body.String())
		})
	}
}

func TestMine(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/users/", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = f.do(http.MethodGet, "/misPujas/", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	f.svc.EXPECT().ListUserAuctions(gomock.Any(), alice, gomock.Any()).
		Return(pagination.List[models.Auction]{Page: pagination.Page{Number: 1, Size: 5}}, nil)
	w = f.do(http.MethodGet, "/users/", "alice", "")
	assert.Equal(t, http.StatusOK, w.Code)

	f.svc.EXPECT().ListUserBids(gomock.Any(), bob, gomock.Any()).
		Return(pagination.List[models.Bid]{Page: pagination.Page{Number: 1, Size: 5}, Count: 1,
			Items: []models.Bid{{ID: 1, Auction: 7, Price: models.MustPrice("100"), Bidder: 2}}}, nil)
	w = f.do(http.MethodGet, "/misPujas/", "bob", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
}
