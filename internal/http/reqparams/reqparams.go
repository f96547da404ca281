// Package reqparams reads path ids, pagination and absolute URLs off a gin request.
package reqparams

import (
	"net/url"
	"strconv"

	"auctionhousego/internal/apperr"
	"auctionhousego/internal/http/httperr"
	"auctionhousego/internal/pagination"

	"github.com/gin-gonic/gin"
)

// ID parses a positive integer path parameter. Anything else is answered with 404,
// since such a path names no resource.
func ID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.Write(c, apperr.ErrNotFound)
		return 0, false
	}
	return id, true
}

func Page(c *gin.Context, size int) (pagination.Page, bool) {
	p, err := pagination.FromQuery(c.Request.URL.Query(), size)
	if err != nil {
		httperr.Write(c, err)
		return p, false
	}
	return p, true
}

// AbsoluteURL reconstructs the URL the client used, honouring X-Forwarded-Proto.
func AbsoluteURL(c *gin.Context) *url.URL {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if fwd := c.GetHeader("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}
	return &url.URL{
		Scheme:   scheme,
		Host:     c.Request.Host,
		Path:     c.Request.URL.Path,
		RawQuery: c.Request.URL.RawQuery,
	}
}

// Envelope wraps a service page into the paginated response body.
func Envelope[T any](c *gin.Context, list pagination.List[T]) pagination.Envelope[T] {
	return pagination.NewEnvelope(AbsoluteURL(c), list.Page, list.Count, list.Items)
}
