package auctionhandler

import (
	"net/http"

	"auctionhousego/internal/filters"
	"auctionhousego/internal/http/httperr"
	"auctionhousego/internal/http/middleware"
	"auctionhousego/internal/http/reqparams"
	"auctionhousego/internal/services/auction"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc      auction.IAuctionService
	pageSize int
}

func New(svc auction.IAuctionService, pageSize int) *Handler {
	return &Handler{svc: svc, pageSize: pageSize}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/auctions/", h.list)
	r.POST("/auctions/", middleware.RequireAuth(), h.create)
	r.GET("/auctions/:id/", h.info)
	r.PUT("/auctions/:id/", middleware.RequireAuth(), h.update)
	r.DELETE("/auctions/:id/", middleware.RequireAuth(), h.delete)

	r.GET("/auctions/:id/bid/", h.listBids)
	r.POST("/auctions/:id/bid/", middleware.RequireAuth(), h.placeBid)
	r.GET("/auctions/:id/bid/:bid_id/", h.bidInfo)
	r.PUT("/auctions/:id/bid/:bid_id/", middleware.RequireAuth(), h.updateBid)
	r.DELETE("/auctions/:id/bid/:bid_id/", middleware.RequireAuth(), h.deleteBid)

	r.GET("/users/", middleware.RequireAuth(), h.myAuctions)
	r.GET("/misPujas/", middleware.RequireAuth(), h.myBids)
}

// @Summary		List auctions
// @Description	Paginated list of auctions ordered by id. All filters combine with AND.
// @Tags			Auctions
// @Param			search		query		string	false	"Substring of title or description (min 3 chars)"
// @Param			category	query		string	false	"Category id or exact category name"
// @Param			min_price	query		number	false	"Inclusive lower price bound (> 0)"
// @Param			max_price	query		number	false	"Inclusive upper price bound (> min_price)"
// @Param			page		query		int		false	"Page number"	minimum(1)	default(1)
// @Success		200			{object}	AuctionPage
// @Failure		400			{object}	httperr.FieldErrorsResponse
// @Failure		404			{object}	httperr.ErrorResponse
// @Router			/auctions/ [get]
func (h *Handler) list(c *gin.Context) {
	f, err := filters.ParseAuctionQuery(c.Request.URL.Query())
	if err != nil {
		httperr.Write(c, err)
		return
	}
	page, ok := reqparams.Page(c, h.pageSize)
	if !ok {
		return
	}
	out, err := h.svc.ListAuctions(c.Request.Context(), f, page)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, reqparams.Envelope(c, out))
}

// @Summary		Create an auction
// @Description	The caller becomes the auctioneer. closing_date must be at least 15 days away.
// @Tags			Auctions
// @Security		BearerAuth
// @Param			body	body		AuctionBody	true	"Auction payload"
// @Success		201		{object}	models.Auction
// @Failure		400		{object}	httperr.FieldErrorsResponse
// @Failure		401		{object}	httperr.ErrorResponse
// @Router			/auctions/ [post]
func (h *Handler) create(c *gin.Context) {
	var body AuctionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	in, err := body.input()
	if err != nil {
		httperr.Write(c, err)
		return
	}
	a, err := h.svc.CreateAuction(c.Request.Context(), middleware.Principal(c), in)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// @Summary		Get auction details
// @Description	Returns a single auction with its derived isOpen and average_rating fields.
// @Tags			Auctions
// @Param			id	path		int	true	"Auction ID"
// @Success		200	{object}	models.Auction
// @Failure		404	{object}	httperr.ErrorResponse
// @Router			/auctions/{id}/ [get]
func (h *Handler) info(c *gin.Context) {
	id, ok := reqparams.ID(c, "id")
	if !ok {
		return
	}
	a, err := h.svc.GetAuction(c.Request.Context(), id)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// @Summary		Update an auction
// @Description	Auctioneer or admin only. The 15-day minimum is measured from the creation date.
// @Tags			Auctions
// @Security		BearerAuth
// @Param			id		path		int			true	"Auction ID"
// @Param			body	body		AuctionBody	true	"Auction payload"
// @Success		200		{object}	models.Auction
// @Failure		400		{object}	httperr.FieldErrorsResponse
// @Failure		403		{object}	httperr.ErrorResponse
// @Failure		404		{object}	httperr.ErrorResponse
// @Router			/auctions/{id}/ [put]
func (h *Handler) update(c *gin.Context) {
	id, ok := reqparams.ID(c, "id")
	if !ok {
		return
	}
	var body AuctionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	in, err := body.input()
	if err != nil {
		httperr.Write(c, err)
		return
	}
	a, err := h.svc.UpdateAuction(c.Request.Context(), middleware.Principal(c), id, in)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// @Summary		Delete an auction
// @Description	Auctioneer or admin only. Bids, ratings and comments are deleted with it.
// @Tags			Auctions
// @Security		BearerAuth
// @Param			id	path	int	true	"Auction ID"
// @Success		204
// @Failure		403	{object}	httperr.ErrorResponse
// @Failure		404	{object}	httperr.ErrorResponse
// @Router			/auctions/{id}/ [delete]
func (h *Handler) delete(c *gin.Context) {
	id, ok := reqparams.ID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteAuction(c.Request.Context(), middleware.Principal(c), id); err != nil {
		httperr.Write(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary		My auctions
// @Description	Auctions where the caller is the auctioneer.
// @Tags			Users
// @Security		BearerAuth
// @Param			page	query		int	false	"Page number"	minimum(1)	default(1)
// @Success		200		{object}	AuctionPage
// @Failure		401		{object}	httperr.ErrorResponse
// @Router			/users/ [get]
func (h *Handler) myAuctions(c *gin.Context) {
	page, ok := reqparams.Page(c, h.pageSize)
	if !ok {
		return
	}
	out, err := h.svc.ListUserAuctions(c.Request.Context(), middleware.Principal(c), page)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, reqparams.Envelope(c, out))
}
