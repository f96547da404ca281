package auctionhandler

import (
	"net/http"

	"auctionhousego/internal/http/httperr"
	"auctionhousego/internal/http/middleware"
	"auctionhousego/internal/http/reqparams"

	"github.com/gin-gonic/gin"
)

// @Summary		List bids
// @Description	Bids on one auction, highest price first.
// @Tags			Bids
// @Param			id		path		int	true	"Auction ID"
// @Param			page	query		int	false	"Page number"	minimum(1)	default(1)
// @Success		200		{object}	BidPage
// @Failure		404		{object}	httperr.ErrorResponse
// @Router			/auctions/{id}/bid/ [get]
func (h *Handler) listBids(c *gin.Context) {
	auctionID, ok := reqparams.ID(c, "id")
	if !ok {
		return
	}
	page, ok := reqparams.Page(c, h.pageSize)
	if !ok {
		return
	}
	out, err := h.svc.ListBids(c.Request.Context(), auctionID, page)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, reqparams.Envelope(c, out))
}

// @Summary		Place a bid
// @Description	The price must beat the current highest bid and the auction must be open.
// @Tags			Bids
// @Security		BearerAuth
// @Param			id		path		int		true	"Auction ID"
// @Param			body	body		BidBody	true	"Bid payload"
// @Success		201		{object}	models.Bid
// @Failure		400		{object}	httperr.ErrorResponse
// @Failure		401		{object}	httperr.ErrorResponse
// @Failure		404		{object}	httperr.ErrorResponse
// @Router			/auctions/{id}/bid/ [post]
func (h *Handler) placeBid(c *gin.Context) {
	auctionID, ok := reqparams.ID(c, "id")
	if !ok {
		return
	}
	var body BidBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	price, err := body.price()
	if err != nil {
		httperr.Write(c, err)
		return
	}
	b, err := h.svc.PlaceBid(c.Request.Context(), middleware.Principal(c), auctionID, price)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// @Summary		Get a bid
// @Tags			Bids
// @Param			id		path		int	true	"Auction ID"
// @Param			bid_id	path		int	true	"Bid ID"
// @Success		200		{object}	models.Bid
// @Failure		404		{object}	httperr.ErrorResponse
// @Router			/auctions/{id}/bid/{bid_id}/ [get]
func (h *Handler) bidInfo(c *gin.Context) {
	auctionID, ok := reqparams.ID(c, "id")
	if !ok {
		return
	}
	bidID, ok := reqparams.ID(c, "bid_id")
	if !ok {
		return
	}
	b, err := h.svc.GetBid(c.Request.Context(), auctionID, bidID)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// @Summary		Change a bid
// @Description	Bidder or admin only, while the auction is open. The new price must beat every other bid.
// @Tags			Bids
// @Security		BearerAuth
// @Param			id		path		int		true	"Auction ID"
// @Param			bid_id	path		int		true	"Bid ID"
// @Param			body	body		BidBody	true	"Bid payload"
// @Success		200		{object}	models.Bid
// @Failure		400		{object}	httperr.ErrorResponse
// @Failure		403		{object}	httperr.ErrorResponse
// @Failure		404		{object}	httperr.ErrorResponse
// @Router			/auctions/{id}/bid/{bid_id}/ [put]
func (h *Handler) updateBid(c *gin.Context) {
	auctionID, ok := reqparams.ID(c, "id")
	if !ok {
		return
	}
	bidID, ok := reqparams.ID(c, "bid_id")
	if !ok {
		return
	}
	var body BidBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	price, err := body.price()
	if err != nil {
		httperr.Write(c, err)
		return
	}
	b, err := h.svc.UpdateBid(c.Request.Context(), middleware.Principal(c), auctionID, bidID, price)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// @Summary		Withdraw a bid
// @Description	Bidder or admin only, while the auction is open.
// @Tags			Bids
// @Security		BearerAuth
// @Param			id		path	int	true	"Auction ID"
// @Param			bid_id	path	int	true	"Bid ID"
// @Success		204
// @Failure		400	{object}	httperr.ErrorResponse
// @Failure		403	{object}	httperr.ErrorResponse
// @Failure		404	{object}	httperr.ErrorResponse
// @Router			/auctions/{id}/bid/{bid_id}/ [delete]
func (h *Handler) deleteBid(c *gin.Context) {
	auctionID, ok := reqparams.ID(c, "id")
	if !ok {
		return
	}
	bidID, ok := reqparams.ID(c, "bid_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteBid(c.Request.Context(), middleware.Principal(c), auctionID, bidID); err != nil {
		httperr.Write(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary		My bids
// @Description	Bids placed by the caller across all auctions, newest first.
// @Tags			Users
// @Security		BearerAuth
// @Param			page	query		int	false	"Page number"	minimum(1)	default(1)
// @Success		200		{object}	BidPage
// @Failure		401		{object}	httperr.ErrorResponse
// @Router			/misPujas/ [get]
func (h *Handler) myBids(c *gin.Context) {
	page, ok := reqparams.Page(c, h.pageSize)
	if !ok {
		return
	}
	out, err := h.svc.ListUserBids(c.Request.Context(), middleware.Principal(c), page)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, reqparams.Envelope(c, out))
}
