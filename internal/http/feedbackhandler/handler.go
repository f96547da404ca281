package feedbackhandler

import (
	"net/http"

	"auctionhousego/internal/http/httperr"
	"auctionhousego/internal/http/middleware"
	"auctionhousego/internal/http/reqparams"
	"auctionhousego/internal/services/feedback"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc      feedback.IFeedbackService
	pageSize int
}

func New(svc feedback.IFeedbackService, pageSize int) *Handler {
	return &Handler{svc: svc, pageSize: pageSize}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/ratings/", middleware.RequireAuth(), h.listRatings)
	r.POST("/ratings/", middleware.RequireAuth(), h.createRating)
	r.GET("/ratings/:id/", middleware.RequireAuth(), h.ratingInfo)
	r.PUT("/ratings/:id/", middleware.RequireAuth(), h.updateRating)
	r.DELETE("/ratings/:id/", middleware.RequireAuth(), h.deleteRating)

	r.GET("/auctions/:id/comments/", h.listComments)
	r.POST("/auctions/:id/comments/", middleware.RequireAuth(), h.createComment)
	r.GET("/auctions/:id/comments/:comment_id/", h.commentInfo)
	r.PUT("/auctions/:id/comments/:comment_id/", middleware.RequireAuth(), h.updateComment)
	r.DELETE("/auctions/:id/comments/:comment_id/", middleware.RequireAuth(), h.deleteComment)
}

// @Summary		List my ratings
// @Description	Ratings written by the caller (admins see all), newest first.
// @Tags			Ratings
// @Security		BearerAuth
// @Param			auction	query		int	false	"Only ratings of this auction"
// @Param			page	query		int	false	"Page number"	minimum(1)	default(1)
// @Success		200		{object}	RatingPage
// @Failure		401		{object}	httperr.ErrorResponse
// @Router			/ratings/ [get]
func (h *Handler) listRatings(c *gin.Context) {
	var q RatingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	page, ok := reqparams.Page(c, h.pageSize)
	if !ok {
		return
	}
	out, err := h.svc.ListRatings(c.Request.Context(), middleware.Principal(c), q.Auction, page)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, reqparams.Envelope(c, out))
}

// @Summary		Rate an auction
// @Description	One rating per user and auction, value 1 to 5.
// @Tags			Ratings
// @Security		BearerAuth
// @Param			body	body		RatingBody	true	"Rating payload"
// @Success		201		{object}	models.Rating
// @Failure		400		{object}	httperr.FieldErrorsResponse
// @Failure		401		{object}	httperr.ErrorResponse
// @Router			/ratings/ [post]
func (h *Handler) createRating(c *gin.Context) {
	var body RatingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	r, err := h.svc.CreateRating(c.Request.Context(), middleware.Principal(c), body.Auction, body.Value)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// @Summary		Get a rating
// @Tags			Ratings
// @Security		BearerAuth
// @Param			id	path		int	true	"Rating ID"
// @Success		200	{object}	models.Rating
// @Failure		404	{object}	httperr.ErrorResponse
// @Router			/ratings/{id}/ [get]
func (h *Handler) ratingInfo(c *gin.Context) {
	id, ok := reqparams.ID(c, "id")
	if !ok {
		return
	}
	r, err := h.svc.GetRating(c.Request.Context(), middleware.Principal(c), id)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// @Summary		Change a rating
// @Tags			Ratings
// @Security		BearerAuth
// @Param			id		path		int					true	"Rating ID"
// @Param			body	body		RatingUpdateBody	true	"New value"
// @Success		200		{object}	models.Rating
// @Failure		400		{object}	httperr.FieldErrorsResponse
// @Failure		404		{object}	httperr.ErrorResponse
// @Router			/ratings/{id}/ [put]
func (h *Handler) updateRating(c *gin.Context) {
	id, ok := reqparams.ID(c, "id")
	if !ok {
		return
	}
	var body RatingUpdateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	r, err := h.svc.UpdateRating(c.Request.Context(), middleware.Principal(c), id, body.Value)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// @Summary		Delete a rating
// @Tags			Ratings
// @Security		BearerAuth
// @Param			id	path	int	true	"Rating ID"
// @Success		204
// @Failure		404	{object}	httperr.ErrorResponse
// @Router			/ratings/{id}/ [delete]
func (h *Handler) deleteRating(c *gin.Context) {
	id, ok := reqparams.ID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteRating(c.Request.Context(), middleware.Principal(c), id); err != nil {
		httperr.Write(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
