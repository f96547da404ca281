package feedbackhandler

import (
	"net/http"

	"auctionhousego/internal/http/httperr"
	"auctionhousego/internal/http/middleware"
	"auctionhousego/internal/http/reqparams"

	"github.com/gin-gonic/gin"
)

// @Summary		List comments
// @Tags			Comments
// @Param			id		path		int	true	"Auction ID"
// @Param			page	query		int	false	"Page number"	minimum(1)	default(1)
// @Success		200		{object}	CommentPage
// @Failure		404		{object}	httperr.ErrorResponse
// @Router			/auctions/{id}/comments/ [get]
func (h *Handler) listComments(c *gin.Context) {
	auctionID, ok := reqparams.ID(c, "id")
	if !ok {
		return
	}
	page, ok := reqparams.Page(c, h.pageSize)
	if !ok {
		return
	}
	out, err := h.svc.ListComments(c.Request.Context(), auctionID, page)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, reqparams.Envelope(c, out))
}

// @Summary		Comment on an auction
// @Tags			Comments
// @Security		BearerAuth
// @Param			id		path		int			true	"Auction ID"
// @Param			body	body		CommentBody	true	"Comment payload"
// @Success		201		{object}	models.Comment
// @Failure		400		{object}	httperr.FieldErrorsResponse
// @Failure		404		{object}	httperr.ErrorResponse
// @Router			/auctions/{id}/comments/ [post]
func (h *Handler) createComment(c *gin.Context) {
	auctionID, ok := reqparams.ID(c, "id")
	if !ok {
		return
	}
	var body CommentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	cm, err := h.svc.CreateComment(c.Request.Context(), middleware.Principal(c), auctionID, body.Title, body.Body)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusCreated, cm)
}

// @Summary		Get a comment
// @Tags			Comments
// @Param			id			path		int	true	"Auction ID"
// @Param			comment_id	path		int	true	"Comment ID"
// @Success		200			{object}	models.Comment
// @Failure		404			{object}	httperr.ErrorResponse
// @Router			/auctions/{id}/comments/{comment_id}/ [get]
func (h *Handler) commentInfo(c *gin.Context) {
	auctionID, ok := reqparams.ID(c, "id")
	if !ok {
		return
	}
	id, ok := reqparams.ID(c, "comment_id")
	if !ok {
		return
	}
	cm, err := h.svc.GetComment(c.Request.Context(), auctionID, id)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, cm)
}

// @Summary		Edit a comment
// @Description	Author or admin only.
// @Tags			Comments
// @Security		BearerAuth
// @Param			id			path		int			true	"Auction ID"
// @Param			comment_id	path		int			true	"Comment ID"
// @Param			body		body		CommentBody	true	"Comment payload"
// @Success		200			{object}	models.Comment
// @Failure		403			{object}	httperr.ErrorResponse
// @Failure		404			{object}	httperr.ErrorResponse
// @Router			/auctions/{id}/comments/{comment_id}/ [put]
func (h *Handler) updateComment(c *gin.Context) {
	auctionID, ok := reqparams.ID(c, "id")
	if !ok {
		return
	}
	id, ok := reqparams.ID(c, "comment_id")
	if !ok {
		return
	}
	var body CommentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	cm, err := h.svc.UpdateComment(c.Request.Context(), middleware.Principal(c), auctionID, id, body.Title, body.Body)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, cm)
}

// @Summary		Delete a comment
// @Description	Author or admin only.
// @Tags			Comments
// @Security		BearerAuth
// @Param			id			path	int	true	"Auction ID"
// @Param			comment_id	path	int	true	"Comment ID"
// @Success		204
// @Failure		403	{object}	httperr.ErrorResponse
// @Failure		404	{object}	httperr.ErrorResponse
// @Router			/auctions/{id}/comments/{comment_id}/ [delete]
func (h *Handler) deleteComment(c *gin.Context) {
	auctionID, ok := reqparams.ID(c, "id")
	if !ok {
		return
	}
	id, ok := reqparams.ID(c, "comment_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteComment(c.Request.Context(), middleware.Principal(c), auctionID, id); err != nil {
		httperr.Write(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
